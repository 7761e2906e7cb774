package component

import (
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// EnemyKind is the pursuer tier, weakest first
type EnemyKind uint8

const (
	EnemyGenin EnemyKind = iota
	EnemyChunin
	EnemyJonin
	EnemyKindCount

	// EnemyStrongest is forced by the final-stage override
	EnemyStrongest = EnemyJonin
)

// EnemySpec is the per-tier behavior table row
type EnemySpec struct {
	Name          string
	Speed         float64
	Health        int
	AttackCadence int // Ticks between contact attacks
	Size          float64
	Color         core.RGB
	MinStage      int
}

// EnemySpecs is indexed by EnemyKind
var EnemySpecs = [EnemyKindCount]EnemySpec{
	EnemyGenin: {
		Name:          "genin",
		Speed:         parameter.GeninSpeed,
		Health:        parameter.GeninHealth,
		AttackCadence: parameter.GeninCadence,
		Size:          parameter.GeninSize,
		Color:         core.RGBGreen,
		MinStage:      1,
	},
	EnemyChunin: {
		Name:          "chunin",
		Speed:         parameter.ChuninSpeed,
		Health:        parameter.ChuninHealth,
		AttackCadence: parameter.ChuninCadence,
		Size:          parameter.ChuninSize,
		Color:         core.RGBPink,
		MinStage:      2,
	},
	EnemyJonin: {
		Name:          "jonin",
		Speed:         parameter.JoninSpeed,
		Health:        parameter.JoninHealth,
		AttackCadence: parameter.JoninCadence,
		Size:          parameter.JoninSize,
		Color:         core.RGBCrimson,
		MinStage:      3,
	},
}

func (k EnemyKind) String() string {
	if k < EnemyKindCount {
		return EnemySpecs[k].Name
	}
	return "unknown"
}

// Enemy seeks the player and attacks on contact
type Enemy struct {
	Box            vmath.Rect
	Kind           EnemyKind
	Health         int
	AttackCooldown int
	Dead           bool
}

// NewEnemy builds an enemy of kind k with its top-left at pos
func NewEnemy(k EnemyKind, pos vmath.Vec2) Enemy {
	spec := EnemySpecs[k]
	return Enemy{
		Box:    vmath.NewRect(pos.X, pos.Y, spec.Size, spec.Size),
		Kind:   k,
		Health: spec.Health,
	}
}

// Spec returns the behavior row for this enemy
func (e *Enemy) Spec() *EnemySpec {
	return &EnemySpecs[e.Kind]
}

// Hurt removes health and marks the enemy dead at zero; returns true on the killing blow
func (e *Enemy) Hurt(n int) bool {
	if e.Dead {
		return false
	}
	e.Health -= n
	if e.Health <= 0 {
		e.Health = 0
		e.Dead = true
		return true
	}
	return false
}

// OutOfBounds reports whether the enemy is beyond the world plus margin
func (e *Enemy) OutOfBounds(world vmath.Rect, margin float64) bool {
	return !e.Box.Intersects(world.Inflate(margin))
}
