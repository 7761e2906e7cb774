package component

import (
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// HazardKind identifies a projectile variant
type HazardKind uint8

const (
	HazardKunai HazardKind = iota
	HazardShuriken
	HazardFireball
	HazardSenbon
	HazardExplosiveTag
	HazardKindCount
)

// Direction is a hazard's travel axis
type Direction uint8

const (
	DirDown Direction = iota
	DirLeft
	DirRight
	DirectionCount
)

// Vector returns the unit travel vector
func (d Direction) Vector() vmath.Vec2 {
	switch d {
	case DirLeft:
		return vmath.Vec2{X: -1}
	case DirRight:
		return vmath.Vec2{X: 1}
	default:
		return vmath.Vec2{Y: 1}
	}
}

// HazardSpec is the per-kind behavior table row
type HazardSpec struct {
	Name       string
	Colors     []core.RGB
	Size       float64
	SpeedBonus int // Added to the rolled base speed
	MinStage   int
}

// HazardSpecs is indexed by HazardKind
var HazardSpecs = [HazardKindCount]HazardSpec{
	HazardKunai: {
		Name:     "kunai",
		Colors:   []core.RGB{core.RGBRed, core.RGBBlue},
		Size:     parameter.HazardSize,
		MinStage: 1,
	},
	HazardShuriken: {
		Name:     "shuriken",
		Colors:   []core.RGB{core.RGBPurple, core.RGBCyan, core.RGBDarkGreen},
		Size:     parameter.HazardSize,
		MinStage: 1,
	},
	HazardFireball: {
		Name:     "fireball",
		Colors:   []core.RGB{core.RGBRed, core.RGBOrange, core.RGBYellow},
		Size:     parameter.HazardSize,
		MinStage: 1,
	},
	HazardSenbon: {
		Name:       "senbon",
		Colors:     []core.RGB{core.RGBSilver},
		Size:       parameter.HazardSize * 0.7,
		SpeedBonus: 2,
		MinStage:   2,
	},
	HazardExplosiveTag: {
		Name:       "explosive_tag",
		Colors:     []core.RGB{core.RGBCrimson, core.RGBGold},
		Size:       parameter.HazardSize * 1.3,
		SpeedBonus: -1,
		MinStage:   3,
	},
}

func (k HazardKind) String() string {
	if k < HazardKindCount {
		return HazardSpecs[k].Name
	}
	return "unknown"
}

// Hazard is a straight-line projectile
type Hazard struct {
	Box      vmath.Rect
	Kind     HazardKind
	Dir      Direction
	Speed    float64
	Color    core.RGB
	Rotation float64 // Cosmetic only
	Dead     bool
}

// OutOfBounds reports whether the hazard has left the world along its travel direction
func (h *Hazard) OutOfBounds(world vmath.Rect) bool {
	switch h.Dir {
	case DirLeft:
		return h.Box.Right() < world.Left()
	case DirRight:
		return h.Box.Left() > world.Right()
	default:
		return h.Box.Top() > world.Bottom()
	}
}
