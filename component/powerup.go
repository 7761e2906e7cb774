package component

import (
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// PowerUpKind identifies a collectible
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpShield
	PowerUpSlowTime
	PowerUpHealth
	PowerUpMultiShot
	PowerUpInvincible
	PowerUpKindCount
)

// PowerUpSpec is the per-kind behavior table row
type PowerUpSpec struct {
	Name     string
	Status   StatusKind // StatusNone for instant effects
	Duration int
	Heal     int
	Color    core.RGB
	MinStage int
}

// PowerUpSpecs is indexed by PowerUpKind
var PowerUpSpecs = [PowerUpKindCount]PowerUpSpec{
	PowerUpSpeed: {
		Name:     "speed",
		Status:   StatusSpeedBoost,
		Duration: parameter.SpeedBoostDuration,
		Color:    core.RGBCyan,
		MinStage: 1,
	},
	PowerUpShield: {
		Name:     "shield",
		Status:   StatusShield,
		Duration: parameter.ShieldDuration,
		Color:    core.RGBBlue,
		MinStage: 1,
	},
	PowerUpSlowTime: {
		Name:     "slow_time",
		Status:   StatusSlowTime,
		Duration: parameter.SlowTimeDuration,
		Color:    core.RGBPurple,
		MinStage: 1,
	},
	PowerUpHealth: {
		Name:     "health",
		Status:   StatusNone,
		Heal:     parameter.HealthRestore,
		Color:    core.RGBGreen,
		MinStage: 2,
	},
	PowerUpMultiShot: {
		Name:     "multi_shot",
		Status:   StatusMultiShot,
		Duration: parameter.MultiShotDuration,
		Color:    core.RGBOrange,
		MinStage: 2,
	},
	PowerUpInvincible: {
		Name:     "invincible",
		Status:   StatusInvincible,
		Duration: parameter.InvincibleDuration,
		Color:    core.RGBGold,
		MinStage: 3,
	},
}

func (k PowerUpKind) String() string {
	if k < PowerUpKindCount {
		return PowerUpSpecs[k].Name
	}
	return "unknown"
}

// PowerUp is a stationary collectible
type PowerUp struct {
	Box  vmath.Rect
	Kind PowerUpKind
	Age  int
	Dead bool
}

// Apply grants the power-up's effect to the player
func (k PowerUpKind) Apply(p *Player) {
	spec := PowerUpSpecs[k]
	if spec.Status != StatusNone {
		p.Status.Activate(spec.Status, spec.Duration)
	}
	if spec.Heal > 0 {
		p.Heal(spec.Heal)
	}
}
