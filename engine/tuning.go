package engine

import (
	"github.com/lixenwraith/ninja-dodge/parameter"
)

// DelayCurve is a spawn channel's delay as a function of level
type DelayCurve struct {
	Base  int
	Step  int
	Floor int
}

// At returns max(Floor, Base - Step*(level-1)), never below 1
func (c DelayCurve) At(level int) int {
	if level < 1 {
		level = 1
	}
	d := c.Base - c.Step*(level-1)
	if d < c.Floor {
		d = c.Floor
	}
	if d < 1 {
		d = 1
	}
	return d
}

// Tuning carries every gameplay number a session reads at runtime
type Tuning struct {
	WorldWidth  float64
	WorldHeight float64
	SplashTicks int

	PlayerSpeed     float64
	PlayerMaxHealth int

	HazardDelay   DelayCurve
	EnemyDelay    DelayCurve
	PowerUpDelay  DelayCurve
	EnemyMinLevel int
}

// DefaultTuning mirrors the parameter package
func DefaultTuning() Tuning {
	return Tuning{
		WorldWidth:      parameter.WorldWidth,
		WorldHeight:     parameter.WorldHeight,
		SplashTicks:     parameter.SplashTicks,
		PlayerSpeed:     parameter.PlayerBaseSpeed,
		PlayerMaxHealth: parameter.PlayerMaxHealth,
		HazardDelay:     DelayCurve{parameter.HazardDelayBase, parameter.HazardDelayStep, parameter.HazardDelayFloor},
		EnemyDelay:      DelayCurve{parameter.EnemyDelayBase, parameter.EnemyDelayStep, parameter.EnemyDelayFloor},
		PowerUpDelay:    DelayCurve{parameter.PowerUpDelayBase, parameter.PowerUpDelayStep, parameter.PowerUpDelayFloor},
		EnemyMinLevel:   parameter.EnemyMinLevel,
	}
}
