package physics

import (
	"math"

	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// DiagonalFactor scales each axis when both move so diagonal speed matches axis speed
var DiagonalFactor = 1 / math.Sqrt2

// InputDelta converts held directions into a per-tick displacement at the given speed
func InputDelta(in core.Input, speed float64) vmath.Vec2 {
	d := vmath.Vec2{
		X: float64(in.Horizontal()) * speed,
		Y: float64(in.Vertical()) * speed,
	}
	if d.X != 0 && d.Y != 0 {
		d = vmath.V2Scale(d, DiagonalFactor)
	}
	return d
}

// SpeedProfile holds the multipliers applied on top of base speed
type SpeedProfile struct {
	BoostMultiplier float64
	DashMultiplier  float64
}

// EffectiveSpeed returns base speed with boost and dash applied
func EffectiveSpeed(p *component.Player, prof SpeedProfile) float64 {
	speed := p.Speed
	if p.Status.Active(component.StatusSpeedBoost) {
		speed *= prof.BoostMultiplier
	}
	if p.Dash.Active {
		speed *= prof.DashMultiplier
	}
	return speed
}

// MovePlayer applies one tick of input-driven motion and clamps the box inside world
func MovePlayer(p *component.Player, in core.Input, prof SpeedProfile, world vmath.Rect) {
	d := InputDelta(in, EffectiveSpeed(p, prof))
	p.Box = p.Box.Translate(d).ClampInside(world)
}
