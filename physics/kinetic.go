package physics

import (
	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// ParticleProfile defines drag and gravity for cosmetic integration
type ParticleProfile struct {
	Friction float64 // Velocity multiplier per tick, < 1
	Gravity  float64 // Added to vertical velocity per tick for gravity kinds
}

// IntegrateParticle advances position, then applies drag, gravity and aging
func IntegrateParticle(p *component.Particle, prof ParticleProfile) {
	p.Pos = vmath.V2Add(p.Pos, p.Vel)
	p.Vel = vmath.V2Scale(p.Vel, prof.Friction)
	if component.ParticleSpecs[p.Kind].Gravity {
		p.Vel.Y += prof.Gravity
	}
	p.Life--
}

// AdvanceHazard moves a hazard along its axis at the given effective speed
func AdvanceHazard(h *component.Hazard, speed float64, spin float64) {
	h.Box = h.Box.Translate(vmath.V2Scale(h.Dir.Vector(), speed))
	h.Rotation += spin
	if h.Rotation >= 360 {
		h.Rotation -= 360
	}
}
