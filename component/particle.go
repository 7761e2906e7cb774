package component

import (
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// ParticleKind selects the visual style and gravity
type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleEmber
	ParticleGlow
	ParticleKindCount
)

// ParticleSpec is the per-kind visual table row
type ParticleSpec struct {
	Name    string
	Glyph   rune
	Gravity bool
}

// ParticleSpecs is indexed by ParticleKind
var ParticleSpecs = [ParticleKindCount]ParticleSpec{
	ParticleSpark: {Name: "spark", Glyph: '*', Gravity: true},
	ParticleEmber: {Name: "ember", Glyph: '.'},
	ParticleGlow:  {Name: "glow", Glyph: 'o'},
}

// Particle is cosmetic; nothing in collision or scoring reads it
type Particle struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Life    int
	MaxLife int
	Kind    ParticleKind
	Color   core.RGB
}

// Fade returns remaining life in [0, 1]
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Expired reports zero remaining lifetime
func (p *Particle) Expired() bool {
	return p.Life <= 0
}
