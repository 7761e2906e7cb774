package engine

import (
	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// HitOutcome is the branch taken when something harmful reaches the player
type HitOutcome uint8

const (
	HitAbsorbed  HitOutcome = iota // Shield
	HitNullified                   // Invincible
	HitDamaged
)

// ResolveHit applies precedence shield > invincible > damage to the player
func ResolveHit(p *component.Player) HitOutcome {
	switch {
	case p.Status.Active(component.StatusShield):
		return HitAbsorbed
	case p.Status.Active(component.StatusInvincible):
		return HitNullified
	default:
		p.Damage(1)
		return HitDamaged
	}
}

// stepCollision resolves contacts in collection order; removals are deferred to prune
func (s *Session) stepCollision() {
	r := s.run
	p := &r.Player

	for i := range r.Hazards {
		h := &r.Hazards[i]
		if h.Dead || p.Dead() || !h.Box.Intersects(p.Box) {
			continue
		}
		h.Dead = true
		s.applyHit(h.Box.Center())
	}

	for i := range r.Enemies {
		e := &r.Enemies[i]
		if e.Dead || p.Dead() || e.AttackCooldown > 0 || !e.Box.Intersects(p.Box) {
			continue
		}
		e.AttackCooldown = e.Spec().AttackCadence
		if s.applyHit(e.Box.Center()) == HitAbsorbed {
			if e.Hurt(1) {
				s.enemyDefeated(e)
			}
		}
	}

	for i := range r.PowerUps {
		pu := &r.PowerUps[i]
		if pu.Dead || !pu.Box.Intersects(p.Box) {
			continue
		}
		pu.Dead = true
		pu.Kind.Apply(p)
		r.PowerUpsCollected++
		s.burst(pu.Box.Center(), parameter.BurstPowerUp, component.PowerUpSpecs[pu.Kind].Color, component.ParticleGlow)
		s.play(core.SoundPowerUp)
	}
}

// applyHit resolves one harmful contact and emits its burst and cue
func (s *Session) applyHit(at vmath.Vec2) HitOutcome {
	r := s.run
	outcome := ResolveHit(&r.Player)
	switch outcome {
	case HitAbsorbed:
		s.burst(at, parameter.BurstShieldAbsorb, core.RGBBlue, component.ParticleGlow)
		s.play(core.SoundShield)
	case HitNullified:
		s.burst(at, parameter.BurstNullify, core.RGBGold, component.ParticleEmber)
		s.play(core.SoundNullify)
	case HitDamaged:
		r.DamageTaken++
		s.burst(at, parameter.BurstDamage, core.RGBRed, component.ParticleSpark)
		s.play(core.SoundHit)
	}
	return outcome
}

func (s *Session) enemyDefeated(e *component.Enemy) {
	s.run.EnemiesDefeated++
	s.burst(e.Box.Center(), parameter.BurstEnemyDown, e.Spec().Color, component.ParticleSpark)
	s.play(core.SoundEnemyDown)
}
