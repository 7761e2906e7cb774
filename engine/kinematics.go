package engine

import (
	"math"

	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/physics"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

var (
	playerSpeedProfile = physics.SpeedProfile{
		BoostMultiplier: parameter.SpeedBoostMultiplier,
		DashMultiplier:  parameter.DashMultiplier,
	}
	particleProfile = physics.ParticleProfile{
		Friction: parameter.ParticleFriction,
		Gravity:  parameter.ParticleGravity,
	}
)

// HazardSpeed returns the effective per-tick speed, slowed while slow_time is active
func HazardSpeed(base float64, slowed bool) float64 {
	if !slowed {
		return base
	}
	return math.Max(parameter.SlowTimeMinSpeed, base*parameter.SlowTimeFactor)
}

func (s *Session) stepKinematics(in core.Input) {
	s.stepPlayer(in)
	s.stepSpecial()
	s.stepHazards()
	s.stepEnemies()
	s.stepPowerUps()
	s.stepParticles()
}

// stepPlayer ticks timers before triggers so a fresh ability gets its full window
func (s *Session) stepPlayer(in core.Input) {
	r := s.run
	p := &r.Player

	p.TickTimers()

	if in.Dash && p.Dash.Trigger(parameter.DashDurationTicks, parameter.DashCooldownTicks) {
		r.DashCount++
		s.burst(p.Center(), parameter.BurstDash, core.RGBWhite, component.ParticleEmber)
		s.play(core.SoundDash)
	}
	if in.Special && p.Special.Trigger(parameter.SpecialDurationTicks, parameter.SpecialCooldownTicks) {
		s.play(core.SoundSpecial)
	}

	physics.MovePlayer(p, in, playerSpeedProfile, s.world)
}

// stepSpecial damages every enemy within radius while the special attack runs
func (s *Session) stepSpecial() {
	r := s.run
	if !r.Player.Special.Active {
		return
	}
	center := r.Player.Center()
	for i := range r.Enemies {
		e := &r.Enemies[i]
		if e.Dead {
			continue
		}
		if vmath.V2Dist(center, e.Box.Center()) > parameter.SpecialRadius {
			continue
		}
		if e.Hurt(parameter.SpecialDamagePerTick) {
			s.enemyDefeated(e)
		}
	}
}

func (s *Session) stepHazards() {
	r := s.run
	slowed := r.Player.Status.Active(component.StatusSlowTime)
	for i := range r.Hazards {
		h := &r.Hazards[i]
		if h.Dead {
			continue
		}
		physics.AdvanceHazard(h, HazardSpeed(h.Speed, slowed), parameter.HazardSpinPerTick)
		if h.OutOfBounds(s.world) {
			h.Dead = true
		}
	}
}

func (s *Session) stepEnemies() {
	r := s.run
	target := r.Player.Center()
	for i := range r.Enemies {
		e := &r.Enemies[i]
		if e.Dead {
			continue
		}
		e.Box = physics.SeekBox(e.Box, target, e.Spec().Speed)
		if e.AttackCooldown > 0 {
			e.AttackCooldown--
		}
		if e.OutOfBounds(s.world, parameter.EnemyBoundsMargin) {
			e.Dead = true
		}
	}
}

func (s *Session) stepPowerUps() {
	r := s.run
	for i := range r.PowerUps {
		pu := &r.PowerUps[i]
		pu.Age++
		if pu.Age >= parameter.PowerUpLifetimeTicks {
			pu.Dead = true
		}
	}
}

func (s *Session) stepParticles() {
	r := s.run
	for i := range r.Particles {
		physics.IntegrateParticle(&r.Particles[i], particleProfile)
	}
}

// burst emits n cosmetic particles at pos; dropped once the population cap is hit
func (s *Session) burst(pos vmath.Vec2, n int, color core.RGB, kind component.ParticleKind) {
	r := s.run
	for i := 0; i < n; i++ {
		if len(r.Particles) >= parameter.ParticleCap {
			return
		}
		angle := s.rng.FloatRange(0, 2*math.Pi)
		speed := s.rng.FloatRange(0.5, parameter.ParticleSpeedMax)
		life := s.rng.IntRange(parameter.ParticleLifetimeMin, parameter.ParticleLifetimeMax)
		r.Particles = append(r.Particles, component.Particle{
			Pos:     pos,
			Vel:     vmath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    life,
			MaxLife: life,
			Kind:    kind,
			Color:   color,
		})
	}
}
