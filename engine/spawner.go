package engine

import (
	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// HazardPool returns hazard kinds unlocked at stage
func HazardPool(stage int) []component.HazardKind {
	pool := make([]component.HazardKind, 0, component.HazardKindCount)
	for k := component.HazardKind(0); k < component.HazardKindCount; k++ {
		if component.HazardSpecs[k].MinStage <= stage {
			pool = append(pool, k)
		}
	}
	return pool
}

// EnemyPool returns enemy tiers unlocked at stage
func EnemyPool(stage int) []component.EnemyKind {
	pool := make([]component.EnemyKind, 0, component.EnemyKindCount)
	for k := component.EnemyKind(0); k < component.EnemyKindCount; k++ {
		if component.EnemySpecs[k].MinStage <= stage {
			pool = append(pool, k)
		}
	}
	return pool
}

// PowerUpPool returns power-up kinds unlocked at stage
func PowerUpPool(stage int) []component.PowerUpKind {
	pool := make([]component.PowerUpKind, 0, component.PowerUpKindCount)
	for k := component.PowerUpKind(0); k < component.PowerUpKindCount; k++ {
		if component.PowerUpSpecs[k].MinStage <= stage {
			pool = append(pool, k)
		}
	}
	return pool
}

// countdown decrements timer and reloads it with delay when it expires
func countdown(timer *int, delay int) bool {
	*timer--
	if *timer > 0 {
		return false
	}
	*timer = delay
	return true
}

func (s *Session) stepSpawner() {
	r := s.run

	if countdown(&r.hazardTimer, s.tuning.HazardDelay.At(r.Level)) {
		s.spawnHazard()
	}
	if r.Level >= s.tuning.EnemyMinLevel {
		if countdown(&r.enemyTimer, s.tuning.EnemyDelay.At(r.Level)) {
			s.spawnEnemy()
		}
	}
	if countdown(&r.powerUpTimer, s.tuning.PowerUpDelay.At(r.Level)) {
		s.spawnPowerUp()
	}
}

// spawnHazard places a hazard just outside the top, left or right edge, heading inward
func (s *Session) spawnHazard() {
	pool := HazardPool(s.run.Stage)
	kind := pool[s.rng.Intn(len(pool))]
	spec := &component.HazardSpecs[kind]

	size := spec.Size
	speed := s.rng.IntRange(parameter.HazardSpeedMin, parameter.HazardSpeedMax) + spec.SpeedBonus
	if speed < 1 {
		speed = 1
	}

	var pos vmath.Vec2
	dir := component.Direction(s.rng.Intn(int(component.DirectionCount)))
	switch dir {
	case component.DirDown:
		pos = vmath.Vec2{X: s.rng.FloatRange(0, s.world.W-size), Y: -size}
	case component.DirRight:
		pos = vmath.Vec2{X: -size, Y: s.rng.FloatRange(0, s.world.H-size)}
	case component.DirLeft:
		pos = vmath.Vec2{X: s.world.W, Y: s.rng.FloatRange(0, s.world.H-size)}
	}

	s.run.Hazards = append(s.run.Hazards, component.Hazard{
		Box:   vmath.NewRect(pos.X, pos.Y, size, size),
		Kind:  kind,
		Dir:   dir,
		Speed: float64(speed),
		Color: spec.Colors[s.rng.Intn(len(spec.Colors))],
	})
}

// spawnEnemy places an enemy outside a random side
func (s *Session) spawnEnemy() {
	kind := s.rollEnemyKind()
	size := component.EnemySpecs[kind].Size
	off := parameter.EnemySpawnOffset

	var pos vmath.Vec2
	switch s.rng.Intn(4) {
	case 0:
		pos = vmath.Vec2{X: s.rng.FloatRange(0, s.world.W-size), Y: -off - size}
	case 1:
		pos = vmath.Vec2{X: s.rng.FloatRange(0, s.world.W-size), Y: s.world.H + off}
	case 2:
		pos = vmath.Vec2{X: -off - size, Y: s.rng.FloatRange(0, s.world.H-size)}
	default:
		pos = vmath.Vec2{X: s.world.W + off, Y: s.rng.FloatRange(0, s.world.H-size)}
	}

	s.run.Enemies = append(s.run.Enemies, component.NewEnemy(kind, pos))
}

// rollEnemyKind draws from the stage pool; the final stage may force the strongest tier
func (s *Session) rollEnemyKind() component.EnemyKind {
	if s.run.Stage >= parameter.FinalStage && s.rng.Chance(parameter.EnemyForceStrongestChance) {
		return component.EnemyStrongest
	}
	pool := EnemyPool(s.run.Stage)
	return pool[s.rng.Intn(len(pool))]
}

// spawnPowerUp places a power-up uniformly inside the world, away from the edges
func (s *Session) spawnPowerUp() {
	pool := PowerUpPool(s.run.Stage)
	kind := pool[s.rng.Intn(len(pool))]

	size := float64(parameter.PowerUpSize)
	margin := float64(parameter.PowerUpSpawnMargin)
	x := s.rng.FloatRange(margin, s.world.W-margin-size)
	y := s.rng.FloatRange(margin, s.world.H-margin-size)

	s.run.PowerUps = append(s.run.PowerUps, component.PowerUp{
		Box:  vmath.NewRect(x, y, size, size),
		Kind: kind,
	})
}
