package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// Run is one play-through; replaced wholesale on every reset
type Run struct {
	ID string

	Player    component.Player
	Hazards   []component.Hazard
	Enemies   []component.Enemy
	PowerUps  []component.PowerUp
	Particles []component.Particle

	Score int
	Level int
	Stage int

	PowerUpsCollected int
	DamageTaken       int
	DashCount         int
	EnemiesDefeated   int

	Ticks     int
	StartedAt time.Time
	Ended     bool
	Survived  time.Duration
	Paused    time.Duration // Wall time spent paused; not part of Survived

	pauseBase time.Duration

	hazardTimer  int
	enemyTimer   int
	powerUpTimer int
}

func newRun(t Tuning, startedAt time.Time) *Run {
	x := (t.WorldWidth - parameter.PlayerWidth) / 2
	y := t.WorldHeight - parameter.PlayerSpawnBottomOffset - parameter.PlayerHeight
	if y < 0 {
		y = 0
	}

	return &Run{
		ID: uuid.NewString(),
		Player: component.Player{
			Box:       vmath.NewRect(x, y, parameter.PlayerWidth, parameter.PlayerHeight),
			Speed:     t.PlayerSpeed,
			Health:    t.PlayerMaxHealth,
			MaxHealth: t.PlayerMaxHealth,
		},
		Hazards:   make([]component.Hazard, 0, 32),
		Enemies:   make([]component.Enemy, 0, 8),
		PowerUps:  make([]component.PowerUp, 0, 4),
		Particles: make([]component.Particle, 0, 128),
		Level:     1,
		Stage:     1,
		StartedAt: startedAt,

		hazardTimer:  t.HazardDelay.At(1),
		enemyTimer:   t.EnemyDelay.At(1),
		powerUpTimer: t.PowerUpDelay.At(1),
	}
}

// prune drops every entity marked dead during the tick
func (r *Run) prune() {
	r.Hazards = compact(r.Hazards, func(h *component.Hazard) bool { return h.Dead })
	r.Enemies = compact(r.Enemies, func(e *component.Enemy) bool { return e.Dead })
	r.PowerUps = compact(r.PowerUps, func(p *component.PowerUp) bool { return p.Dead })
	r.Particles = compact(r.Particles, func(p *component.Particle) bool { return p.Expired() })
}

// compact filters in place, preserving order
func compact[T any](items []T, dead func(*T) bool) []T {
	n := 0
	for i := range items {
		if dead(&items[i]) {
			continue
		}
		items[n] = items[i]
		n++
	}
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
	return items[:n]
}
