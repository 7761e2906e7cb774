package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ninja-dodge/status"
)

// sessionMetrics caches gauge pointers so ticks write without map lookups
type sessionMetrics struct {
	hazards      *atomic.Int64
	enemies      *atomic.Int64
	powerUps     *atomic.Int64
	particles    *atomic.Int64
	score        *atomic.Int64
	level        *atomic.Int64
	tickDuration *atomic.Int64
	mode         *status.AtomicString
	muted        *atomic.Bool
	volume       *status.AtomicFloat
}

func newSessionMetrics(reg *status.Registry) *sessionMetrics {
	if reg == nil {
		return nil
	}
	return &sessionMetrics{
		hazards:      reg.Ints.Get(status.KeyHazards),
		enemies:      reg.Ints.Get(status.KeyEnemies),
		powerUps:     reg.Ints.Get(status.KeyPowerUps),
		particles:    reg.Ints.Get(status.KeyParticles),
		score:        reg.Ints.Get(status.KeyScore),
		level:        reg.Ints.Get(status.KeyLevel),
		tickDuration: reg.Ints.Get(status.KeyTickDuration),
		mode:         reg.Strings.Get(status.KeyMode),
		muted:        reg.Bools.Get(status.KeyMuted),
		volume:       reg.Floats.Get(status.KeyVolume),
	}
}

func (s *Session) publishMetrics(elapsed time.Duration) {
	m := s.metrics
	if m == nil {
		return
	}
	m.mode.Store(s.machine.CurrentName())
	m.tickDuration.Store(elapsed.Microseconds())
	if s.run == nil {
		return
	}
	r := s.run
	m.hazards.Store(int64(len(r.Hazards)))
	m.enemies.Store(int64(len(r.Enemies)))
	m.powerUps.Store(int64(len(r.PowerUps)))
	m.particles.Store(int64(len(r.Particles)))
	m.score.Store(int64(r.Score))
	m.level.Store(int64(r.Level))
}
