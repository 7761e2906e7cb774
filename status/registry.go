// Package status is a lock-free gauge registry read by the debug overlay
package status

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Gauge keys published by the session
const (
	KeyHazards      = "entities.hazards"
	KeyEnemies      = "entities.enemies"
	KeyPowerUps     = "entities.powerups"
	KeyParticles    = "entities.particles"
	KeyScore        = "run.score"
	KeyLevel        = "run.level"
	KeyTickDuration = "tick.duration_us"
	KeyMode         = "session.mode"
	KeyMuted        = "audio.muted"
	KeyVolume       = "audio.volume"
	KeyAudioOff     = "audio.disabled"
	KeyFPS          = "render.fps"
)

// Registry groups gauges by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is one formatted gauge
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every gauge sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, fmt.Sprintf("%.2f", v.Get())})
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, fmt.Sprintf("%t", v.Load())})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
