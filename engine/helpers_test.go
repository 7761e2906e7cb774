package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/store"
)

type fakeSound struct {
	played []core.SoundType
	volume float64
	muted  bool
}

func (f *fakeSound) Play(sound core.SoundType) bool {
	f.played = append(f.played, sound)
	return !f.muted
}

func (f *fakeSound) SetVolume(v float64) { f.volume = v }
func (f *fakeSound) SetMuted(m bool)     { f.muted = m }

func (f *fakeSound) count(sound core.SoundType) int {
	n := 0
	for _, s := range f.played {
		if s == sound {
			n++
		}
	}
	return n
}

var errDisk = errors.New("disk unavailable")

type failingGateway struct {
	loads int
	saves int
}

func (g *failingGateway) Load(string) (store.Record, bool, error) {
	g.loads++
	return nil, false, errDisk
}

func (g *failingGateway) Save(string, store.Record) error {
	g.saves++
	return errDisk
}

var neverSpawn = DelayCurve{Base: math.MaxInt32, Floor: math.MaxInt32}

// quietTuning disables every spawn channel and shortens the splash
func quietTuning() Tuning {
	t := DefaultTuning()
	t.SplashTicks = 1
	t.HazardDelay = neverSpawn
	t.EnemyDelay = neverSpawn
	t.PowerUpDelay = neverSpawn
	return t
}

type harness struct {
	session *Session
	sound   *fakeSound
	gateway *store.Memory
	clock   *MockTimeProvider
}

func newHarness(t *testing.T, tuning Tuning) *harness {
	t.Helper()
	return newSeededHarness(t, tuning, 42)
}

func newSeededHarness(t *testing.T, tuning Tuning, seed uint64) *harness {
	t.Helper()
	h := &harness{
		sound:   &fakeSound{},
		gateway: store.NewMemory(),
		clock:   NewMockTimeProvider(time.Unix(1_700_000_000, 0)),
	}
	h.session = NewSession(Options{
		Tuning:  tuning,
		Gateway: h.gateway,
		Sound:   h.sound,
		Clock:   h.clock,
		Seed:    seed,
	})
	return h
}

// play moves a fresh session through splash and starts a run
func (h *harness) play(t *testing.T) *Run {
	t.Helper()
	s := h.session
	for i := 0; s.Mode() == core.ModeSplash; i++ {
		if i > 10_000 {
			t.Fatal("Splash never ended")
		}
		s.AdvanceTick(core.Input{})
	}
	if !s.RequestTransition(core.EventStart) {
		t.Fatalf("Start rejected in %s", s.Mode())
	}
	return s.run
}

func (h *harness) ticks(n int, in core.Input) {
	for i := 0; i < n; i++ {
		h.session.AdvanceTick(in)
	}
}
