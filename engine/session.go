// Package engine runs the survival simulation: one Session owns the state machine and the active run
package engine

import (
	"time"

	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/engine/fsm"
	"github.com/lixenwraith/ninja-dodge/status"
	"github.com/lixenwraith/ninja-dodge/store"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// Options are the collaborators and tuning of a session; zero values get defaults
type Options struct {
	Tuning  Tuning
	Gateway store.Gateway
	Sound   SoundPlayer
	Metrics *status.Registry
	Clock   TimeProvider
	Seed    uint64

	// Settings used when nothing is persisted yet
	DefaultSettings *Settings
	// Applied on top of persisted settings at load
	Override SettingsOverride
}

// Session is the single-writer simulation; not safe for concurrent use
type Session struct {
	tuning  Tuning
	world   vmath.Rect
	gateway store.Gateway
	sound   SoundPlayer
	metrics *sessionMetrics
	clock   *PausableClock
	rng     *vmath.FastRand
	machine *fsm.Machine[*Session, core.Mode, core.Event]

	run          *Run
	achievements Achievements
	highScore    int
	newHighScore bool
	settings     Settings
}

// NewSession loads persisted state and enters Splash
func NewSession(opts Options) *Session {
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}
	if opts.Gateway == nil {
		opts.Gateway = store.NewMemory()
	}
	defaults := DefaultSettings()
	if opts.DefaultSettings != nil {
		defaults = *opts.DefaultSettings
	}

	s := &Session{
		tuning:  opts.Tuning,
		world:   vmath.NewRect(0, 0, opts.Tuning.WorldWidth, opts.Tuning.WorldHeight),
		gateway: opts.Gateway,
		sound:   opts.Sound,
		metrics: newSessionMetrics(opts.Metrics),
		clock:   NewPausableClock(opts.Clock),
		rng:     vmath.NewFastRand(opts.Seed),
	}

	s.loadPersisted(defaults)
	opts.Override.apply(&s.settings)
	s.pushSettings()

	s.machine = s.buildMachine()
	if err := s.machine.Init(s, core.ModeSplash); err != nil {
		panic(err)
	}
	return s
}

// Mode returns the current session state
func (s *Session) Mode() core.Mode {
	return s.machine.Current()
}

// AdvanceTick runs one simulation step; only Playing runs the pipeline
func (s *Session) AdvanceTick(in core.Input) {
	start := time.Now()

	if s.Mode().Simulating() {
		s.step(in)
	}
	s.machine.Update(s)

	s.publishMetrics(time.Since(start))
}

// step is the per-tick pipeline
func (s *Session) step(in core.Input) {
	s.stepSpawner()
	s.stepKinematics(in)
	s.stepCollision()
	s.stepProgression()
	s.run.prune()
}

// RequestTransition applies a UI event; illegal events return false and change nothing
func (s *Session) RequestTransition(ev core.Event) bool {
	return s.machine.HandleEvent(s, ev)
}

func (s *Session) Settings() Settings {
	return s.settings
}

func (s *Session) Achievements() Achievements {
	return s.achievements
}

func (s *Session) HighScore() int {
	return s.highScore
}
