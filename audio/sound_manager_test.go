package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/ninja-dodge/core"
)

// TestSoundManagerGracefulDegradation verifies cues are dropped without panicking before Initialize
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if sm.Play(st) {
			t.Errorf("Play(%d) should report dropped before init", st)
		}
	}
	if err := sm.Trigger(core.SoundHit); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if err := sm.Trigger(core.SoundTypeCount); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
	sm.Cleanup()
}

func TestSoundManagerSettings(t *testing.T) {
	sm := NewSoundManager()

	sm.SetVolume(2)
	if sm.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", sm.volume)
	}
	sm.SetVolume(0)
	if !sm.master.Silent {
		t.Error("Zero volume should silence master")
	}
	sm.SetVolume(0.5)
	if sm.master.Silent || sm.master.Volume != -1 {
		t.Errorf("Unexpected master state %+v", sm.master)
	}

	sm.SetMuted(true)
	if !sm.IsMuted() || !sm.master.Silent {
		t.Error("Expected muted")
	}
	sm.SetMuted(false)
	if sm.IsMuted() || sm.master.Silent {
		t.Error("Expected unmuted")
	}
}

// TestSoundManagerInitialization tolerates hosts without an audio device
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	if !sm.Play(core.SoundMenu) {
		t.Error("Expected cue to queue once initialized")
	}
	sm.SetMuted(true)
	if sm.Play(core.SoundMenu) {
		t.Error("Muted play should report dropped")
	}
}

func TestServiceMutedSkipsSpeaker(t *testing.T) {
	s := NewService(true)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !s.IsDisabled() {
		t.Error("Muted service should be disabled")
	}
	if s.Player() == nil || s.Player().initialized {
		t.Error("Player should exist but not be initialized")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
