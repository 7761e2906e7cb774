// Package audio synthesizes game cues through beep's speaker
package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)

// SoundManager mixes one-shot cues under a master volume
// All methods are safe before Initialize and after Cleanup; cues are dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	muted       bool
	initialized bool
}

func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: parameter.AudioDefaultVolume,
	}
	sm.master = newVolume(sm.mixer, sm.volume)
	return sm
}

// Initialize opens the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup drops queued cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Trigger queues a cue and reports why it could not be
func (sm *SoundManager) Trigger(sound core.SoundType) error {
	cue := Cue(sound, sampleRate)
	if cue == nil {
		return ErrUnknownSound
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return nil
	}

	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
	return nil
}

// Play queues a cue; returns false when dropped
func (sm *SoundManager) Play(sound core.SoundType) bool {
	if sm.Trigger(sound) != nil {
		return false
	}
	return !sm.IsMuted()
}

// SetVolume sets master volume in [0, 1]
func (sm *SoundManager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = volume
	sm.applyMasterLocked()
}

// SetMuted silences output without dropping the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	sm.applyMasterLocked()
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// applyMasterLocked updates the master effect; the speaker lock guards the audio goroutine
func (sm *SoundManager) applyMasterLocked() {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	next := newVolume(sm.mixer, sm.volume)
	sm.master.Volume = next.Volume
	sm.master.Silent = next.Silent || sm.muted
}
