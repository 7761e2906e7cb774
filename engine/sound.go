package engine

import "github.com/lixenwraith/ninja-dodge/core"

// SoundPlayer is the audio collaborator injected into a session
// Play returns false when the cue was dropped (muted, not initialized)
type SoundPlayer interface {
	Play(sound core.SoundType) bool
	SetVolume(volume float64)
	SetMuted(muted bool)
}

func (s *Session) play(sound core.SoundType) {
	if s.sound == nil {
		return
	}
	s.sound.Play(sound)
}
