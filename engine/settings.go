package engine

import (
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/store"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// Settings are user preferences persisted under store.KeySettings
type Settings struct {
	Volume  float64
	Muted   bool
	ShowFPS bool
}

// SettingsOverride pins individual preferences over whatever is persisted
type SettingsOverride struct {
	Volume *float64
	Muted  *bool
}

func (o SettingsOverride) apply(st *Settings) {
	if o.Volume != nil {
		st.Volume = vmath.Clamp(*o.Volume, 0, 1)
	}
	if o.Muted != nil {
		st.Muted = *o.Muted
	}
}

func DefaultSettings() Settings {
	return Settings{Volume: parameter.AudioDefaultVolume}
}

func (st Settings) Record() store.Record {
	return store.Record{
		"volume":   st.Volume,
		"muted":    st.Muted,
		"show_fps": st.ShowFPS,
	}
}

func settingsFromRecord(rec store.Record) Settings {
	def := DefaultSettings()
	return Settings{
		Volume:  vmath.Clamp(rec.Float("volume", def.Volume), 0, 1),
		Muted:   rec.Bool("muted", def.Muted),
		ShowFPS: rec.Bool("show_fps", def.ShowFPS),
	}
}

// ToggleMute flips mute; only honored in Settings
func (s *Session) ToggleMute() bool {
	if s.Mode() != core.ModeSettings {
		return false
	}
	s.settings.Muted = !s.settings.Muted
	s.applySettings()
	return true
}

// AdjustVolume changes master volume by delta, clamped to [0, 1]; only honored in Settings
func (s *Session) AdjustVolume(delta float64) bool {
	if s.Mode() != core.ModeSettings {
		return false
	}
	s.settings.Volume = vmath.Clamp(s.settings.Volume+delta, 0, 1)
	s.applySettings()
	return true
}

// ToggleFPS flips the FPS readout; only honored in Settings
func (s *Session) ToggleFPS() bool {
	if s.Mode() != core.ModeSettings {
		return false
	}
	s.settings.ShowFPS = !s.settings.ShowFPS
	s.applySettings()
	return true
}

// applySettings pushes to the sound player and persists
func (s *Session) applySettings() {
	s.pushSettings()
	s.save(store.KeySettings, s.settings.Record())
	s.play(core.SoundMenu)
}

func (s *Session) pushSettings() {
	if s.sound != nil {
		s.sound.SetVolume(s.settings.Volume)
		s.sound.SetMuted(s.settings.Muted)
	}
	if s.metrics != nil {
		s.metrics.muted.Store(s.settings.Muted)
		s.metrics.volume.Set(s.settings.Volume)
	}
}
