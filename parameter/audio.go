package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0, 1]
	AudioDefaultVolume = 0.7

	// AudioVolumeStep is the settings-screen adjustment increment
	AudioVolumeStep = 0.1
)

// Cue durations
const (
	HitSoundDuration       = 120 * time.Millisecond
	ShieldSoundDuration    = 100 * time.Millisecond
	NullifySoundDuration   = 60 * time.Millisecond
	PowerUpSoundDuration   = 180 * time.Millisecond
	LevelUpSoundDuration   = 360 * time.Millisecond
	DashSoundDuration      = 90 * time.Millisecond
	SpecialSoundDuration   = 250 * time.Millisecond
	EnemyDownSoundDuration = 140 * time.Millisecond
	GameOverSoundDuration  = 700 * time.Millisecond
	MenuSoundDuration      = 40 * time.Millisecond
)
