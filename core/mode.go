package core

// Mode is the top-level session state
type Mode uint8

const (
	ModeSplash Mode = iota
	ModeMenu
	ModeSettings
	ModeAchievements
	ModePlaying
	ModePaused
	ModeGameOver
	modeCount
)

var modeNames = [modeCount]string{
	ModeSplash:       "Splash",
	ModeMenu:         "Menu",
	ModeSettings:     "Settings",
	ModeAchievements: "Achievements",
	ModePlaying:      "Playing",
	ModePaused:       "Paused",
	ModeGameOver:     "GameOver",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "Unknown"
}

// Simulating reports whether the tick pipeline runs in this mode
func (m Mode) Simulating() bool {
	return m == ModePlaying
}
