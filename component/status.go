package component

// StatusKind indexes the player's timed status table
type StatusKind uint8

const (
	StatusShield StatusKind = iota
	StatusSpeedBoost
	StatusSlowTime
	StatusMultiShot
	StatusInvincible
	StatusCount

	// StatusNone marks a power-up that grants no timed status
	StatusNone StatusKind = 255
)

var statusNames = [StatusCount]string{
	StatusShield:     "shield",
	StatusSpeedBoost: "speed_boost",
	StatusSlowTime:   "slow_time",
	StatusMultiShot:  "multi_shot",
	StatusInvincible: "invincible",
}

func (k StatusKind) String() string {
	if k < StatusCount {
		return statusNames[k]
	}
	return "none"
}

// StatusEffects is the uniform per-player status table
type StatusEffects [StatusCount]Effect

// Activate starts or refreshes a status; StatusNone is ignored
func (s *StatusEffects) Activate(k StatusKind, ticks int) {
	if k >= StatusCount {
		return
	}
	s[k].Activate(ticks)
}

// Active reports whether a status is on
func (s *StatusEffects) Active(k StatusKind) bool {
	if k >= StatusCount {
		return false
	}
	return s[k].Active
}

// Remaining returns ticks left for a status, 0 when inactive
func (s *StatusEffects) Remaining(k StatusKind) int {
	if k >= StatusCount {
		return 0
	}
	return s[k].Remaining
}

// Tick advances every status by one tick
func (s *StatusEffects) Tick() {
	for i := range s {
		s[i].Tick()
	}
}
