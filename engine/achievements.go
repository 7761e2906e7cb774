package engine

import (
	"time"

	"github.com/lixenwraith/ninja-dodge/parameter"
	"github.com/lixenwraith/ninja-dodge/store"
)

// Achievement identifies one persistent unlock
type Achievement uint8

const (
	AchievementScore1000 Achievement = iota
	AchievementScore5000
	AchievementScore10000
	AchievementSurvivor
	AchievementCollector
	AchievementDasher
	AchievementUntouchable
	AchievementCount
)

// AchievementInfo is display and storage metadata
type AchievementInfo struct {
	Key         string
	Title       string
	Description string
}

var achievementInfo = [AchievementCount]AchievementInfo{
	AchievementScore1000:   {"score_1000", "Apprentice", "Reach 1000 points"},
	AchievementScore5000:   {"score_5000", "Shinobi", "Reach 5000 points"},
	AchievementScore10000:  {"score_10000", "Shadow Master", "Reach 10000 points"},
	AchievementSurvivor:    {"survivor", "Survivor", "Survive 60 seconds"},
	AchievementCollector:   {"collector", "Collector", "Collect 10 power-ups in one run"},
	AchievementDasher:      {"dasher", "Swift Feet", "Dash 20 times in one run"},
	AchievementUntouchable: {"untouchable", "Untouchable", "Reach 1000 points without taking damage"},
}

func (a Achievement) Info() AchievementInfo {
	if a < AchievementCount {
		return achievementInfo[a]
	}
	return AchievementInfo{Key: "unknown"}
}

func (a Achievement) String() string {
	return a.Info().Key
}

// Achievements is the unlock table; flags only ever go from false to true
type Achievements [AchievementCount]bool

// Unlock sets a flag and reports whether it was newly set
func (a *Achievements) Unlock(k Achievement) bool {
	if k >= AchievementCount || a[k] {
		return false
	}
	a[k] = true
	return true
}

// Merge unlocks every flag set in other; returns true if anything changed
func (a *Achievements) Merge(other Achievements) bool {
	changed := false
	for k := range other {
		if other[k] && a.Unlock(Achievement(k)) {
			changed = true
		}
	}
	return changed
}

func (a Achievements) Count() int {
	n := 0
	for _, v := range a {
		if v {
			n++
		}
	}
	return n
}

// Record encodes flags keyed by achievement key
func (a Achievements) Record() store.Record {
	rec := make(store.Record, AchievementCount)
	for k, v := range a {
		rec[achievementInfo[k].Key] = v
	}
	return rec
}

// achievementsFromRecord decodes a record; unknown keys are ignored, missing keys are locked
func achievementsFromRecord(rec store.Record) Achievements {
	var a Achievements
	for k := range a {
		a[k] = rec.Bool(achievementInfo[k].Key, false)
	}
	return a
}

var scoreThresholds = [...]struct {
	score int
	ach   Achievement
}{
	{parameter.AchievementScoreBronze, AchievementScore1000},
	{parameter.AchievementScoreSilver, AchievementScore5000},
	{parameter.AchievementScoreGold, AchievementScore10000},
}

// RunStats is the subset of a run that achievements read
type RunStats struct {
	Score             int
	Survived          time.Duration
	PowerUpsCollected int
	DashCount         int
	DamageTaken       int
}

// EvaluateAchievements returns the flags a finished run earns
func EvaluateAchievements(st RunStats) Achievements {
	var a Achievements
	for _, th := range scoreThresholds {
		if st.Score >= th.score {
			a[th.ach] = true
		}
	}
	if st.Survived >= parameter.AchievementSurviveSecs*time.Second {
		a[AchievementSurvivor] = true
	}
	if st.PowerUpsCollected >= parameter.AchievementCollectCount {
		a[AchievementCollector] = true
	}
	if st.DashCount >= parameter.AchievementDashCount {
		a[AchievementDasher] = true
	}
	if st.DamageTaken == 0 && st.Score >= parameter.AchievementNoDamageMin {
		a[AchievementUntouchable] = true
	}
	return a
}

// unlockScoreAchievements flips score thresholds as soon as they are reached
func (s *Session) unlockScoreAchievements(score int) bool {
	changed := false
	for _, th := range scoreThresholds {
		if score >= th.score && s.achievements.Unlock(th.ach) {
			changed = true
		}
	}
	return changed
}
