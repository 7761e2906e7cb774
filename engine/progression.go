package engine

import (
	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
)

// LevelForScore is 1 + floor(score / ScorePerLevel)
func LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return 1 + score/parameter.ScorePerLevel
}

// StageForScore is 1 + floor((level-1) / LevelsPerStage)
func StageForScore(score int) int {
	return 1 + (LevelForScore(score)-1)/parameter.LevelsPerStage
}

// stepProgression scores the tick and fires one burst per level crossed
func (s *Session) stepProgression() {
	r := s.run
	r.Score++
	r.Ticks++

	level := LevelForScore(r.Score)
	for r.Level < level {
		r.Level++
		s.burst(r.Player.Center(), parameter.BurstLevelUp, core.RGBGold, component.ParticleSpark)
		s.play(core.SoundLevelUp)
	}
	r.Stage = StageForScore(r.Score)

	if s.unlockScoreAchievements(r.Score) {
		s.saveAchievements()
	}
}
