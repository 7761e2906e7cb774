package parameter

// Progression
const (
	// ScorePerLevel is the score span of one level
	ScorePerLevel = 1000

	// LevelsPerStage is the number of levels in one stage
	LevelsPerStage = 3

	// FinalStage is the highest stage-gated tier; it enables the strongest-enemy override
	FinalStage = 3
)

// Achievement thresholds
const (
	AchievementScoreBronze  = 1000
	AchievementScoreSilver  = 5000
	AchievementScoreGold    = 10000
	AchievementSurviveSecs  = 60
	AchievementCollectCount = 10
	AchievementDashCount    = 20
	AchievementNoDamageMin  = 1000
)
