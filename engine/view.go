package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/ninja-dodge/component"
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/vmath"
)

// AchievementView is one row of the achievements screen
type AchievementView struct {
	AchievementInfo
	Unlocked bool
}

// View is a detached snapshot for the renderer; mutating it never reaches the session
type View struct {
	Mode      core.Mode
	ModeTicks int
	World     vmath.Rect

	HasRun    bool
	RunID     string
	Player    component.Player
	Hazards   []component.Hazard
	Enemies   []component.Enemy
	PowerUps  []component.PowerUp
	Particles []component.Particle

	Score             int
	Level             int
	Stage             int
	PowerUpsCollected int
	DamageTaken       int
	DashCount         int
	EnemiesDefeated   int
	Elapsed           time.Duration

	HighScore    int
	NewHighScore bool
	Achievements []AchievementView
	Settings     Settings
}

// CurrentView deep-copies the session state
func (s *Session) CurrentView() View {
	v := View{
		Mode:         s.Mode(),
		ModeTicks:    s.machine.TicksInState(),
		World:        s.world,
		HighScore:    s.highScore,
		NewHighScore: s.newHighScore,
		Settings:     s.settings,
		Achievements: make([]AchievementView, AchievementCount),
	}
	for k := range s.achievements {
		v.Achievements[k] = AchievementView{
			AchievementInfo: Achievement(k).Info(),
			Unlocked:        s.achievements[k],
		}
	}

	r := s.run
	if r == nil {
		return v
	}

	v.HasRun = true
	v.RunID = r.ID
	v.Player = r.Player
	v.Hazards = slices.Clone(r.Hazards)
	v.Enemies = slices.Clone(r.Enemies)
	v.PowerUps = slices.Clone(r.PowerUps)
	v.Particles = slices.Clone(r.Particles)
	v.Score = r.Score
	v.Level = r.Level
	v.Stage = r.Stage
	v.PowerUpsCollected = r.PowerUpsCollected
	v.DamageTaken = r.DamageTaken
	v.DashCount = r.DashCount
	v.EnemiesDefeated = r.EnemiesDefeated
	if r.Ended {
		v.Elapsed = r.Survived
	} else {
		v.Elapsed = s.clock.Now().Sub(r.StartedAt)
	}
	return v
}
