package engine

import (
	"log"

	"github.com/lixenwraith/ninja-dodge/store"
)

// load returns the record for key; failures degrade to "not found"
func (s *Session) load(key string) (store.Record, bool) {
	rec, ok, err := s.gateway.Load(key)
	if err != nil {
		log.Printf("Load %s failed, using defaults: %v", key, err)
		return nil, false
	}
	return rec, ok
}

// save persists synchronously; failures are logged and swallowed
func (s *Session) save(key string, rec store.Record) {
	if err := s.gateway.Save(key, rec); err != nil {
		log.Printf("Save %s failed: %v", key, err)
	}
}

// loadPersisted reads high score, achievements and settings
func (s *Session) loadPersisted(defaults Settings) {
	if rec, ok := s.load(store.KeyHighScore); ok {
		s.highScore = rec.Int("score", 0)
	}
	if rec, ok := s.load(store.KeyAchievements); ok {
		s.achievements = achievementsFromRecord(rec)
	}
	s.settings = defaults
	if rec, ok := s.load(store.KeySettings); ok {
		s.settings = settingsFromRecord(rec)
	}
	log.Printf("Loaded high score %d, %d/%d achievements", s.highScore, s.achievements.Count(), AchievementCount)
}

func (s *Session) saveAchievements() {
	s.save(store.KeyAchievements, s.achievements.Record())
}

func (s *Session) saveHighScore() {
	s.save(store.KeyHighScore, store.Record{"score": s.highScore})
}

func (s *Session) saveLastRun() {
	r := s.run
	s.save(store.KeyLastRun, store.Record{
		"run_id":           r.ID,
		"score":            r.Score,
		"level":            r.Level,
		"survived_seconds": r.Survived.Seconds(),
		"damage_taken":     r.DamageTaken,
		"powerups":         r.PowerUpsCollected,
		"dashes":           r.DashCount,
		"enemies_defeated": r.EnemiesDefeated,
	})
}

// LastRun reads the summary of the most recently finished run
func LastRun(g store.Gateway) (RunSummary, bool) {
	rec, ok, err := g.Load(store.KeyLastRun)
	if err != nil || !ok {
		return RunSummary{}, false
	}
	return RunSummary{
		RunID:           rec.String("run_id", ""),
		Score:           rec.Int("score", 0),
		Level:           rec.Int("level", 1),
		SurvivedSeconds: rec.Float("survived_seconds", 0),
		DamageTaken:     rec.Int("damage_taken", 0),
		PowerUps:        rec.Int("powerups", 0),
		Dashes:          rec.Int("dashes", 0),
		EnemiesDefeated: rec.Int("enemies_defeated", 0),
	}, true
}

// RunSummary is the persisted last-run record
type RunSummary struct {
	RunID           string
	Score           int
	Level           int
	SurvivedSeconds float64
	DamageTaken     int
	PowerUps        int
	Dashes          int
	EnemiesDefeated int
}
