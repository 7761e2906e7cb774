package engine

import (
	"log"

	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/engine/fsm"
)

type (
	sessionMachine    = fsm.Machine[*Session, core.Mode, core.Event]
	sessionTransition = fsm.Transition[*Session, core.Mode, core.Event]
)

func (s *Session) buildMachine() *sessionMachine {
	m := fsm.NewMachine[*Session, core.Mode, core.Event]()

	m.AddState(core.ModeSplash, core.ModeSplash.String())
	menu := m.AddState(core.ModeMenu, core.ModeMenu.String())
	settings := m.AddState(core.ModeSettings, core.ModeSettings.String())
	achievements := m.AddState(core.ModeAchievements, core.ModeAchievements.String())
	m.AddState(core.ModePlaying, core.ModePlaying.String())
	paused := m.AddState(core.ModePaused, core.ModePaused.String())
	gameOver := m.AddState(core.ModeGameOver, core.ModeGameOver.String())

	menuCue := func(s *Session) { s.play(core.SoundMenu) }
	menu.OnEnter = append(menu.OnEnter, menuCue)
	settings.OnEnter = append(settings.OnEnter, menuCue)
	achievements.OnEnter = append(achievements.OnEnter, menuCue)

	paused.OnEnter = append(paused.OnEnter, func(s *Session) { s.clock.Pause() })
	paused.OnExit = append(paused.OnExit, func(s *Session) { s.clock.Resume() })

	gameOver.OnEnter = append(gameOver.OnEnter, (*Session).finishRun)

	table := []struct {
		from core.Mode
		t    sessionTransition
	}{
		{core.ModeSplash, sessionTransition{Target: core.ModeMenu, Tick: true, Guard: fsm.TicksAtLeast[*Session](s.tuning.SplashTicks)}},

		{core.ModeMenu, sessionTransition{Target: core.ModeSettings, Event: core.EventOpenSettings}},
		{core.ModeMenu, sessionTransition{Target: core.ModeAchievements, Event: core.EventOpenAchievements}},
		{core.ModeMenu, sessionTransition{Target: core.ModePlaying, Event: core.EventStart, Action: (*Session).resetRun}},

		{core.ModeSettings, sessionTransition{Target: core.ModeMenu, Event: core.EventCloseSettings}},
		{core.ModeSettings, sessionTransition{Target: core.ModeMenu, Event: core.EventClose}},
		{core.ModeAchievements, sessionTransition{Target: core.ModeMenu, Event: core.EventClose}},

		{core.ModePlaying, sessionTransition{Target: core.ModePaused, Event: core.EventPause}},
		{core.ModePlaying, sessionTransition{Target: core.ModeGameOver, Tick: true, Guard: playerDead}},

		{core.ModePaused, sessionTransition{Target: core.ModePlaying, Event: core.EventResume}},
		{core.ModePaused, sessionTransition{Target: core.ModeMenu, Event: core.EventClose, Action: (*Session).abandonRun}},

		{core.ModeGameOver, sessionTransition{Target: core.ModePlaying, Event: core.EventRestart, Action: (*Session).resetRun}},
		{core.ModeGameOver, sessionTransition{Target: core.ModeMenu, Event: core.EventClose}},
	}
	for _, row := range table {
		if err := m.AddTransition(row.from, row.t); err != nil {
			panic(err)
		}
	}
	return m
}

func playerDead(s *Session, _ int) bool {
	return s.run != nil && s.run.Player.Dead()
}

// resetRun discards the previous run and starts a fresh one
func (s *Session) resetRun() {
	s.clock.Resume()
	s.run = newRun(s.tuning, s.clock.Now())
	s.run.pauseBase = s.clock.TotalPaused()
	s.newHighScore = false
	log.Printf("Run %s started", s.run.ID)
}

func (s *Session) abandonRun() {
	if s.run != nil {
		log.Printf("Run %s abandoned at score %d", s.run.ID, s.run.Score)
	}
}

// finishRun freezes survival time, evaluates achievements and persists results
func (s *Session) finishRun() {
	r := s.run
	r.Ended = true
	r.Survived = s.clock.Now().Sub(r.StartedAt)
	r.Paused = s.clock.TotalPaused() - r.pauseBase

	earned := EvaluateAchievements(RunStats{
		Score:             r.Score,
		Survived:          r.Survived,
		PowerUpsCollected: r.PowerUpsCollected,
		DashCount:         r.DashCount,
		DamageTaken:       r.DamageTaken,
	})
	s.achievements.Merge(earned)
	s.saveAchievements()

	if r.Score > s.highScore {
		s.highScore = r.Score
		s.newHighScore = true
		s.saveHighScore()
	}
	s.saveLastRun()
	s.play(core.SoundGameOver)

	log.Printf("Run %s ended: score %d, level %d, survived %.1fs, paused %.1fs", r.ID, r.Score, r.Level, r.Survived.Seconds(), r.Paused.Seconds())
}
