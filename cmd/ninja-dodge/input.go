package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/engine"
	"github.com/lixenwraith/ninja-dodge/parameter"
)

// keyHoldWindow keeps a direction held after its last press
// Terminals report presses and auto-repeat, never releases
const keyHoldWindow = 180 * time.Millisecond

type control uint8

const (
	ctrlUp control = iota
	ctrlDown
	ctrlLeft
	ctrlRight
	ctrlCount
)

var opposite = [ctrlCount]control{
	ctrlUp:    ctrlDown,
	ctrlDown:  ctrlUp,
	ctrlLeft:  ctrlRight,
	ctrlRight: ctrlLeft,
}

// keyTracker turns key presses into held-state input snapshots
type keyTracker struct {
	lastPress [ctrlCount]time.Time
	dash      bool
	special   bool
}

func (k *keyTracker) press(c control, now time.Time) {
	k.lastPress[c] = now
	k.lastPress[opposite[c]] = time.Time{}
}

func (k *keyTracker) held(c control, now time.Time) bool {
	t := k.lastPress[c]
	return !t.IsZero() && now.Sub(t) <= keyHoldWindow
}

// snapshot builds the input for one tick; dash and special fire once per press
func (k *keyTracker) snapshot(now time.Time) core.Input {
	in := core.Input{
		Up:      k.held(ctrlUp, now),
		Down:    k.held(ctrlDown, now),
		Left:    k.held(ctrlLeft, now),
		Right:   k.held(ctrlRight, now),
		Dash:    k.dash,
		Special: k.special,
	}
	k.dash = false
	k.special = false
	return in
}

func (k *keyTracker) reset() {
	*k = keyTracker{}
}

// action is what the main loop does in response to one key
type action struct {
	quit    bool
	debug   bool
	event   core.Event
	setting func(*engine.Session) bool
}

// handleKey maps a key to an action for the current mode
func (k *keyTracker) handleKey(ev *tcell.EventKey, mode core.Mode, now time.Time) action {
	r := rune(0)
	if ev.Key() == tcell.KeyRune {
		r = ev.Rune()
	}

	switch {
	case ev.Key() == tcell.KeyCtrlC, ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C'):
		return action{quit: true}
	case ev.Key() == tcell.KeyF2:
		return action{debug: true}
	}
	esc := ev.Key() == tcell.KeyEscape
	enter := ev.Key() == tcell.KeyEnter

	switch mode {
	case core.ModeMenu:
		switch {
		case enter || r == ' ':
			k.reset()
			return action{event: core.EventStart}
		case r == 's':
			return action{event: core.EventOpenSettings}
		case r == 'a':
			return action{event: core.EventOpenAchievements}
		case esc || r == 'q':
			return action{quit: true}
		}

	case core.ModeSettings:
		switch {
		case esc || enter || r == 'q':
			return action{event: core.EventCloseSettings}
		case r == 'm':
			return action{setting: (*engine.Session).ToggleMute}
		case r == 'f':
			return action{setting: (*engine.Session).ToggleFPS}
		case r == '+' || r == '=' || ev.Key() == tcell.KeyRight || ev.Key() == tcell.KeyUp:
			return action{setting: func(s *engine.Session) bool { return s.AdjustVolume(parameter.AudioVolumeStep) }}
		case r == '-' || ev.Key() == tcell.KeyLeft || ev.Key() == tcell.KeyDown:
			return action{setting: func(s *engine.Session) bool { return s.AdjustVolume(-parameter.AudioVolumeStep) }}
		}

	case core.ModeAchievements:
		if esc || enter || r == 'q' {
			return action{event: core.EventClose}
		}

	case core.ModePlaying:
		return k.handlePlayingKey(ev, r, esc, now)

	case core.ModePaused:
		switch {
		case r == 'p' || enter || r == ' ':
			k.reset()
			return action{event: core.EventResume}
		case esc || r == 'q':
			return action{event: core.EventClose}
		}

	case core.ModeGameOver:
		switch {
		case r == 'r' || enter || r == ' ':
			k.reset()
			return action{event: core.EventRestart}
		case esc || r == 'q':
			return action{event: core.EventClose}
		}
	}
	return action{}
}

func (k *keyTracker) handlePlayingKey(ev *tcell.EventKey, r rune, esc bool, now time.Time) action {
	if esc || r == 'p' {
		return action{event: core.EventPause}
	}

	if ev.Modifiers()&tcell.ModShift != 0 {
		k.dash = true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		k.press(ctrlUp, now)
	case tcell.KeyDown:
		k.press(ctrlDown, now)
	case tcell.KeyLeft:
		k.press(ctrlLeft, now)
	case tcell.KeyRight:
		k.press(ctrlRight, now)
	}

	switch r {
	case 'w', 'k':
		k.press(ctrlUp, now)
	case 's', 'j':
		k.press(ctrlDown, now)
	case 'a', 'h':
		k.press(ctrlLeft, now)
	case 'd', 'l':
		k.press(ctrlRight, now)
	case 'W', 'K':
		k.press(ctrlUp, now)
		k.dash = true
	case 'S', 'J':
		k.press(ctrlDown, now)
		k.dash = true
	case 'A', 'H':
		k.press(ctrlLeft, now)
		k.dash = true
	case 'D', 'L':
		k.press(ctrlRight, now)
		k.dash = true
	case ' ', 'x':
		k.dash = true
	case 'z', 'c', 'e':
		k.special = true
	}
	return action{}
}
