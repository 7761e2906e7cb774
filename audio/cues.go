package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/parameter"
)

const cueAttack = 5 * time.Millisecond

// tone is one shaped oscillator voice
func tone(from, to float64, d time.Duration, wave WaveType, gain float64, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(from, to, d, wave, rate)
	return newVolume(NewEnvelope(osc, d, cueAttack, d/2, rate), gain)
}

// cueBuilders is indexed by core.SoundType; each builder returns a fresh finite streamer
var cueBuilders = [core.SoundTypeCount]func(rate beep.SampleRate) beep.Streamer{
	core.SoundHit: func(rate beep.SampleRate) beep.Streamer {
		d := parameter.HitSoundDuration
		return beep.Mix(
			tone(140, 70, d, WaveSaw, 0.5, rate),
			tone(0, 0, d, WaveNoise, 0.2, rate),
		)
	},
	core.SoundShield: func(rate beep.SampleRate) beep.Streamer {
		return tone(660, 990, parameter.ShieldSoundDuration, WaveTriangle, 0.6, rate)
	},
	core.SoundNullify: func(rate beep.SampleRate) beep.Streamer {
		return tone(1320, 1320, parameter.NullifySoundDuration, WaveSine, 0.4, rate)
	},
	core.SoundPowerUp: func(rate beep.SampleRate) beep.Streamer {
		d := parameter.PowerUpSoundDuration / 2
		return beep.Seq(
			tone(660, 660, d, WaveSquare, 0.3, rate),
			tone(990, 990, d, WaveSquare, 0.3, rate),
		)
	},
	core.SoundLevelUp: func(rate beep.SampleRate) beep.Streamer {
		d := parameter.LevelUpSoundDuration / 3
		// C5 E5 G5 arpeggio
		return beep.Seq(
			tone(523.25, 523.25, d, WaveSquare, 0.3, rate),
			tone(659.25, 659.25, d, WaveSquare, 0.3, rate),
			tone(783.99, 783.99, d, WaveSquare, 0.3, rate),
		)
	},
	core.SoundDash: func(rate beep.SampleRate) beep.Streamer {
		return tone(0, 0, parameter.DashSoundDuration, WaveNoise, 0.35, rate)
	},
	core.SoundSpecial: func(rate beep.SampleRate) beep.Streamer {
		d := parameter.SpecialSoundDuration
		return beep.Mix(
			tone(220, 880, d, WaveSaw, 0.3, rate),
			tone(110, 440, d, WaveSine, 0.4, rate),
		)
	},
	core.SoundEnemyDown: func(rate beep.SampleRate) beep.Streamer {
		return tone(400, 100, parameter.EnemyDownSoundDuration, WaveSquare, 0.35, rate)
	},
	core.SoundGameOver: func(rate beep.SampleRate) beep.Streamer {
		d := parameter.GameOverSoundDuration / 2
		return beep.Seq(
			tone(392, 330, d, WaveTriangle, 0.5, rate),
			tone(262, 196, d, WaveTriangle, 0.5, rate),
		)
	},
	core.SoundMenu: func(rate beep.SampleRate) beep.Streamer {
		sine, err := generators.SineTone(rate, 880)
		if err != nil {
			return tone(880, 880, parameter.MenuSoundDuration, WaveSine, 0.3, rate)
		}
		return newVolume(beep.Take(rate.N(parameter.MenuSoundDuration), sine), 0.3)
	},
}

// Cue builds the streamer for sound at unity master gain; nil for unknown types
func Cue(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	if sound < 0 || sound >= core.SoundTypeCount {
		return nil
	}
	return cueBuilders[sound](rate)
}
