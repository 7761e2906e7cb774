package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ninja-dodge/audio"
	"github.com/lixenwraith/ninja-dodge/config"
	"github.com/lixenwraith/ninja-dodge/core"
	"github.com/lixenwraith/ninja-dodge/engine"
	"github.com/lixenwraith/ninja-dodge/service"
	"github.com/lixenwraith/ninja-dodge/status"
	"github.com/lixenwraith/ninja-dodge/store"
)

var (
	configFlag = flag.String("config", "ninja-dodge.yaml", "Path to YAML config (missing file uses defaults)")
	dbFlag     = flag.String("db", "", "Path to SQLite save file (overrides config)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/ninja-dodge.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio output entirely")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 uses current time)")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	var logCloser io.Closer
	if f := setupLogging(*debugFlag); f != nil {
		logCloser = f
	}
	os.Exit(shutdown(logCloser, os.Stderr, run()))
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags]\n\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(out, "\nEnvironment:\n")
	fmt.Fprintf(out, "  %s\tSQLite save file path\n", config.EnvDatabase)
	fmt.Fprintf(out, "  %s\tmute audio (true/false), applied over saved settings\n", config.EnvMute)
	fmt.Fprintf(out, "  %s\tmaster volume 0-100, applied over saved settings\n", config.EnvVolume)
}

// shutdown closes the log file and reports err; returns the process exit code
func shutdown(logFile io.Closer, stderr io.Writer, err error) int {
	if err != nil {
		log.Printf("Exiting with error: %v", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(stderr, "ninja-dodge: %v\n", err)
		return 1
	}
	return 0
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *dbFlag != "" {
		cfg.Storage.Path = *dbFlag
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	hub := service.NewHub()
	for _, svc := range []service.Service{store.NewService(cfg.Storage.Path), audio.NewService(*muteFlag)} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		return err
	}

	storeSvc := service.MustGet[*store.Service](hub, store.ServiceName)
	audioSvc := service.MustGet[*audio.Service](hub, audio.ServiceName)
	if !storeSvc.Persistent() {
		log.Printf("Save file unavailable, progress will not persist")
	}

	metrics := status.NewRegistry()
	metrics.Bools.Get(status.KeyAudioOff).Store(audioSvc.IsDisabled())

	session := engine.NewSession(engine.Options{
		Tuning:          tuningFromConfig(cfg),
		Gateway:         storeSvc.Gateway(),
		Sound:           audioSvc.Player(),
		Metrics:         metrics,
		Seed:            seed,
		DefaultSettings: settingsFromConfig(cfg),
		Override:        settingsOverrideFromConfig(cfg),
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}

	defer screen.Fini()
	core.SetCrashFinalizer(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	gameLoop(screen, session, metrics, tickInterval(cfg))
	return nil
}

// gameLoop owns the session; terminal events arrive over a channel
func gameLoop(screen tcell.Screen, session *engine.Session, metrics *status.Registry, interval time.Duration) {
	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	keys := &keyTracker{}
	rend := newRenderer(screen, metrics)
	fpsGauge := metrics.Ints.Get(status.KeyFPS)
	frames := 0
	fpsWindow := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				act := keys.handleKey(ev, session.Mode(), time.Now())
				if act.quit {
					log.Printf("Quit requested")
					return
				}
				if act.debug {
					rend.showDebug = !rend.showDebug
				}
				if act.event != core.EventNone {
					session.RequestTransition(act.event)
				}
				if act.setting != nil {
					act.setting(session)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			session.AdvanceTick(keys.snapshot(now))
			rend.draw(session.CurrentView())

			frames++
			if elapsed := now.Sub(fpsWindow); elapsed >= time.Second {
				rend.fps = int(float64(frames) / elapsed.Seconds())
				fpsGauge.Store(int64(rend.fps))
				frames = 0
				fpsWindow = now
			}
		}
	}
}
