package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pion/logging"

	"github.com/junsooki/textanim/internal/config"
	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/display/framebuffer"
	"github.com/junsooki/textanim/internal/display/terminal"
	"github.com/junsooki/textanim/internal/display/window"
	"github.com/junsooki/textanim/internal/encoder"
	applog "github.com/junsooki/textanim/internal/logging"
	"github.com/junsooki/textanim/internal/record"
	"github.com/junsooki/textanim/internal/runner"
	"github.com/junsooki/textanim/internal/scene"
)

const terminalLogFile = "/tmp/textanim.log"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. Everything it opens is released by its
// defers before main exits.
func run(args []string) int {
	cfg, err := config.ParseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Printf("config: %v", err)
		return 2
	}

	backend := cfg.ResolveBackend(os.Stdout)
	logPath := cfg.LogFile
	if logPath == "" && backend == config.BackendTerminal {
		logPath = terminalLogFile
	}

	scn, err := cfg.LoadScene()
	if err != nil {
		log.Printf("scene: %v", err)
		return 2
	}

	log.Printf("textanim starting")
	log.Printf("  Backend:  %s", backend)
	log.Printf("  Labels:   %d", len(scn.Labels))
	log.Printf("  Seed:     %d", scn.Seed)
	log.Printf("  Poll:     %s", cfg.Poll)
	if logPath != "" {
		log.Printf("  Log file: %s", logPath)
	}

	loggers, closer, err := applog.Init(logPath, cfg.LogLevel)
	if err != nil {
		log.Printf("logging: %v", err)
		return 1
	}
	defer closer.Close()

	switch backend {
	case config.BackendTerminal:
		err = runTerminal(cfg, scn, loggers)
	case config.BackendWindow:
		err = runWindow(cfg, scn, loggers)
	case config.BackendRecord:
		err = runRecord(cfg, scn, loggers)
	}
	if err != nil {
		loggers.NewLogger("textanim").Errorf("%s: %v", backend, err)
		log.Printf("%s: %v", backend, err)
		return 1
	}
	return 0
}

func runTerminal(cfg *config.Config, scn *config.Scene, loggers logging.LoggerFactory) error {
	term, err := terminal.Open()
	if err != nil {
		return err
	}
	defer term.Close()

	r, err := animate(cfg, newScreen(term, scn, loggers), scn, loggers)
	if err != nil {
		return err
	}
	defer r.Stop()

	select {
	case <-term.WatchQuit():
	case <-interrupted():
	}
	return nil
}

func runWindow(cfg *config.Config, scn *config.Scene, loggers logging.LoggerFactory) error {
	win := window.New("textanim", cfg.Width, cfg.Height, cfg.Scale)
	fb := framebuffer.New(cfg.Width, cfg.Height, win)

	r, err := animate(cfg, newScreen(fb, scn, loggers), scn, loggers)
	if err != nil {
		return err
	}
	win.OnClose(r.Stop)

	// Ebitengine owns the main goroutine until the window closes.
	return win.Run()
}

func runRecord(cfg *config.Config, scn *config.Scene, loggers logging.LoggerFactory) error {
	enc, err := encoder.ForFormat(cfg.RecordFormat, cfg.RecordQuality)
	if err != nil {
		return err
	}
	rec, err := record.New(cfg.RecordDir, enc, cfg.Frames, loggers.NewLogger("record"))
	if err != nil {
		return err
	}
	if err := rec.Start(); err != nil {
		return err
	}
	defer func() {
		rec.Stop()
		log.Printf("Recorded %d frames to %s (%d dropped)", rec.Written(), cfg.RecordDir, rec.Dropped())
	}()

	fb := framebuffer.New(cfg.Width, cfg.Height, rec)
	r, err := animate(cfg, newScreen(fb, scn, loggers), scn, loggers)
	if err != nil {
		return err
	}
	defer r.Stop()

	sigCh := interrupted()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for !rec.Full() {
		select {
		case <-sigCh:
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func newScreen(surface display.Surface, scn *config.Scene, loggers logging.LoggerFactory) *display.Screen {
	return display.NewScreen(surface, display.Options{
		Foreground: scn.ForegroundColor(),
		Background: scn.BackgroundColor(),
		Logger:     loggers.NewLogger("display"),
	})
}

// animate binds the scene to scr and starts polling its effects.
func animate(cfg *config.Config, scr *display.Screen, scn *config.Scene, loggers logging.LoggerFactory) (*runner.Runner, error) {
	bindings, err := scene.Build(scr, scn, scene.Options{Loggers: loggers})
	if err != nil {
		return nil, err
	}
	logger := loggers.NewLogger("textanim")
	for _, b := range bindings {
		logger.Infof("%s %q at (%d,%d)", b.Kind, b.Label.Text(), b.Label.X, b.Label.Y)
	}

	r, err := runner.New(cfg.Poll, loggers.NewLogger("runner"), scene.Updaters(bindings)...)
	if err != nil {
		return nil, err
	}
	if err := r.Start(); err != nil {
		return nil, err
	}
	return r, nil
}

func interrupted() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
