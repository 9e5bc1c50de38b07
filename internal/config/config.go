package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Backends accepted by -backend.
const (
	BackendAuto     = "auto"
	BackendTerminal = "terminal"
	BackendWindow   = "window"
	BackendRecord   = "record"
)

// Config holds all runtime configuration of the textanim binary.
type Config struct {
	Backend   string
	ScenePath string

	// Single-label scene used when no scene file is given.
	Effect      string
	Text        string
	X, Y        int
	Color       string
	Background  string
	Steps       int
	// Delay and PauseCycles are nil unless given on the command line.
	Delay       *time.Duration
	PauseCycles *int
	Once        bool
	Seed        uint64

	Poll   time.Duration
	Width  int
	Height int
	Scale  int

	RecordDir     string
	RecordFormat  string
	RecordQuality int
	Frames        int

	LogFile  string
	LogLevel string
}

// ParseFlags parses command-line arguments (without the program name).
func ParseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("textanim", flag.ContinueOnError)
	fs.StringVar(&cfg.Backend, "backend", BackendAuto, "Output: auto, terminal, window or record")
	fs.StringVar(&cfg.ScenePath, "scene", "", "Scene file (.toml, .yaml) with several labels")
	fs.StringVar(&cfg.Effect, "effect", "glitch", "Effect: fade, glitch, matrix or destroy")
	fs.StringVar(&cfg.Text, "text", "Glitching Text!", "Label text")
	fs.IntVar(&cfg.X, "x", 10, "Label x position in pixels")
	fs.IntVar(&cfg.Y, "y", 30, "Label y position in pixels")
	fs.StringVar(&cfg.Color, "color", "#ffffff", "Label color")
	fs.StringVar(&cfg.Background, "bg", "#000000", "Screen background color")
	fs.IntVar(&cfg.Steps, "steps", 0, "Fade/glitch steps (0 = effect default)")
	delay := fs.Duration("delay", 0, "Time between effect ticks (effect default if unset)")
	pause := fs.Int("pause", 0, "Glitch/destroy pause ticks (effect default if unset)")
	fs.BoolVar(&cfg.Once, "once", false, "Fade through a single cycle and stop")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based)")
	fs.DurationVar(&cfg.Poll, "poll", 5*time.Millisecond, "Polling loop interval")
	fs.IntVar(&cfg.Width, "width", 320, "Frame width in pixels")
	fs.IntVar(&cfg.Height, "height", 240, "Frame height in pixels")
	fs.IntVar(&cfg.Scale, "scale", 2, "Window pixel scale")
	fs.StringVar(&cfg.RecordDir, "record-dir", "frames", "Directory for recorded frames")
	fs.StringVar(&cfg.RecordFormat, "record-format", "png", "Recorded frame format: png or jpeg")
	fs.IntVar(&cfg.RecordQuality, "record-quality", 85, "JPEG quality (1-100)")
	fs.IntVar(&cfg.Frames, "frames", 0, "Stop recording after this many frames (0 = until interrupted)")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Log file (default stderr, or /tmp/textanim.log for the terminal backend)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: off, error, warn, info, debug, trace")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "delay":
			cfg.Delay = delay
		case "pause":
			cfg.PauseCycles = pause
		}
	})
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, cfg.Validate()
}

// Validate checks values that flag parsing cannot.
func (c *Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendAuto, BackendTerminal, BackendWindow, BackendRecord:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.Poll <= 0 {
		errs = append(errs, fmt.Errorf("poll must be positive, got %s", c.Poll))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("frame size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	if c.ScenePath == "" {
		s := c.FlagScene()
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResolveBackend turns "auto" into terminal when out is a terminal, and
// into record otherwise.
func (c *Config) ResolveBackend(out *os.File) string {
	if c.Backend != BackendAuto {
		return c.Backend
	}
	fd := out.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return BackendTerminal
	}
	return BackendRecord
}

// FlagScene is the one-label scene described by the flags.
func (c *Config) FlagScene() *Scene {
	var repeat *bool
	if c.Once {
		f := false
		repeat = &f
	}
	return &Scene{
		Seed:       c.Seed,
		Background: c.Background,
		Labels: []LabelSpec{{
			Text:         c.Text,
			X:            c.X,
			Y:            c.Y,
			Color:        c.Color,
			Effect:       c.Effect,
			Steps:        c.Steps,
			DelaySeconds: seconds(c.Delay),
			PauseCycles:  c.PauseCycles,
			Repeat:       repeat,
		}},
	}
}

// LoadScene returns the scene file when one is set, otherwise the flag
// scene. A scene file without a seed inherits the flag seed.
func (c *Config) LoadScene() (*Scene, error) {
	if c.ScenePath == "" {
		return c.FlagScene(), nil
	}
	s, err := LoadScene(c.ScenePath)
	if err != nil {
		return nil, err
	}
	if s.Seed == 0 {
		s.Seed = c.Seed
	}
	return s, nil
}

func seconds(d *time.Duration) *float64 {
	if d == nil {
		return nil
	}
	s := d.Seconds()
	return &s
}
