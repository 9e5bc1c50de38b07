package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"github.com/junsooki/textanim/internal/effect"
	"github.com/junsooki/textanim/internal/rgb"
)

// Scene describes the labels on screen and the effect bound to each.
type Scene struct {
	Seed       uint64      `toml:"seed" yaml:"seed"`
	Foreground string      `toml:"color" yaml:"color"`
	Background string      `toml:"background" yaml:"background"`
	Labels     []LabelSpec `toml:"labels" yaml:"labels"`
}

// LabelSpec is one label and its effect. Zero steps and absent delay or
// pause_cycles mean the effect's defaults. Delay is in seconds.
type LabelSpec struct {
	Text            string   `toml:"text" yaml:"text"`
	X               int      `toml:"x" yaml:"x"`
	Y               int      `toml:"y" yaml:"y"`
	Color           string   `toml:"color" yaml:"color"`
	LabelBackground string   `toml:"label_background" yaml:"label_background"`
	Effect          string   `toml:"effect" yaml:"effect"`
	Steps           int      `toml:"steps" yaml:"steps"`
	DelaySeconds    *float64 `toml:"delay" yaml:"delay"`
	PauseCycles     *int     `toml:"pause_cycles" yaml:"pause_cycles"`
	Repeat          *bool    `toml:"repeat" yaml:"repeat"`
}

// LoadScene reads a .toml, .yaml or .yml scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	var s Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&s)
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &s)
	default:
		return nil, fmt.Errorf("scene %s: unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks every label's effect, colors and tunables.
func (s *Scene) Validate() error {
	var errs []error
	if s.Foreground != "" {
		if _, err := rgb.Parse(s.Foreground); err != nil {
			errs = append(errs, err)
		}
	}
	if s.Background != "" {
		if _, err := rgb.Parse(s.Background); err != nil {
			errs = append(errs, err)
		}
	}
	if len(s.Labels) == 0 {
		errs = append(errs, errors.New("scene has no labels"))
	}
	for i, l := range s.Labels {
		if err := l.validate(); err != nil {
			errs = append(errs, fmt.Errorf("label %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (l LabelSpec) validate() error {
	var errs []error
	if _, err := effect.ParseKind(l.Effect); err != nil {
		errs = append(errs, err)
	}
	for _, c := range []string{l.Color, l.LabelBackground} {
		if c == "" {
			continue
		}
		if _, err := rgb.Parse(c); err != nil {
			errs = append(errs, err)
		}
	}
	if l.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", l.Steps))
	}
	if l.DelaySeconds != nil && *l.DelaySeconds < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %v", *l.DelaySeconds))
	}
	if l.PauseCycles != nil && *l.PauseCycles < 0 {
		errs = append(errs, fmt.Errorf("pause_cycles must not be negative, got %d", *l.PauseCycles))
	}
	return errors.Join(errs...)
}

// Params converts the tunables for effect.New.
func (l LabelSpec) Params() effect.Params {
	p := effect.Params{
		Steps:       l.Steps,
		PauseCycles: l.PauseCycles,
		Repeat:      l.Repeat,
	}
	if l.DelaySeconds != nil {
		d := time.Duration(math.Round(*l.DelaySeconds * float64(time.Second)))
		p.Delay = &d
	}
	return p
}

// ForegroundColor returns the scene default text color, white if unset.
func (s *Scene) ForegroundColor() rgb.Color {
	return parseOr(s.Foreground, rgb.White)
}

// BackgroundColor returns the screen clear color, black if unset.
func (s *Scene) BackgroundColor() rgb.Color {
	return parseOr(s.Background, rgb.Black)
}

func parseOr(s string, def rgb.Color) rgb.Color {
	if s == "" {
		return def
	}
	c, err := rgb.Parse(s)
	if err != nil {
		return def
	}
	return c
}
