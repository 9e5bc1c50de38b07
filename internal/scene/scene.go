// Package scene places labels on a screen and binds an effect to each.
package scene

import (
	"fmt"

	"github.com/pion/logging"

	"github.com/junsooki/textanim/internal/config"
	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/effect"
	"github.com/junsooki/textanim/internal/label"
	"github.com/junsooki/textanim/internal/rgb"
	"github.com/junsooki/textanim/internal/timer"
)

// Binding is a label and the effect animating it.
type Binding struct {
	Label  *label.Label
	Kind   effect.Kind
	Effect effect.Updater
}

// Options carry the collaborators shared by every effect.
type Options struct {
	Clock   timer.Clock
	Loggers logging.LoggerFactory
}

// Build creates one label per LabelSpec on scr and an effect for it. Each effect
// draws from its own source seeded with s.Seed plus its index, so a scene
// replays identically for a given seed.
func Build(scr *display.Screen, s *config.Scene, opts Options) ([]Binding, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	fg := s.ForegroundColor()

	bindings := make([]Binding, 0, len(s.Labels))
	for i, spec := range s.Labels {
		l := scr.CreateText(spec.Text, spec.X, spec.Y)
		l.SetColor(fg)
		if spec.Color != "" {
			c, err := rgb.Parse(spec.Color)
			if err != nil {
				return nil, fmt.Errorf("label %d: %w", i, err)
			}
			l.SetColor(c)
		}
		if spec.LabelBackground != "" {
			c, err := rgb.Parse(spec.LabelBackground)
			if err != nil {
				return nil, fmt.Errorf("label %d: %w", i, err)
			}
			l.SetBackground(c)
		}

		kind, err := effect.ParseKind(spec.Effect)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		effOpts := []effect.Option{effect.WithSource(effect.NewSource(s.Seed + uint64(i)))}
		if opts.Clock != nil {
			effOpts = append(effOpts, effect.WithClock(opts.Clock))
		}
		if opts.Loggers != nil {
			effOpts = append(effOpts, effect.WithLogger(opts.Loggers.NewLogger(fmt.Sprintf("%s-%d", kind, i))))
		}
		u, err := effect.New(kind, l, scr, spec.Params(), effOpts...)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		bindings = append(bindings, Binding{Label: l, Kind: kind, Effect: u})
	}
	return bindings, nil
}

// Updaters lists the effects of bindings in order.
func Updaters(bindings []Binding) []effect.Updater {
	out := make([]effect.Updater, len(bindings))
	for i, b := range bindings {
		out[i] = b.Effect
	}
	return out
}
