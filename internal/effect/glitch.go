package effect

import (
	"time"

	"github.com/pion/logging"
)

const (
	initialGlitchRate = 0.3
	minGlitchRate     = 0.2
	maxGlitchRate     = 0.4
)

// Glitch scrambles the target text for a number of ticks, then shows the
// original text for a number of pause ticks, forever.
type Glitch struct {
	ticker
	target      Target
	src         Source
	log         logging.LeveledLogger
	original    []rune
	steps       int
	pauseCycles int
	step        int
	pause       int
	rate        float64
}

// NewGlitch snapshots target's current text.
func NewGlitch(target Target, display Refresher, steps int, delay time.Duration, pauseCycles int, opts ...Option) (*Glitch, error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}
	if pauseCycles < 0 {
		return nil, ErrInvalidPauseCycles
	}
	o := buildOptions(opts)
	t, err := newTicker(delay, display, o.clock)
	if err != nil {
		return nil, err
	}
	return &Glitch{
		ticker:      t,
		target:      target,
		src:         o.source,
		log:         o.log,
		original:    []rune(target.Text()),
		steps:       steps,
		pauseCycles: pauseCycles,
		rate:        initialGlitchRate,
	}, nil
}

func (g *Glitch) Update() error {
	return g.tick(g.Step)
}

// Step performs one glitch or pause tick.
func (g *Glitch) Step() {
	if g.step < g.steps {
		buf := make([]rune, len(g.original))
		for i, r := range g.original {
			if g.src.Float64() < g.rate {
				buf[i] = rune(randomPrintable(g.src))
			} else {
				buf[i] = r
			}
		}
		g.target.SetText(string(buf))
		g.step++
		return
	}

	g.target.SetText(string(g.original))
	g.pause++
	if g.pause >= g.pauseCycles {
		g.step = 0
		g.pause = 0
		g.rate = minGlitchRate + (maxGlitchRate-minGlitchRate)*g.src.Float64()
		g.log.Debugf("glitch cycle restarted, rate %.2f", g.rate)
	}
}

// Phase reports whether the effect is glitching or pausing.
func (g *Glitch) Phase() Phase {
	if g.step < g.steps {
		return PhaseGlitching
	}
	return PhasePausing
}

// Rate is the per-character replacement probability of the current cycle.
func (g *Glitch) Rate() float64 {
	return g.rate
}
