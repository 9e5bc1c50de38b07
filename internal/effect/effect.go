// Package effect implements timed text animations. Each effect is polled
// through Update by a caller-owned loop; none of them block or schedule
// themselves.
package effect

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pion/logging"

	"github.com/junsooki/textanim/internal/rgb"
	"github.com/junsooki/textanim/internal/timer"
)

var (
	ErrInvalidSteps       = errors.New("steps must be at least 1")
	ErrInvalidInterval    = errors.New("delay must not be negative")
	ErrInvalidPauseCycles = errors.New("pause cycles must not be negative")
)

// Printable character range used for random glyphs.
const (
	minPrintable = 33
	maxPrintable = 126
)

// Target is the label an effect animates.
type Target interface {
	Text() string
	SetText(string)
	Color() rgb.Color
	SetColor(rgb.Color)
}

// Refresher pushes pending label changes to the screen.
type Refresher interface {
	Refresh() error
}

// Source is the random source effects draw from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Updater is polled once per loop iteration.
type Updater interface {
	Update() error
}

// Phase names a sub-state of a multi-phase effect.
type Phase string

const (
	PhaseGlitching  Phase = "glitching"
	PhaseBuilding   Phase = "building"
	PhaseErasing    Phase = "erasing"
	PhaseDestroying Phase = "destroying"
	PhaseRebuilding Phase = "rebuilding"
	PhasePausing    Phase = "pausing"
)

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randomPrintable(src Source) byte {
	return byte(minPrintable + src.IntN(maxPrintable-minPrintable+1))
}

type options struct {
	clock  timer.Clock
	source Source
	log    logging.LeveledLogger
}

// Option customises an effect at construction.
type Option func(*options)

// WithClock sets the clock driving the effect's timer.
func WithClock(c timer.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithSource sets the random source.
func WithSource(s Source) Option {
	return func(o *options) { o.source = s }
}

// WithLogger sets the logger used for phase changes.
func WithLogger(l logging.LeveledLogger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.clock == nil {
		o.clock = timer.SystemClock{}
	}
	if o.source == nil {
		o.source = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.log == nil {
		o.log = logging.NewDefaultLeveledLoggerForScope("effect", logging.LogLevelDisabled, io.Discard)
	}
	return o
}

// ticker is the interval gate and display shared by every effect.
type ticker struct {
	timer   *timer.Timer
	display Refresher
}

func newTicker(delay time.Duration, display Refresher, clock timer.Clock) (ticker, error) {
	if delay < 0 {
		return ticker{}, ErrInvalidInterval
	}
	return ticker{timer: timer.New(delay, clock), display: display}, nil
}

// tick runs step when the timer has elapsed, then refreshes and resets.
func (t *ticker) tick(step func()) error {
	if !t.timer.HasElapsed() {
		return nil
	}
	step()
	defer t.timer.Reset()
	if t.display == nil {
		return nil
	}
	if err := t.display.Refresh(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}
