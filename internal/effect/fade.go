package effect

import (
	"time"

	"github.com/pion/logging"

	"github.com/junsooki/textanim/internal/rgb"
)

// Fade oscillates the target color linearly between black and its original
// color, one step per tick.
type Fade struct {
	ticker
	target    Target
	log       logging.LeveledLogger
	original  rgb.Color
	steps     int
	step      int
	direction int
	repeat    bool
	done      bool
}

// NewFade snapshots target's current color. With repeat false the fade stops
// after one full in/out cycle, leaving the target black.
func NewFade(target Target, display Refresher, steps int, delay time.Duration, repeat bool, opts ...Option) (*Fade, error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}
	o := buildOptions(opts)
	t, err := newTicker(delay, display, o.clock)
	if err != nil {
		return nil, err
	}
	return &Fade{
		ticker:    t,
		target:    target,
		log:       o.log,
		original:  target.Color(),
		steps:     steps,
		direction: 1,
		repeat:    repeat,
	}, nil
}

func (f *Fade) Update() error {
	if f.done {
		return nil
	}
	return f.tick(f.Step)
}

// Step applies the color for the current step and advances it.
func (f *Fade) Step() {
	if f.done {
		return
	}
	factor := float64(f.step) / float64(f.steps)
	f.target.SetColor(f.original.Scale(factor))

	f.step += f.direction
	if f.step >= f.steps {
		f.direction = -1
	} else if f.step <= 0 {
		f.direction = 1
		if !f.repeat {
			// Finish on the step-0 color rather than one step above it.
			f.target.SetColor(f.original.Scale(0))
			f.done = true
			f.log.Debugf("fade finished after one cycle of %d steps", f.steps)
		}
	}
}

// Done reports whether a non-repeating fade has finished.
func (f *Fade) Done() bool {
	return f.done
}
