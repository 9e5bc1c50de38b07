package effect

import (
	"slices"
	"time"

	"github.com/pion/logging"
)

type removal struct {
	index int
	ch    rune
}

// Destroy deletes one random character per tick, puts them back one per
// tick in random order, holds the original text for a pause, and repeats.
type Destroy struct {
	ticker
	target      Target
	src         Source
	log         logging.LeveledLogger
	original    []rune
	remaining   []rune
	removed     []removal
	destroying  bool
	pause       int
	pauseCycles int
}

// NewDestroy snapshots target's current text.
func NewDestroy(target Target, display Refresher, delay time.Duration, pauseCycles int, opts ...Option) (*Destroy, error) {
	if pauseCycles < 0 {
		return nil, ErrInvalidPauseCycles
	}
	o := buildOptions(opts)
	t, err := newTicker(delay, display, o.clock)
	if err != nil {
		return nil, err
	}
	original := []rune(target.Text())
	return &Destroy{
		ticker:      t,
		target:      target,
		src:         o.source,
		log:         o.log,
		original:    original,
		remaining:   slices.Clone(original),
		removed:     make([]removal, 0, len(original)),
		destroying:  true,
		pauseCycles: pauseCycles,
	}, nil
}

func (d *Destroy) Update() error {
	return d.tick(d.Step)
}

// Step removes, restores or pauses for one tick.
func (d *Destroy) Step() {
	if d.destroying {
		if len(d.remaining) == 0 {
			d.destroying = false
			d.log.Debug("destroy complete, rebuilding")
			return
		}
		i := d.src.IntN(len(d.remaining))
		d.removed = append(d.removed, removal{index: i, ch: d.remaining[i]})
		d.remaining = slices.Delete(d.remaining, i, i+1)
		d.target.SetText(string(d.remaining))
		return
	}

	if len(d.removed) > 0 {
		j := d.src.IntN(len(d.removed))
		r := d.removed[j]
		d.removed = slices.Delete(d.removed, j, j+1)
		d.remaining = slices.Insert(d.remaining, min(r.index, len(d.remaining)), r.ch)
		d.target.SetText(string(d.remaining))
		return
	}

	d.target.SetText(string(d.original))
	d.pause++
	if d.pause >= d.pauseCycles {
		d.destroying = true
		d.remaining = append(d.remaining[:0], d.original...)
		d.removed = d.removed[:0]
		d.pause = 0
		d.log.Debug("pause over, destroying")
	}
}

// Phase reports the current sub-state.
func (d *Destroy) Phase() Phase {
	switch {
	case d.destroying:
		return PhaseDestroying
	case len(d.removed) > 0:
		return PhaseRebuilding
	default:
		return PhasePausing
	}
}
