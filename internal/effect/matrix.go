package effect

import (
	"time"

	"github.com/pion/logging"
)

// Probability that a picked cell is set to a random glyph instead of its
// target value.
const matrixNoise = 0.8

// Matrix reveals the target text one random cell at a time through random
// glyphs, then erases it the same way, forever.
type Matrix struct {
	ticker
	target   Target
	src      Source
	log      logging.LeveledLogger
	original []rune
	buf      []rune
	building bool
	scratch  []int
}

// NewMatrix snapshots target's current text and starts from blanks.
func NewMatrix(target Target, display Refresher, delay time.Duration, opts ...Option) (*Matrix, error) {
	o := buildOptions(opts)
	t, err := newTicker(delay, display, o.clock)
	if err != nil {
		return nil, err
	}
	original := []rune(target.Text())
	buf := make([]rune, len(original))
	for i := range buf {
		buf[i] = ' '
	}
	return &Matrix{
		ticker:   t,
		target:   target,
		src:      o.source,
		log:      o.log,
		original: original,
		buf:      buf,
		building: true,
		scratch:  make([]int, 0, len(original)),
	}, nil
}

func (m *Matrix) Update() error {
	return m.tick(m.Step)
}

// Step changes one cell, or flips phase when the current phase is complete.
func (m *Matrix) Step() {
	if m.building {
		m.collect(func(i int) bool { return m.buf[i] != m.original[i] })
		if len(m.scratch) == 0 {
			m.building = false
			m.log.Debug("matrix text revealed, erasing")
			return
		}
		i := m.scratch[m.src.IntN(len(m.scratch))]
		if m.src.Float64() < matrixNoise {
			m.buf[i] = rune(randomPrintable(m.src))
		} else {
			m.buf[i] = m.original[i]
		}
		m.target.SetText(string(m.buf))
		return
	}

	m.collect(func(i int) bool { return m.buf[i] != ' ' })
	if len(m.scratch) == 0 {
		m.building = true
		m.log.Debug("matrix text erased, building")
		return
	}
	i := m.scratch[m.src.IntN(len(m.scratch))]
	if m.src.Float64() < matrixNoise {
		m.buf[i] = rune(randomPrintable(m.src))
	} else {
		m.buf[i] = ' '
	}
	m.target.SetText(string(m.buf))
}

func (m *Matrix) collect(keep func(int) bool) {
	m.scratch = m.scratch[:0]
	for i := range m.buf {
		if keep(i) {
			m.scratch = append(m.scratch, i)
		}
	}
}

// Phase reports whether the text is being built or erased.
func (m *Matrix) Phase() Phase {
	if m.building {
		return PhaseBuilding
	}
	return PhaseErasing
}
