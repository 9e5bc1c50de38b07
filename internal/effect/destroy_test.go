package effect

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiset(rs []rune) map[rune]int {
	m := map[rune]int{}
	for _, r := range rs {
		m[r]++
	}
	return m
}

func (d *Destroy) held() []rune {
	all := slices.Clone(d.remaining)
	for _, r := range d.removed {
		all = append(all, r.ch)
	}
	return all
}

func TestDestroyConservesCharacters(t *testing.T) {
	const text = "Destroying Text!"
	lbl := newLabel(text)
	d, err := NewDestroy(lbl, nil, time.Millisecond, 3, WithSource(NewSource(21)))
	require.NoError(t, err)

	want := multiset([]rune(text))
	for i := 0; i < 500; i++ {
		d.Step()
		require.Equal(t, want, multiset(d.held()), "tick %d", i+1)
		require.LessOrEqual(t, len(d.remaining), len(text))
		// Rebuild order can differ from the original; the pause shows the
		// snapshot regardless.
		if lbl.Text() != text {
			require.Equal(t, string(d.remaining), lbl.Text())
		}
	}
}

func TestDestroyFullCycle(t *testing.T) {
	const text = "Destroying"
	lbl := newLabel(text)
	d, err := NewDestroy(lbl, nil, time.Millisecond, 2, WithSource(NewSource(8)))
	require.NoError(t, err)

	for cycle := 0; cycle < 3; cycle++ {
		require.Equal(t, PhaseDestroying, d.Phase())
		for i := 0; i < len(text); i++ {
			d.Step()
			assert.Len(t, lbl.Text(), len(text)-i-1)
		}
		assert.Equal(t, "", lbl.Text())

		d.Step() // notices the empty text
		require.Equal(t, PhaseRebuilding, d.Phase())
		for i := 0; i < len(text); i++ {
			d.Step()
			assert.Len(t, lbl.Text(), i+1)
		}
		require.Equal(t, PhasePausing, d.Phase())

		d.Step()
		assert.Equal(t, text, lbl.Text(), "pause shows the original")
		assert.Equal(t, 1, d.pause)
		d.Step()
		assert.Equal(t, text, lbl.Text())
		assert.Equal(t, 0, d.pause)
		assert.Empty(t, d.removed)
		assert.Equal(t, text, string(d.remaining))
	}
}

func TestDestroyEmptyText(t *testing.T) {
	lbl := newLabel("")
	d, err := NewDestroy(lbl, nil, time.Millisecond, 1, WithSource(NewSource(1)))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		d.Step()
		assert.Equal(t, "", lbl.Text())
	}
}
