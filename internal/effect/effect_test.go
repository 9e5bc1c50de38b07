package effect

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junsooki/textanim/internal/label"
	"github.com/junsooki/textanim/internal/rgb"
	"github.com/junsooki/textanim/internal/timer"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type countingDisplay struct {
	refreshes int
	err       error
}

func (d *countingDisplay) Refresh() error {
	d.refreshes++
	return d.err
}

func newLabel(text string) *label.Label {
	return label.New(text, 10, 30, rgb.White)
}

func TestRandomPrintableRange(t *testing.T) {
	src := NewSource(1)
	seen := map[byte]bool{}
	for i := 0; i < 20000; i++ {
		c := randomPrintable(src)
		require.GreaterOrEqual(t, c, byte(minPrintable))
		require.LessOrEqual(t, c, byte(maxPrintable))
		seen[c] = true
	}
	assert.Len(t, seen, maxPrintable-minPrintable+1)
}

func TestUpdateIsGatedByTimer(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	disp := &countingDisplay{}
	lbl := newLabel("Glitching Text!")

	g, err := NewGlitch(lbl, disp, 3, 100*time.Millisecond, 2, WithClock(clock), WithSource(NewSource(7)))
	require.NoError(t, err)

	require.NoError(t, g.Update())
	assert.Equal(t, 0, disp.refreshes, "not due yet")
	assert.Equal(t, 0, g.step)

	clock.Advance(100 * time.Millisecond)
	require.NoError(t, g.Update())
	assert.Equal(t, 1, disp.refreshes)
	assert.Equal(t, 1, g.step)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, disp.refreshes, "timer was reset")

	clock.Advance(250 * time.Millisecond)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, 2, disp.refreshes, "one tick per elapsed check")
}

func TestRefreshErrorStillResetsTimer(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	boom := errors.New("spi write failed")
	disp := &countingDisplay{err: boom}

	m, err := NewMatrix(newLabel("abc"), disp, 10*time.Millisecond, WithClock(clock), WithSource(NewSource(3)))
	require.NoError(t, err)

	clock.Advance(10 * time.Millisecond)
	err = m.Update()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, m.Update())
	assert.Equal(t, 1, disp.refreshes)
}

func TestNilDisplayIsAllowed(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	lbl := newLabel("x")
	d, err := NewDestroy(lbl, nil, 0, 1, WithClock(clock), WithSource(NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, d.Update())
	assert.Equal(t, "", lbl.Text())
}

func TestNegativeTunablesRejected(t *testing.T) {
	lbl := newLabel("x")

	_, err := NewMatrix(lbl, nil, -time.Second)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewDestroy(lbl, nil, time.Second, -1)
	assert.ErrorIs(t, err, ErrInvalidPauseCycles)

	_, err = NewGlitch(lbl, nil, 5, time.Second, -1)
	assert.ErrorIs(t, err, ErrInvalidPauseCycles)

	_, err = NewGlitch(lbl, nil, 0, time.Second, 1)
	assert.ErrorIs(t, err, ErrInvalidSteps)
}
