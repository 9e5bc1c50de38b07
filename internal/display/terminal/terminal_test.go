package terminal

import (
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/rgb"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(40, 10)
	return New(sim), sim
}

func rowText(sim tcell.SimulationScreen, row, from, n int) string {
	out := make([]rune, n)
	for i := range out {
		r, _, _, _ := sim.GetContent(from+i, row)
		out[i] = r
	}
	return string(out)
}

func TestBoundsInPixels(t *testing.T) {
	term, _ := newSimTerminal(t)
	defer term.Close()
	assert.Equal(t, image.Rect(0, 0, 40*DefaultCellWidth, 10*DefaultCellHeight), term.Bounds())

	term.SetCellSize(8, 16)
	assert.Equal(t, image.Rect(0, 0, 320, 160), term.Bounds())
	term.SetCellSize(0, -1)
	assert.Equal(t, image.Rect(0, 0, 320, 160), term.Bounds(), "non-positive sizes ignored")
}

func TestDrawTextMapsPixelsToCells(t *testing.T) {
	term, sim := newSimTerminal(t)
	defer term.Close()

	term.Clear(rgb.Black)
	term.DrawText(display.Text{X: 14, Y: 26, Value: "Matrix", Foreground: rgb.White})
	require.NoError(t, term.Flush())

	assert.Equal(t, "Matrix", rowText(sim, 2, 2, 6))
	assert.Equal(t, "  ", rowText(sim, 2, 0, 2))

	term.Clear(rgb.Black)
	require.NoError(t, term.Flush())
	assert.Equal(t, "      ", rowText(sim, 2, 2, 6), "clear wipes previous frame")
}

func TestWatchQuit(t *testing.T) {
	term, sim := newSimTerminal(t)
	defer term.Close()

	done := term.WatchQuit()
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case <-done:
		t.Fatal("x must not quit")
	case <-time.After(50 * time.Millisecond):
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("q did not quit")
	}
}
