// Package terminal draws labels into a tcell screen, one cell per glyph.
package terminal

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/rgb"
)

// Default cell size in pixels, matching the 7x13 framebuffer font so that
// scene coordinates land in the same place on every backend.
const (
	DefaultCellWidth  = 7
	DefaultCellHeight = 13
)

// Terminal is a display.Surface over a tcell.Screen.
type Terminal struct {
	screen tcell.Screen
	cellW  int
	cellH  int
	bg     tcell.Style
}

var _ display.Surface = (*Terminal)(nil)

// Open initialises the controlling terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	return New(screen), nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		cellW:  DefaultCellWidth,
		cellH:  DefaultCellHeight,
		bg:     tcell.StyleDefault,
	}
}

// SetCellSize changes the pixel-to-cell mapping.
func (t *Terminal) SetCellSize(w, h int) {
	if w > 0 {
		t.cellW = w
	}
	if h > 0 {
		t.cellH = h
	}
}

func (t *Terminal) Bounds() image.Rectangle {
	w, h := t.screen.Size()
	return image.Rect(0, 0, w*t.cellW, h*t.cellH)
}

func (t *Terminal) Clear(bg rgb.Color) {
	t.bg = tcell.StyleDefault.Background(toTcell(bg))
	t.screen.SetStyle(t.bg)
	t.screen.Clear()
}

func (t *Terminal) DrawText(txt display.Text) {
	style := t.bg.Foreground(toTcell(txt.Foreground))
	if txt.Opaque {
		style = style.Background(toTcell(txt.Background))
	}
	col, row := txt.X/t.cellW, txt.Y/t.cellH
	for i, r := range []rune(txt.Value) {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// WatchQuit polls input until Escape, Ctrl-C or q is pressed, or the screen
// is closed, then closes the returned channel. Resizes repaint the screen.
func (t *Terminal) WatchQuit() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			switch ev := t.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return
				}
			}
		}
	}()
	return done
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func toTcell(c rgb.Color) tcell.Color {
	r, g, b := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
