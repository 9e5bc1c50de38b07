// Package tiny draws labels on any tinygo.org/x/drivers Displayer with
// tinyfont. It builds with both TinyGo and the standard toolchain.
package tiny

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/rgb"
)

// filler is implemented by drivers with a fast rectangle fill, such as
// st7789 and ili9341.
type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Surface is a display.Surface over a drivers.Displayer.
type Surface struct {
	dev  drivers.Displayer
	font tinyfont.Fonter
}

var _ display.Surface = (*Surface)(nil)

// New draws on dev with proggy.TinySZ8pt7b.
func New(dev drivers.Displayer) *Surface {
	return &Surface{dev: dev, font: &proggy.TinySZ8pt7b}
}

// SetFont replaces the font.
func (s *Surface) SetFont(f tinyfont.Fonter) {
	s.font = f
}

func (s *Surface) Bounds() image.Rectangle {
	w, h := s.dev.Size()
	return image.Rect(0, 0, int(w), int(h))
}

func (s *Surface) Clear(bg rgb.Color) {
	w, h := s.dev.Size()
	s.fill(0, 0, w, h, bg.RGBA())
}

func (s *Surface) DrawText(t display.Text) {
	yAdvance := int16(s.font.GetYAdvance())
	x, y := int16(t.X), int16(t.Y)
	if t.Opaque {
		_, width := tinyfont.LineWidth(s.font, t.Value)
		s.fill(x, y, int16(width), yAdvance, t.Background.RGBA())
	}
	// tinyfont positions text by its baseline.
	tinyfont.WriteLine(s.dev, s.font, x, y+yAdvance*3/4, t.Value, t.Foreground.RGBA())
}

func (s *Surface) Flush() error {
	return s.dev.Display()
}

func (s *Surface) fill(x, y, w, h int16, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if f, ok := s.dev.(filler); ok {
		if err := f.FillRectangle(x, y, w, h, c); err == nil {
			return
		}
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.dev.SetPixel(i, j, c)
		}
	}
}
