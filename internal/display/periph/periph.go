// Package periph pushes framebuffer frames to a periph.io display.Drawer,
// such as an SSD1306 OLED or an SPI TFT on a Raspberry Pi.
package periph

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"

	textdisplay "github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/display/framebuffer"
	"github.com/junsooki/textanim/internal/rgb"
)

// Surface renders into a framebuffer sized to the device and draws the
// whole frame on Flush.
type Surface struct {
	dev display.Drawer
	fb  *framebuffer.Framebuffer
}

var _ textdisplay.Surface = (*Surface)(nil)

// New creates a surface matching dev's bounds.
func New(dev display.Drawer) *Surface {
	b := dev.Bounds()
	return &Surface{dev: dev, fb: framebuffer.New(b.Dx(), b.Dy())}
}

func (s *Surface) Bounds() image.Rectangle {
	return s.fb.Bounds()
}

func (s *Surface) Clear(bg rgb.Color) {
	s.fb.Clear(bg)
}

func (s *Surface) DrawText(t textdisplay.Text) {
	s.fb.DrawText(t)
}

// Flush sends the frame; the driver converts it to its own color model.
func (s *Surface) Flush() error {
	if err := s.dev.Draw(s.dev.Bounds(), s.fb.Image(), image.Point{}); err != nil {
		return fmt.Errorf("%s: draw: %w", s.dev, err)
	}
	return nil
}

// Halt turns the device off.
func (s *Surface) Halt() error {
	return s.dev.Halt()
}
