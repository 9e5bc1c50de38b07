package rgb

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 24-bit 0xRRGGBB value.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// New packs three 8-bit channels.
func New(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Components unpacks the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Scale multiplies every channel by f, truncating and clamping to [0,255].
func (c Color) Scale(f float64) Color {
	r, g, b := c.Components()
	return New(clamp(int(float64(r)*f)), clamp(int(float64(g)*f)), clamp(int(float64(b)*f)))
}

// RGBA converts to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (c Color) String() string {
	r, g, b := c.Components()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return New(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Parse accepts "#rrggbb", "rrggbb" and "0xrrggbb".
func Parse(s string) (Color, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 7 {
		return 0, fmt.Errorf("parse color %q: want 6 hex digits", s)
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return New(r, g, b), nil
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
