package rgb

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackRoundTrip(t *testing.T) {
	c := New(0x12, 0x34, 0x56)
	assert.Equal(t, Color(0x123456), c)

	r, g, b := c.Components()
	assert.Equal(t, uint8(0x12), r)
	assert.Equal(t, uint8(0x34), g)
	assert.Equal(t, uint8(0x56), b)
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		in     Color
		factor float64
		want   Color
	}{
		{"zero", White, 0, Black},
		{"full", 0x80FF10, 1, 0x80FF10},
		{"half truncates", 0xFF8001, 0.5, 0x7F4000},
		{"over one clamps", 0x80FF10, 2, 0xFFFF20},
		{"negative clamps", White, -1, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Scale(tt.factor))
		})
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"#ff8800", "ff8800", "0xFF8800", " #FF8800 "} {
		c, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, Color(0xFF8800), c, s)
	}

	for _, s := range []string{"", "#fff", "#gg0000", "0x12345678"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestStringAndRGBA(t *testing.T) {
	c := Color(0x00ff7f)
	assert.Equal(t, "#00ff7f", c.String())
	assert.Equal(t, color.RGBA{R: 0, G: 0xff, B: 0x7f, A: 0xff}, c.RGBA())
	assert.Equal(t, c, FromColor(c.RGBA()))
}
