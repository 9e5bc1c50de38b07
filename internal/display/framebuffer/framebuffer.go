// Package framebuffer rasterises labels into an in-memory RGBA image and
// hands finished frames to sinks such as a window or a recorder.
package framebuffer

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/rgb"
)

// Sink receives a copy of every flushed frame.
type Sink interface {
	SetFrame(img *image.RGBA)
}

// Framebuffer is a display.Surface backed by an *image.RGBA.
type Framebuffer struct {
	img   *image.RGBA
	face  font.Face
	sinks []Sink
}

var _ display.Surface = (*Framebuffer)(nil)

// New creates a width x height framebuffer drawing with basicfont.Face7x13.
func New(width, height int, sinks ...Sink) *Framebuffer {
	return &Framebuffer{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		face:  basicfont.Face7x13,
		sinks: sinks,
	}
}

// SetFace replaces the font used by DrawText.
func (f *Framebuffer) SetFace(face font.Face) {
	f.face = face
}

// AddSink registers another frame consumer.
func (f *Framebuffer) AddSink(s Sink) {
	f.sinks = append(f.sinks, s)
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return f.img.Bounds()
}

func (f *Framebuffer) Clear(bg rgb.Color) {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(bg.RGBA()), image.Point{}, draw.Src)
}

func (f *Framebuffer) DrawText(t display.Text) {
	m := f.face.Metrics()
	if t.Opaque {
		w := font.MeasureString(f.face, t.Value).Ceil()
		box := image.Rect(t.X, t.Y, t.X+w, t.Y+m.Height.Ceil())
		draw.Draw(f.img, box, image.NewUniform(t.Background.RGBA()), image.Point{}, draw.Src)
	}
	d := font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(t.Foreground.RGBA()),
		Face: f.face,
		Dot:  fixed.P(t.X, t.Y+m.Ascent.Ceil()),
	}
	d.DrawString(t.Value)
}

// Flush copies the frame to every sink.
func (f *Framebuffer) Flush() error {
	for _, s := range f.sinks {
		s.SetFrame(f.Snapshot())
	}
	return nil
}

// Image returns the live frame. It changes on the next Clear or DrawText.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Snapshot returns a copy of the current frame.
func (f *Framebuffer) Snapshot() *image.RGBA {
	frame := image.NewRGBA(f.img.Rect)
	copy(frame.Pix, f.img.Pix)
	return frame
}
