package display

import (
	"image"

	"github.com/junsooki/textanim/internal/rgb"
)

// Text is one label as handed to a Surface.
type Text struct {
	X, Y       int
	Value      string
	Foreground rgb.Color
	Background rgb.Color
	// Opaque fills the text's bounding box with Background first.
	Opaque bool
}

// Surface is a backend that draws text into a pending frame and pushes it
// to the device on Flush. X and Y are pixels from the top-left corner, Y
// being the top edge of the text.
type Surface interface {
	Bounds() image.Rectangle
	Clear(bg rgb.Color)
	DrawText(t Text)
	Flush() error
}
