package label

import "github.com/junsooki/textanim/internal/rgb"

// Label is a positioned piece of text with a foreground and optional
// background color. Effects mutate Text and Color; the display reads them
// on refresh.
type Label struct {
	X, Y int

	text          string
	color         rgb.Color
	background    rgb.Color
	hasBackground bool
}

// New creates a label with a transparent background.
func New(text string, x, y int, color rgb.Color) *Label {
	return &Label{X: x, Y: y, text: text, color: color}
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(s string) { l.text = s }

func (l *Label) Color() rgb.Color { return l.color }

func (l *Label) SetColor(c rgb.Color) { l.color = c }

// Background returns the fill color and whether one is set.
func (l *Label) Background() (rgb.Color, bool) {
	return l.background, l.hasBackground
}

// SetBackground gives the label an opaque background.
func (l *Label) SetBackground(c rgb.Color) {
	l.background = c
	l.hasBackground = true
}

// ClearBackground makes the label background transparent again.
func (l *Label) ClearBackground() {
	l.background = 0
	l.hasBackground = false
}
