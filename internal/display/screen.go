package display

import (
	"fmt"
	"image"
	"io"

	"github.com/pion/logging"

	"github.com/junsooki/textanim/internal/label"
	"github.com/junsooki/textanim/internal/rgb"
)

// Options configure a Screen.
type Options struct {
	// Foreground is the color given to labels made by CreateText.
	Foreground rgb.Color
	// Background clears the surface before every frame.
	Background rgb.Color
	// LabelBackground, when set, gives new labels an opaque box.
	LabelBackground *rgb.Color
	Logger          logging.LeveledLogger
}

// Screen owns a surface and the group of labels drawn on it.
type Screen struct {
	surface Surface
	opts    Options
	group   label.Group
	log     logging.LeveledLogger
	frames  uint64
}

// NewScreen wraps surface.
func NewScreen(surface Surface, opts Options) *Screen {
	log := opts.Logger
	if log == nil {
		log = logging.NewDefaultLeveledLoggerForScope("display", logging.LogLevelDisabled, io.Discard)
	}
	return &Screen{surface: surface, opts: opts, log: log}
}

// CreateText adds a label at x, y using the screen's default colors.
func (s *Screen) CreateText(text string, x, y int) *label.Label {
	l := label.New(text, x, y, s.opts.Foreground)
	if s.opts.LabelBackground != nil {
		l.SetBackground(*s.opts.LabelBackground)
	}
	s.group.Append(l)
	return l
}

// Group exposes the labels drawn by Refresh.
func (s *Screen) Group() *label.Group {
	return &s.group
}

// Refresh redraws every label and flushes the surface.
func (s *Screen) Refresh() error {
	s.surface.Clear(s.opts.Background)
	for _, l := range s.group.Labels() {
		bg, opaque := l.Background()
		s.surface.DrawText(Text{
			X:          l.X,
			Y:          l.Y,
			Value:      l.Text(),
			Foreground: l.Color(),
			Background: bg,
			Opaque:     opaque,
		})
	}
	if err := s.surface.Flush(); err != nil {
		s.log.Warnf("flush frame %d: %v", s.frames, err)
		return fmt.Errorf("flush: %w", err)
	}
	s.frames++
	s.log.Tracef("frame %d flushed", s.frames)
	return nil
}

// Frames returns the number of successfully flushed frames.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// Bounds of the underlying surface.
func (s *Screen) Bounds() image.Rectangle {
	return s.surface.Bounds()
}
