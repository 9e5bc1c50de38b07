// Package window shows framebuffer frames in an Ebitengine window.
package window

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window renders the latest frame, letterboxed, and closes on Escape or Q.
type Window struct {
	mu          sync.Mutex
	frame       *image.RGBA
	ebitenImage *ebiten.Image
	onClose     func()

	title   string
	screenW int
	screenH int
	scale   int
}

// New creates a window sized to width x height pixels times scale.
func New(title string, width, height, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		title:   title,
		screenW: width,
		screenH: height,
		scale:   scale,
	}
}

// OnClose registers a callback run once the game loop is about to exit.
func (w *Window) OnClose(fn func()) {
	w.onClose = fn
}

// SetFrame updates the displayed frame (called from the animation loop).
func (w *Window) SetFrame(img *image.RGBA) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frame = img
	if img != nil {
		w.screenW = img.Bounds().Dx()
		w.screenH = img.Bounds().Dy()
	}
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.screenW*w.scale, w.screenH*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(w)
	if w.onClose != nil {
		w.onClose()
	}
	return err
}

// --- ebiten.Game interface ---

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	frame := w.frame
	w.mu.Unlock()

	if frame == nil {
		return
	}

	if w.ebitenImage == nil ||
		w.ebitenImage.Bounds().Dx() != frame.Bounds().Dx() ||
		w.ebitenImage.Bounds().Dy() != frame.Bounds().Dy() {
		w.ebitenImage = ebiten.NewImage(frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	w.ebitenImage.WritePixels(frame.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := float64(frame.Bounds().Dx()), float64(frame.Bounds().Dy())
	scale, offsetX, offsetY := aspectFitTransform(float64(sw), float64(sh), fw, fh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(w.ebitenImage, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// aspectFitTransform returns scale and offsets to fit frame into view with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
