// Package record writes flushed frames to numbered image files.
package record

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pion/logging"

	"github.com/junsooki/textanim/internal/encoder"
)

// ErrStopped is returned by Start once the recorder has been stopped.
var ErrStopped = errors.New("recorder stopped")

// Frame is a flushed frame waiting to be written.
type Frame struct {
	Image     *image.RGBA
	Timestamp time.Time
}

// Recorder implements framebuffer.Sink. Frames are queued without
// blocking the animation loop and dropped while the writer is busy.
type Recorder struct {
	dir       string
	enc       encoder.Encoder
	maxFrames int
	log       logging.LeveledLogger

	frameCh chan *Frame
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
	seq     int
	written atomic.Int64
	dropped atomic.Int64
}

// New creates a recorder writing into dir. maxFrames <= 0 means no limit.
func New(dir string, enc encoder.Encoder, maxFrames int, log logging.LeveledLogger) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("record dir: %w", err)
	}
	if log == nil {
		log = logging.NewDefaultLeveledLoggerForScope("record", logging.LogLevelDisabled, io.Discard)
	}
	return &Recorder{
		dir:       dir,
		enc:       enc,
		maxFrames: maxFrames,
		log:       log,
		frameCh:   make(chan *Frame, 4),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Start launches the writer goroutine. A stopped recorder cannot be restarted.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return ErrStopped
	}
	if r.running {
		return fmt.Errorf("already running")
	}
	r.running = true
	go r.loop()
	return nil
}

// Stop writes any queued frames and waits for the writer to exit.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.stopped = true
	r.mu.Unlock()
	close(r.stopCh)
	<-r.doneCh
}

// SetFrame queues img. It never blocks.
func (r *Recorder) SetFrame(img *image.RGBA) {
	if r.Full() {
		return
	}
	select {
	case r.frameCh <- &Frame{Image: img, Timestamp: time.Now()}:
	default:
		r.dropped.Add(1)
	}
}

// Written is the number of frames on disk.
func (r *Recorder) Written() int {
	return int(r.written.Load())
}

// Dropped is the number of frames skipped because the queue was full.
func (r *Recorder) Dropped() int {
	return int(r.dropped.Load())
}

// Full reports whether MaxFrames frames have been written.
func (r *Recorder) Full() bool {
	return r.maxFrames > 0 && r.Written() >= r.maxFrames
}

func (r *Recorder) loop() {
	defer close(r.doneCh)
	for {
		select {
		case f := <-r.frameCh:
			r.write(f)
		case <-r.stopCh:
			for {
				select {
				case f := <-r.frameCh:
					r.write(f)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) write(f *Frame) {
	if r.Full() {
		return
	}
	data, err := r.enc.Encode(f.Image)
	if err != nil {
		r.log.Errorf("encode frame: %v", err)
		return
	}
	r.seq++
	name := filepath.Join(r.dir, fmt.Sprintf("frame-%06d.%s", r.seq, r.enc.Ext()))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		r.log.Errorf("write frame: %v", err)
		return
	}
	r.written.Add(1)
	r.log.Tracef("wrote %s (%d bytes, %s)", name, len(data), f.Timestamp.Format(time.StampMilli))
}
