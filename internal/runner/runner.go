// Package runner drives effects from a single polling goroutine.
package runner

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pion/logging"

	"github.com/junsooki/textanim/internal/effect"
)

// ErrStopped is returned by Start once the runner has been stopped.
var ErrStopped = errors.New("runner stopped")

// Runner calls Update on every effect once per poll interval.
type Runner struct {
	updaters []effect.Updater
	poll     time.Duration
	log      logging.LeveledLogger

	mu      sync.Mutex
	running bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	polls   uint64
	errs    uint64
}

// New creates a runner. poll must be positive.
func New(poll time.Duration, log logging.LeveledLogger, updaters ...effect.Updater) (*Runner, error) {
	if poll <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", poll)
	}
	if log == nil {
		log = logging.NewDefaultLeveledLoggerForScope("runner", logging.LogLevelDisabled, io.Discard)
	}
	return &Runner{
		updaters: updaters,
		poll:     poll,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start launches the polling loop. A stopped runner cannot be restarted.
func (r *Runner) Start() error {
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

// Stop ends the loop and waits for the in-flight poll to finish.
func (r *Runner) Stop() {
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

// Done is closed once the loop has exited.
func (r *Runner) Done() <-chan struct{} {
	return r.doneCh
}

// PollOnce updates every effect in order. Errors are logged and do not
// stop later effects.
func (r *Runner) PollOnce() {
	r.polls++
	for i, u := range r.updaters {
		if err := u.Update(); err != nil {
			r.errs++
			r.log.Warnf("effect %d: %v", i, err)
		}
	}
}

// Stats returns how many polls ran and how many updates failed. Only safe
// to call once the loop has stopped, or when polling manually.
func (r *Runner) Stats() (polls, errs uint64) {
	return r.polls, r.errs
}

func (r *Runner) loop() {
	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()
	defer close(r.doneCh)

	r.log.Debugf("polling %d effects every %s", len(r.updaters), r.poll)
	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.PollOnce()
		}
	}
}
