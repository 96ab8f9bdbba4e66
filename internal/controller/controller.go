package controller

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Phase is the lifecycle of a controller's data.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// state is the shared fetch-lifecycle core embedded by every controller. Each
// fetch claims a generation; a fetch that finishes after a newer one started
// is discarded, so slow responses never clobber fresher data.
type state struct {
	mu    sync.RWMutex
	phase Phase
	err   error
	gen   uint64
}

// begin claims a new generation and moves to loading.
func (s *state) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.phase = PhaseLoading
	return s.gen
}

// current reports whether gen is still the newest fetch.
func (s *state) current(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen == gen
}

// finish resolves a generation. A superseded generation is a no-op and the
// caller must not apply its results either.
func (s *state) finish(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	if err != nil {
		s.phase = PhaseError
		s.err = err
	} else {
		s.phase = PhaseReady
		s.err = nil
	}
	return true
}

func (s *state) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *state) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// poller drives periodic refreshes. The ticker fires once immediately, so
// starting a poller also performs a fresh fetch.
type poller struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func startPoller(ctx context.Context, interval time.Duration, refresh func(context.Context)) *poller {
	ctx, cancel := context.WithCancel(ctx)
	p := &poller{cancel: cancel, done: make(chan struct{})}

	ticker := backoff.NewTicker(backoff.WithContext(backoff.NewConstantBackOff(interval), ctx))
	go func() {
		defer close(p.done)
		defer ticker.Stop()
		for range ticker.C {
			refresh(ctx)
		}
	}()
	return p
}

// stop cancels the poll loop and waits for it to drain. No refresh runs after
// stop returns.
func (p *poller) stop() {
	p.cancel()
	<-p.done
}
