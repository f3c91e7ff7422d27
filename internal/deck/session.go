package deck

import (
	"context"
	"errors"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ziadkadry99/ddo-deck/internal/dom"
	"github.com/ziadkadry99/ddo-deck/internal/render"
)

// ErrSessionClosed is returned when posting to a session that has stopped.
var ErrSessionClosed = errors.New("session closed")

// Sink receives the patches produced by one event. It is called from the
// session loop and must not call back into the session synchronously.
type Sink func([]dom.Patch)

// Session runs a Controller in a run-to-completion loop: one goroutine, one
// queue of closures. Gestures, refreshes and timer callbacks all go through
// the queue, so the controller never sees concurrent calls.
type Session struct {
	id     string
	ctrl   *Controller
	sink   Sink
	log    logr.Logger
	events chan func()

	done      chan struct{}
	closeOnce sync.Once
}

// NewSession binds a session to a fresh document.
func NewSession(id string, doc *dom.Document, r *render.Renderer, stress *StressModel, opts Options, sink Sink) *Session {
	opts = opts.withDefaults()
	opts.Log = opts.Log.WithValues("session", id)
	s := &Session{
		id:     id,
		sink:   sink,
		log:    opts.Log,
		events: make(chan func(), 64),
		done:   make(chan struct{}),
	}
	s.ctrl = NewController(doc, r, stress, opts)
	s.ctrl.post = s.post
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Run processes events until ctx is cancelled or Close is called.
func (s *Session) Run(ctx context.Context) error {
	s.log.V(1).Info("session started")
	defer func() {
		s.ctrl.StopTimers()
		s.log.V(1).Info("session stopped")
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case fn := <-s.events:
			fn()
			if patches := s.ctrl.doc.Flush(); len(patches) > 0 && s.sink != nil {
				s.sink(patches)
			}
		}
	}
}

// post enqueues fn from a timer goroutine. Events for a closed session are
// dropped.
func (s *Session) post(fn func()) {
	select {
	case s.events <- fn:
	case <-s.done:
	}
}

func (s *Session) do(ctx context.Context, fn func()) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	select {
	case s.events <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrSessionClosed
	}
}

// Dispatch queues a gesture.
func (s *Session) Dispatch(ctx context.Context, g Gesture) error {
	return s.do(ctx, func() { s.ctrl.Dispatch(g) })
}

// Refresh queues a stress grid re-render from the shared model.
func (s *Session) Refresh(ctx context.Context) error {
	return s.do(ctx, s.ctrl.RenderStressGrid)
}

// Sync queues an unconditional stress grid write. A tab that fetched its
// page before the last stress update gets the current cards even when the
// session document already matches the model.
func (s *Session) Sync(ctx context.Context) error {
	return s.do(ctx, s.ctrl.SyncStressGrid)
}

// Inspect runs fn on the session goroutine with the controller and waits
// for it to return, for callers that need a consistent read of the UI state.
func (s *Session) Inspect(ctx context.Context, fn func(*Controller)) error {
	finished := make(chan struct{})
	if err := s.do(ctx, func() {
		defer close(finished)
		fn(s.ctrl)
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrSessionClosed
	}
}

// Close stops the loop. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
