// Package debounce coalesces bursts of input into a single action.
//
// A Debouncer delays a call until its input has been quiet for a fixed
// window; every new trigger restarts the window and replaces the pending
// value. A Sequencer hands out increasing tokens so that a response which
// arrives after a newer request was issued can be recognized and dropped.
//
// Example usage:
//
//	d := debounce.New(250*time.Millisecond, func(q string) {
//	    results, _ := client.Search(ctx, q)
//	    render(results)
//	})
//	defer d.Stop()
//
//	for key := range keystrokes {
//	    d.Trigger(currentInput())
//	}
package debounce

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultWindow is the quiet window used by search-as-you-type.
const DefaultWindow = 250 * time.Millisecond

// Debouncer runs fn with the latest value once triggers stop for window.
// It is safe for concurrent use; fn never runs concurrently with itself.
type Debouncer[T any] struct {
	window time.Duration
	fn     func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	gen     uint64
	armed   bool
	stopped bool

	run sync.Mutex
}

// New creates a debouncer. A non-positive window uses DefaultWindow.
func New[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer[T]{window: window, fn: fn}
}

// Trigger records v and restarts the quiet window.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = v
	d.armed = true
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// Flush cancels the pending window and runs fn now with v, as an explicit
// submit does.
func (d *Debouncer[T]) Flush(v T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
	d.mu.Unlock()

	d.call(v)
}

// Stop cancels any pending call. Later triggers are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Pending reports whether a call is waiting for the window to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// fire runs the call armed by trigger generation gen, unless a newer
// trigger superseded it.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.armed || d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	d.mu.Unlock()

	d.call(v)
}

func (d *Debouncer[T]) call(v T) {
	d.run.Lock()
	defer d.run.Unlock()
	d.fn(v)
}

// Sequencer issues monotonically increasing request tokens.
type Sequencer struct {
	last atomic.Uint64
}

// Next returns a token newer than every earlier one.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// IsLatest reports whether token is the newest issued.
func (s *Sequencer) IsLatest(token uint64) bool {
	return s.last.Load() == token
}
