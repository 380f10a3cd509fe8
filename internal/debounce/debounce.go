// Package debounce runs the latest of a burst of values after a settling delay.
//
// Every Schedule call cancels the task scheduled before it, so only the most
// recent value is delivered (last write wins). Cancellation is explicit: each
// task owns a context that is cancelled when a newer value supersedes it, when
// Stop is called, or when the parent context ends. A task that is already
// running sees its context cancelled and should discard its result.
package debounce

import (
	"context"
	"sync"
	"time"
)

// Debouncer delays and coalesces values of type T.
type Debouncer[T any] struct {
	parent context.Context
	delay  time.Duration
	fn     func(context.Context, T)

	mu      sync.Mutex
	pending *task[T]
	running *task[T]
	stopped bool
	wg      sync.WaitGroup
}

// task is one scheduled invocation.
type task[T any] struct {
	value  T
	ctx    context.Context
	cancel context.CancelFunc
	timer  *time.Timer
}

// New returns a Debouncer that calls fn with the latest value once delay has
// passed without a newer Schedule call. Tasks inherit ctx.
func New[T any](ctx context.Context, delay time.Duration, fn func(context.Context, T)) *Debouncer[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	if delay < 0 {
		delay = 0
	}
	return &Debouncer[T]{parent: ctx, delay: delay, fn: fn}
}

// Schedule replaces any pending value with v and restarts the delay. It
// returns false once the Debouncer is stopped.
func (d *Debouncer[T]) Schedule(v T) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || d.parent.Err() != nil {
		return false
	}
	d.cancelLocked()
	ctx, cancel := context.WithCancel(d.parent)
	t := &task[T]{value: v, ctx: ctx, cancel: cancel}
	d.pending = t
	d.wg.Add(1)
	t.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.run(t)
	})
	return true
}

// Flush runs the pending value now instead of waiting for the delay. It
// reports whether there was a pending value.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	t := d.pending
	if t == nil || !t.timer.Stop() {
		d.mu.Unlock()
		return false
	}
	d.mu.Unlock()
	defer d.wg.Done()
	d.run(t)
	return true
}

// Pending reports whether a value is waiting for its delay.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop cancels pending and running tasks and waits for them to return.
// Later Schedule calls are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.cancelLocked()
	d.mu.Unlock()
	d.wg.Wait()
}

// cancelLocked cancels the pending and running tasks. d.mu must be held.
func (d *Debouncer[T]) cancelLocked() {
	if t := d.pending; t != nil {
		t.cancel()
		if t.timer.Stop() {
			d.wg.Done()
		}
		d.pending = nil
	}
	if t := d.running; t != nil {
		t.cancel()
		d.running = nil
	}
}

// run invokes fn for t unless t was superseded.
func (d *Debouncer[T]) run(t *task[T]) {
	d.mu.Lock()
	if d.pending != t || t.ctx.Err() != nil {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.running = t
	d.mu.Unlock()

	d.fn(t.ctx, t.value)

	d.mu.Lock()
	if d.running == t {
		d.running = nil
	}
	d.mu.Unlock()
	t.cancel()
}
