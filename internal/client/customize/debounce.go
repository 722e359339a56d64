// Package customize holds the in-progress customization of a QR code while
// the user is editing it.
package customize

import (
	"sync"
	"time"
)

// DefaultWindow is the settle time before a numeric input is committed
const DefaultWindow = 300 * time.Millisecond

// Debouncer runs only the last action triggered within a settle window.
type Debouncer struct {
	timer   *time.Timer
	pending func()
	window  time.Duration
	gen     uint64
	mu      sync.Mutex
	stopped bool
}

// NewDebouncer creates a debouncer; a non-positive window uses DefaultWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn, replacing any pending action and restarting the window.
// Trigger after Stop does nothing.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// таймер мог сработать уже после Stop или нового Trigger
	if d.stopped || gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Flush runs the pending action now, if any. It reports whether one ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.stopped || d.pending == nil {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	fn()
	return true
}

// Pending reports whether an action is waiting for the window to pass.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop cancels the pending action. Once Stop returns no pending action runs.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
