package calendar

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single callback after
// a quiet window, so rapid filter adjustments don't each hit the
// network. The callback runs on a timer goroutine.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	fn     func()
	timer  *time.Timer
}

// NewDebouncer builds a debouncer invoking fn after window of quiet.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	if window <= 0 {
		window = 300 * time.Millisecond
	}
	return &Debouncer{window: window, fn: fn}
}

// Trigger schedules the callback, resetting the quiet window if one is
// already pending.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
