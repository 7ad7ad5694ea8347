package search

import (
	"sync"
	"time"
)

const (
	defaultDebounceDelay  = 300 * time.Millisecond
	defaultMinQueryLength = 2
)

// Debouncer converts raw keystroke input into a rate-limited lookup
// trigger: at most one fire per quiet period, always with the last observed
// value. Scheduling a new timer cancels and discards any previous handle,
// so two timers never fire for overlapping input.
type Debouncer struct {
	delay     time.Duration
	minLength int
	fire      func(query string)
	clear     func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer wires the two outcomes of observing a keystroke: fire runs
// with the final query after the quiet period, clear runs immediately when
// the query drops below the length gate.
func NewDebouncer(delay time.Duration, fire func(string), clear func()) *Debouncer {
	if delay <= 0 {
		delay = defaultDebounceDelay
	}
	return &Debouncer{
		delay:     delay,
		minLength: defaultMinQueryLength,
		fire:      fire,
		clear:     clear,
	}
}

// Observe registers the latest query value. Last write wins: any pending
// fire is discarded before the new one is scheduled.
func (d *Debouncer) Observe(query string) {
	d.mu.Lock()
	d.stopLocked()

	if len(query) < d.minLength {
		d.mu.Unlock()
		if d.clear != nil {
			d.clear()
		}
		return
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(query)
	})
	d.mu.Unlock()
}

// Cancel discards any pending fire without clearing.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	d.stopLocked()
	d.mu.Unlock()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
