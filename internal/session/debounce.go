// ABOUTME: Single-timer debouncer for real-time recalculation
// ABOUTME: Each trigger cancels the outstanding timer before scheduling a new one

package session

import "time"

// DebounceDelay is how long input must be idle before auto-recalculation.
const DebounceDelay = 1000 * time.Millisecond

// Debouncer keeps at most one outstanding timer.
type Debouncer struct {
	delay   time.Duration
	sched   Scheduler
	pending Timer
	seq     uint64
}

// NewDebouncer creates a debouncer with the given delay.
func NewDebouncer(sched Scheduler, delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay, sched: sched}
}

// Trigger restarts the timer. fn runs only if no later Trigger or Stop happens first.
// The returned token identifies this trigger for Current.
func (d *Debouncer) Trigger(fn func(token uint64)) uint64 {
	d.Stop()
	d.seq++
	token := d.seq
	d.pending = d.sched.AfterFunc(d.delay, func() { fn(token) })
	return token
}

// Current reports whether token belongs to the latest trigger. Callbacks that
// were already in flight when a newer Trigger arrived check this and bail.
func (d *Debouncer) Current(token uint64) bool {
	return d.pending != nil && token == d.seq
}

// Done clears the pending timer after its callback ran.
func (d *Debouncer) Done(token uint64) {
	if token == d.seq {
		d.pending = nil
	}
}

// Stop cancels the outstanding timer, if any.
func (d *Debouncer) Stop() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
