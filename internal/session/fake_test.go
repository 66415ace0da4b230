// ABOUTME: Deterministic scheduler and recording presenter for session tests
// ABOUTME: Virtual clock fires callbacks in due order as time is advanced

package session

import (
	"sort"
	"time"

	"github.com/harper/bmi/internal/models"
)

type fakeTimer struct {
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler keeps a virtual clock starting at zero.
type fakeScheduler struct {
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.seq++
	t := &fakeTimer{due: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward, firing every timer that comes due, including
// timers scheduled by callbacks during the advance.
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.fired = true
		next.fn()
	}
	s.now = target
}

func (s *fakeScheduler) nextDue(limit time.Duration) *fakeTimer {
	var live []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.due <= limit {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due == live[j].due {
			return live[i].seq < live[j].seq
		}
		return live[i].due < live[j].due
	})
	return live[0]
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// recordingPresenter captures everything rendered.
type recordingPresenter struct {
	results []View
	clears  int
	history []models.HistoryEntry
	toasts  []Toast
	current *View
}

func (p *recordingPresenter) RenderResult(v View) {
	p.results = append(p.results, v)
	p.current = &v
}

func (p *recordingPresenter) ClearResult() {
	p.clears++
	p.current = nil
}

func (p *recordingPresenter) RenderHistory(entries []models.HistoryEntry) {
	p.history = entries
}

func (p *recordingPresenter) RenderToasts(toasts []Toast) {
	p.toasts = toasts
}
