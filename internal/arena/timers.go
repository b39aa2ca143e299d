package arena

import "slices"

type timer struct {
	at  float64
	seq int
	fn  func()
}

// Timers runs one-shot callbacks after a delay of game time. A round owns
// its Timers, so anything still pending when the round is thrown away never
// fires.
type Timers struct {
	now     float64
	seq     int
	pending []timer
}

// After schedules fn to run once delay seconds have elapsed.
func (t *Timers) After(delay float64, fn func()) {
	t.seq++
	t.pending = append(t.pending, timer{at: t.now + delay, seq: t.seq, fn: fn})
}

// Step advances the clock and runs every due callback in deadline order.
// Callbacks scheduled from inside a callback wait for the next Step.
func (t *Timers) Step(dt float64) {
	t.now += dt
	var due []timer
	kept := t.pending[:0]
	for _, tm := range t.pending {
		if tm.at <= t.now {
			due = append(due, tm)
		} else {
			kept = append(kept, tm)
		}
	}
	t.pending = kept
	if len(due) == 0 {
		return
	}
	slices.SortFunc(due, func(a, b timer) int {
		switch {
		case a.at < b.at:
			return -1
		case a.at > b.at:
			return 1
		}
		return a.seq - b.seq
	})
	for _, tm := range due {
		tm.fn()
	}
}

func (t *Timers) Len() int { return len(t.pending) }

func (t *Timers) Clear() { t.pending = nil }
