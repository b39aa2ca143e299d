package player

import "math"

type heldPress struct {
	press Event
	t     float64
	fired bool
}

// HoldWatcher turns presses that stay down for Threshold seconds into a
// single EventHold each.
type HoldWatcher struct {
	Threshold float64

	held []heldPress
}

func NewHoldWatcher(threshold float64) *HoldWatcher {
	return &HoldWatcher{Threshold: threshold}
}

// Filter passes events through and appends any hold events that matured
// this frame. Presses seen in this batch start their clock next frame.
func (h *HoldWatcher) Filter(events []Event, dt float64) []Event {
	out := append([]Event(nil), events...)
	for i := range h.held {
		hp := &h.held[i]
		hp.t += dt
		if !hp.fired && hp.t >= h.Threshold {
			hp.fired = true
			ev := hp.press
			ev.Orig = ev.Kind
			ev.Kind = EventHold
			out = append(out, ev)
		}
	}
	for _, e := range events {
		switch e.Kind {
		case EventKeyDown, EventMouseDown, EventJoyButtonDown:
			h.release(e)
			h.held = append(h.held, heldPress{press: e})
		case EventKeyUp, EventMouseUp, EventJoyButtonUp:
			h.release(e)
		}
	}
	return out
}

func (h *HoldWatcher) release(e Event) {
	kept := h.held[:0]
	for _, hp := range h.held {
		if !sameControl(hp.press, e) {
			kept = append(kept, hp)
		}
	}
	h.held = kept
}

// Reset forgets every held control.
func (h *HoldWatcher) Reset() { h.held = h.held[:0] }

type axisKey struct{ joy, axis int }

// AxisWatcher turns analog stick motion into presses and releases of
// virtual joystick buttons. An axis presses once it passes Press and
// releases once it falls back under Release.
type AxisWatcher struct {
	Press, Release float64

	state map[axisKey]int
}

func NewAxisWatcher(press, release float64) *AxisWatcher {
	return &AxisWatcher{Press: press, Release: release, state: make(map[axisKey]int)}
}

// Filter replaces axis events by virtual button events. Other events pass
// through in order.
func (a *AxisWatcher) Filter(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Kind != EventJoyAxis {
			out = append(out, e)
			continue
		}
		k := axisKey{e.Joy, e.Axis}
		dir := a.state[k]
		if dir != 0 && math.Abs(e.Value) < a.Release || dir > 0 && e.Value < 0 || dir < 0 && e.Value > 0 {
			out = append(out, JoyButtonUp(e.Joy, VirtualButton(e.Axis, dir > 0)))
			dir = 0
		}
		if dir == 0 && math.Abs(e.Value) >= a.Press {
			dir = 1
			if e.Value < 0 {
				dir = -1
			}
			out = append(out, JoyButtonDown(e.Joy, VirtualButton(e.Axis, dir > 0)))
		}
		a.state[k] = dir
	}
	return out
}
