package player

// Phase of the two-press check-in of a new player.
type Phase int

const (
	AwaitingLeft Phase = iota
	AwaitingRight
)

// Progress is what one event did to a registration.
type Progress int

const (
	Ignored Progress = iota
	Started
	Completed
)

// Binding is a finished registration: the two presses that become the new
// player's LEFT and RIGHT controls.
type Binding struct {
	Left, Right Event
}

// Registration binds a new device to a new player. It is driven one event
// at a time and never blocks: the first qualifying press is remembered as
// LEFT, a later press of a different control on the same device completes
// it as RIGHT.
type Registration struct {
	// JoyTaken, when set, excludes joysticks that already belong to a
	// player from starting a registration.
	JoyTaken func(joy int) bool

	phase Phase
	left  Event
}

func (r *Registration) Phase() Phase { return r.phase }

// InFlight reports whether a LEFT control has been captured.
func (r *Registration) InFlight() bool { return r.phase == AwaitingRight }

// Pending is the captured LEFT press while in flight.
func (r *Registration) Pending() Event { return r.left }

// Reset abandons a registration in flight.
func (r *Registration) Reset() {
	r.phase = AwaitingLeft
	r.left = Event{}
}

// Handle advances the registration by one event.
func (r *Registration) Handle(e Event) (Progress, Binding) {
	switch r.phase {
	case AwaitingLeft:
		if !e.IsPress() {
			return Ignored, Binding{}
		}
		if e.Kind == EventJoyButtonDown && r.JoyTaken != nil && r.JoyTaken(e.Joy) {
			return Ignored, Binding{}
		}
		r.left = e
		r.phase = AwaitingRight
		return Started, Binding{}

	case AwaitingRight:
		if !completes(r.left, e) {
			return Ignored, Binding{}
		}
		b := Binding{Left: r.left, Right: e}
		r.Reset()
		return Completed, b
	}
	return Ignored, Binding{}
}

// completes reports whether next is a press on the same device as left
// using a different control.
func completes(left, next Event) bool {
	if !next.IsPress() || next.Kind != left.Kind {
		return false
	}
	switch next.Kind {
	case EventKeyDown:
		return next.Key != left.Key
	case EventMouseDown:
		return next.Button != left.Button
	case EventJoyButtonDown:
		return next.Joy == left.Joy && next.Button != left.Button
	}
	return false
}
