// Package player owns everything about the people at the keyboard: their
// input bindings, controllers, the check-in lobby and the saved roster.
package player

import "fmt"

// Turn is a snake's steering intent for one frame.
type Turn int

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
	TurnBoth
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnBoth:
		return "both"
	}
	return "none"
}

// Key is a keyboard key code. Values match GLFW key codes so the desktop
// driver can pass them straight through.
type Key int

const (
	KeySpace  Key = 32
	KeyQ      Key = 81
	KeyW      Key = 87
	KeyX      Key = 88
	KeyZ      Key = 90
	KeyEscape Key = 256
	KeyF5     Key = 294
)

// Mouse buttons are numbered from 1.
const (
	MouseLeft   = 1
	MouseRight  = 2
	MouseMiddle = 3
)

type Device int

const (
	DeviceNone Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceJoystick
	DeviceRobot
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceMouse:
		return "Mouse"
	case DeviceJoystick:
		return "Gamepad"
	case DeviceRobot:
		return "Robot"
	}
	return "None"
}

type EventKind int

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventMouseDown
	EventMouseUp
	EventJoyButtonDown
	EventJoyButtonUp
	EventJoyAxis
	// EventHold is synthesized when a press is held long enough. Orig
	// records which kind of press it was.
	EventHold
)

// Event is one discrete input happening, already translated out of the
// windowing library.
type Event struct {
	Kind EventKind
	Orig EventKind

	Key Key
	// Label is a printable name for Key, filled in by the driver.
	Label string

	Button int
	Joy    int
	Axis   int
	Value  float64
}

func KeyDown(k Key, label string) Event {
	return Event{Kind: EventKeyDown, Key: k, Label: label}
}

func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

func MouseDown(button int) Event { return Event{Kind: EventMouseDown, Button: button} }

func MouseUp(button int) Event { return Event{Kind: EventMouseUp, Button: button} }

func JoyButtonDown(joy, button int) Event {
	return Event{Kind: EventJoyButtonDown, Joy: joy, Button: button}
}

func JoyButtonUp(joy, button int) Event {
	return Event{Kind: EventJoyButtonUp, Joy: joy, Button: button}
}

func JoyAxis(joy, axis int, value float64) Event {
	return Event{Kind: EventJoyAxis, Joy: joy, Axis: axis, Value: value}
}

// IsPress reports whether e is a key, mouse button or joystick button going down.
func (e Event) IsPress() bool {
	switch e.Kind {
	case EventKeyDown, EventMouseDown, EventJoyButtonDown:
		return true
	}
	return false
}

// IsKey reports whether e is a key press of k.
func (e Event) IsKey(k Key) bool {
	return e.Kind == EventKeyDown && e.Key == k
}

// Device is the kind of hardware that produced e. Hold events report the
// device of the press they were synthesized from.
func (e Event) Device() Device {
	kind := e.Kind
	if kind == EventHold {
		kind = e.Orig
	}
	switch kind {
	case EventKeyDown, EventKeyUp:
		return DeviceKeyboard
	case EventMouseDown, EventMouseUp:
		return DeviceMouse
	case EventJoyButtonDown, EventJoyButtonUp, EventJoyAxis:
		return DeviceJoystick
	}
	return DeviceNone
}

func (e Event) String() string {
	switch e.Kind {
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("key %d (%s) %s", e.Key, e.Label, upDown(e.Kind == EventKeyDown))
	case EventMouseDown, EventMouseUp:
		return fmt.Sprintf("mouse %d %s", e.Button, upDown(e.Kind == EventMouseDown))
	case EventJoyButtonDown, EventJoyButtonUp:
		return fmt.Sprintf("joy %d button %d %s", e.Joy, e.Button, upDown(e.Kind == EventJoyButtonDown))
	case EventJoyAxis:
		return fmt.Sprintf("joy %d axis %d = %.2f", e.Joy, e.Axis, e.Value)
	case EventHold:
		o := e
		o.Kind = e.Orig
		return "hold " + o.String()
	}
	return "none"
}

func upDown(down bool) string {
	if down {
		return "down"
	}
	return "up"
}

// sameControl reports whether a and b refer to the same physical control,
// ignoring whether they are presses or releases.
func sameControl(a, b Event) bool {
	if a.Device() != b.Device() {
		return false
	}
	switch a.Device() {
	case DeviceKeyboard:
		return a.Key == b.Key
	case DeviceMouse:
		return a.Button == b.Button
	case DeviceJoystick:
		return a.Joy == b.Joy && a.Button == b.Button
	}
	return false
}
