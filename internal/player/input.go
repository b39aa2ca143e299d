package player

// Devices is the polled state of every input device for the current frame.
type Devices interface {
	KeyDown(k Key) bool
	MouseDown(button int) bool
	// JoyButton also answers for virtual axis buttons, see VirtualButton.
	JoyButton(joy, button int) bool
	JoyNamer
}

// JoyNamer looks up connected joysticks.
type JoyNamer interface {
	JoyName(joy int) (name string, ok bool)
}

// Action is what a lobby event means to an already registered controller.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRemove
)

// InputConfig binds a controller to its two controls.
type InputConfig interface {
	// Name is the human readable binding shown in the lobby.
	Name() string
	Device() Device
	// Poll returns the steering intent from the current device state. p is
	// the snake being driven.
	Poll(dev Devices, p Pilot) Turn
	// ParseEvent reports what e means for this binding, ActionNone when it
	// is not one of its controls.
	ParseEvent(e Event) Action
}

func pollPair(left, right bool) Turn {
	switch {
	case left && right:
		return TurnBoth
	case left:
		return TurnLeft
	case right:
		return TurnRight
	}
	return TurnNone
}

type KeyboardConfig struct {
	Label       string
	Left, Right Key
}

func (c *KeyboardConfig) Name() string   { return c.Label }
func (c *KeyboardConfig) Device() Device { return DeviceKeyboard }

func (c *KeyboardConfig) Poll(dev Devices, _ Pilot) Turn {
	return pollPair(dev.KeyDown(c.Left), dev.KeyDown(c.Right))
}

func (c *KeyboardConfig) ParseEvent(e Event) Action {
	if e.Kind == EventHold && e.Orig == EventKeyDown && (e.Key == c.Left || e.Key == c.Right) {
		return ActionRemove
	}
	if e.Kind != EventKeyDown {
		return ActionNone
	}
	switch e.Key {
	case c.Left:
		return ActionLeft
	case c.Right:
		return ActionRight
	}
	return ActionNone
}

type MouseConfig struct {
	Label       string
	Left, Right int
}

func (c *MouseConfig) Name() string   { return c.Label }
func (c *MouseConfig) Device() Device { return DeviceMouse }

func (c *MouseConfig) Poll(dev Devices, _ Pilot) Turn {
	return pollPair(dev.MouseDown(c.Left), dev.MouseDown(c.Right))
}

func (c *MouseConfig) ParseEvent(e Event) Action {
	if e.Kind == EventHold && e.Orig == EventMouseDown && (e.Button == c.Left || e.Button == c.Right) {
		return ActionRemove
	}
	if e.Kind != EventMouseDown {
		return ActionNone
	}
	switch e.Button {
	case c.Left:
		return ActionLeft
	case c.Right:
		return ActionRight
	}
	return ActionNone
}

// JoystickConfig binds two buttons of one joystick. JoyName is kept so a
// saved roster can tell whether the same pad is still plugged in.
type JoystickConfig struct {
	Label       string
	Joy         int
	JoyName     string
	Left, Right int
}

func (c *JoystickConfig) Name() string   { return c.Label }
func (c *JoystickConfig) Device() Device { return DeviceJoystick }

func (c *JoystickConfig) Poll(dev Devices, _ Pilot) Turn {
	return pollPair(dev.JoyButton(c.Joy, c.Left), dev.JoyButton(c.Joy, c.Right))
}

func (c *JoystickConfig) ParseEvent(e Event) Action {
	own := e.Joy == c.Joy && (e.Button == c.Left || e.Button == c.Right)
	if e.Kind == EventHold && e.Orig == EventJoyButtonDown && own {
		return ActionRemove
	}
	if e.Kind != EventJoyButtonDown || e.Joy != c.Joy {
		return ActionNone
	}
	switch e.Button {
	case c.Left:
		return ActionLeft
	case c.Right:
		return ActionRight
	}
	return ActionNone
}

// RobotConfig steers by itself with ultra-simple wall avoidance. It never
// claims lobby events.
type RobotConfig struct {
	Label string
}

func (c *RobotConfig) Name() string            { return c.Label }
func (c *RobotConfig) Device() Device          { return DeviceRobot }
func (c *RobotConfig) ParseEvent(Event) Action { return ActionNone }

func (c *RobotConfig) Poll(_ Devices, p Pilot) Turn {
	if p == nil {
		return TurnNone
	}
	ahead, nearLeft, nearRight := p.RobotWhiskers()
	switch {
	case nearRight || ahead:
		return TurnLeft
	case nearLeft:
		return TurnRight
	}
	return TurnNone
}

// Analog stick deflection is exposed as extra joystick buttons numbered
// from VirtualButtonBase, two per axis.
const VirtualButtonBase = 100

// VirtualButton is the button number for pushing axis toward its negative
// or positive end.
func VirtualButton(axis int, positive bool) int {
	b := VirtualButtonBase + axis*2
	if positive {
		b++
	}
	return b
}

// SplitVirtualButton reverses VirtualButton. ok is false for real buttons.
func SplitVirtualButton(button int) (axis int, positive, ok bool) {
	if button < VirtualButtonBase {
		return 0, false, false
	}
	n := button - VirtualButtonBase
	return n / 2, n%2 == 1, true
}
