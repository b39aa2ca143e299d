package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"arcarena/internal/player"
)

// Input turns GLFW callbacks and joystick polling into the lobby's event
// stream and the per-frame device state rounds poll. It implements
// player.Devices.
type Input struct {
	window   *glfw.Window
	joyMax   int
	deadzone float64

	events []player.Event

	prevButtons map[glfw.Joystick][]glfw.Action
	prevAxes    map[glfw.Joystick][]float32
}

func NewInput(window *glfw.Window, joyMax int, deadzone float64) *Input {
	in := &Input{
		window:      window,
		joyMax:      min(joyMax, int(glfw.JoystickLast)+1),
		deadzone:    deadzone,
		prevButtons: make(map[glfw.Joystick][]glfw.Action),
		prevAxes:    make(map[glfw.Joystick][]float32),
	}
	window.SetKeyCallback(in.onKey)
	window.SetMouseButtonCallback(in.onMouse)
	return in
}

func (in *Input) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		in.events = append(in.events, player.KeyDown(player.Key(key), keyLabel(key, scancode)))
	case glfw.Release:
		in.events = append(in.events, player.KeyUp(player.Key(key)))
	}
}

func (in *Input) onMouse(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		in.events = append(in.events, player.MouseDown(int(btn)+1))
	case glfw.Release:
		in.events = append(in.events, player.MouseUp(int(btn)+1))
	}
}

// Events polls joysticks and returns everything that happened since the
// last call.
func (in *Input) Events() []player.Event {
	in.pollJoysticks()
	out := in.events
	in.events = in.events[:0:0]
	return out
}

func (in *Input) pollJoysticks() {
	for j := range in.joyMax {
		joy := glfw.Joystick(j)
		if !joy.Present() {
			delete(in.prevButtons, joy)
			delete(in.prevAxes, joy)
			continue
		}
		buttons := joy.GetButtons()
		prev := in.prevButtons[joy]
		for b, act := range buttons {
			was := b < len(prev) && prev[b] == glfw.Press
			switch {
			case act == glfw.Press && !was:
				in.events = append(in.events, player.JoyButtonDown(j, b))
			case act != glfw.Press && was:
				in.events = append(in.events, player.JoyButtonUp(j, b))
			}
		}
		in.prevButtons[joy] = append(prev[:0], buttons...)

		axes := joy.GetAxes()
		prevAxes := in.prevAxes[joy]
		for a, v := range axes {
			if a < len(prevAxes) && prevAxes[a] == v {
				continue
			}
			in.events = append(in.events, player.JoyAxis(j, a, float64(v)))
		}
		in.prevAxes[joy] = append(prevAxes[:0], axes...)
	}
}

// KeyDown implements player.Devices.
func (in *Input) KeyDown(k player.Key) bool {
	return in.window.GetKey(glfw.Key(k)) == glfw.Press
}

// MouseDown implements player.Devices.
func (in *Input) MouseDown(button int) bool {
	return in.window.GetMouseButton(glfw.MouseButton(button-1)) == glfw.Press
}

// JoyButton implements player.Devices. Virtual axis buttons count as held
// while the stick is past the dead zone in their direction.
func (in *Input) JoyButton(joy, button int) bool {
	j := glfw.Joystick(joy)
	if joy < 0 || joy >= in.joyMax || !j.Present() {
		return false
	}
	if axis, positive, ok := player.SplitVirtualButton(button); ok {
		axes := j.GetAxes()
		if axis >= len(axes) {
			return false
		}
		v := float64(axes[axis])
		if !positive {
			v = -v
		}
		return v > in.deadzone
	}
	buttons := j.GetButtons()
	return button < len(buttons) && buttons[button] == glfw.Press
}

// JoyName implements player.JoyNamer.
func (in *Input) JoyName(joy int) (string, bool) {
	j := glfw.Joystick(joy)
	if joy < 0 || joy > int(glfw.JoystickLast) || !j.Present() {
		return "", false
	}
	return j.GetName(), true
}

var specialKeys = map[glfw.Key]string{
	glfw.KeySpace:        "space",
	glfw.KeyEnter:        "enter",
	glfw.KeyTab:          "tab",
	glfw.KeyBackspace:    "backspace",
	glfw.KeyLeft:         "left",
	glfw.KeyRight:        "right",
	glfw.KeyUp:           "up",
	glfw.KeyDown:         "down",
	glfw.KeyLeftShift:    "left shift",
	glfw.KeyRightShift:   "right shift",
	glfw.KeyLeftControl:  "left ctrl",
	glfw.KeyRightControl: "right ctrl",
	glfw.KeyLeftAlt:      "left alt",
	glfw.KeyRightAlt:     "right alt",
	glfw.KeyInsert:       "insert",
	glfw.KeyDelete:       "delete",
	glfw.KeyHome:         "home",
	glfw.KeyEnd:          "end",
	glfw.KeyPageUp:       "page up",
	glfw.KeyPageDown:     "page down",
	glfw.KeyEscape:       "escape",
}

func keyLabel(key glfw.Key, scancode int) string {
	if s, ok := specialKeys[key]; ok {
		return s
	}
	if key >= glfw.KeyKP0 && key <= glfw.KeyKP9 {
		return fmt.Sprintf("keypad %d", key-glfw.KeyKP0)
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF25 {
		return fmt.Sprintf("f%d", key-glfw.KeyF1+1)
	}
	return glfw.GetKeyName(key, scancode)
}
