package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDevices struct {
	keys  map[Key]bool
	mouse map[int]bool
	joy   map[[2]int]bool
	pads  map[int]string
}

func (d *fakeDevices) KeyDown(k Key) bool      { return d.keys[k] }
func (d *fakeDevices) MouseDown(b int) bool    { return d.mouse[b] }
func (d *fakeDevices) JoyButton(j, b int) bool { return d.joy[[2]int{j, b}] }
func (d *fakeDevices) JoyName(j int) (string, bool) {
	n, ok := d.pads[j]
	return n, ok
}

type fakePilot struct {
	owner     *Controller
	turn      Turn
	ahead     bool
	nearLeft  bool
	nearRight bool
}

func (p *fakePilot) PossessedBy(c *Controller) { p.owner = c }
func (p *fakePilot) SetTurnState(t Turn)       { p.turn = t }
func (p *fakePilot) RobotWhiskers() (bool, bool, bool) {
	return p.ahead, p.nearLeft, p.nearRight
}

func TestKeyboardConfig_Poll(t *testing.T) {
	cfg := &KeyboardConfig{Left: KeyQ, Right: KeyW}
	dev := &fakeDevices{keys: map[Key]bool{}}
	assert.Equal(t, TurnNone, cfg.Poll(dev, nil))
	dev.keys[KeyQ] = true
	assert.Equal(t, TurnLeft, cfg.Poll(dev, nil))
	dev.keys[KeyW] = true
	assert.Equal(t, TurnBoth, cfg.Poll(dev, nil))
	dev.keys[KeyQ] = false
	assert.Equal(t, TurnRight, cfg.Poll(dev, nil))
}

func TestInputConfigs_ParseEvent(t *testing.T) {
	kb := &KeyboardConfig{Left: KeyQ, Right: KeyW}
	assert.Equal(t, ActionLeft, kb.ParseEvent(KeyDown(KeyQ, "q")))
	assert.Equal(t, ActionRight, kb.ParseEvent(KeyDown(KeyW, "w")))
	assert.Equal(t, ActionNone, kb.ParseEvent(KeyDown(KeyX, "x")))
	assert.Equal(t, ActionNone, kb.ParseEvent(KeyUp(KeyQ)))
	assert.Equal(t, ActionRemove, kb.ParseEvent(Event{Kind: EventHold, Orig: EventKeyDown, Key: KeyW}))

	m := &MouseConfig{Left: MouseLeft, Right: MouseRight}
	assert.Equal(t, ActionRight, m.ParseEvent(MouseDown(MouseRight)))
	assert.Equal(t, ActionNone, m.ParseEvent(MouseDown(MouseMiddle)))
	assert.Equal(t, ActionRemove, m.ParseEvent(Event{Kind: EventHold, Orig: EventMouseDown, Button: MouseLeft}))

	j := &JoystickConfig{Joy: 1, Left: 0, Right: 3}
	assert.Equal(t, ActionLeft, j.ParseEvent(JoyButtonDown(1, 0)))
	assert.Equal(t, ActionNone, j.ParseEvent(JoyButtonDown(0, 0)))
	assert.Equal(t, ActionRemove, j.ParseEvent(Event{Kind: EventHold, Orig: EventJoyButtonDown, Joy: 1, Button: 3}))
	assert.Equal(t, ActionNone, j.ParseEvent(Event{Kind: EventHold, Orig: EventJoyButtonDown, Joy: 2, Button: 3}))
}

func TestController_InputDrivesPilot(t *testing.T) {
	c := NewController("Yoda", palColor(0), &MouseConfig{Left: MouseLeft, Right: MouseRight})
	c.Input(&fakeDevices{}) // no pilot yet

	p := &fakePilot{}
	c.Possess(p)
	assert.Same(t, c, p.owner)

	c.Input(&fakeDevices{mouse: map[int]bool{MouseRight: true}})
	assert.Equal(t, TurnRight, p.turn)
}

func TestRobotConfig_AvoidsWalls(t *testing.T) {
	r := &RobotConfig{}
	cases := []struct {
		name                       string
		ahead, nearLeft, nearRight bool
		want                       Turn
	}{
		{"clear", false, false, false, TurnNone},
		{"wall ahead", true, false, false, TurnLeft},
		{"wall right", false, false, true, TurnLeft},
		{"wall left", false, true, false, TurnRight},
		{"boxed", true, true, true, TurnLeft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakePilot{ahead: tc.ahead, nearLeft: tc.nearLeft, nearRight: tc.nearRight}
			assert.Equal(t, tc.want, r.Poll(nil, p))
		})
	}
}

func TestCycle_Next(t *testing.T) {
	c := NewCycle([]string{"a", "b", "c"})
	assert.Equal(t, "a", c.First())
	assert.Equal(t, "b", c.Next("a"))
	assert.Equal(t, "a", c.Next("c"))
	assert.Equal(t, "a", c.Next("zzz"))
	assert.Panics(t, func() { NewCycle([]int{}) })
}
