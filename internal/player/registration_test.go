package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration_TwoKeysComplete(t *testing.T) {
	var r Registration
	p, _ := r.Handle(KeyDown(65, "a"))
	require.Equal(t, Started, p)
	assert.True(t, r.InFlight())

	p, b := r.Handle(KeyDown(66, "b"))
	require.Equal(t, Completed, p)
	assert.Equal(t, Key(65), b.Left.Key)
	assert.Equal(t, Key(66), b.Right.Key)
	assert.Equal(t, AwaitingLeft, r.Phase())
}

func TestRegistration_SameButtonDoesNotAdvance(t *testing.T) {
	var r Registration
	r.Handle(KeyDown(65, "a"))
	p, _ := r.Handle(KeyDown(65, "a"))
	assert.Equal(t, Ignored, p)
	assert.Equal(t, AwaitingRight, r.Phase())
}

func TestRegistration_OtherDeviceKeepsWaiting(t *testing.T) {
	var r Registration
	r.Handle(MouseDown(MouseLeft))
	p, _ := r.Handle(KeyDown(65, "a"))
	assert.Equal(t, Ignored, p)
	p, _ = r.Handle(MouseDown(MouseLeft))
	assert.Equal(t, Ignored, p)
	p, b := r.Handle(MouseDown(MouseRight))
	assert.Equal(t, Completed, p)
	assert.Equal(t, MouseRight, b.Right.Button)
}

func TestRegistration_JoystickNeedsSamePad(t *testing.T) {
	var r Registration
	r.Handle(JoyButtonDown(0, 1))
	p, _ := r.Handle(JoyButtonDown(1, 2))
	assert.Equal(t, Ignored, p)
	p, _ = r.Handle(JoyButtonDown(0, 2))
	assert.Equal(t, Completed, p)
}

func TestRegistration_IgnoresReleasesAndTakenPads(t *testing.T) {
	r := Registration{JoyTaken: func(joy int) bool { return joy == 3 }}
	p, _ := r.Handle(KeyUp(65))
	assert.Equal(t, Ignored, p)
	p, _ = r.Handle(JoyButtonDown(3, 0))
	assert.Equal(t, Ignored, p)
	p, _ = r.Handle(JoyButtonDown(2, 0))
	assert.Equal(t, Started, p)
}

func TestHoldWatcher_FiresOncePerPress(t *testing.T) {
	h := NewHoldWatcher(1.0)
	out := h.Filter([]Event{KeyDown(65, "a")}, 0.016)
	assert.Len(t, out, 1)

	out = h.Filter(nil, 0.6)
	assert.Empty(t, out)
	out = h.Filter(nil, 0.6)
	require.Len(t, out, 1)
	assert.Equal(t, EventHold, out[0].Kind)
	assert.Equal(t, EventKeyDown, out[0].Orig)
	assert.Equal(t, Key(65), out[0].Key)

	assert.Empty(t, h.Filter(nil, 5))
}

func TestHoldWatcher_ReleaseCancels(t *testing.T) {
	h := NewHoldWatcher(1.0)
	h.Filter([]Event{JoyButtonDown(0, 4)}, 0)
	h.Filter([]Event{JoyButtonUp(0, 4)}, 0.5)
	assert.Empty(t, h.Filter(nil, 2))
}

func TestAxisWatcher_PressAndRelease(t *testing.T) {
	a := NewAxisWatcher(0.8, 0.5)
	out := a.Filter([]Event{JoyAxis(0, 1, 0.6)})
	assert.Empty(t, out)

	out = a.Filter([]Event{JoyAxis(0, 1, 0.9)})
	require.Len(t, out, 1)
	assert.Equal(t, JoyButtonDown(0, VirtualButton(1, true)), out[0])

	out = a.Filter([]Event{JoyAxis(0, 1, 0.6)})
	assert.Empty(t, out, "hysteresis keeps it pressed")

	out = a.Filter([]Event{JoyAxis(0, 1, 0.2), KeyDown(65, "a")})
	require.Len(t, out, 2)
	assert.Equal(t, JoyButtonUp(0, VirtualButton(1, true)), out[0])
	assert.Equal(t, EventKeyDown, out[1].Kind)
}

func TestAxisWatcher_FlipDirection(t *testing.T) {
	a := NewAxisWatcher(0.8, 0.5)
	a.Filter([]Event{JoyAxis(2, 0, -1)})
	out := a.Filter([]Event{JoyAxis(2, 0, 1)})
	require.Len(t, out, 2)
	assert.Equal(t, JoyButtonUp(2, VirtualButton(0, false)), out[0])
	assert.Equal(t, JoyButtonDown(2, VirtualButton(0, true)), out[1])
}

func TestVirtualButton_RoundTrip(t *testing.T) {
	axis, pos, ok := SplitVirtualButton(VirtualButton(3, true))
	assert.True(t, ok)
	assert.Equal(t, 3, axis)
	assert.True(t, pos)
	_, _, ok = SplitVirtualButton(5)
	assert.False(t, ok)
}
