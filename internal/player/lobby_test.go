package player

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

func palColor(i int) playfield.Color {
	return playfield.PlayerColors(config.Default().Player.Colors)[i]
}

type mockSound struct{ mock.Mock }

func newMockSound() *mockSound {
	m := &mockSound{}
	m.On("Play", mock.Anything).Return()
	return m
}

func (m *mockSound) Play(c sound.Cue) { m.Called(c) }

func (m *mockSound) played() []sound.Cue {
	var cues []sound.Cue
	for _, call := range m.Calls {
		cues = append(cues, call.Arguments.Get(0).(sound.Cue))
	}
	return cues
}

func (m *mockSound) count(c sound.Cue) int {
	n := 0
	for _, p := range m.played() {
		if p == c {
			n++
		}
	}
	return n
}

func setupLobby(t *testing.T, opts ...func(*LobbyOptions)) (*Lobby, *mockSound) {
	t.Helper()
	cfg := config.Default()
	cfg.Debug.FastStart = true
	rec := newMockSound()
	o := LobbyOptions{
		Settings: cfg,
		Sound:    rec,
		Log:      zerolog.Nop(),
		Rand:     geom.NewRand(7),
		Joys:     &fakeDevices{pads: map[int]string{0: " Pad "}},
	}
	for _, fn := range opts {
		fn(&o)
	}
	l := NewLobby(o)
	require.False(t, l.Update(0.3, nil))
	require.True(t, l.InputEnabled())
	return l, rec
}

// tap is a press followed by its release.
func tap(e Event) []Event {
	up := e
	switch e.Kind {
	case EventKeyDown:
		up.Kind = EventKeyUp
	case EventMouseDown:
		up.Kind = EventMouseUp
	case EventJoyButtonDown:
		up.Kind = EventJoyButtonUp
	default:
		return []Event{e}
	}
	return []Event{e, up}
}

func register(t *testing.T, l *Lobby, left, right Event) *Controller {
	t.Helper()
	n := len(l.Players())
	l.Update(0.1, tap(left))
	l.Update(0.1, tap(right))
	require.Len(t, l.Players(), n+1)
	return l.Players()[n]
}

func TestLobby_InputDisabledAtFirst(t *testing.T) {
	cfg := config.Default()
	l := NewLobby(LobbyOptions{Settings: cfg, Log: zerolog.Nop(), Rand: geom.NewRand(1)})
	l.Update(1, []Event{KeyDown(65, "a"), KeyDown(66, "b")})
	assert.False(t, l.InputEnabled())
	assert.Empty(t, l.Players())
	assert.Equal(t, AwaitingLeft, l.reg.Phase())
}

func TestLobby_RegistersKeyboardPlayer(t *testing.T) {
	l, rec := setupLobby(t)
	assert.Equal(t, HeaderAddPlayer, l.Header())
	assert.Empty(t, l.Instructions())

	l.Update(0.1, tap(KeyDown(65, "a")))
	assert.Contains(t, l.Header(), "on the Keyboard to be the player's RIGHT control")

	l.Update(0.1, tap(KeyDown(265, "up")))
	require.Len(t, l.Players(), 1)
	c := l.Players()[0]
	assert.Equal(t, "Keyboard A / Up", c.Config.Name())
	assert.Contains(t, config.Default().Player.Names, c.Name)
	assert.Equal(t, []sound.Cue{sound.Select, sound.Blip}, rec.played())
	assert.Equal(t, Instructions, l.Instructions())
}

func TestKeyLabel_TitleCase(t *testing.T) {
	assert.Equal(t, "Left Shift", keyLabel(KeyDown(340, "left shift")))
	assert.Equal(t, "Page Up", keyLabel(KeyDown(266, "PAGE UP")))
	assert.Equal(t, "Kp 5", keyLabel(KeyDown(325, " kp 5 ")))
	assert.Equal(t, "???", keyLabel(KeyDown(0, "  ")))
}

func TestLobby_ReservedKeysAreNeverControls(t *testing.T) {
	l, rec := setupLobby(t)
	started := l.Update(0.1, []Event{KeyDown(KeySpace, " "), KeyDown(KeyEscape, ""), KeyDown(KeyF5, "")})
	assert.False(t, started)
	assert.False(t, l.reg.InFlight())
	assert.Equal(t, 3, rec.count(sound.Reject))
}

func TestLobby_F5RemovesBottomPlayer(t *testing.T) {
	l, _ := setupLobby(t)
	first := register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))
	register(t, l, KeyDown(67, "c"), KeyDown(68, "d"))

	l.Update(0.1, []Event{KeyDown(KeyF5, "")})
	require.Len(t, l.Players(), 1)
	assert.Same(t, first, l.Players()[0])
}

func TestLobby_F5WaitsForRegistration(t *testing.T) {
	l, rec := setupLobby(t)
	register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))
	l.Update(0.1, tap(MouseDown(MouseLeft)))
	require.True(t, l.reg.InFlight())

	l.Update(0.1, []Event{KeyDown(KeyF5, "")})
	assert.Len(t, l.Players(), 1)
	assert.True(t, l.reg.InFlight())
	assert.Equal(t, 1, rec.count(sound.Reject))
}

func TestLobby_CycleNameAndColor(t *testing.T) {
	l, _ := setupLobby(t)
	c := register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))
	names := NewCycle(config.Default().Player.Names)
	colors := NewCycle(playfield.PlayerColors(config.Default().Player.Colors))

	name, col := c.Name, c.Color
	l.Update(0.5, tap(KeyDown(65, "a")))
	assert.Equal(t, names.Next(name), c.Name)
	l.Update(0.5, tap(KeyDown(66, "b")))
	assert.Equal(t, colors.Next(col), c.Color)
}

func TestLobby_CyclingIsThrottled(t *testing.T) {
	l, _ := setupLobby(t)
	c := register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))
	names := NewCycle(config.Default().Player.Names)

	name := c.Name
	var burst []Event
	for range 3 {
		burst = append(burst, tap(KeyDown(65, "a"))...)
	}
	l.Update(0.5, burst)
	assert.Equal(t, names.Next(name), c.Name)
	assert.Len(t, l.Players(), 1, "throttled presses are still claimed")
}

func TestLobby_HoldRemovesPlayer(t *testing.T) {
	l, rec := setupLobby(t)
	register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))

	l.Update(0.5, []Event{KeyDown(65, "a")})
	l.Update(0.6, nil)
	assert.Len(t, l.Players(), 1)
	l.Update(0.6, nil)
	assert.Empty(t, l.Players())
	assert.Equal(t, 1, rec.count(sound.Reject))
}

func TestLobby_StartRules(t *testing.T) {
	l, _ := setupLobby(t)
	assert.ErrorIs(t, l.CanStart(), ErrNoPlayers)
	assert.False(t, l.Update(0.1, []Event{KeyDown(KeySpace, " ")}))

	a := register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))
	b := register(t, l, KeyDown(67, "c"), KeyDown(68, "d"))
	b.Color = a.Color
	assert.ErrorIs(t, l.CanStart(), ErrDuplicateColors)
	assert.False(t, l.Update(0.1, []Event{KeyDown(KeySpace, " ")}))
	assert.Equal(t, duplicateColorsMessage, l.Message())
	l.Update(3.0, nil)
	assert.Empty(t, l.Message())

	b.Color = palColor(13)
	if a.Color == b.Color {
		b.Color = palColor(12)
	}
	l.Update(0.1, tap(KeyDown(69, "e")))
	assert.ErrorIs(t, l.CanStart(), ErrRegistrationInFlight)
	l.reg.Reset()

	assert.True(t, l.Update(0.1, []Event{KeyDown(KeySpace, " ")}))
	assert.Equal(t, 0, a.Index)
	assert.Equal(t, 1, b.Index)
}

func TestLobby_DuplicateColorsAllowedWhenConfigured(t *testing.T) {
	l, _ := setupLobby(t, func(o *LobbyOptions) { o.Settings.Player.RequireUniqueColors = false })
	a := register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))
	b := register(t, l, KeyDown(67, "c"), KeyDown(68, "d"))
	b.Color = a.Color
	assert.NoError(t, l.CanStart())
}

func TestLobby_JoystickRegistration(t *testing.T) {
	l, _ := setupLobby(t)
	l.Update(0.1, tap(JoyButtonDown(0, 1)))
	assert.Contains(t, l.Header(), "Gamepad Pad #0")
	l.Update(0.1, tap(JoyButtonDown(0, 2)))
	require.Len(t, l.Players(), 1)

	jc, ok := l.Players()[0].Config.(*JoystickConfig)
	require.True(t, ok)
	assert.Equal(t, "Gamepad #1 - Pad 1/2", jc.Label)
	assert.Equal(t, " Pad ", jc.JoyName)

	// one player per pad: other buttons on it no longer register anyone
	l.Update(0.1, []Event{JoyButtonDown(0, 5)})
	assert.False(t, l.reg.InFlight())
}

func TestLobby_AxisActsAsButton(t *testing.T) {
	l, _ := setupLobby(t)
	l.Update(0.1, []Event{JoyAxis(0, 0, -0.95)})
	require.True(t, l.reg.InFlight())
	l.Update(0.1, []Event{JoyAxis(0, 0, 0), JoyAxis(0, 0, 0.95)})
	require.Len(t, l.Players(), 1)
	jc := l.Players()[0].Config.(*JoystickConfig)
	assert.Equal(t, VirtualButton(0, false), jc.Left)
	assert.Equal(t, VirtualButton(0, true), jc.Right)
}

func TestLobby_NewPlayersPreferUnusedColors(t *testing.T) {
	l, _ := setupLobby(t)
	seen := map[playfield.Color]bool{}
	for i := range 14 {
		c := register(t, l, KeyDown(Key(65+2*i), "x"), KeyDown(Key(66+2*i), "y"))
		assert.False(t, seen[c.Color], "color reused while free ones remain")
		seen[c.Color] = true
	}
	c := register(t, l, KeyDown(300, "x"), KeyDown(301, "y"))
	assert.True(t, seen[c.Color])
}

func TestLobby_DebugAndRobots(t *testing.T) {
	l, _ := setupLobby(t)
	l.AddDebugPlayers()
	r := l.AddRobot()
	ps := l.Players()
	require.Len(t, ps, 4)
	assert.Equal(t, "FirstSnake", ps[0].Name)
	assert.Equal(t, palColor(2), ps[1].Color)
	assert.Equal(t, DeviceMouse, ps[2].Config.Device())
	assert.True(t, r.IsRobot())
	assert.Equal(t, "Robot #1", r.Config.Name())
}

func TestLobby_StartSavesRoster(t *testing.T) {
	store := &RosterStore{Path: filepath.Join(t.TempDir(), "roster")}
	l, _ := setupLobby(t, func(o *LobbyOptions) { o.Roster = store })
	register(t, l, KeyDown(65, "a"), KeyDown(66, "b"))
	register(t, l, JoyButtonDown(0, 0), JoyButtonDown(0, 1))
	l.AddRobot()
	l.Start()

	loaded, err := store.Load(&fakeDevices{pads: map[int]string{0: " Pad "}})
	require.NoError(t, err)
	want := l.Players()[:2]
	opts := cmp.Options{
		cmpopts.IgnoreUnexported(Controller{}),
		cmpopts.IgnoreFields(Controller{}, "Index"),
	}
	if diff := cmp.Diff(want, loaded, opts); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestRosterStore_MissingPadFailsLoad(t *testing.T) {
	store := RosterStore{Path: filepath.Join(t.TempDir(), "roster")}
	c := NewController("Zeus", palColor(1), &JoystickConfig{Label: "pad", Joy: 2, JoyName: "Pad", Left: 0, Right: 1})
	require.NoError(t, store.Save([]*Controller{c}))

	_, err := store.Load(&fakeDevices{pads: map[int]string{2: "Other"}})
	assert.ErrorIs(t, err, ErrJoystickMissing)
	_, err = store.Load(nil)
	assert.ErrorIs(t, err, ErrJoystickMissing)
}

func TestRosterStore_MissingFile(t *testing.T) {
	store := RosterStore{Path: filepath.Join(t.TempDir(), "nope")}
	_, err := store.Load(nil)
	assert.Error(t, err)
}

func TestLobby_SoundsThroughMock(t *testing.T) {
	snd := &mockSound{}
	snd.On("Play", sound.Select).Once()
	snd.On("Play", sound.Blip).Once()
	l, _ := setupLobby(t, func(o *LobbyOptions) { o.Sound = snd })
	register(t, l, MouseDown(MouseLeft), MouseDown(MouseRight))
	snd.AssertExpectations(t)
}
