package player

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"arcarena/internal/playfield"
)

const rosterVersion = 1

var (
	// ErrJoystickMissing means a saved player's gamepad is not connected
	// any more, or a different pad now sits at its index.
	ErrJoystickMissing = errors.New("saved joystick not connected")
	ErrRosterVersion   = errors.New("unsupported roster version")
)

type rosterFile struct {
	Version int           `msgpack:"version"`
	Players []rosterEntry `msgpack:"players"`
}

// rosterEntry stores a device by identity, never by live handle.
type rosterEntry struct {
	Name     string          `msgpack:"name"`
	ColorIdx playfield.Index `msgpack:"color_idx"`
	RGB      [3]uint8        `msgpack:"rgb"`
	Device   Device          `msgpack:"device"`
	Label    string          `msgpack:"label"`
	Left     int             `msgpack:"left"`
	Right    int             `msgpack:"right"`
	Joy      int             `msgpack:"joy,omitempty"`
	JoyName  string          `msgpack:"joy_name,omitempty"`
}

// RosterStore saves the player list between matches.
type RosterStore struct {
	Path string
}

// Save writes every human controller. Robots are recreated from settings
// at start-up so they are not saved.
func (s RosterStore) Save(ctrls []*Controller) error {
	f := rosterFile{Version: rosterVersion}
	for _, c := range ctrls {
		e, ok := toEntry(c)
		if !ok {
			continue
		}
		f.Players = append(f.Players, e)
	}
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}

// Load reads the saved roster and reattaches joystick bindings to the pads
// now connected. Any entry that cannot be resolved fails the whole load.
func (s RosterStore) Load(joys JoyNamer) ([]*Controller, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var f rosterFile
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if f.Version != rosterVersion {
		return nil, fmt.Errorf("%w: %d", ErrRosterVersion, f.Version)
	}
	ctrls := make([]*Controller, 0, len(f.Players))
	for i, e := range f.Players {
		c, err := fromEntry(e, joys)
		if err != nil {
			return nil, fmt.Errorf("player %d (%s): %w", i, e.Name, err)
		}
		ctrls = append(ctrls, c)
	}
	return ctrls, nil
}

func toEntry(c *Controller) (rosterEntry, bool) {
	e := rosterEntry{
		Name:     c.Name,
		ColorIdx: c.Color.Idx,
		RGB:      [3]uint8{c.Color.RGB.R, c.Color.RGB.G, c.Color.RGB.B},
	}
	switch cfg := c.Config.(type) {
	case *KeyboardConfig:
		e.Device, e.Label = DeviceKeyboard, cfg.Label
		e.Left, e.Right = int(cfg.Left), int(cfg.Right)
	case *MouseConfig:
		e.Device, e.Label = DeviceMouse, cfg.Label
		e.Left, e.Right = cfg.Left, cfg.Right
	case *JoystickConfig:
		e.Device, e.Label = DeviceJoystick, cfg.Label
		e.Left, e.Right = cfg.Left, cfg.Right
		e.Joy, e.JoyName = cfg.Joy, cfg.JoyName
	default:
		return rosterEntry{}, false
	}
	return e, true
}

func fromEntry(e rosterEntry, joys JoyNamer) (*Controller, error) {
	col := playfield.Color{
		Idx: e.ColorIdx,
		RGB: playfield.RGB{R: e.RGB[0], G: e.RGB[1], B: e.RGB[2]},
	}
	var cfg InputConfig
	switch e.Device {
	case DeviceKeyboard:
		cfg = &KeyboardConfig{Label: e.Label, Left: Key(e.Left), Right: Key(e.Right)}
	case DeviceMouse:
		cfg = &MouseConfig{Label: e.Label, Left: e.Left, Right: e.Right}
	case DeviceJoystick:
		name, ok := "", false
		if joys != nil {
			name, ok = joys.JoyName(e.Joy)
		}
		if !ok || name != e.JoyName {
			return nil, fmt.Errorf("%w: #%d %q", ErrJoystickMissing, e.Joy, e.JoyName)
		}
		cfg = &JoystickConfig{Label: e.Label, Joy: e.Joy, JoyName: e.JoyName, Left: e.Left, Right: e.Right}
	default:
		return nil, fmt.Errorf("unknown device %d", e.Device)
	}
	return NewController(e.Name, col, cfg), nil
}
