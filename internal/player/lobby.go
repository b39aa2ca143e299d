package player

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

var (
	ErrNoPlayers            = errors.New("no players registered")
	ErrRegistrationInFlight = errors.New("player registration in progress")
	ErrDuplicateColors      = errors.New("players do not have unique colors")
)

const (
	HeaderAddPlayer = "To add a new player, start by pressing a button to be their LEFT control."
	Instructions    = "Press LEFT/RIGHT to change name/color, hold both to remove player. F5 to remove bottom player. Press SPACE to start."

	duplicateColorsMessage = "Cannot start the game until all players have unique colors"
	messageDuration        = 3.0
)

type LobbyOptions struct {
	Settings *config.Settings
	Sound    sound.Player
	Log      zerolog.Logger
	Rand     *geom.Rand
	Joys     JoyNamer
	// Roster, when set, receives the player list when the game starts.
	Roster *RosterStore
	// Players restored from a previous match.
	Players []*Controller
}

// Lobby is the check-in screen: new players register here, registered
// players pick a name and colour, and SPACE starts the match.
type Lobby struct {
	cfg    *config.Settings
	sound  sound.Player
	log    zerolog.Logger
	rng    *geom.Rand
	joys   JoyNamer
	roster *RosterStore

	players []*Controller
	names   *Cycle[string]
	colors  *Cycle[playfield.Color]

	reg   Registration
	holds *HoldWatcher
	axes  *AxisWatcher

	enabled  bool
	enableIn float64

	message     string
	messageLeft float64

	clock    time.Time
	limiters map[*Controller]*rate.Limiter
}

func NewLobby(opts LobbyOptions) *Lobby {
	cfg := opts.Settings
	snd := opts.Sound
	if snd == nil {
		snd = sound.Nop{}
	}
	l := &Lobby{
		cfg:      cfg,
		sound:    snd,
		log:      opts.Log,
		rng:      opts.Rand,
		joys:     opts.Joys,
		roster:   opts.Roster,
		players:  slices.Clone(opts.Players),
		names:    NewCycle(cfg.Player.Names),
		colors:   NewCycle(playfield.PlayerColors(cfg.Player.Colors)),
		holds:    NewHoldWatcher(cfg.Input.HoldSeconds),
		axes:     NewAxisWatcher(cfg.Input.AxisPress, cfg.Input.AxisRelease),
		enableIn: 4.5,
		clock:    time.Unix(0, 0),
		limiters: make(map[*Controller]*rate.Limiter),
	}
	if cfg.Debug.FastStart {
		l.enableIn = 0.2
	}
	if cfg.Input.OnePlayerPerJoy {
		l.reg.JoyTaken = l.joyTaken
	}
	return l
}

func (l *Lobby) Players() []*Controller { return l.players }

func (l *Lobby) InputEnabled() bool { return l.enabled }

// Message is the timed error text, empty when there is none.
func (l *Lobby) Message() string { return l.message }

// Header describes what the registration is waiting for.
func (l *Lobby) Header() string {
	if !l.reg.InFlight() {
		return HeaderAddPlayer
	}
	left := l.reg.Pending()
	device := left.Device().String()
	if left.Device() == DeviceJoystick {
		name, _ := l.joyName(left.Joy)
		device = fmt.Sprintf("%s %s #%d", device, strings.TrimSpace(name), left.Joy)
	}
	return fmt.Sprintf("Complete addition of the new player by pressing a button on the %s to be the player's RIGHT control.", device)
}

// Instructions is shown once somebody has registered.
func (l *Lobby) Instructions() string {
	if len(l.players) == 0 {
		return ""
	}
	return Instructions
}

// Update advances timers and handles this frame's events. It returns true
// once the match has been started.
func (l *Lobby) Update(dt float64, events []Event) bool {
	l.clock = l.clock.Add(time.Duration(dt * float64(time.Second)))
	if l.messageLeft > 0 {
		l.messageLeft -= dt
		if l.messageLeft <= 0 {
			l.message = ""
		}
	}
	if !l.enabled {
		l.enableIn -= dt
		if l.enableIn <= 0 {
			l.enabled = true
		}
		return false
	}

	events = l.axes.Filter(events)
	events = l.holds.Filter(events, dt)
	for _, e := range events {
		if l.handle(e) {
			return true
		}
	}
	return false
}

func (l *Lobby) handle(e Event) bool {
	if e.IsKey(KeyF5) && !l.reg.InFlight() {
		l.RemoveLast()
		return false
	}
	if e.IsKey(KeySpace) {
		err := l.CanStart()
		if err == nil {
			l.Start()
			return true
		}
		l.refuseStart(err)
	}
	if e.IsKey(KeySpace) || e.IsKey(KeyF5) || e.IsKey(KeyEscape) {
		l.sound.Play(sound.Reject)
		return false
	}

	for _, c := range l.players {
		act := c.Config.ParseEvent(e)
		if act == ActionNone {
			continue
		}
		l.apply(c, act)
		return false
	}

	switch progress, b := l.reg.Handle(e); progress {
	case Started:
		l.sound.Play(sound.Select)
		l.log.Debug().Stringer("event", e).Msg("registration started")
	case Completed:
		l.complete(b)
	}
	return false
}

func (l *Lobby) apply(c *Controller, act Action) {
	switch act {
	case ActionLeft:
		if l.limiter(c).AllowN(l.clock, 1) {
			l.sound.Play(sound.Select)
			c.Name = l.names.Next(c.Name)
		}
	case ActionRight:
		if l.limiter(c).AllowN(l.clock, 1) {
			l.sound.Play(sound.Select)
			c.Color = l.colors.Next(c.Color)
		}
	case ActionRemove:
		l.sound.Play(sound.Reject)
		l.log.Info().Str("player", c.Name).Str("input", c.Config.Name()).Msg("player removed")
		l.remove(c)
	}
}

func (l *Lobby) limiter(c *Controller) *rate.Limiter {
	lim, ok := l.limiters[c]
	if !ok {
		limit := rate.Inf
		if l.cfg.Input.CycleRepeat > 0 {
			limit = rate.Limit(l.cfg.Input.CycleRepeat)
		}
		lim = rate.NewLimiter(limit, 1)
		l.limiters[c] = lim
	}
	return lim
}

func (l *Lobby) remove(c *Controller) {
	l.players = slices.DeleteFunc(l.players, func(p *Controller) bool { return p == c })
	delete(l.limiters, c)
}

// RemoveLast drops the bottom player of the list.
func (l *Lobby) RemoveLast() {
	l.sound.Play(sound.Reject)
	if len(l.players) == 0 {
		return
	}
	c := l.players[len(l.players)-1]
	l.log.Info().Str("player", c.Name).Msg("removing bottom player")
	l.remove(c)
}

func (l *Lobby) complete(b Binding) {
	cfg := l.bindingConfig(b)
	c := NewController(l.names.Random(l.rng), l.unusedColor(), cfg)
	l.players = append(l.players, c)
	l.sound.Play(sound.Blip)
	l.log.Info().Str("player", c.Name).Str("input", cfg.Name()).Msg("player registered")
}

func (l *Lobby) bindingConfig(b Binding) InputConfig {
	switch b.Left.Device() {
	case DeviceMouse:
		return &MouseConfig{
			Label: fmt.Sprintf("Mouse %d/%d", b.Left.Button, b.Right.Button),
			Left:  b.Left.Button,
			Right: b.Right.Button,
		}
	case DeviceJoystick:
		name, _ := l.joyName(b.Left.Joy)
		return &JoystickConfig{
			Label:   fmt.Sprintf("Gamepad #%d - %s %d/%d", b.Left.Joy+1, strings.TrimSpace(name), b.Left.Button, b.Right.Button),
			Joy:     b.Left.Joy,
			JoyName: name,
			Left:    b.Left.Button,
			Right:   b.Right.Button,
		}
	}
	return &KeyboardConfig{
		Label: fmt.Sprintf("Keyboard %s / %s", keyLabel(b.Left), keyLabel(b.Right)),
		Left:  b.Left.Key,
		Right: b.Right.Key,
	}
}

func keyLabel(e Event) string {
	s := strings.TrimSpace(e.Label)
	if s == "" {
		return "???"
	}
	return cases.Title(language.Und).String(s)
}

func (l *Lobby) joyName(joy int) (string, bool) {
	if l.joys == nil {
		return "", false
	}
	return l.joys.JoyName(joy)
}

func (l *Lobby) joyTaken(joy int) bool {
	for _, c := range l.players {
		if jc, ok := c.Config.(*JoystickConfig); ok && jc.Joy == joy {
			return true
		}
	}
	return false
}

// unusedColor picks a random colour nobody has, or any colour when all
// are taken.
func (l *Lobby) unusedColor() playfield.Color {
	var free []playfield.Color
	for _, col := range l.colors.Items() {
		if !slices.ContainsFunc(l.players, func(c *Controller) bool { return c.Color == col }) {
			free = append(free, col)
		}
	}
	if len(free) == 0 {
		return l.colors.Random(l.rng)
	}
	return free[l.rng.Intn(len(free))]
}

// CanStart reports why the match cannot start yet, or nil.
func (l *Lobby) CanStart() error {
	if len(l.players) == 0 {
		return ErrNoPlayers
	}
	if l.reg.InFlight() {
		return ErrRegistrationInFlight
	}
	if l.cfg.Player.RequireUniqueColors {
		seen := make(map[playfield.Color]bool, len(l.players))
		for _, c := range l.players {
			if seen[c.Color] {
				return ErrDuplicateColors
			}
			seen[c.Color] = true
		}
	}
	return nil
}

func (l *Lobby) refuseStart(err error) {
	l.log.Info().Err(err).Msg("cannot start game")
	if errors.Is(err, ErrDuplicateColors) {
		l.message = duplicateColorsMessage
		l.messageLeft = messageDuration
	}
}

// Start fixes the player indices and saves the roster.
func (l *Lobby) Start() {
	for i, c := range l.players {
		c.Index = i
	}
	if l.roster != nil {
		if err := l.roster.Save(l.players); err != nil {
			l.log.Warn().Err(err).Str("path", l.roster.Path).Msg("could not save players")
		} else {
			l.log.Info().Int("players", len(l.players)).Str("path", l.roster.Path).Msg("players saved")
		}
	}
	l.holds.Reset()
	l.log.Info().Int("players", len(l.players)).Msg("starting game")
}

// AddRobot registers a computer player.
func (l *Lobby) AddRobot() *Controller {
	n := 1
	for _, c := range l.players {
		if c.IsRobot() {
			n++
		}
	}
	c := NewController(l.names.Random(l.rng), l.unusedColor(), &RobotConfig{Label: fmt.Sprintf("Robot #%d", n)})
	l.players = append(l.players, c)
	return c
}

// AddDebugPlayers registers the fixed debug controllers: Q/W, Z/X and
// the mouse.
func (l *Lobby) AddDebugPlayers() {
	cols := l.colors.Items()
	pick := func(i int) playfield.Color { return cols[i%len(cols)] }
	l.players = append(l.players,
		NewController("FirstSnake", pick(0), &KeyboardConfig{Label: "keys Q / W", Left: KeyQ, Right: KeyW}),
		NewController("SecondSnake", pick(2), &KeyboardConfig{Label: "keys Z / X", Left: KeyZ, Right: KeyX}),
		NewController("ThirdSnake", pick(4), &MouseConfig{Label: "mouse input config", Left: MouseLeft, Right: MouseRight}),
	)
}

// ListLayout is where the player list starts and how far apart the rows
// are for n players.
func ListLayout(n int) (x, y, dy float64) {
	x = 150
	switch {
	case n < 7:
		return x, 50, 80
	case n < 10:
		return x, 15, 65
	case n < 13:
		return x, 5, 55
	}
	return x, 0, 40
}
