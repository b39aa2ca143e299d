// Package session strings the screens of a match together: the lobby,
// the rounds and the score screens between them. It is pure game logic;
// the desktop driver feeds it input and draws the Frame it describes.
package session

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"arcarena/internal/arena"
	"arcarena/internal/backdrop"
	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/player"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

type State int

const (
	StateLobby State = iota
	StateRound
	StateScore
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateLobby:
		return "lobby"
	case StateRound:
		return "round"
	case StateScore:
		return "score"
	case StateQuit:
		return "quit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	startupDelay     = 1.5
	fastStartupDelay = 0.1
	lobbyPanelAlpha  = 150.0 / 255
)

// Red is the colour of prompts and instructions.
var Red = playfield.RGB{R: 175}

type Options struct {
	Settings *config.Settings
	Sound    sound.Player
	Log      zerolog.Logger
	Rand     *geom.Rand
	Joys     player.JoyNamer
	Roster   *player.RosterStore
	// Players restored from the roster file.
	Players []*player.Controller
	// Screen defaults to the configured resolution.
	Screen geom.RectF
}

// Session is one sitting at the machine: it starts in the lobby and
// alternates between rounds and score screens until ESC.
type Session struct {
	cfg     *config.Settings
	sound   sound.Player
	log     zerolog.Logger
	rng     *geom.Rand
	screen  geom.RectF
	palette *playfield.Palette

	state State
	lobby *player.Lobby
	seq   *arena.Sequencer

	scores *arena.Scoreboard
	round  *arena.Round
	canvas arena.Canvas
	popups []popup

	backs       *backdrop.Chooser
	backdrop    *image.RGBA
	backdropVer int

	startupIn float64
}

// New builds a session sitting in the lobby. It fails when the configured
// round set does not exist.
func New(opts Options) (*Session, error) {
	cfg := opts.Settings
	snd := opts.Sound
	if snd == nil {
		snd = sound.Nop{}
	}
	seq, err := arena.NewSequencer(cfg, opts.Rand)
	if err != nil {
		return nil, err
	}
	screen := opts.Screen
	if screen.W() <= 0 || screen.H() <= 0 {
		screen = geom.RectWH(float64(cfg.Win.ResolutionX), float64(cfg.Win.ResolutionY))
	}
	s := &Session{
		cfg:       cfg,
		sound:     snd,
		log:       opts.Log,
		rng:       opts.Rand,
		screen:    screen,
		palette:   playfield.NewPalette(cfg.Player.Colors),
		seq:       seq,
		backs:     backdrop.NewChooser(backdrop.Generators(), cfg.Background.RandomizeOrder, opts.Rand),
		startupIn: startupDelay,
	}
	if cfg.Debug.FastStart {
		s.startupIn = fastStartupDelay
	}
	s.lobby = player.NewLobby(player.LobbyOptions{
		Settings: cfg,
		Sound:    snd,
		Log:      opts.Log,
		Rand:     opts.Rand,
		Joys:     opts.Joys,
		Roster:   opts.Roster,
		Players:  opts.Players,
	})
	for range cfg.Robots {
		c := s.lobby.AddRobot()
		s.log.Info().Str("player", c.Name).Str("input", c.Config.Name()).Msg("robot joined")
	}
	s.paint(backdrop.Title, nil)

	if cfg.Debug.On {
		s.lobby.AddDebugPlayers()
		s.lobby.Start()
		s.startMatch()
	}
	return s, nil
}

func (s *Session) State() State { return s.state }

func (s *Session) Done() bool { return s.state == StateQuit }

func (s *Session) Lobby() *player.Lobby { return s.lobby }

// Round is the round being played or scored, nil in the lobby.
func (s *Session) Round() *arena.Round { return s.round }

func (s *Session) Scores() *arena.Scoreboard { return s.scores }

func (s *Session) Screen() geom.RectF { return s.screen }

// Update advances the current screen by dt seconds. events are this
// frame's discrete input events; dev is the polled device state.
func (s *Session) Update(dt float64, events []player.Event, dev player.Devices) {
	if s.startupIn > 0 {
		s.startupIn -= dt
		if s.startupIn <= 0 {
			s.sound.Play(sound.Startup)
		}
	}

	switch s.state {
	case StateLobby:
		if s.lobby.Update(dt, events) {
			s.startMatch()
		}
	case StateRound:
		if pressed(events, player.KeyEscape) {
			s.quit()
			return
		}
		s.round.Step(dt, dev)
		s.stepPopups(dt)
	case StateScore:
		if pressed(events, player.KeyEscape) {
			s.quit()
			return
		}
		s.round.StepEffects(dt)
		s.scores.Step(dt)
		s.stepPopups(dt)
		if pressed(events, player.KeySpace) {
			s.nextRound()
		}
	}
}

func pressed(events []player.Event, k player.Key) bool {
	for _, e := range events {
		if e.IsKey(k) {
			return true
		}
	}
	return false
}

func (s *Session) quit() {
	s.log.Info().Stringer("from", s.state).Msg("quit requested")
	s.state = StateQuit
}

// startMatch builds the scoreboard from the lobby's players, whose
// indices Lobby.Start has just fixed.
func (s *Session) startMatch() {
	s.scores = arena.NewScoreboard()
	for _, c := range s.lobby.Players() {
		s.scores.AddPlayer(c.Name, c.Color.RGB)
	}
	s.nextRound()
}

func (s *Session) nextRound() {
	v := s.seq.Next()
	ctrls := s.lobby.Players()
	svc := arena.Services{
		Cfg:     s.cfg,
		Sound:   s.sound,
		Log:     s.log,
		Rand:    s.rng,
		Palette: s.palette,
		Screen:  s.screen,
	}
	s.round = arena.NewRound(svc, v, ctrls, s.scores)
	s.popups = s.popups[:0]
	s.watchRound(s.round)

	names := make([]string, len(ctrls))
	for i, c := range ctrls {
		names[i] = c.Name
	}
	s.paint(s.backs.Next(), names)

	s.state = StateRound
	s.round.Begin()
}

func (s *Session) roundOver() {
	s.seq.Advance()
	s.state = StateScore
}

// paint renders the backdrop for the next screen, or clears it when
// backgrounds are switched off.
func (s *Session) paint(g backdrop.Generator, names []string) {
	s.backdropVer++
	if !s.cfg.Background.Visible {
		s.backdrop = nil
		return
	}
	s.backdrop = backdrop.Render(g, int(s.screen.W()), int(s.screen.H()), backdrop.Scene{
		Cfg:   s.cfg.Background,
		Rand:  s.rng,
		Names: names,
	})
	s.log.Debug().Str("backdrop", g.Name).Msg("painted background")
}
