package arena

import (
	"arcarena/internal/config"
	"arcarena/internal/player"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

// dimHeads makes the head show when an ability is recharging.
func dimHeads(r *Round, idx playfield.Index) {
	for _, s := range r.Alive {
		s.HeadDimIdx = idx
	}
}

// boost gives a short burst of speed on both controls.
type boost struct {
	Base
	cfg       config.BoostSettings
	baseSpeed float64
}

func (m *boost) Setup(r *Round) {
	dimHeads(r, r.Services().Cfg.ReadyAim.HeadColorDimIdx)
	m.baseSpeed = r.Services().Cfg.Snake.Speed
}

func (m *boost) GameplayBegins(r *Round) {
	for _, s := range r.Alive {
		s.OnBothTurn(func(s *Snake) { m.trigger(r, s) })
	}
}

func (m *boost) trigger(r *Round, s *Snake) {
	if !r.IsAlive(s) || s.HeadDimmed {
		return
	}
	r.Play(sound.Boost)
	s.SetHeadDim(true)
	s.SetSpeed(m.cfg.Speed)
	r.Timers.After(m.cfg.BoostDuration, func() { s.SetSpeed(m.baseSpeed) })
	r.Timers.After(m.cfg.BoostCooldown, func() { s.SetHeadDim(false) })
}

// beamMeUp teleports the snake to a random spot on both controls.
type beamMeUp struct {
	Base
	cfg config.BeamMeUpSettings
}

func (m *beamMeUp) Setup(r *Round) {
	r.EnableWrap()
	dimHeads(r, r.Services().Cfg.ReadyAim.HeadColorDimIdx)
}

func (m *beamMeUp) GameplayBegins(r *Round) {
	for _, s := range r.Alive {
		s.OnBothTurn(func(s *Snake) { m.trigger(r, s) })
	}
}

func (m *beamMeUp) trigger(r *Round, s *Snake) {
	if !r.IsAlive(s) || s.HeadDimmed {
		return
	}
	r.Play(sound.Teleport)
	s.SetHeadDim(true)
	s.Pos = r.Rand().InRect(s.WrapBounds)
	r.Timers.After(m.cfg.TeleportCooldown, func() { s.SetHeadDim(false) })
}

// alternateTurns forces each snake to swap turning direction every time.
// Right is blocked until the first left turn.
type alternateTurns struct{ Base }

func (alternateTurns) Setup(r *Round) {
	for _, s := range r.Alive {
		g := &turnGate{last: player.TurnNone, blocked: player.TurnRight}
		s.SetTurnFilter(g.filter)
	}
}

type turnGate struct {
	last    player.Turn
	blocked player.Turn
}

// filter swallows the blocked direction. Once the player commits to a new
// direction the previous one becomes the blocked one.
func (g *turnGate) filter(_ *Snake, cur player.Turn) bool {
	if cur == g.blocked {
		return true
	}
	if cur != g.last && (g.last == player.TurnLeft || g.last == player.TurnRight) {
		g.blocked = g.last
	}
	g.last = cur
	return false
}
