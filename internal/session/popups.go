package session

import (
	"fmt"
	"slices"

	"arcarena/internal/arena"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

const (
	popupLife = 1.0
	popupRise = 30.0
	popupSize = 18
	popupLift = 12
)

// popup is a floating score change over the snake that earned it.
type popup struct {
	text string
	pos  geom.Vec2
	col  playfield.RGB
	left float64
}

// watchRound hooks the session onto the round's events.
func (s *Session) watchRound(r *arena.Round) {
	r.Events.Subscribe(arena.EventGameplayBegins, func(arena.Event) {
		s.popups = s.popups[:0]
		s.log.Debug().Str("round", r.Variant.Name).Int("num", s.scores.RoundNum).Msg("gameplay live")
	})
	r.Events.Subscribe(arena.EventSnakeCrashed, func(e arena.Event) {
		if e.Player < 0 {
			return
		}
		s.log.Info().Str("player", s.scores.Players[e.Player].Name).Int("round", s.scores.RoundNum).
			Int("left", len(r.Alive)-1).Msg("player crashed")
	})
	r.Events.Subscribe(arena.EventPointsScored, func(e arena.Event) {
		if e.Player < 0 || e.Data == 0 {
			return
		}
		s.popups = append(s.popups, popup{
			text: fmt.Sprintf("%+d", e.Data),
			pos:  e.Pos.Add(geom.V(0, -popupLift)),
			col:  s.scores.Players[e.Player].Color,
			left: popupLife,
		})
	})
	r.Events.Subscribe(arena.EventRoundOver, func(arena.Event) { s.roundOver() })
}

func (s *Session) stepPopups(dt float64) {
	for i := range s.popups {
		s.popups[i].left -= dt
		s.popups[i].pos.Y -= popupRise * dt
	}
	s.popups = slices.DeleteFunc(s.popups, func(p popup) bool { return p.left <= 0 })
}

func (s *Session) popupTexts(dst []arena.Text) []arena.Text {
	for _, p := range s.popups {
		dst = append(dst, arena.Text{S: p.text, Size: popupSize, Pos: p.pos, Col: p.col})
	}
	return dst
}
