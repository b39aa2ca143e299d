package arena

import (
	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

type follower struct {
	pos geom.Vec2
	vel geom.Vec2
}

// followers chase the nearest snake and eat any trail they pass over. They
// never kill anyone directly.
type followers struct {
	Base
	cfg      config.FollowerSettings
	pack     []*follower
	boundary geom.RectF
}

func (m *followers) Setup(r *Round) {
	for _, s := range r.Alive {
		s.WallSize = m.cfg.SnakeWallSize
	}
	bounds := r.Field.Bounds()
	m.boundary = bounds.Inflate(-m.cfg.BoundaryInset, -m.cfg.BoundaryInset)
	radius := bounds.MinSide() / 2 * m.cfg.FollowerSpawnRadiusPercentage
	for range r.Alive {
		m.pack = append(m.pack, &follower{pos: r.Rand().InCircle(bounds.Center(), radius)})
	}
}

// steer heads back to the middle when a follower strays near the edge,
// otherwise toward the closest live snake.
func (m *followers) steer(f *follower, snakes []*Snake) {
	if !m.boundary.ContainsPoint(f.pos) {
		f.vel = m.boundary.Center().Sub(f.pos).Normalize().Scale(m.cfg.RecoverySpeed)
		return
	}
	var target *Snake
	best := 0.0
	for _, s := range snakes {
		if d := s.Pos.Dist(f.pos); target == nil || d < best {
			target, best = s, d
		}
	}
	if target != nil {
		f.vel = target.Pos.Sub(f.pos).Normalize().Scale(m.cfg.FollowerSpeed)
	}
}

func (m *followers) Step(r *Round, dt float64) {
	if r.Paused() {
		return
	}
	cfg := r.Services().Cfg
	for _, f := range m.pack {
		m.steer(f, r.Alive)
	}
	for _, f := range m.pack {
		f.pos = f.pos.Add(f.vel.Scale(dt))
		idx, ok := r.Field.SampleAt(f.pos)
		if ok && idx != cfg.Win.BackgroundColorIdx && idx != cfg.Win.BorderColorIdx {
			r.Field.FillCircle(f.pos, m.cfg.FollowerClearRadius, cfg.Win.BackgroundColorIdx)
		}
	}
}

func (m *followers) Draw(_ *Round, c *Canvas) {
	for _, f := range m.pack {
		c.DiscAbove(f.pos, m.cfg.FollowerRadius, playfield.DarkGray)
	}
}
