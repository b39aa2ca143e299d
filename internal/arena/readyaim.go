package arena

import (
	"slices"

	"arcarena/internal/config"
	"arcarena/internal/fx"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

const (
	bulletMuzzle   = 5
	bulletParticle = 1000
)

type bullet struct {
	pos geom.Vec2
	vel geom.Vec2
	col playfield.RGB
}

// readyAim lets a snake fire a bullet by pressing both controls. A bullet
// that hits a trail blows a hole in it.
type readyAim struct {
	Base
	cfg     config.ReadyAimSettings
	bullets []*bullet
	vfx     *fx.Effects
	clip    geom.RectF
}

func (m *readyAim) Setup(r *Round) {
	for _, s := range r.Alive {
		s.HeadDimIdx = m.cfg.HeadColorDimIdx
		s.WallSize = m.cfg.WallSize
	}
	m.clip = r.Field.Bounds().Inflate(-m.cfg.ClipInset, -m.cfg.ClipInset)
	m.vfx = fx.NewEffects(bulletParticle, r.Rand())
}

func (m *readyAim) GameplayBegins(r *Round) {
	for _, s := range r.Alive {
		s.OnBothTurn(func(s *Snake) { m.fire(r, s) })
	}
}

func (m *readyAim) fire(r *Round, s *Snake) {
	if !r.IsAlive(s) || s.HeadDimmed {
		return
	}
	r.Play(sound.Fire)
	vel := s.Vel.Scale(m.cfg.BulletSpeedScale)
	m.bullets = append(m.bullets, &bullet{
		pos: s.Pos.Add(vel.Normalize().Scale(bulletMuzzle)),
		vel: vel,
		col: s.Body.RGB,
	})
	s.SetHeadDim(true)
	r.Timers.After(m.cfg.FiringCooldown, func() { s.SetHeadDim(false) })
}

func (m *readyAim) Step(r *Round, dt float64) {
	m.vfx.Step(dt)
	cfg := r.Services().Cfg
	m.bullets = slices.DeleteFunc(m.bullets, func(b *bullet) bool {
		b.pos = b.pos.Add(b.vel.Scale(dt))
		if !m.clip.ContainsPoint(b.pos) {
			r.Play(sound.BulletFizzle)
			return true
		}
		if !m.hit(r, b) {
			return false
		}
		r.Play(sound.BulletHit)
		r.Field.FillCircle(b.pos, m.cfg.ExplosionRadius, cfg.Win.BackgroundColorIdx)
		m.vfx.BulletExplosion(b.pos, b.col)
		return true
	})
}

// hit reports whether the bullet is over a trail. Background and border
// let it through; a bullet off the bitmap counts as a hit.
func (m *readyAim) hit(r *Round, b *bullet) bool {
	cfg := r.Services().Cfg
	idx, ok := r.Field.SampleAt(b.pos)
	if !ok {
		r.svc.Log.Warn().Float64("x", b.pos.X).Float64("y", b.pos.Y).Msg("bullet left the playfield")
		return true
	}
	return idx != cfg.Win.BackgroundColorIdx && idx != cfg.Win.BorderColorIdx
}

func (m *readyAim) Draw(_ *Round, c *Canvas) {
	c.Above = m.vfx.RenderData(c.Above)
	for _, b := range m.bullets {
		c.DiscAbove(b.pos, m.cfg.BulletRadius, playfield.White)
	}
}
