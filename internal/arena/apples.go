package arena

import (
	"slices"

	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

const appleRushInset = 30

type apple struct {
	pos    geom.Vec2
	radius float64
	col    playfield.RGB
}

func (a *apple) touching(p geom.Vec2) bool {
	return a.pos.Dist(p) < a.radius
}

// eatApples removes every apple a live snake's head is over and credits the
// first snake to reach it.
func eatApples(r *Round, apples []*apple, points int) []*apple {
	return slices.DeleteFunc(apples, func(a *apple) bool {
		for _, s := range r.Alive {
			if a.touching(s.Pos) {
				r.Play(sound.Apple)
				r.AddPoints(s, points)
				return true
			}
		}
		return false
	})
}

// appleDrop puts one apple in the middle of the field at a random time.
type appleDrop struct {
	Base
	cfg    config.AppleSettings
	apples []*apple
}

func (m *appleDrop) Setup(r *Round) {
	delay := r.Rand().RangeF(m.cfg.SpawnStartTime, m.cfg.SpawnEndTime)
	r.Timers.After(delay, func() {
		if r.Over() {
			return
		}
		r.Play(sound.AppleSpawn)
		m.apples = append(m.apples, &apple{
			pos:    r.Field.Bounds().Center(),
			radius: float64(m.cfg.AppleRadius),
			col:    m.cfg.AppleColor,
		})
	})
}

func (m *appleDrop) Step(r *Round, _ float64) {
	m.apples = eatApples(r, m.apples, m.cfg.PointsPerApple)
}

func (m *appleDrop) Draw(_ *Round, c *Canvas) {
	for _, a := range m.apples {
		c.DiscAbove(a.pos, a.radius, a.col)
	}
}

// appleRush keeps dropping apples at random spots until the round ends.
type appleRush struct {
	Base
	cfg    config.AppleRushSettings
	apples []*apple
}

func (m *appleRush) Setup(r *Round) {
	r.EnableWrap()
	r.Timers.After(m.cfg.FirstSpawn, func() { m.spawn(r) })
}

func (m *appleRush) spawn(r *Round) {
	if r.Over() {
		return
	}
	r.Timers.After(m.cfg.SpawnInterval, func() { m.spawn(r) })
	if len(m.apples) >= m.cfg.MaxApples {
		return
	}
	r.Play(sound.AppleSpawn)
	area := r.Field.Bounds().Inflate(-appleRushInset, -appleRushInset)
	m.apples = append(m.apples, &apple{
		pos:    r.Rand().InRect(area),
		radius: float64(m.cfg.AppleRadius),
		col:    m.cfg.AppleColor,
	})
}

func (m *appleRush) Step(r *Round, _ float64) {
	m.apples = eatApples(r, m.apples, m.cfg.PointsPerApple)
}

func (m *appleRush) Draw(_ *Round, c *Canvas) {
	for _, a := range m.apples {
		c.DiscAbove(a.pos, a.radius, a.col)
	}
}
