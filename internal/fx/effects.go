package fx

import (
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// Effects is the visual-only layer drawn over the playfield. Nothing in it
// is ever sampled for collision.
type Effects struct {
	Particles *System
	Circles   []*GrowingCircle

	rng *geom.Rand
}

func NewEffects(maxParticles int, r *geom.Rand) *Effects {
	return &Effects{
		Particles: NewSystem(maxParticles),
		rng:       r,
	}
}

func (e *Effects) AddCircle(c *GrowingCircle) {
	e.Circles = append(e.Circles, c)
}

// SnakeExplosion plays a crash at pos.
func (e *Effects) SnakeExplosion(pos geom.Vec2, body playfield.RGB) {
	e.Particles.Emit(pos, SnakeDeath(body), e.rng)
}

// BulletExplosion plays an implosion disc, a shrapnel burst and a slow ring.
func (e *Effects) BulletExplosion(pos geom.Vec2, col playfield.RGB) {
	e.AddCircle(&GrowingCircle{Pos: pos, From: 35, To: 0, Col: playfield.DarkGray, Duration: 0.15})
	e.Particles.Emit(pos, Shrapnel(col), e.rng)
	e.Particles.Emit(pos, Smolder(col), e.rng)
}

func (e *Effects) Step(dt float64) {
	e.Particles.Update(dt)
	kept := e.Circles[:0]
	for _, c := range e.Circles {
		c.Step(dt)
		if !c.Done() {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(e.Circles); i++ {
		e.Circles[i] = nil
	}
	e.Circles = kept
}

// Active reports whether anything is still animating.
func (e *Effects) Active() bool {
	return e.Particles.Len() > 0 || len(e.Circles) > 0
}

func (e *Effects) Clear() {
	e.Particles.Clear()
	e.Circles = e.Circles[:0]
}

// RenderData appends circles first so particles land on top.
func (e *Effects) RenderData(buf []float32) []float32 {
	for _, c := range e.Circles {
		buf = c.AppendSprite(buf)
	}
	return e.Particles.RenderData(buf)
}
