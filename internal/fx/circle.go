package fx

import (
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// GrowingCircle interpolates a filled disc's radius from From to To over
// Duration seconds. It shrinks when To < From.
type GrowingCircle struct {
	Pos      geom.Vec2
	From, To float64
	Col      playfield.RGB
	Duration float64

	elapsed float64
}

func (c *GrowingCircle) Step(dt float64) { c.elapsed += dt }

func (c *GrowingCircle) Done() bool { return c.elapsed >= c.Duration }

func (c *GrowingCircle) Radius() float64 {
	if c.Duration <= 0 {
		return c.To
	}
	return geom.Lerp(c.From, c.To, geom.ClampF(c.elapsed/c.Duration, 0, 1))
}

func (c *GrowingCircle) AppendSprite(buf []float32) []float32 {
	r := c.Radius()
	if r <= 0 || c.Done() {
		return buf
	}
	return AppendSprite(buf, c.Pos, r*2, c.Col, 1)
}
