package arena

import (
	"math"

	"arcarena/internal/config"
)

const (
	chamberArcs    = 8
	chamberArcFill = 0.7
	chamberStagger = 0.3
	chamberWidth   = 5
	chamberClear   = 10
)

// treasureChamber walls a handful of gold apples inside two staggered rings
// of broken arcs. The apples sit under the trails.
type treasureChamber struct {
	Base
	cfg    config.TreasureChamberSettings
	apples []*apple
}

func (m *treasureChamber) Setup(r *Round) {
	center := r.Field.Bounds().Center()
	for range m.cfg.AppleCount {
		m.apples = append(m.apples, &apple{
			pos:    r.Rand().InCircle(center, float64(m.cfg.ChamberInnerRadius-chamberClear)),
			radius: float64(m.cfg.AppleRadius),
			col:    m.cfg.AppleColor,
		})
	}

	border := r.Services().Cfg.Win.BorderColorIdx
	delta := 2 * math.Pi / chamberArcs
	for i := range chamberArcs {
		a0 := float64(i) * delta
		a1 := a0 + delta*chamberArcFill
		r.Field.Arc(center, m.cfg.ChamberInnerRadius, chamberWidth, a0, a1, border)
		r.Field.Arc(center, m.cfg.ChamberOuterRadius, chamberWidth, a0+chamberStagger, a1+chamberStagger, border)
	}
}

func (m *treasureChamber) Step(r *Round, _ float64) {
	m.apples = eatApples(r, m.apples, m.cfg.PointsPerApple)
}

func (m *treasureChamber) Draw(_ *Round, c *Canvas) {
	for _, a := range m.apples {
		c.DiscBelow(a.pos, a.radius, a.col)
	}
}
