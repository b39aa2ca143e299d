package arena

import (
	"arcarena/internal/config"
	"arcarena/internal/geom"
)

// squeeze closes a ring of border around the field. It starts outside
// the screen so the first seconds look untouched.
type squeeze struct {
	Base
	cfg     config.SqueezeSettings
	center  geom.Vec2
	start   float64
	elapsed float64
}

func (m *squeeze) Setup(r *Round) {
	m.center = r.Field.Bounds().Center()
	m.start = float64(int(m.center.Len() * m.cfg.StartDelayMultiplier))
}

// radius is the ring radius after e seconds; it never drops below the minimum.
func (m *squeeze) radius(e float64) int {
	t := min(e/m.cfg.SqueezeDuration, 1)
	return int(geom.Lerp(m.start, m.cfg.MinCircleRadius, t))
}

func (m *squeeze) Step(r *Round, dt float64) {
	rad := m.radius(m.elapsed)
	border := r.Services().Cfg.Win.BorderColorIdx
	// Stamped twice a pixel apart so the band has no holes.
	r.Field.Ring(m.center, rad, m.cfg.RingWidth, border)
	r.Field.Ring(m.center.Add(geom.V(1, 0)), rad, m.cfg.RingWidth, border)
	m.elapsed += dt
}
