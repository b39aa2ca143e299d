package arena

import "arcarena/internal/config"

// scatter drops every snake on a random, jittered grid point heading in a
// random direction. Grid spacing keeps two snakes from starting nose to nose.
type scatter struct {
	Base
	cfg config.ScatterSettings
}

func (m *scatter) Setup(r *Round) {
	rng := r.Rand()
	pts := r.Field.Bounds().GridPoints(m.cfg.GridSpacing)
	for i := range pts {
		j := m.cfg.Jitter
		pts[i].X += float64(rng.Range(-j, j))
		pts[i].Y += float64(rng.Range(-j, j))
	}
	if len(pts) < len(r.Alive) {
		r.svc.Log.Warn().Int("points", len(pts)).Int("snakes", len(r.Alive)).
			Msg("not enough scatter points, keeping ring start")
		return
	}
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	speed := r.Services().Cfg.Snake.Speed
	for _, s := range r.Alive {
		s.Pos = pts[len(pts)-1]
		s.LastPos = s.Pos
		pts = pts[:len(pts)-1]
		s.SetDirection(rng.Direction())
		s.SetInitialSpeed(speed)
	}
}
