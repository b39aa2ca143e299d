package arena

import "arcarena/internal/config"

// jitter knocks every live snake's heading off course on a fixed beat.
type jitter struct {
	Base
	cfg config.JitterSettings
}

func (m *jitter) Setup(r *Round) {
	r.Timers.After(m.cfg.JitterInterval, func() { m.fire(r) })
}

func (m *jitter) fire(r *Round) {
	i := m.cfg.JitterIntensity
	amounts := [...]float64{i, i / 2, -i, -i / 2}
	amount := amounts[r.Rand().Intn(len(amounts))]
	if r.Over() {
		return
	}
	for _, s := range r.Alive {
		s.Turn(amount, 1)
	}
	r.Timers.After(m.cfg.JitterInterval, func() { m.fire(r) })
}
