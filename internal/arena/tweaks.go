package arena

import (
	"math"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// tweak changes every snake once, before the countdown.
type tweak struct {
	Base
	fn func(s *Snake)
}

func (t tweak) Setup(r *Round) {
	for _, s := range r.Alive {
		t.fn(s)
	}
}

func speedAndGap(speed, gap float64) tweak {
	return tweak{fn: func(s *Snake) {
		s.SetInitialSpeed(speed)
		s.GapSize = gap
	}}
}

func gapOnly(gap float64) tweak {
	return tweak{fn: func(s *Snake) { s.GapSize = gap }}
}

func recolor(c playfield.Color) tweak {
	return tweak{fn: func(s *Snake) { s.Body = c }}
}

func swapTurns() tweak {
	return tweak{fn: func(s *Snake) {
		s.TurnRateLeft = -s.TurnRateLeft
		s.TurnRateRight = -s.TurnRateRight
	}}
}

// sharperTurns adds extra to both turn rates, in radians per second.
func sharperTurns(speed, extra float64) tweak {
	return tweak{fn: func(s *Snake) {
		s.SetInitialSpeed(speed)
		s.TurnRateLeft -= extra
		s.TurnRateRight += extra
	}}
}

func noLeftTurns() tweak  { return tweak{fn: func(s *Snake) { s.TurnRateLeft = 0 }} }
func noRightTurns() tweak { return tweak{fn: func(s *Snake) { s.TurnRateRight = 0 }} }

type wrapAround struct{ Base }

func (wrapAround) Setup(r *Round) { r.EnableWrap() }

// overTime reapplies fn to every live snake each frame with the time since
// the round was built.
type overTime struct {
	Base
	elapsed float64
	fn      func(s *Snake, elapsed float64)
}

func (m *overTime) Step(r *Round, dt float64) {
	m.elapsed += dt
	for _, s := range r.Alive {
		m.fn(s, m.elapsed)
	}
}

// indigestion swells and shrinks the trail along a sine wave.
func indigestion(period, minSize, maxSize float64) *overTime {
	wave := geom.SineWave{Period: period, Min: minSize, Max: maxSize, PhaseShift: 0.75}
	return &overTime{fn: func(s *Snake, e float64) {
		s.SetDrawSize(int(wave.At(e)))
	}}
}

// goliath thickens the trail by two pixels a second.
func goliath() *overTime {
	return &overTime{fn: func(s *Snake, e float64) {
		s.SetDrawSize(max(1, int(e)*2))
	}}
}

// speedCycles multiplies the base speed by a whole number riding a sine wave.
func speedCycles(base, period, minMul, maxMul float64) *overTime {
	wave := geom.SineWave{Period: period, Min: minMul, Max: maxMul, PhaseShift: 0.75}
	return &overTime{fn: func(s *Snake, e float64) {
		s.SetSpeed(base * math.Trunc(wave.At(e)))
	}}
}

// leadFoot adds perSecond to the speed for every whole second elapsed.
func leadFoot(base, perSecond float64) *overTime {
	return &overTime{fn: func(s *Snake, e float64) {
		s.SetSpeed(base + math.Trunc(e)*perSecond)
	}}
}
