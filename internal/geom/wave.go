package geom

import "math"

// SineWave oscillates between Min and Max with the given period.
// PhaseShift is a fraction of a period; 0.75 starts the wave at Min.
type SineWave struct {
	Period     float64
	Min, Max   float64
	PhaseShift float64
}

func (w SineWave) At(t float64) float64 {
	if w.Period <= 0 {
		return w.Min
	}
	s := math.Sin(2 * math.Pi * (t/w.Period + w.PhaseShift))
	return w.Min + (s+1)/2*(w.Max-w.Min)
}

// PulseWave is Max for the first Width fraction of each period, Min otherwise.
type PulseWave struct {
	Period   float64
	Min, Max float64
	Width    float64
}

func (w PulseWave) At(t float64) float64 {
	if w.Period <= 0 {
		return w.Min
	}
	frac := t/w.Period - math.Floor(t/w.Period)
	if frac < w.Width {
		return w.Max
	}
	return w.Min
}
