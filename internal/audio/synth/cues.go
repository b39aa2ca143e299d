package synth

import "math"

// genStartup: rising four note bell arpeggio.
func genStartup() []byte {
	return notes([]float64{392, 523.25, 659.25, 783.99}, 0.09, 0.3, 2.756, 0.34)
}

// genSelect: crisp click with a short falling tone.
func genSelect() []byte {
	return render(0.065, func(t, p float64) float64 {
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		return fm(t, 1400-700*p, 1.0, 0.6) * env * 0.38
	})
}

// genReject: two low buzzes.
func genReject() []byte {
	return render(0.24, func(t, p float64) float64 {
		gate := 1.0
		if p > 0.42 && p < 0.58 {
			gate = 0
		}
		return fm(t, 140, 1.5, 2.5) * gate * (1 - p*0.5) * 0.4
	})
}

// genBlip: tiny tick for name and colour cycling.
func genBlip() []byte {
	return render(0.03, func(t, p float64) float64 {
		return math.Sin(2*math.Pi*1800*t) * (1 - p) * 0.3
	})
}

// genBeep: plain sine with a soft attack, used for the countdown.
func genBeep(freq, dur float64) []byte {
	return render(dur, func(t, p float64) float64 {
		env := adsr(p, 0.02, 0.2, 0.7, 0.3)
		return (math.Sin(2*math.Pi*freq*t) + 0.15*math.Sin(2*math.Pi*freq*2*t)) * env * 0.42
	})
}

// genExplode: sub boom, noise crack and a bandpassed rumble.
func genExplode(seed uint64) []byte {
	seed ^= 0x5eed
	lp1, lp2, subPhase := 0.0, 0.0, 0.0
	return render(0.5, func(_, p float64) float64 {
		subFreq := 120 * math.Pow(24.0/120, p*2)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*5.5) * 0.55

		crack := 0.0
		if p < 0.03 {
			crack = lcg(&seed) * (1 - p/0.03) * 0.8
		}

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*5) * 0.38
		return (sub + crack + body) * 0.86
	})
}

// genFire: short noisy pew with a falling pitch.
func genFire(seed uint64) []byte {
	seed ^= 0xf1e
	return render(0.14, func(t, p float64) float64 {
		freq := 1600 * math.Pow(0.25, p)
		tone := fm(t, freq, 0.5, 3*(1-p))
		return (tone*0.4 + lcg(&seed)*0.12) * (1 - p)
	})
}

// genFizzle: lowpassed hiss that dies out.
func genFizzle(seed uint64) []byte {
	seed ^= 0xf122
	lp := 0.0
	return render(0.25, func(_, p float64) float64 {
		lp = lp*0.7 + lcg(&seed)*0.3
		return lp * math.Pow(1-p, 2) * 0.35
	})
}

// genBulletHit: small explosion.
func genBulletHit(seed uint64) []byte {
	seed ^= 0x417
	return render(0.22, func(t, p float64) float64 {
		thump := math.Sin(2*math.Pi*200*math.Pow(0.2, p)*t) * math.Exp(-p*10) * 0.5
		return thump + lcg(&seed)*math.Pow(1-p, 4)*0.35
	})
}

// genAppleSpawn: soft rising chime.
func genAppleSpawn() []byte {
	return notes([]float64{659.25, 987.77}, 0.07, 0.25, 3.5, 0.3)
}

// genApple: bright ascending pop.
func genApple() []byte {
	return render(0.09, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		return fm(t, freq, 2.0, 3.5*env)*env*0.5 + math.Sin(2*math.Pi*freq*3*t)*env*0.06
	})
}

// genBoost: whoosh of noise swept upward.
func genBoost(seed uint64) []byte {
	seed ^= 0xb005
	lp := 0.0
	return render(0.3, func(t, p float64) float64 {
		k := 0.1 + 0.6*p
		lp = lp*(1-k) + lcg(&seed)*k
		return (lp*0.5 + math.Sin(2*math.Pi*(200+600*p)*t)*0.15) * adsr(p, 0.2, 0.3, 0.6, 0.3)
	})
}

// genTeleport: wobbling upward FM sweep.
func genTeleport() []byte {
	return render(0.4, func(t, p float64) float64 {
		freq := 300 * math.Pow(6, p)
		wobble := 1 + 0.05*math.Sin(2*math.Pi*18*t)
		return fm(t, freq*wobble, 1.5, 2.0) * adsr(p, 0.05, 0.4, 0.5, 0.3) * 0.38
	})
}
