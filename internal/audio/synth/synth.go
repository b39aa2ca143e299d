// Package synth renders the game's sound effects procedurally as
// interleaved stereo float32 little-endian PCM. No sample files ship.
package synth

import (
	"math"

	"arcarena/internal/sound"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	// FrameSize is the byte size of one stereo float32 frame.
	FrameSize = 8
)

// Cue renders c. seed only matters for noisy cues, so callers can vary
// repeated explosions.
func Cue(c sound.Cue, seed uint64) []byte {
	switch c {
	case sound.Startup:
		return genStartup()
	case sound.Select:
		return genSelect()
	case sound.Reject:
		return genReject()
	case sound.Blip:
		return genBlip()
	case sound.CountdownBeep:
		return genBeep(660, 0.12)
	case sound.Go:
		return genBeep(1320, 0.35)
	case sound.Explode:
		return genExplode(seed)
	case sound.Fire:
		return genFire(seed)
	case sound.BulletFizzle:
		return genFizzle(seed)
	case sound.BulletHit:
		return genBulletHit(seed)
	case sound.AppleSpawn:
		return genAppleSpawn()
	case sound.Apple:
		return genApple()
	case sound.Boost:
		return genBoost(seed)
	case sound.Teleport:
		return genTeleport()
	}
	return nil
}

// Seconds is the play length of a rendered buffer.
func Seconds(buf []byte) float64 {
	return float64(len(buf)/FrameSize) / SampleRate
}

// Sample reads frame i of the left channel back as a float.
func Sample(buf []byte, i int) float64 {
	o := i * FrameSize
	v := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	return float64(math.Float32frombits(v))
}

// putStereoF32 writes a [-1,1] sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * FrameSize
	for ch := 0; ch < ChannelCount; ch++ {
		buf[o+ch*4] = byte(v)
		buf[o+ch*4+1] = byte(v >> 8)
		buf[o+ch*4+2] = byte(v >> 16)
		buf[o+ch*4+3] = byte(v >> 24)
	}
}

// softSat saturates gently instead of clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr is an envelope at progress [0,1]; attack, decay and release are
// fractions of the whole duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns noise in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*FrameSize) }

// render runs fn for every frame of a dur second buffer. fn gets the time
// in seconds and the progress in [0,1).
func render(dur float64, fn func(t, p float64) float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		putStereoF32(buf, i, softSat(fn(float64(i)/SampleRate, float64(i)/float64(n))))
	}
	return buf
}

// notes mixes overlapping bell notes started step seconds apart.
func notes(freqs []float64, step, tail, ratio, gain float64) []byte {
	stepN := int(step * SampleRate)
	total := len(freqs)*stepN + int(tail*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * stepN
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.55, 0.05, 0.35)
			mix[start+j] += fm(t, freq, ratio, 4.0*env) * env * gain
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
