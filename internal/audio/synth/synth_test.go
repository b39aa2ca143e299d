package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcarena/internal/sound"
)

func TestCue_EveryCueRenders(t *testing.T) {
	for c := sound.Cue(0); int(c) < sound.Count; c++ {
		t.Run(c.String(), func(t *testing.T) {
			buf := Cue(c, 1)
			require.NotEmpty(t, buf)
			assert.Zero(t, len(buf)%FrameSize)
			assert.Less(t, Seconds(buf), 1.0)

			peak := 0.0
			for i := range len(buf) / FrameSize {
				s := Sample(buf, i)
				assert.LessOrEqual(t, s, 1.0)
				assert.GreaterOrEqual(t, s, -1.0)
				peak = max(peak, s, -s)
			}
			assert.Greater(t, peak, 0.05, "audible")
		})
	}
}

func TestCue_UnknownIsSilent(t *testing.T) {
	assert.Nil(t, Cue(sound.Cue(sound.Count), 0))
}

func TestCue_SeedVariesNoise(t *testing.T) {
	assert.Equal(t, Cue(sound.Explode, 3), Cue(sound.Explode, 3))
	assert.NotEqual(t, Cue(sound.Explode, 3), Cue(sound.Explode, 4))
	assert.Equal(t, Cue(sound.Apple, 3), Cue(sound.Apple, 4))
}

func TestCue_GoOutlastsBeep(t *testing.T) {
	assert.Greater(t, Seconds(Cue(sound.Go, 0)), Seconds(Cue(sound.CountdownBeep, 0)))
}

func TestStereoChannelsMatch(t *testing.T) {
	buf := Cue(sound.Select, 0)
	for i := 0; i < len(buf); i += FrameSize {
		assert.Equal(t, buf[i:i+4], buf[i+4:i+8])
	}
}

func TestSoftSat_StaysInRange(t *testing.T) {
	for _, x := range []float64{-10, -1, -0.5, 0, 0.5, 1, 10} {
		y := softSat(x)
		assert.LessOrEqual(t, y, 1.0)
		assert.GreaterOrEqual(t, y, -1.0)
	}
	assert.InDelta(t, 0.5-0.125/3, softSat(0.5), 1e-12)
}
