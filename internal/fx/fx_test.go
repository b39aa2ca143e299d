package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

func TestSystem_CircularOverwrite(t *testing.T) {
	ps := NewSystem(2)
	ps.Add(Particle{Size: 1, MaxLife: 1})
	ps.Add(Particle{Size: 2, MaxLife: 1})
	ps.Add(Particle{Size: 3, MaxLife: 1})
	require.Equal(t, 2, ps.Len())
	assert.Equal(t, 3.0, ps.P[0].Size)
	assert.Equal(t, 2.0, ps.P[1].Size)
}

func TestSystem_UpdateExpiresAndMoves(t *testing.T) {
	ps := NewSystem(8)
	ps.Add(Particle{Vel: geom.V(10, 0), MaxLife: 1})
	ps.Add(Particle{MaxLife: 0.05})
	ps.Update(0.1)
	require.Equal(t, 1, ps.Len())
	assert.InDelta(t, 1.0, ps.P[0].Pos.X, 1e-9)
}

func TestSystem_DelayedParticlesHold(t *testing.T) {
	ps := NewSystem(8)
	ps.Add(Particle{Vel: geom.V(10, 0), Life: -0.5, MaxLife: 1})
	ps.Update(0.1)
	assert.Equal(t, 0.0, ps.P[0].Pos.X)
	assert.Empty(t, ps.RenderData(nil))
}

func TestEmit_SnakeDeathCount(t *testing.T) {
	ps := NewSystem(0)
	ps.Emit(geom.V(5, 5), SnakeDeath(playfield.Gold), geom.NewRand(1))
	require.Equal(t, 75, ps.Len())
	assert.Equal(t, 0.0, ps.P[0].Life)
	assert.InDelta(t, -0.075, ps.P[74].Life, 1e-9)
	for _, p := range ps.P {
		assert.Contains(t, []playfield.RGB{playfield.Gold, playfield.White}, p.Col)
	}
}

func TestGrowingCircle_ShrinksToZero(t *testing.T) {
	c := &GrowingCircle{From: 40, To: 0, Duration: 4}
	assert.Equal(t, 40.0, c.Radius())
	c.Step(2)
	assert.InDelta(t, 20, c.Radius(), 1e-9)
	c.Step(3)
	assert.True(t, c.Done())
	assert.Equal(t, 0.0, c.Radius())
	assert.Empty(t, c.AppendSprite(nil))
}

func TestEffects_BulletExplosionDrainsAway(t *testing.T) {
	e := NewEffects(0, geom.NewRand(9))
	e.BulletExplosion(geom.V(10, 10), playfield.Gold)
	assert.True(t, e.Active())
	assert.Len(t, e.Circles, 1)
	assert.Equal(t, 175, e.Particles.Len())

	buf := e.RenderData(nil)
	assert.Zero(t, len(buf)%SpriteStride)

	for range 50 {
		e.Step(0.05)
	}
	assert.False(t, e.Active())
}
