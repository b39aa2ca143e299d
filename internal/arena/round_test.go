package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

func TestStartPositions(t *testing.T) {
	field := geom.RectWH(640, 480)
	c := field.Center()
	radius := 240 * startRadiusScale

	one := StartPositions(1, field)
	require.Len(t, one, 1)
	assert.True(t, one[0].Eq(c.Add(geom.V(0, radius/2)), 1e-9))

	four := StartPositions(4, field)
	require.Len(t, four, 4)
	for _, p := range four {
		assert.InDelta(t, radius, p.Dist(c), 1e-9)
	}
	assert.True(t, four[0].Eq(c.Add(geom.V(radius, 0)), 1e-9))

	assert.Panics(t, func() { StartPositions(0, field) })
}

func TestNewRound_SnakesFaceCentre(t *testing.T) {
	r, _ := setupRound(t, Basic, 3)
	require.Len(t, r.Snakes, 3)
	c := r.Field.Bounds().Center()
	for i, s := range r.Snakes {
		assert.Same(t, s, r.Controllers[i].Pilot())
		want := c.Sub(s.Pos).Normalize()
		assert.True(t, s.Vel.Normalize().Eq(want, 1e-9))
	}
	assert.True(t, r.Paused())
	assert.Equal(t, 1, r.Scores.RoundNum)
	assert.Equal(t, 640*480, r.Field.Count(playfield.IdxBackground))
}

func TestRound_CountdownBeats(t *testing.T) {
	r, rec := setupRound(t, Basic, 2)
	began := 0
	r.Events.Subscribe(EventGameplayBegins, func(Event) { began++ })

	r.Begin()
	assert.Empty(t, rec.played(), "first beat is silent")
	assert.Positive(t, r.Field.Count(r.Snakes[0].Body.Idx))
	assert.Positive(t, r.Field.Count(playfield.IdxBorder))
	assert.Len(t, r.Effects.Circles, 2)

	r.Step(0.11, idle{})
	assert.Equal(t, 1, rec.count(sound.CountdownBeep))
	assert.True(t, r.Paused())

	r.Step(0.1, idle{})
	assert.Equal(t, 2, rec.count(sound.CountdownBeep))
	assert.True(t, r.Paused())

	r.Step(0.1, idle{})
	assert.Equal(t, 1, rec.count(sound.Go))
	assert.False(t, r.Paused())
	assert.Equal(t, 1, began)
}

func TestRound_LastSnakeStandingWins(t *testing.T) {
	r, rec := setupRound(t, Basic, 2)
	var crashed []int
	over := 0
	r.Events.Subscribe(EventSnakeCrashed, func(e Event) { crashed = append(crashed, e.Player) })
	r.Events.Subscribe(EventRoundOver, func(Event) { over++ })
	startPlay(t, r)

	blockAhead(r, r.Snakes[0])
	r.Step(0.001, idle{})

	assert.Equal(t, []int{0}, crashed)
	assert.Equal(t, []*Snake{r.Snakes[1]}, r.Alive)
	assert.True(t, r.Over())
	assert.Equal(t, 1, over)
	assert.Equal(t, 1, rec.count(sound.Explode))

	p := r.Scores.Players
	assert.Equal(t, 0, p[0].Delta)
	assert.Equal(t, 10, p[1].Delta)
	assert.True(t, p[1].IsWinner)
	assert.False(t, p[0].IsWinner)
	assert.Equal(t, []*ScorePlayer{p[1]}, r.Scores.Survivors)

	// Nothing moves once the round is over.
	pos := r.Snakes[1].Pos
	r.Step(0.1, idle{})
	assert.Equal(t, pos, r.Snakes[1].Pos)
	assert.Equal(t, 1, over)
}

func TestRound_SinglePlayerRunsUntilCrash(t *testing.T) {
	r, _ := setupRound(t, Basic, 1)
	startPlay(t, r)
	r.Step(0.01, idle{})
	assert.False(t, r.Over())

	blockAhead(r, r.Snakes[0])
	r.Step(0.001, idle{})
	assert.True(t, r.Over())
	assert.Empty(t, r.Alive)
}

func TestRound_SurvivalBonusStacks(t *testing.T) {
	r, _ := setupRound(t, Basic, 3)
	startPlay(t, r)

	blockAhead(r, r.Snakes[0])
	blockAhead(r, r.Snakes[1])
	r.Step(0.001, idle{})

	p := r.Scores.Players
	assert.Equal(t, 0, p[0].Delta)
	assert.Equal(t, 0, p[1].Delta)
	assert.Equal(t, 20, p[2].Delta)
	assert.True(t, r.Over())
}

func TestRound_LabelsExpire(t *testing.T) {
	r, _ := setupRound(t, ReadyAim, 2)
	labels := r.Labels()
	require.Len(t, labels, 3)
	assert.Equal(t, playfield.Black, labels[0].Col)
	assert.Equal(t, "Ready, Aim... Fire!", labels[1].S)
	assert.Equal(t, "Press both buttons to fire!", labels[2].S)

	r.StepEffects(4.1)
	assert.Empty(t, r.Labels())
}

func TestRound_WrapSkipsBorder(t *testing.T) {
	r, _ := setupRound(t, ToInfinity, 2)
	r.Begin()
	assert.True(t, r.Wrap())
	assert.True(t, r.Snakes[1].Wrap)
	assert.Zero(t, r.Field.Count(playfield.IdxBorder))
}

func TestRound_RenderLayers(t *testing.T) {
	r, _ := setupRound(t, TreasureChamber, 2)
	r.Begin()
	var c Canvas
	r.Render(&c)
	// Two start circles and five treasure apples below, nothing above.
	assert.Len(t, c.Below, 7*8)
	assert.Empty(t, c.Above)
}
