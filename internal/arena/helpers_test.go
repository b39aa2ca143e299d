package arena

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/player"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

type mockSound struct{ mock.Mock }

func newMockSound() *mockSound {
	m := &mockSound{}
	m.On("Play", mock.Anything).Return()
	return m
}

func (m *mockSound) Play(c sound.Cue) { m.Called(c) }

func (m *mockSound) played() []sound.Cue {
	var cues []sound.Cue
	for _, call := range m.Calls {
		cues = append(cues, call.Arguments.Get(0).(sound.Cue))
	}
	return cues
}

func (m *mockSound) count(c sound.Cue) int {
	n := 0
	for _, p := range m.played() {
		if p == c {
			n++
		}
	}
	return n
}

type idle struct{}

func (idle) KeyDown(player.Key) bool    { return false }
func (idle) MouseDown(int) bool         { return false }
func (idle) JoyButton(int, int) bool    { return false }
func (idle) JoyName(int) (string, bool) { return "", false }

func testSettings() *config.Settings {
	cfg := config.Default()
	cfg.Round.ShuffleStartLocations = false
	cfg.Debug.FastStart = true
	return cfg
}

func testServices(cfg *config.Settings, rec sound.Player) Services {
	return Services{
		Cfg:     cfg,
		Sound:   rec,
		Log:     zerolog.Nop(),
		Rand:    geom.NewRand(7),
		Palette: playfield.NewPalette(cfg.Player.Colors),
		Screen:  geom.RectWH(640, 480),
	}
}

func variantNamed(t *testing.T, cfg *config.Settings, name string) Variant {
	t.Helper()
	for _, v := range Variants(cfg) {
		if v.Name == name {
			return v
		}
	}
	require.FailNow(t, "no such variant", name)
	return Variant{}
}

// setupRound builds an n player round of the named variant. Start
// positions are not shuffled, so Snakes[i] belongs to player i.
func setupRound(t *testing.T, name string, n int, tweaks ...func(*config.Settings)) (*Round, *mockSound) {
	t.Helper()
	cfg := testSettings()
	for _, f := range tweaks {
		f(cfg)
	}
	rec := newMockSound()
	return buildRound(t, testServices(cfg, rec), name, n), rec
}

func buildRound(t *testing.T, svc Services, name string, n int) *Round {
	t.Helper()
	cols := playfield.PlayerColors(svc.Cfg.Player.Colors)
	scores := NewScoreboard()
	var ctrls []*player.Controller
	for i := range n {
		c := player.NewController(fmt.Sprintf("P%d", i), cols[i], &player.KeyboardConfig{Left: player.KeyQ, Right: player.KeyW})
		c.Index = i
		ctrls = append(ctrls, c)
		scores.AddPlayer(c.Name, c.Color.RGB)
	}
	return NewRound(svc, variantNamed(t, svc.Cfg, name), ctrls, scores)
}

// startPlay runs the countdown through to the go beat.
func startPlay(t *testing.T, r *Round) {
	t.Helper()
	r.Begin()
	r.Step(0.31, idle{})
	require.False(t, r.Paused())
}

// blockAhead puts a wall right under the snake's whisker.
func blockAhead(r *Round, s *Snake) {
	r.Field.FillCircle(s.WhiskerPos(), 3, playfield.IdxBorder)
}
