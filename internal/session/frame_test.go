package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcarena/internal/arena"
	"arcarena/internal/config"
	"arcarena/internal/player"
	"arcarena/internal/playfield"
)

func texts(f Frame) []string {
	out := make([]string, len(f.Texts))
	for i, t := range f.Texts {
		out[i] = t.S
	}
	return out
}

func TestFrame_LobbyHiddenUntilInputEnabled(t *testing.T) {
	s, _ := setupSession(t)
	f := s.Frame()
	assert.Nil(t, f.Field)
	assert.Nil(t, f.Backdrop)
	assert.Empty(t, f.Texts)
	assert.Empty(t, f.Rects)
}

func TestFrame_LobbyListsPlayers(t *testing.T) {
	s, _ := setupSession(t)
	s.Update(0.3, nil, idle{})
	f := s.Frame()

	got := texts(f)
	assert.Contains(t, got, player.HeaderAddPlayer)
	assert.Contains(t, got, player.Instructions)
	assert.Contains(t, got, "Ann")
	assert.Contains(t, got, "Keyboard Z / X")

	require.Len(t, f.Rects, 3)
	assert.Equal(t, s.Screen(), f.Rects[0].R)
	assert.Equal(t, playfield.Black, f.Rects[0].Col)

	x, y, dy := player.ListLayout(2)
	bob := s.Lobby().Players()[1]
	swatch := f.Rects[2]
	assert.Equal(t, bob.Color.RGB, swatch.Col)
	assert.Equal(t, 1.0, swatch.Alpha)
	assert.Equal(t, x+swatchOffset, swatch.R.X0)
	assert.Equal(t, y+dy+10, swatch.R.Y0)
	assert.Equal(t, float64(swatchH), swatch.R.H())
}

func TestFrame_EmptyLobbyHasHeaderOnly(t *testing.T) {
	s, _ := setupSession(t, func(_ *config.Settings, o *Options) { o.Players = nil })
	s.Update(0.3, nil, idle{})
	f := s.Frame()
	assert.Equal(t, []string{player.HeaderAddPlayer}, texts(f))
	assert.Empty(t, f.Rects)
}

func TestFrame_Round(t *testing.T) {
	s, _ := setupSession(t)
	enterRound(t, s)
	s.Update(0.31, nil, idle{})

	f := s.Frame()
	assert.Same(t, s.Round().Field, f.Field)
	assert.NotEmpty(t, f.Below, "start circles and effects")
	assert.Contains(t, texts(f), s.Round().Variant.Label)
	assert.Empty(t, f.Rects)
}

func TestFrame_ScoreScreen(t *testing.T) {
	s, _ := setupSession(t)
	enterRound(t, s)
	s.Round().End()

	f := s.Frame()
	assert.NotNil(t, f.Field, "the finished round stays underneath")
	got := texts(f)
	assert.Contains(t, got, "Round 1 Over")
	assert.Contains(t, got, arena.PressSpace)
	require.NotEmpty(t, f.Rects)
	for _, r := range f.Rects {
		assert.Equal(t, playfield.Black, r.Col)
		assert.InDelta(t, 150.0/255, r.Alpha, 1e-9)
	}
}

func TestFrame_BackdropPerScreen(t *testing.T) {
	s, _ := setupSession(t, func(cfg *config.Settings, _ *Options) { cfg.Background.Visible = true })

	f := s.Frame()
	require.NotNil(t, f.Backdrop)
	assert.Equal(t, 640, f.Backdrop.Bounds().Dx())
	assert.Equal(t, 360, f.Backdrop.Bounds().Dy())
	title := f.BackdropVersion

	enterRound(t, s)
	f = s.Frame()
	require.NotNil(t, f.Backdrop)
	assert.Greater(t, f.BackdropVersion, title)
	first := f.BackdropVersion

	s.Round().End()
	s.Update(0.1, []player.Event{player.KeyDown(player.KeySpace, "space")}, idle{})
	assert.Greater(t, s.Frame().BackdropVersion, first)
}
