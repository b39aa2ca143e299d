package arena

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

func setupScoreboard(names ...string) *Scoreboard {
	sb := NewScoreboard()
	for i, n := range names {
		sb.AddPlayer(n, playfield.RGB{R: uint8(40 * (i + 1)), G: 100, B: 200})
	}
	return sb
}

func playRound(sb *Scoreboard, seconds float64, deltas map[int]int) {
	sb.StartRound()
	for idx, d := range deltas {
		sb.ChangeScore(idx, d)
	}
	sb.EndRound(seconds, nil)
}

func TestScoreboard_StreaksAndRecords(t *testing.T) {
	sb := setupScoreboard("A", "B", "C")

	playRound(sb, 5, map[int]int{0: 10})
	playRound(sb, 3, map[int]int{0: 10, 1: 10})
	if diff := cmp.Diff([]string{
		"Round time: 3.0 seconds",
		"Longest round: 5.0 seconds by A",
		"Current win streak: 2 by A",
		"Longest win streak: 2 by A",
	}, sb.Facts()); diff != "" {
		t.Errorf("facts after round 2 (-want +got):\n%s", diff)
	}

	playRound(sb, 7, map[int]int{2: 5})
	if diff := cmp.Diff([]string{
		"Round time: 7.0 seconds",
		"Longest round: 7.0 seconds by C",
		"Current win streak: 1 by C",
		"Longest win streak: 2 by A",
	}, sb.Facts()); diff != "" {
		t.Errorf("facts after round 3 (-want +got):\n%s", diff)
	}

	type row struct {
		Score, Delta, Streak int
		Winner               bool
	}
	var got []row
	for _, p := range sb.Players {
		got = append(got, row{p.Score, p.Delta, p.WinStreak, p.IsWinner})
	}
	want := []row{{20, 0, 0, false}, {10, 0, 0, false}, {5, 5, 1, true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("players (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, sb.RoundNum)
}

func TestScoreboard_EveryoneTiesOnAQuietRound(t *testing.T) {
	sb := setupScoreboard("A", "B", "C")
	playRound(sb, 2, nil)
	for _, p := range sb.Players {
		assert.True(t, p.IsWinner)
	}
	facts := sb.Facts()
	assert.Equal(t, "Longest round: 2.0 seconds by A, B, C", facts[1])
	assert.Equal(t, "Current win streak: 1 by A,B,C", facts[2])
}

func TestScoreboard_StreakNeedsToBeBeaten(t *testing.T) {
	sb := setupScoreboard("A", "B")
	playRound(sb, 1, map[int]int{0: 1})
	playRound(sb, 1, map[int]int{1: 1})
	assert.Equal(t, "Longest win streak: 1 by A", sb.Facts()[3])
	assert.Equal(t, "Longest round: 1.0 seconds by A", sb.Facts()[1])
}

func TestScoreboard_Survivors(t *testing.T) {
	sb := setupScoreboard("A", "B", "C")
	sb.StartRound()
	sb.ChangeScore(2, 10)
	sb.EndRound(3, []int{2})
	assert.True(t, sb.Players[2].Survived)
	assert.False(t, sb.Players[0].Survived)
	assert.Equal(t, "Last one standing: C", sb.Facts()[4])

	sb.StartRound()
	assert.Empty(t, sb.Survivors)
	assert.False(t, sb.Players[2].Survived)
	sb.EndRound(1, []int{0, 1})
	assert.Equal(t, "Still standing: A, B", sb.Facts()[4])

	sb.StartRound()
	sb.EndRound(1, nil)
	assert.Len(t, sb.Facts(), 4)
	assert.Panics(t, func() { sb.EndRound(1, []int{3}) })
}

func TestScoreboard_ChangeScoreBadIndexPanics(t *testing.T) {
	sb := setupScoreboard("A")
	assert.Panics(t, func() { sb.ChangeScore(1, 10) })
	assert.Panics(t, func() { sb.ChangeScore(-1, 10) })
}

func TestScoreboard_StartRoundResetsDeltas(t *testing.T) {
	sb := setupScoreboard("A")
	playRound(sb, 1, map[int]int{0: 10})
	sb.StartRound()
	assert.Equal(t, 0, sb.Players[0].Delta)
	assert.Equal(t, 10, sb.Players[0].Score)
	assert.Equal(t, 2, sb.RoundNum)
}

func TestScoreboard_Rows(t *testing.T) {
	sb := setupScoreboard("1", "2", "3", "4", "5", "6")
	top, bottom := sb.Rows()
	assert.Len(t, top, 6)
	assert.Empty(t, bottom)

	sb.AddPlayer("7", playfield.White)
	top, bottom = sb.Rows()
	assert.Len(t, top, 4)
	assert.Len(t, bottom, 3)
}

func TestScoreboard_WinnerDeltaBlinks(t *testing.T) {
	sb := setupScoreboard("A", "B")
	playRound(sb, 1, map[int]int{0: 10})
	a, b := sb.Players[0], sb.Players[1]

	assert.Equal(t, a.Color, sb.DeltaColor(a))
	sb.Step(0.5)
	assert.Equal(t, a.Dark, sb.DeltaColor(a))
	assert.Equal(t, b.Color, sb.DeltaColor(b))
}

func TestScoreboard_Layout(t *testing.T) {
	sb := setupScoreboard("A", "B")
	playRound(sb, 4, map[int]int{1: 10})
	l := sb.Layout(geom.RectWH(1280, 720))
	var texts []string
	for _, tx := range l.Texts {
		texts = append(texts, tx.S)
	}
	assert.Equal(t, "Round 1 Over", texts[0])
	assert.Contains(t, texts, "A: 0")
	assert.Contains(t, texts, "B: 10")
	assert.Contains(t, texts, "+10")
	assert.Contains(t, texts, "+0")
	assert.Contains(t, texts, PressSpace)
	assert.Len(t, l.Panels, 1)
}
