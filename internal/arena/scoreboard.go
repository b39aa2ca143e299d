package arena

import (
	"fmt"
	"strings"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

var winnerPulse = geom.PulseWave{Period: 0.8, Min: 0, Max: 1, Width: 0.2}

type ScorePlayer struct {
	Name  string
	Color playfield.RGB
	Dark  playfield.RGB

	Score     int
	Delta     int
	WinStreak int
	IsWinner  bool
	// Survived is set when the player's snake was alive as the round ended.
	Survived bool
}

// Record is a best-so-far value and the players who set it.
type Record struct {
	Value   float64
	Holders []*ScorePlayer
}

// Names joins the holders' names with sep.
func (r Record) Names(sep string) string {
	names := make([]string, len(r.Holders))
	for i, p := range r.Holders {
		names[i] = p.Name
	}
	return strings.Join(names, sep)
}

// Scoreboard keeps scores across rounds along with the fun facts shown
// between them.
type Scoreboard struct {
	Players  []*ScorePlayer
	RoundNum int

	CurrentStreak Record
	MaxStreak     Record
	LastRoundTime float64
	MaxRoundTime  Record
	Survivors     []*ScorePlayer

	elapsed float64
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

func (sb *Scoreboard) AddPlayer(name string, col playfield.RGB) {
	sb.Players = append(sb.Players, &ScorePlayer{Name: name, Color: col, Dark: col.Darken(0.5)})
}

func (sb *Scoreboard) StartRound() {
	sb.RoundNum++
	sb.elapsed = 0
	sb.Survivors = nil
	for _, p := range sb.Players {
		p.Delta = 0
		p.Survived = false
	}
}

// EndRound marks everyone tied for the best delta as a winner and updates
// streaks and the longest round. survivors are the indexes of players whose
// snakes were still alive at the end.
func (sb *Scoreboard) EndRound(roundTime float64, survivors []int) {
	if len(sb.Players) == 0 {
		return
	}
	sb.Survivors = sb.Survivors[:0]
	for _, idx := range survivors {
		if idx < 0 || idx >= len(sb.Players) {
			panic(fmt.Sprintf("scoreboard: invalid survivor index %d, have %d players", idx, len(sb.Players)))
		}
		p := sb.Players[idx]
		p.Survived = true
		sb.Survivors = append(sb.Survivors, p)
	}
	maxDelta := sb.Players[0].Delta
	for _, p := range sb.Players[1:] {
		maxDelta = max(maxDelta, p.Delta)
	}
	var winners []*ScorePlayer
	for _, p := range sb.Players {
		p.IsWinner = p.Delta >= maxDelta
		if p.IsWinner {
			winners = append(winners, p)
			p.WinStreak++
		} else {
			p.WinStreak = 0
		}
	}

	longest := 0
	for _, p := range sb.Players {
		longest = max(longest, p.WinStreak)
	}
	cur := Record{Value: float64(longest)}
	for _, p := range sb.Players {
		if p.WinStreak >= longest {
			cur.Holders = append(cur.Holders, p)
		}
	}
	sb.CurrentStreak = cur
	if cur.Value > sb.MaxStreak.Value {
		sb.MaxStreak = cur
	}

	sb.LastRoundTime = roundTime
	if roundTime > sb.MaxRoundTime.Value {
		sb.MaxRoundTime = Record{Value: roundTime, Holders: winners}
	}
}

// ChangeScore panics on a bad index; callers only ever pass controller indexes.
func (sb *Scoreboard) ChangeScore(idx, delta int) {
	if idx < 0 || idx >= len(sb.Players) {
		panic(fmt.Sprintf("scoreboard: invalid player index %d, have %d players", idx, len(sb.Players)))
	}
	sb.Players[idx].Score += delta
	sb.Players[idx].Delta += delta
}

func (sb *Scoreboard) Step(dt float64) { sb.elapsed += dt }

// DeltaColor is the colour of a player's round delta; winners blink.
func (sb *Scoreboard) DeltaColor(p *ScorePlayer) playfield.RGB {
	if !p.IsWinner || winnerPulse.At(sb.elapsed) == 1 {
		return p.Color
	}
	return p.Dark
}

// Rows splits players into the top and bottom score rows. Up to six fit on
// one row; beyond that the top row takes the extra player.
func (sb *Scoreboard) Rows() (top, bottom []*ScorePlayer) {
	n := len(sb.Players)
	topN := n
	if n > 6 {
		topN = n/2 + n%2
	}
	return sb.Players[:topN], sb.Players[topN:]
}

// Facts are the lines under the scores.
func (sb *Scoreboard) Facts() []string {
	facts := []string{
		fmt.Sprintf("Round time: %.1f seconds", sb.LastRoundTime),
		fmt.Sprintf("Longest round: %.1f seconds by %s", sb.MaxRoundTime.Value, sb.MaxRoundTime.Names(", ")),
		fmt.Sprintf("Current win streak: %d by %s", int(sb.CurrentStreak.Value), sb.CurrentStreak.Names(",")),
		fmt.Sprintf("Longest win streak: %d by %s", int(sb.MaxStreak.Value), sb.MaxStreak.Names(",")),
	}
	switch len(sb.Survivors) {
	case 0:
	case 1:
		facts = append(facts, "Last one standing: "+sb.Survivors[0].Name)
	default:
		facts = append(facts, "Still standing: "+Record{Holders: sb.Survivors}.Names(", "))
	}
	return facts
}

const (
	rowHeight     = 60
	topRowY       = 15
	bottomRowY    = 85
	factsOffset   = 100
	factsSpacing  = 40
	continueInset = 60
)

// PressSpace is the prompt shown on screens that wait for the space bar.
const PressSpace = "- Press SPACE to continue -"

// Layout lays out the between-rounds screen.
func (sb *Scoreboard) Layout(screen geom.RectF) Layout {
	l := Layout{PanelAlpha: 150.0 / 255}
	c := screen.Center()
	l.Texts = append(l.Texts, Text{S: fmt.Sprintf("Round %d Over", sb.RoundNum), Size: 60, Pos: c, Col: playfield.White})

	top, bottom := sb.Rows()
	for i, row := range [][]*ScorePlayer{top, bottom} {
		if len(row) == 0 {
			continue
		}
		y := float64(topRowY)
		if i == 1 {
			y = bottomRowY
		}
		panel := geom.RectF{X0: screen.X0, Y0: screen.Y0 + y, X1: screen.X1, Y1: screen.Y0 + y + rowHeight}
		l.Panels = append(l.Panels, panel)
		w := panel.W() / float64(len(row))
		for j, p := range row {
			x := panel.X0 + w*(float64(j)+0.5)
			l.Texts = append(l.Texts,
				Text{S: fmt.Sprintf("%s: %d", p.Name, p.Score), Size: 24, Pos: geom.V(x, panel.Y0), Anchor: AnchorTop, Col: p.Color},
				Text{S: fmt.Sprintf("%+d", p.Delta), Size: 24, Pos: geom.V(x, panel.Y0+30), Anchor: AnchorTop, Col: sb.DeltaColor(p)},
			)
		}
	}

	for i, f := range sb.Facts() {
		y := c.Y + factsOffset + 15 + float64(i*factsSpacing)
		l.Texts = append(l.Texts, Text{S: f, Size: 24, Pos: geom.V(c.X, y), Col: playfield.White})
	}
	l.Texts = append(l.Texts, Text{S: PressSpace, Size: 24, Pos: geom.V(c.X, screen.Y1-continueInset), Col: playfield.White})
	return l
}
