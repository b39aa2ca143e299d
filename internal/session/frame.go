package session

import (
	"image"

	"arcarena/internal/arena"
	"arcarena/internal/geom"
	"arcarena/internal/player"
	"arcarena/internal/playfield"
)

const (
	headerSize       = 24
	nameSize         = 60
	inputLabelSize   = 24
	swatchOffset     = 450
	swatchW          = 200
	swatchH          = 50
	inputLabelOffset = 700
	promptInset      = 12
)

// Rect is a filled rectangle drawn over the playfield.
type Rect struct {
	R     geom.RectF
	Col   playfield.RGB
	Alpha float64
}

// Frame is everything the renderer needs for one screen, back to front:
// the backdrop, the Below sprites, the playfield bitmap, the Above
// sprites, then rectangles and text.
type Frame struct {
	Backdrop *image.RGBA
	// BackdropVersion changes whenever Backdrop is repainted.
	BackdropVersion int

	// Field is nil in the lobby.
	Field *playfield.Bitmap
	Below []float32
	Above []float32

	Rects []Rect
	Texts []arena.Text
}

// Frame describes the current screen. The sprite slices are reused by the
// next call.
func (s *Session) Frame() Frame {
	f := Frame{Backdrop: s.backdrop, BackdropVersion: s.backdropVer}
	switch s.state {
	case StateLobby:
		s.lobbyFrame(&f)
	case StateRound, StateScore:
		s.round.Render(&s.canvas)
		f.Field = s.round.Field
		f.Below = s.canvas.Below
		f.Above = s.canvas.Above
		f.Texts = append(f.Texts, s.round.Labels()...)
		f.Texts = s.popupTexts(f.Texts)
		if s.state == StateScore {
			l := s.scores.Layout(s.screen)
			for _, p := range l.Panels {
				f.Rects = append(f.Rects, Rect{R: p, Col: playfield.Black, Alpha: l.PanelAlpha})
			}
			f.Texts = append(f.Texts, l.Texts...)
		}
	}
	return f
}

func (s *Session) lobbyFrame(f *Frame) {
	if !s.lobby.InputEnabled() {
		return
	}
	players := s.lobby.Players()
	if len(players) > 0 {
		f.Rects = append(f.Rects, Rect{R: s.screen, Col: playfield.Black, Alpha: lobbyPanelAlpha})
	}

	x, y, dy := player.ListLayout(len(players))
	for _, c := range players {
		col := c.Color.RGB
		f.Texts = append(f.Texts,
			arena.Text{S: c.Name, Size: nameSize, Pos: geom.V(x, y), Anchor: arena.AnchorTopLeft, Col: col},
			arena.Text{S: c.Config.Name(), Size: inputLabelSize, Pos: geom.V(x+inputLabelOffset, y+20), Anchor: arena.AnchorTopLeft, Col: col},
		)
		f.Rects = append(f.Rects, Rect{
			R:     geom.RectF{X0: x + swatchOffset, Y0: y + 10, X1: x + swatchOffset + swatchW, Y1: y + 10 + swatchH},
			Col:   col,
			Alpha: 1,
		})
		y += dy
	}

	top := geom.V(s.screen.Center().X, s.screen.Y0)
	bottom := geom.V(top.X, s.screen.Y1-promptInset)
	f.Texts = append(f.Texts, arena.Text{S: s.lobby.Header(), Size: headerSize, Pos: top, Anchor: arena.AnchorTop, Col: Red})
	if ins := s.lobby.Instructions(); ins != "" {
		f.Texts = append(f.Texts, arena.Text{S: ins, Size: headerSize, Pos: bottom, Anchor: arena.AnchorBottom, Col: Red})
	}
	if msg := s.lobby.Message(); msg != "" {
		f.Texts = append(f.Texts, arena.Text{S: msg, Size: headerSize, Pos: s.screen.Center(), Col: playfield.White})
	}
}
