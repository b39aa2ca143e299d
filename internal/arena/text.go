package arena

import (
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// Anchor says which point of a text's box Pos refers to.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop           // horizontally centred, top edge at Pos
	AnchorBottom
	AnchorTopLeft
)

// Text is a line of text for the renderer to draw.
type Text struct {
	S      string
	Size   float64
	Pos    geom.Vec2
	Anchor Anchor
	Col    playfield.RGB
}

// Layout is a screen of text over translucent panels.
type Layout struct {
	Panels []geom.RectF
	// PanelAlpha is shared by every panel, 0..1.
	PanelAlpha float64
	Texts      []Text
}
