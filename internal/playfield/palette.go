package playfield

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: clampU8(int(c.R) + dr), G: clampU8(int(c.G) + dg), B: clampU8(int(c.B) + db)}
}

// Darken scales each channel toward black; pct 0.5 halves it.
func (c RGB) Darken(pct float64) RGB {
	k := 1 - pct
	if k < 0 {
		k = 0
	}
	return RGB{R: uint8(float64(c.R) * k), G: uint8(float64(c.G) * k), B: uint8(float64(c.B) * k)}
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Index is a palette slot in an indexed bitmap.
type Index uint8

// Reserved palette slots. Player colors start at FirstPlayer.
const (
	IdxBackground  Index = 100
	IdxBorder      Index = 101
	IdxHead        Index = 102
	IdxHeadDim     Index = 103
	IdxColorBlind  Index = 104
	IdxFirstPlayer Index = 105
)

// Color pairs a palette index with the RGB it maps to.
type Color struct {
	Idx Index
	RGB RGB
}

var (
	Black         = RGB{0, 0, 0}
	White         = RGB{255, 255, 255}
	DarkGray      = RGB{80, 80, 80}
	Green         = RGB{0, 255, 0}
	Gold          = RGB{255, 215, 0}
	BorderRGB     = RGB{100, 100, 100}
	HeadDimRGB    = RGB{160, 160, 160}
	ColorBlindRGB = RGB{128, 128, 128}
)

// Palette maps indexes to colours.
type Palette [256]RGB

// NewPalette fills unused slots with a loud green so stray writes are visible,
// then installs the reserved colours and the player colours from FirstPlayer on.
func NewPalette(players []RGB) *Palette {
	var p Palette
	for i := range p {
		p[i] = Green
	}
	p[IdxBackground] = Black
	p[IdxBorder] = BorderRGB
	p[IdxHead] = White
	p[IdxHeadDim] = HeadDimRGB
	p[IdxColorBlind] = ColorBlindRGB
	for i, c := range players {
		slot := int(IdxFirstPlayer) + i
		if slot > 255 {
			break
		}
		p[slot] = c
	}
	return &p
}

// PlayerColors pairs each player RGB with its palette slot.
func PlayerColors(players []RGB) []Color {
	out := make([]Color, 0, len(players))
	for i, c := range players {
		out = append(out, Color{Idx: IdxFirstPlayer + Index(i), RGB: c})
	}
	return out
}
