package playfield

import "arcarena/internal/geom"

// Sampler answers "what colour is at this pixel". ok is false outside the surface.
type Sampler interface {
	Sample(x, y int) (idx Index, ok bool)
}

// Bitmap is an indexed-colour surface. During a round it is both what the
// players see and the only collision structure.
type Bitmap struct {
	W, H int
	Pix  []Index

	Palette *Palette

	// Tex is the GL texture id once uploaded.
	Tex uint32

	NeedsUpload bool
}

func NewBitmap(w, h int, pal *Palette) *Bitmap {
	return &Bitmap{
		W:           w,
		H:           h,
		Pix:         make([]Index, w*h),
		Palette:     pal,
		NeedsUpload: true,
	}
}

func (b *Bitmap) Bounds() geom.RectF {
	return geom.RectWH(float64(b.W), float64(b.H))
}

func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.W && y < b.H
}

// Sample implements Sampler.
func (b *Bitmap) Sample(x, y int) (Index, bool) {
	if !b.InBounds(x, y) {
		return 0, false
	}
	return b.Pix[y*b.W+x], true
}

// SampleAt samples at a floating point position.
func (b *Bitmap) SampleAt(p geom.Vec2) (Index, bool) {
	x, y := p.Pixel()
	return b.Sample(x, y)
}

func (b *Bitmap) Set(x, y int, idx Index) {
	if !b.InBounds(x, y) {
		return
	}
	b.Pix[y*b.W+x] = idx
	b.NeedsUpload = true
}

func (b *Bitmap) Fill(idx Index) {
	for i := range b.Pix {
		b.Pix[i] = idx
	}
	b.NeedsUpload = true
}

// Count returns how many pixels hold idx.
func (b *Bitmap) Count(idx Index) int {
	n := 0
	for _, p := range b.Pix {
		if p == idx {
			n++
		}
	}
	return n
}

// RGBA expands the bitmap into an RGBA8 buffer for texture upload.
// Pixels equal to key become fully transparent so lower layers show through.
func (b *Bitmap) RGBA(dst []uint8, key Index) []uint8 {
	n := b.W * b.H * 4
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	for i, idx := range b.Pix {
		o := i * 4
		c := b.Palette[idx]
		dst[o+0] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		if idx == key {
			dst[o+3] = 0
		} else {
			dst[o+3] = 255
		}
	}
	return dst
}
