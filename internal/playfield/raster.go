package playfield

import (
	"math"
	"slices"

	"arcarena/internal/geom"
)

// The rasterizers below write exact palette indexes with no antialiasing.
// Collision reads these pixels back, so a blended edge would be an
// unintended obstacle.

// FillCircle paints every pixel whose centre lies within r of c.
// A radius below 1 paints the single pixel under c.
func (b *Bitmap) FillCircle(c geom.Vec2, r int, idx Index) {
	cx, cy := c.Pixel()
	if r < 1 {
		b.Set(cx, cy, idx)
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= b.H {
			continue
		}
		row := y * b.W
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x := cx + dx
			if x < 0 || x >= b.W {
				continue
			}
			b.Pix[row+x] = idx
		}
	}
	b.NeedsUpload = true
}

// Ring paints the band of pixels between r-width and r from c.
func (b *Bitmap) Ring(c geom.Vec2, r, width int, idx Index) {
	if width <= 0 || width >= r {
		b.FillCircle(c, r, idx)
		return
	}
	b.arcBand(c, r, width, 0, 2*math.Pi, idx)
}

// Arc paints the ring band between angles a0 and a1 (radians, a1 > a0,
// measured clockwise in screen space from +x).
func (b *Bitmap) Arc(c geom.Vec2, r, width int, a0, a1 float64, idx Index) {
	if width <= 0 {
		width = 1
	}
	b.arcBand(c, r, width, a0, a1, idx)
}

// arcBand walks only the rows of the band that fall on the bitmap, and
// on each row only the one or two spans between the inner and outer edge.
func (b *Bitmap) arcBand(c geom.Vec2, r, width int, a0, a1 float64, idx Index) {
	cx, cy := c.Pixel()
	outer2 := r * r
	inner := r - width
	inner2 := inner * inner
	full := a1-a0 >= 2*math.Pi
	for y := max(cy-r, 0); y <= min(cy+r, b.H-1); y++ {
		dy := y - cy
		xo := isqrt(outer2 - dy*dy)
		xi := isqrt(inner2 - dy*dy)
		if xi < 0 {
			b.bandSpan(cx, cy, y, cx-xo, cx+xo, a0, a1, full, idx)
			continue
		}
		b.bandSpan(cx, cy, y, cx-xo, cx-xi-1, a0, a1, full, idx)
		b.bandSpan(cx, cy, y, cx+xi+1, cx+xo, a0, a1, full, idx)
	}
	b.NeedsUpload = true
}

func (b *Bitmap) bandSpan(cx, cy, y, x0, x1 int, a0, a1 float64, full bool, idx Index) {
	x0, x1 = max(x0, 0), min(x1, b.W-1)
	row := y * b.W
	for x := x0; x <= x1; x++ {
		if !full && !angleWithin(math.Atan2(float64(y-cy), float64(x-cx)), a0, a1) {
			continue
		}
		b.Pix[row+x] = idx
	}
}

// isqrt is the floor of the square root of n, or -1 for negative n.
func isqrt(n int) int {
	if n < 0 {
		return -1
	}
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	return s
}

func angleWithin(a, a0, a1 float64) bool {
	const tau = 2 * math.Pi
	a = math.Mod(a-a0, tau)
	if a < 0 {
		a += tau
	}
	return a <= a1-a0
}

// Line paints a segment. Widths above 1 are stamped as a capsule.
func (b *Bitmap) Line(p0, p1 geom.Vec2, width int, idx Index) {
	if width <= 1 {
		b.bresenham(p0, p1, idx)
		return
	}
	half := float64(width) / 2
	minX := int(math.Floor(math.Min(p0.X, p1.X) - half))
	maxX := int(math.Ceil(math.Max(p0.X, p1.X) + half))
	minY := int(math.Floor(math.Min(p0.Y, p1.Y) - half))
	maxY := int(math.Ceil(math.Max(p0.Y, p1.Y) + half))
	seg := p1.Sub(p0)
	segLen2 := seg.X*seg.X + seg.Y*seg.Y
	for y := max(minY, 0); y <= min(maxY, b.H-1); y++ {
		for x := max(minX, 0); x <= min(maxX, b.W-1); x++ {
			p := geom.V(float64(x)+0.5, float64(y)+0.5)
			t := 0.0
			if segLen2 > 0 {
				d := p.Sub(p0)
				t = geom.ClampF((d.X*seg.X+d.Y*seg.Y)/segLen2, 0, 1)
			}
			if p.Dist(p0.Add(seg.Scale(t))) <= half {
				b.Pix[y*b.W+x] = idx
			}
		}
	}
	b.NeedsUpload = true
}

func (b *Bitmap) bresenham(p0, p1 geom.Vec2, idx Index) {
	x0, y0 := p0.Pixel()
	x1, y1 := p1.Pixel()
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.Set(x0, y0, idx)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillPolygon fills with the even-odd rule, sampling at pixel centres.
func (b *Bitmap) FillPolygon(pts []geom.Vec2, idx Index) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	xs := make([]float64, 0, 8)
	for y := max(int(math.Floor(minY)), 0); y <= min(int(math.Ceil(maxY)), b.H-1); y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, c := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (c.Y <= sy) {
				continue
			}
			xs = append(xs, a.X+(sy-a.Y)/(c.Y-a.Y)*(c.X-a.X))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Ceil(xs[i]-0.5)), 0)
			x1 := min(int(math.Floor(xs[i+1]-0.5)), b.W-1)
			for x := x0; x <= x1; x++ {
				b.Pix[y*b.W+x] = idx
			}
		}
	}
	b.NeedsUpload = true
}

// RectBorder paints a frame of the given width just inside r.
func (b *Bitmap) RectBorder(r geom.RectF, width int, idx Index) {
	x0, y0 := int(r.X0), int(r.Y0)
	x1, y1 := int(r.X1), int(r.Y1)
	for y := max(y0, 0); y < min(y1, b.H); y++ {
		for x := max(x0, 0); x < min(x1, b.W); x++ {
			if x-x0 < width || x1-1-x < width || y-y0 < width || y1-1-y < width {
				b.Pix[y*b.W+x] = idx
			}
		}
	}
	b.NeedsUpload = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
