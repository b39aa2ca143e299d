package backdrop

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// kappa places the cubic control points of a quarter circle.
const kappa = 0.5522847498

// painter composites anti-aliased shapes onto an RGBA image. Every shape
// gets a rasterizer sized to its own clipped bounding box.
type painter struct {
	dst *image.RGBA
	z   vector.Rasterizer
	src image.Uniform
}

func nrgba(c playfield.RGB, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func opaque(c playfield.RGB) color.NRGBA { return nrgba(c, 255) }

func (p *painter) size() (w, h float64) {
	b := p.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (p *painter) randPoint(rng *geom.Rand) geom.Vec2 {
	w, h := p.size()
	return rng.InRect(geom.RectWH(w, h))
}

// shape runs path with coordinates relative to bb.Min and blends col
// through the coverage it leaves.
func (p *painter) shape(bb image.Rectangle, col color.NRGBA, path func(z *vector.Rasterizer, ox, oy float64)) {
	bb = bb.Intersect(p.dst.Bounds())
	if bb.Empty() || col.A == 0 {
		return
	}
	p.z.Reset(bb.Dx(), bb.Dy())
	p.z.DrawOp = xdraw.Over
	path(&p.z, float64(bb.Min.X), float64(bb.Min.Y))
	p.src.C = col
	p.z.Draw(p.dst, bb, &p.src, image.Point{})
}

func boundsOf(pts []geom.Vec2) image.Rectangle {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, q := range pts {
		x0, y0 = math.Min(x0, q.X), math.Min(y0, q.Y)
		x1, y1 = math.Max(x1, q.X), math.Max(y1, q.Y)
	}
	return image.Rect(int(math.Floor(x0))-1, int(math.Floor(y0))-1, int(math.Ceil(x1))+1, int(math.Ceil(y1))+1)
}

func circleBounds(c geom.Vec2, r float64) image.Rectangle {
	return boundsOf([]geom.Vec2{c.Sub(geom.V(r, r)), c.Add(geom.V(r, r))})
}

func (p *painter) polygon(pts []geom.Vec2, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	p.shape(boundsOf(pts), col, func(z *vector.Rasterizer, ox, oy float64) {
		z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
		for _, q := range pts[1:] {
			z.LineTo(float32(q.X-ox), float32(q.Y-oy))
		}
		z.ClosePath()
	})
}

func (p *painter) rect(r geom.RectF, col color.NRGBA) {
	p.polygon([]geom.Vec2{
		geom.V(r.X0, r.Y0), geom.V(r.X1, r.Y0), geom.V(r.X1, r.Y1), geom.V(r.X0, r.Y1),
	}, col)
}

// line is a thick segment with square ends flush at p0 and p1.
func (p *painter) line(p0, p1 geom.Vec2, width float64, col color.NRGBA) {
	d := p1.Sub(p0).Normalize()
	if d.IsZero() {
		return
	}
	n := geom.V(-d.Y, d.X).Scale(width / 2)
	p.polygon([]geom.Vec2{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}, col)
}

func (p *painter) circle(c geom.Vec2, r float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	p.shape(circleBounds(c, r), col, func(z *vector.Rasterizer, ox, oy float64) {
		circlePath(z, c.X-ox, c.Y-oy, r, 1)
	})
}

// ring fills the band between r-width and r. The inner circle winds the
// other way and cancels the coverage of the outer one.
func (p *painter) ring(c geom.Vec2, r, width float64, col color.NRGBA) {
	if width >= r {
		p.circle(c, r, col)
		return
	}
	p.shape(circleBounds(c, r), col, func(z *vector.Rasterizer, ox, oy float64) {
		circlePath(z, c.X-ox, c.Y-oy, r, 1)
		circlePath(z, c.X-ox, c.Y-oy, r-width, -1)
	})
}

func circlePath(z *vector.Rasterizer, cx, cy, r, s float64) {
	k := r * kappa
	f := func(v float64) float32 { return float32(v) }
	z.MoveTo(f(cx+r), f(cy))
	z.CubeTo(f(cx+r), f(cy+s*k), f(cx+k), f(cy+s*r), f(cx), f(cy+s*r))
	z.CubeTo(f(cx-k), f(cy+s*r), f(cx-r), f(cy+s*k), f(cx-r), f(cy))
	z.CubeTo(f(cx-r), f(cy-s*k), f(cx-k), f(cy-s*r), f(cx), f(cy-s*r))
	z.CubeTo(f(cx+k), f(cy-s*r), f(cx+r), f(cy-s*k), f(cx+r), f(cy))
	z.ClosePath()
}

// arc fills the ring band of the given width between angles a0 and a1.
func (p *painter) arc(c geom.Vec2, r, width, a0, a1 float64, col color.NRGBA) {
	inner := math.Max(r-width, 0)
	steps := max(8, int((a1-a0)*r/4))
	pts := make([]geom.Vec2, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		pts = append(pts, c.Add(geom.FromPolar(a, r)))
	}
	for i := steps; i >= 0; i-- {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		pts = append(pts, c.Add(geom.FromPolar(a, inner)))
	}
	p.polygon(pts, col)
}

// blend mixes col into the pixel at x, y with coverage a in [0, 1].
func (p *painter) blend(x, y int, col playfield.RGB, a float64) {
	if a <= 0 {
		return
	}
	a = math.Min(a, 1)
	o := p.dst.PixOffset(x, y)
	px := p.dst.Pix[o : o+4 : o+4]
	px[0] = uint8(float64(px[0])*(1-a) + float64(col.R)*a)
	px[1] = uint8(float64(px[1])*(1-a) + float64(col.G)*a)
	px[2] = uint8(float64(px[2])*(1-a) + float64(col.B)*a)
	px[3] = 255
}
