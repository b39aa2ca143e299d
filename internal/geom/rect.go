package geom

// RectF is an axis-aligned rectangle in playfield pixel space.
// X0/Y0 are inclusive, X1/Y1 exclusive.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// RectWH builds a rectangle anchored at the origin.
func RectWH(w, h float64) RectF {
	return RectF{X1: w, Y1: h}
}

func (r RectF) W() float64   { return r.X1 - r.X0 }
func (r RectF) H() float64   { return r.Y1 - r.Y0 }
func (r RectF) Center() Vec2 { return Vec2{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2} }
func (r RectF) MinSide() float64 {
	if r.W() < r.H() {
		return r.W()
	}
	return r.H()
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// ContainsPoint reports whether p lies inside r (half-open on the far edges).
func (r RectF) ContainsPoint(p Vec2) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Inflate grows the rectangle by dx/dy in total, keeping the center.
// Negative values shrink it.
func (r RectF) Inflate(dx, dy float64) RectF {
	return RectF{X0: r.X0 - dx/2, Y0: r.Y0 - dy/2, X1: r.X1 + dx/2, Y1: r.Y1 + dy/2}
}

func (r RectF) Move(dx, dy float64) RectF {
	return RectF{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// ClampPoint pulls p inside r.
func (r RectF) ClampPoint(p Vec2) Vec2 {
	return Vec2{X: ClampF(p.X, r.X0, r.X1-1), Y: ClampF(p.Y, r.Y0, r.Y1-1)}
}

// GridPoints returns grid points with the given spacing that keep at least
// one spacing of clearance from every edge.
func (r RectF) GridPoints(spacing float64) []Vec2 {
	if spacing <= 0 {
		return nil
	}
	var pts []Vec2
	for y := r.Y0 + spacing; y <= r.Y1-spacing; y += spacing {
		for x := r.X0 + spacing; x <= r.X1-spacing; x += spacing {
			pts = append(pts, Vec2{X: x, Y: y})
		}
	}
	return pts
}
