package backdrop

import (
	"math"
	"slices"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

var (
	yellow = playfield.RGB{R: 255, G: 255}
	blue   = playfield.RGB{B: 255}
	red    = playfield.RGB{R: 255}
	purple = playfield.RGB{R: 128, B: 128}

	primaries = []playfield.RGB{
		red, {G: 255}, blue, yellow, {R: 255, B: 255}, {G: 255, B: 255}, playfield.White,
	}
)

func pick[T any](rng *geom.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func drawGrid(p *painter, sc Scene) {
	const (
		cols    = 8
		rows    = 5
		size    = 140
		margin  = 15
		hidden  = 4
		accents = 2
		extra   = 200
		tilt    = -5 * math.Pi / 180
	)
	order := make([]int, cols*rows)
	for i := range order {
		order[i] = i
	}
	sc.Rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	hide := order[:hidden]
	accent := order[len(order)-accents:]

	w, h := p.size()
	pivot := geom.V((w+extra)/2, (h+extra)/2)
	shift := geom.V(0, -extra/2)
	for i := range cols * rows {
		if slices.Contains(hide, i) {
			continue
		}
		col := sc.Cfg.GridColor
		if slices.Contains(accent, i) {
			col = sc.Cfg.GridAccentColor
		}
		x := float64(i/rows) * (size + margin)
		y := float64(i%rows) * (size + margin)
		corners := []geom.Vec2{geom.V(x, y), geom.V(x+size, y), geom.V(x+size, y+size), geom.V(x, y+size)}
		for k, c := range corners {
			corners[k] = c.Sub(pivot).Rotate(tilt).Add(pivot).Add(shift)
		}
		p.polygon(corners, opaque(col))
	}
}

func drawCircles(p *painter, sc Scene) {
	a := sc.Cfg.CirclesAlpha
	cols := []struct {
		c playfield.RGB
		a uint8
	}{{red, a}, {playfield.Green, a}, {blue, a + 3}, {yellow, a}}
	w, h := p.size()
	for range 125 {
		c := pick(sc.Rand, cols)
		at := geom.V(float64(sc.Rand.Range(0, int(w))), float64(sc.Rand.Range(0, int(h))))
		p.circle(at, float64(sc.Rand.Range(75, 200)), nrgba(c.c, c.a))
	}
}

func drawBlueCircles(p *painter, sc Scene) {
	col := nrgba(playfield.RGB{B: 100}, sc.Cfg.BlueCirclesAlpha)
	w, h := p.size()
	for range 125 {
		at := geom.V(float64(sc.Rand.Range(0, int(w))), float64(sc.Rand.Range(0, int(h))))
		p.circle(at, float64(sc.Rand.Range(100, 200)), col)
	}
}

// arcNest is a set of concentric three-quarter arcs shrinking toward pos.
type arcNest struct {
	size  float64
	count int
	step  float64
}

var arcNests = []arcNest{{200, 7, 30}, {80, 3, 30}, {80, 3, 30}}

func drawConcentricArcs(p *painter, sc Scene) {
	cfg := sc.Cfg
	base, hi := cfg.ConcentricArcsBaseColor, cfg.ConcentricArcsHighlightColor
	arcs(p, sc.Rand, []playfield.RGB{base, base, base, base, base, hi})
}

func drawTitleArcs(p *painter, sc Scene) {
	base, accent := playfield.RGB{R: 6, B: 29}, playfield.RGB{R: 30}
	arcs(p, sc.Rand, []playfield.RGB{base, base, base, base, accent})
}

func arcs(p *painter, rng *geom.Rand, palette []playfield.RGB) {
	const (
		spacing = 100
		jitter  = 15
		nests   = 30
		width   = 7
	)
	w, h := p.size()
	pts := geom.RectWH(w, h).Inflate(150, 150).GridPoints(spacing)
	for i := range pts {
		pts[i] = pts[i].Add(geom.V(float64(rng.Range(-jitter, jitter)), float64(rng.Range(-jitter, jitter))))
	}
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	pts = pts[:min(nests, len(pts))]

	for _, at := range pts {
		n := pick(rng, arcNests)
		r := n.size / 2
		for range n.count {
			a0 := float64(rng.Intn(4)) * math.Pi / 2
			col := opaque(pick(rng, palette))
			p.arc(at, r, width, a0, a0+3*math.Pi/2, col)
			p.arc(at.Add(geom.V(1, 0)), r, width, a0, a0+3*math.Pi/2, col)
			r -= n.step / 2
			if r <= 0 {
				break
			}
		}
	}
}

func drawGeometricScene(p *painter, sc Scene) {
	w, h := p.size()
	a := sc.Cfg.GeometricSceneAlpha
	p.polygon([]geom.Vec2{
		geom.V(w*.7, 0), geom.V(w*.8, 0), geom.V(w*.78, h), geom.V(w*.4, h),
	}, nrgba(blue, a*2))
	p.polygon([]geom.Vec2{
		geom.V(0, h*.8), geom.V(w, h*.2), geom.V(w, h*.7), geom.V(0, h*.9),
	}, nrgba(red, a*2))

	at := geom.V(math.Floor(w*.5), math.Floor(h*.5))
	for r := 100.0; r <= 250; r += 75 {
		p.circle(at, r, nrgba(yellow, a))
		at = at.Add(geom.V(20, 10))
	}

	p.polygon([]geom.Vec2{
		geom.V(w*.2, h*.1), geom.V(w*.5, h*.4), geom.V(w*.3, h*.9), geom.V(w*.1, h*.7),
	}, nrgba(playfield.RGB{R: 255, B: 255}, a*2))
}

func drawRandomPolys(p *painter, sc Scene) {
	const jitter = 600
	a := sc.Cfg.RandomPolysAlpha
	for range 100 {
		at := p.randPoint(sc.Rand)
		col := pick(sc.Rand, primaries)
		quad := make([]geom.Vec2, 4)
		for i := range quad {
			quad[i] = at.Add(sc.Rand.Jitter(jitter, jitter))
		}
		p.polygon(quad, nrgba(col, a))
	}
}

func drawSoftCircles(p *painter, sc Scene) {
	a := sc.Cfg.SoftCirclesAlpha
	for range 16 {
		at := p.randPoint(sc.Rand)
		col := nrgba(pick(sc.Rand, primaries), a)
		start := sc.Rand.Range(70, 100)
		for r := start; r < start+50; r += 7 {
			p.circle(at, float64(r), col)
		}
	}
}

// drawWaveCircles lays two sets of one pixel rings over radial spikes. Ring
// opacity follows a sine of the radius, so it is shaded per pixel rather
// than stroked ring by ring.
func drawWaveCircles(p *painter, sc Scene) {
	w, h := p.size()
	center := geom.RectWH(w, h).Center()
	maxRadius := center.Len()

	var line, cir1, cir2 playfield.RGB
	dark := 1 - sc.Cfg.WaveCirclesDarken
	switch sc.Rand.Intn(3) {
	case 0:
		c := sc.Cfg.WaveCirclesIntensity
		line = playfield.RGB{B: uint8(float64(c) * 1.5)}
		cir1 = playfield.RGB{R: c, G: c, B: c * 2}
		cir2 = playfield.RGB{R: c, G: c, B: c}
	case 1:
		line, cir1, cir2 = yellow.Darken(dark), blue.Darken(dark), red.Darken(dark)
	default:
		line, cir1, cir2 = yellow.Darken(dark), playfield.White.Darken(dark), purple.Darken(dark)
	}

	for range 30 {
		tip := center.Add(geom.FromPolar(sc.Rand.RangeF(0, 2*math.Pi), float64(sc.Rand.Range(150, 700))))
		p.line(center, tip, 5, opaque(line))
	}

	waveRings(p, center, maxRadius, geom.SineWave{Period: 50, Max: 300}, cir1)
	waveRings(p, center.Add(geom.V(-50, 25)), maxRadius, geom.SineWave{Period: 55, Max: 300}, cir2)
}

func waveRings(p *painter, c geom.Vec2, maxRadius float64, wave geom.SineWave, col playfield.RGB) {
	b := p.dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Round(geom.V(float64(x), float64(y)).Dist(c))
			if d < 1 || d > maxRadius {
				continue
			}
			p.blend(x, y, col, math.Min(wave.At(d), 255)/255)
		}
	}
}

func drawHorizLines(p *painter, sc Scene) {
	const maxLength = 500
	w, h := p.size()
	cols := []playfield.RGB{sc.Cfg.HorizLinesColor1, sc.Cfg.HorizLinesColor2, sc.Cfg.HorizLinesColor3}
	mid := h/2 + 75
	for range 500 {
		length := math.Max(0, sc.Rand.Normal(100, 100))
		x := float64(sc.Rand.Range(-maxLength, int(w)))
		y := sc.Rand.Normal(mid, 90)
		t := float64(sc.Rand.Range(1, 6))
		if length == 0 {
			continue
		}
		p.rect(geom.RectF{X0: x, Y0: y - t/2, X1: x + length, Y1: y + t/2}, opaque(pick(sc.Rand, cols)))
	}
}
