// Package backdrop paints the art shown behind the playfield. The
// playfield's background colour is keyed out, so whatever is drawn here
// shows through every pixel no snake has touched yet.
package backdrop

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"arcarena/internal/config"
	"arcarena/internal/geom"
)

// Scene is what a generator draws from.
type Scene struct {
	Cfg   config.BackgroundSettings
	Rand  *geom.Rand
	Names []string
}

// Generator is one kind of background art.
type Generator struct {
	Name string
	draw func(p *painter, sc Scene)
}

// Generators returns the round backgrounds in their cycling order.
func Generators() []Generator {
	return []Generator{
		{Name: "grid", draw: drawGrid},
		{Name: "circles", draw: drawCircles},
		{Name: "blue_circles", draw: drawBlueCircles},
		{Name: "concentric_arcs", draw: drawConcentricArcs},
		{Name: "geometric_scene", draw: drawGeometricScene},
		{Name: "random_polys", draw: drawRandomPolys},
		{Name: "player_names", draw: drawPlayerNames},
		{Name: "soft_circles", draw: drawSoftCircles},
		{Name: "wave_circles", draw: drawWaveCircles},
		{Name: "horiz_lines", draw: drawHorizLines},
	}
}

// Title is the concentric arc art behind the check-in screen.
var Title = Generator{Name: "title", draw: drawTitleArcs}

// Render paints g onto a fresh black w x h image.
func Render(g Generator, w, h int, sc Scene) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, xdraw.Src)
	g.draw(&painter{dst: img}, sc)
	return img
}

// Chooser hands out generators either in order or at random, never the
// same one twice in a row.
type Chooser struct {
	gens   []Generator
	random bool
	rng    *geom.Rand
	next   int
	last   int
}

func NewChooser(gens []Generator, random bool, rng *geom.Rand) *Chooser {
	if len(gens) == 0 {
		panic("backdrop: chooser needs at least one generator")
	}
	return &Chooser{gens: gens, random: random, rng: rng, last: -1}
}

func (c *Chooser) Next() Generator {
	if !c.random {
		g := c.gens[c.next%len(c.gens)]
		c.next++
		return g
	}
	i := c.rng.Intn(len(c.gens))
	for len(c.gens) > 1 && i == c.last {
		i = c.rng.Intn(len(c.gens))
	}
	c.last = i
	return c.gens[i]
}
