package backdrop

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

func setupScene(seed uint64) Scene {
	return Scene{
		Cfg:   config.Default().Background,
		Rand:  geom.NewRand(seed),
		Names: []string{"Ann", "Bob"},
	}
}

func litPixels(img *image.RGBA) int {
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			n++
		}
	}
	return n
}

func TestGenerators_PaintSomething(t *testing.T) {
	gens := append(Generators(), Title)
	require.Len(t, gens, 11)
	seen := map[string]bool{}
	for _, g := range gens {
		t.Run(g.Name, func(t *testing.T) {
			assert.False(t, seen[g.Name])
			seen[g.Name] = true
			img := Render(g, 640, 360, setupScene(11))
			assert.Equal(t, image.Rect(0, 0, 640, 360), img.Bounds())
			assert.Positive(t, litPixels(img))
			assert.Equal(t, uint8(255), img.Pix[3], "backdrop stays opaque")
		})
	}
}

func TestRender_SameSeedSameArt(t *testing.T) {
	for _, g := range Generators() {
		a := Render(g, 320, 200, setupScene(5))
		b := Render(g, 320, 200, setupScene(5))
		assert.Equal(t, a.Pix, b.Pix, g.Name)
	}
}

func TestPlayerNames_NoPlayersLeavesBlack(t *testing.T) {
	sc := setupScene(1)
	sc.Names = nil
	img := Render(Generators()[6], 200, 100, sc)
	assert.Zero(t, litPixels(img))
}

func TestPainter_CircleAndRing(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	p := &painter{dst: img}
	col := opaque(playfield.RGB{R: 200, G: 10, B: 30})

	p.circle(geom.V(20, 20), 10, col)
	assert.Equal(t, color.RGBA{R: 200, G: 10, B: 30, A: 255}, img.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2))

	img = image.NewRGBA(image.Rect(0, 0, 40, 40))
	p = &painter{dst: img}
	p.ring(geom.V(20, 20), 15, 4, col)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(20, 20), "ring has a hole")
	assert.Equal(t, color.RGBA{R: 200, G: 10, B: 30, A: 255}, img.RGBAAt(20, 7))
}

func TestPainter_ShapesOffCanvasAreClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := &painter{dst: img}
	p.circle(geom.V(-100, -100), 20, opaque(playfield.White))
	p.rect(geom.RectF{X0: -5, Y0: -5, X1: 3, Y1: 3}, opaque(playfield.White))
	assert.Equal(t, uint8(255), img.RGBAAt(1, 1).R)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(8, 8))
}

func TestChooser_Cycle(t *testing.T) {
	gens := Generators()
	c := NewChooser(gens, false, geom.NewRand(1))
	for i := range 2 * len(gens) {
		assert.Equal(t, gens[i%len(gens)].Name, c.Next().Name)
	}
}

func TestChooser_RandomNeverRepeats(t *testing.T) {
	gens := Generators()
	c := NewChooser(gens, true, geom.NewRand(9))
	seen := map[string]bool{}
	prev := ""
	for range 300 {
		g := c.Next()
		assert.NotEqual(t, prev, g.Name)
		prev = g.Name
		seen[g.Name] = true
	}
	assert.Len(t, seen, len(gens))

	one := NewChooser(gens[:1], true, geom.NewRand(9))
	assert.Equal(t, gens[0].Name, one.Next().Name)
	assert.Equal(t, gens[0].Name, one.Next().Name)

	assert.Panics(t, func() { NewChooser(nil, false, nil) })
}
