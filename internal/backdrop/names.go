package backdrop

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"arcarena/internal/geom"
)

const (
	nameCount = 25
	nameSize  = 160
	nameTilt  = -3 * math.Pi / 180
)

// drawPlayerNames scatters faint, tilted copies of the players' names.
func drawPlayerNames(p *painter, sc Scene) {
	if len(sc.Names) == 0 {
		return
	}
	face := basicfont.Face7x13
	scale := nameSize / float64(face.Height)
	cos, sin := math.Cos(nameTilt), math.Sin(nameTilt)
	for i := 1; i <= nameCount; i++ {
		src := nameImage(sc.Names[i%len(sc.Names)], face, sc.Cfg.PlayerNamesAlpha)
		at := p.randPoint(sc.Rand).Add(geom.V(-300, -50))
		s2d := f64.Aff3{
			scale * cos, -scale * sin, at.X,
			scale * sin, scale * cos, at.Y,
		}
		xdraw.ApproxBiLinear.Transform(p.dst, s2d, src, src.Bounds(), xdraw.Over, nil)
	}
}

// nameImage renders s in white at the given opacity on a transparent image
// exactly as large as the text.
func nameImage(s string, face *basicfont.Face, alpha uint8) *image.RGBA {
	d := font.Drawer{Face: face}
	w := max(d.MeasureString(s).Ceil(), 1)
	img := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d.Dst = img
	d.Src = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: alpha})
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(s)
	return img
}
