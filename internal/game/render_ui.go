package game

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"arcarena/internal/arena"
)

// The atlas holds printable ASCII in a 16 column grid of basicfont cells.
const (
	fontCols   = 16
	fontFirst  = 32
	fontLast   = 126
	fontCellW  = 7
	fontCellH  = 13
	fontAtlasW = fontCols * fontCellW
	fontAtlasH = ((fontLast-fontFirst)/fontCols + 1) * fontCellH
)

// buildFontAtlas draws every glyph white on transparent.
func buildFontAtlas() *image.NRGBA {
	face := basicfont.Face7x13
	img := image.NewNRGBA(image.Rect(0, 0, fontAtlasW, fontAtlasH))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := rune(fontFirst); ch <= fontLast; ch++ {
		i := int(ch - fontFirst)
		x := (i % fontCols) * fontCellW
		y := (i / fontCols) * fontCellH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(ch))
	}
	return img
}

// InitFont builds the font atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas := buildFontAtlas()
	r.fontTex = newTexture(fontAtlasW, fontAtlasH, atlas.Pix)

	// Text shader program.
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// drawChar queues a single character as a textured quad in screen units.
func (r *Renderer) drawChar(ch rune, sx, sy, scale float32, cr, cg, cb float32) {
	if ch < fontFirst || ch > fontLast {
		return
	}
	i := int(ch - fontFirst)
	column := i % fontCols
	row := i / fontCols

	u0 := float32(column*fontCellW) / fontAtlasW
	v0 := float32(row*fontCellH) / fontAtlasH
	u1 := float32((column+1)*fontCellW) / fontAtlasW
	v1 := float32((row+1)*fontCellH) / fontAtlasH

	w := fontCellW * scale
	h := fontCellH * scale

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// textBox returns the top-left corner of t's box and its scale.
func textBox(t arena.Text) (x, y, scale float32) {
	scale = float32(t.Size) / fontCellH
	w := float32(len([]rune(t.S))*fontCellW) * scale
	h := fontCellH * scale
	x, y = float32(t.Pos.X), float32(t.Pos.Y)
	switch t.Anchor {
	case arena.AnchorCenter:
		x -= w / 2
		y -= h / 2
	case arena.AnchorTop:
		x -= w / 2
	case arena.AnchorBottom:
		x -= w / 2
		y -= h
	}
	return x, y, scale
}

// DrawText queues a line of text.
func (r *Renderer) DrawText(t arena.Text) {
	x, y, scale := textBox(t)
	cr := float32(t.Col.R) / 255.0
	cg := float32(t.Col.G) / 255.0
	cb := float32(t.Col.B) / 255.0
	for _, ch := range t.S {
		r.drawChar(ch, x, y, scale, cr, cg, cb)
		x += fontCellW * scale
	}
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, r.screenW, r.screenH)

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
