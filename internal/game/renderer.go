package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"arcarena/internal/fx"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
	"arcarena/internal/session"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a session.Frame. Everything is laid out in screen units
// (the configured resolution) and stretched over the framebuffer.
type Renderer struct {
	screenW, screenH float32
	scale            float32

	// Unit quad shared by the texture and panel programs.
	quadVAO uint32
	quadVBO uint32

	texProg  uint32
	texURect int32
	texURes  int32
	texUTex  int32

	panelProg   uint32
	panelURect  int32
	panelURes   int32
	panelUColor int32

	// Disc point sprites, fx.SpriteStride floats each.
	discProg   uint32
	discVAO    uint32
	discVBO    uint32
	discURes   int32
	discUScale int32

	backTex  uint32
	backVer  int
	backW    int
	backH    int
	field    *playfield.Bitmap
	fieldPix []uint8
	fieldKey playfield.Index

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

// NewRenderer builds the programs for a screen of w by h units. Playfield
// pixels of colour key are left transparent.
func NewRenderer(w, h int, key playfield.Index) (*Renderer, error) {
	texProg, err := linkProgram(quadVertSrc, texFragSrc)
	if err != nil {
		return nil, fmt.Errorf("texture program: %w", err)
	}
	panelProg, err := linkProgram(quadVertSrc, panelFragSrc)
	if err != nil {
		gl.DeleteProgram(texProg)
		return nil, fmt.Errorf("panel program: %w", err)
	}
	discProg, err := linkProgram(discVertSrc, discFragSrc)
	if err != nil {
		gl.DeleteProgram(texProg)
		gl.DeleteProgram(panelProg)
		return nil, fmt.Errorf("disc program: %w", err)
	}

	r := &Renderer{
		screenW:   float32(w),
		screenH:   float32(h),
		scale:     1,
		texProg:   texProg,
		panelProg: panelProg,
		discProg:  discProg,
		backVer:   -1,
		fieldKey:  key,
	}

	// Quad VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(texProg)
	r.texURect = gl.GetUniformLocation(texProg, gl.Str("uRect\x00"))
	r.texURes = gl.GetUniformLocation(texProg, gl.Str("uResolution\x00"))
	r.texUTex = gl.GetUniformLocation(texProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.texUTex, 0)

	gl.UseProgram(panelProg)
	r.panelURect = gl.GetUniformLocation(panelProg, gl.Str("uRect\x00"))
	r.panelURes = gl.GetUniformLocation(panelProg, gl.Str("uResolution\x00"))
	r.panelUColor = gl.GetUniformLocation(panelProg, gl.Str("uColor\x00"))

	// Disc VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, unused).
	var dVAO, dVBO uint32
	gl.GenVertexArrays(1, &dVAO)
	gl.GenBuffers(1, &dVBO)
	gl.BindVertexArray(dVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, dVBO)

	stride := int32(fx.SpriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.discVAO = dVAO
	r.discVBO = dVBO

	gl.UseProgram(discProg)
	r.discURes = gl.GetUniformLocation(discProg, gl.Str("uResolution\x00"))
	r.discUScale = gl.GetUniformLocation(discProg, gl.Str("uScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.discVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.discVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.texProg, r.panelProg, r.discProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.fontTex, r.backTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
	r.dropField()
}

// BeginFrame clears the framebuffer and stretches the screen over it.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.scale = min(float32(fbW)/r.screenW, float32(fbH)/r.screenH)
}

// DrawFrame draws f back to front.
func (r *Renderer) DrawFrame(f session.Frame) {
	screen := geom.RectWH(float64(r.screenW), float64(r.screenH))
	if f.Backdrop != nil {
		r.UploadBackdrop(f)
		r.drawTexture(r.backTex, screen)
	}
	r.DrawDiscs(f.Below)
	if f.Field != nil {
		r.UploadField(f.Field)
		r.drawTexture(f.Field.Tex, f.Field.Bounds())
	}
	r.DrawDiscs(f.Above)
	for _, p := range f.Rects {
		r.DrawRect(p)
	}
	for _, t := range f.Texts {
		r.DrawText(t)
	}
	r.FlushText()
}

func (r *Renderer) drawTexture(tex uint32, rc geom.RectF) {
	if tex == 0 {
		return
	}
	gl.UseProgram(r.texProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform4f(r.texURect, float32(rc.X0), float32(rc.Y0), float32(rc.X1), float32(rc.Y1))
	gl.Uniform2f(r.texURes, r.screenW, r.screenH)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}

// DrawRect fills a translucent rectangle.
func (r *Renderer) DrawRect(p session.Rect) {
	gl.UseProgram(r.panelProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform4f(r.panelURect, float32(p.R.X0), float32(p.R.Y0), float32(p.R.X1), float32(p.R.Y1))
	gl.Uniform2f(r.panelURes, r.screenW, r.screenH)
	gl.Uniform4f(r.panelUColor, float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255, float32(p.Alpha))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}
