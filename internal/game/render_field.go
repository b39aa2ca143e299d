package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"arcarena/internal/playfield"
	"arcarena/internal/session"
)

func newTexture(w, h int, pix []uint8) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix),
	)
	return tex
}

// UploadBackdrop re-uploads the backdrop when the session has painted a new one.
func (r *Renderer) UploadBackdrop(f session.Frame) {
	if f.BackdropVersion == r.backVer && r.backTex != 0 {
		return
	}
	img := f.Backdrop
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if r.backTex == 0 || w != r.backW || h != r.backH {
		if r.backTex != 0 {
			gl.DeleteTextures(1, &r.backTex)
		}
		r.backTex = newTexture(w, h, img.Pix)
		r.backW, r.backH = w, h
	} else {
		gl.BindTexture(gl.TEXTURE_2D, r.backTex)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	r.backVer = f.BackdropVersion
}

// UploadField expands the playfield to RGBA and re-uploads it when dirty.
// Every round brings a new bitmap; the previous round's texture goes.
func (r *Renderer) UploadField(b *playfield.Bitmap) {
	if b != r.field {
		r.dropField()
		r.field = b
	}
	if b.Tex != 0 && !b.NeedsUpload {
		return
	}
	r.fieldPix = b.RGBA(r.fieldPix, r.fieldKey)
	if b.Tex == 0 {
		b.Tex = newTexture(b.W, b.H, r.fieldPix)
	} else {
		gl.BindTexture(gl.TEXTURE_2D, b.Tex)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.W), int32(b.H), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.fieldPix))
	}
	b.NeedsUpload = false
}

func (r *Renderer) dropField() {
	if r.field != nil && r.field.Tex != 0 {
		gl.DeleteTextures(1, &r.field.Tex)
		r.field.Tex = 0
	}
	r.field = nil
}
