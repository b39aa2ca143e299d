package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"arcarena/internal/fx"
)

const maxSprites = 8192

// DrawDiscs renders an array of round point sprites.
// buf format: [x, y, size, r, g, b, a, unused] * N (fx.SpriteStride floats per sprite).
func (r *Renderer) DrawDiscs(buf []float32) {
	if len(buf) == 0 {
		return
	}

	count := min(len(buf)/fx.SpriteStride, maxSprites)

	gl.UseProgram(r.discProg)
	gl.BindVertexArray(r.discVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.discVBO)

	gl.Uniform2f(r.discURes, r.screenW, r.screenH)
	gl.Uniform1f(r.discUScale, r.scale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*fx.SpriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
