package fx

import (
	"math"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

type Kind uint8

const (
	// KindSpark fades linearly over its life.
	KindSpark Kind = iota
	// KindEmber holds full alpha until the last third of its life.
	KindEmber
)

type Particle struct {
	Pos geom.Vec2
	Vel geom.Vec2

	Size float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  playfield.RGB
	Kind Kind
}

type System struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewSystem(maxParticles int) *System {
	if maxParticles <= 0 {
		maxParticles = DefaultMaxParticles
	}
	return &System{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

const DefaultMaxParticles = 4000

func (ps *System) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *System) Len() int { return len(ps.P) }

func (ps *System) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update ages particles, moves the live ones and drops the expired.
func (ps *System) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		if p.Life >= 0 {
			p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		}
		i++
	}
}

// RenderData appends live particles to buf.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *System) RenderData(buf []float32) []float32 {
	for _, p := range ps.P {
		if p.Life < 0 || p.MaxLife <= 0 {
			continue
		}
		t := geom.ClampF(p.Life/p.MaxLife, 0, 1)
		a := 1.0 - t
		if p.Kind == KindEmber {
			a = math.Min(1, (1-t)*3)
		}
		if a <= 0 {
			continue
		}
		buf = AppendSprite(buf, p.Pos, p.Size, p.Col, a)
	}
	return buf
}

// AppendSprite appends one point sprite in the shared 8-float layout.
func AppendSprite(buf []float32, pos geom.Vec2, size float64, col playfield.RGB, alpha float64) []float32 {
	return append(buf,
		float32(math.Round(pos.X)), float32(math.Round(pos.Y)), float32(size),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0,
		float32(geom.ClampF(alpha, 0, 1)), 0,
	)
}

// SpriteStride is the number of floats per sprite in a render buffer.
const SpriteStride = 8
