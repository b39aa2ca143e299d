package fx

import (
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// Burst describes a radial emission. Particles are released one after
// another across Window seconds, each given a delayed start.
type Burst struct {
	Count              int
	Window             float64
	SpeedMin, SpeedMax float64
	LifeMin, LifeMax   float64
	Colors             []playfield.RGB
	Size               float64
	Kind               Kind
}

// Emit queues every particle of b at pos.
func (ps *System) Emit(pos geom.Vec2, b Burst, r *geom.Rand) {
	if b.Count <= 0 || len(b.Colors) == 0 {
		return
	}
	step := 0.0
	if b.Count > 1 {
		step = b.Window / float64(b.Count-1)
	}
	for i := range b.Count {
		ps.Add(Particle{
			Pos:     pos,
			Vel:     r.Direction().Scale(r.RangeF(b.SpeedMin, b.SpeedMax)),
			Size:    b.Size,
			Life:    -step * float64(i),
			MaxLife: r.RangeF(b.LifeMin, b.LifeMax),
			Col:     b.Colors[r.Intn(len(b.Colors))],
			Kind:    b.Kind,
		})
	}
}

// SnakeDeath is the burst played where a snake crashed.
func SnakeDeath(body playfield.RGB) Burst {
	return Burst{
		Count: 75, Window: 0.075,
		SpeedMin: 50, SpeedMax: 100,
		LifeMin: 0.1, LifeMax: 0.4,
		Colors: []playfield.RGB{body, playfield.White},
		Size:   2,
	}
}

// Shrapnel is the fast part of a bullet explosion.
func Shrapnel(col playfield.RGB) Burst {
	return Burst{
		Count: 75, Window: 0.075,
		SpeedMin: 50, SpeedMax: 100,
		LifeMin: 0.1, LifeMax: 0.4,
		Colors: []playfield.RGB{col},
		Size:   1,
	}
}

// Smolder is the slow expanding ring left after a bullet explosion.
func Smolder(col playfield.RGB) Burst {
	return Burst{
		Count: 100, Window: 0.1,
		SpeedMin: 15, SpeedMax: 15,
		LifeMin: 1.1, LifeMax: 2.0,
		Colors: []playfield.RGB{col, col, playfield.DarkGray},
		Size:   1,
		Kind:   KindEmber,
	}
}
