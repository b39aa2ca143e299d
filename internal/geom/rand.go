package geom

import "math"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a tiny deterministic RNG (xorshift64*). Not safe for concurrent use;
// the simulation runs on one goroutine.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

// Fork derives an independent generator, so subsystems don't perturb each other's sequence.
func (r *Rand) Fork() *Rand {
	return NewRand(r.NextU64())
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Range returns an int in [min, max].
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Normal returns a normally distributed value (Box-Muller).
func (r *Rand) Normal(mean, stddev float64) float64 {
	u1 := r.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	u2 := r.Float64()
	return mean + stddev*math.Sqrt(-2*math.Log(u1))*math.Cos(2*math.Pi*u2)
}

func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}

// Direction returns a random unit vector.
func (r *Rand) Direction() Vec2 {
	return FromPolar(r.RangeF(0, 2*math.Pi), 1)
}

func (r *Rand) InRect(rc RectF) Vec2 {
	return Vec2{X: r.RangeF(rc.X0, rc.X1), Y: r.RangeF(rc.Y0, rc.Y1)}
}

// InCircle returns a uniformly distributed point inside the circle.
func (r *Rand) InCircle(center Vec2, radius float64) Vec2 {
	d := radius * math.Sqrt(r.Float64())
	return center.Add(FromPolar(r.RangeF(0, 2*math.Pi), d))
}

// Jitter returns a vector with components in [-dx, dx] and [-dy, dy].
func (r *Rand) Jitter(dx, dy float64) Vec2 {
	return Vec2{X: r.RangeF(-dx, dx), Y: r.RangeF(-dy, dy)}
}
