package arena

import (
	"arcarena/internal/config"
	"arcarena/internal/fx"
	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// Modifier customises a round. Hooks run in the order the variant lists
// its modifiers, after the round's own work for the same hook.
type Modifier interface {
	// Setup runs once the snakes exist, before the countdown.
	Setup(r *Round)
	// GameplayBegins runs on the "go" beat.
	GameplayBegins(r *Round)
	// Step runs every frame, paused or not.
	Step(r *Round, dt float64)
	Draw(r *Round, c *Canvas)
}

// Base is a Modifier that does nothing; embed it and override what you need.
type Base struct{}

func (Base) Setup(*Round)          {}
func (Base) GameplayBegins(*Round) {}
func (Base) Step(*Round, float64)  {}
func (Base) Draw(*Round, *Canvas)  {}

// Canvas collects disc sprites around the playfield bitmap. Below is drawn
// under the trails, Above over them. Neither is ever sampled for collisions.
type Canvas struct {
	Below []float32
	Above []float32
}

func (c *Canvas) DiscBelow(pos geom.Vec2, radius float64, col playfield.RGB) {
	c.Below = fx.AppendSprite(c.Below, pos, radius*2, col, 1)
}

func (c *Canvas) DiscAbove(pos geom.Vec2, radius float64, col playfield.RGB) {
	c.Above = fx.AppendSprite(c.Above, pos, radius*2, col, 1)
}

// Reset empties both layers, keeping their storage.
func (c *Canvas) Reset() {
	c.Below = c.Below[:0]
	c.Above = c.Above[:0]
}

// Variant is a named round type: its on-screen labels and the modifiers
// that give it its rules.
type Variant struct {
	Name     string
	Label    string
	SubLabel string
	Mods     func(cfg *config.Settings) []Modifier
}
