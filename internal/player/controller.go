package player

import (
	"fmt"
	"slices"

	"arcarena/internal/geom"
	"arcarena/internal/playfield"
)

// Pilot is the snake a controller drives during one round.
type Pilot interface {
	PossessedBy(c *Controller)
	SetTurnState(t Turn)
	// RobotWhiskers reports which of the robot's feelers touch something:
	// the long one straight ahead and the two short ones to either side.
	RobotWhiskers() (ahead, nearLeft, nearRight bool)
}

// Controller is a player. It outlives rounds; each round hands it a new
// snake to possess.
type Controller struct {
	Name   string
	Color  playfield.Color
	Index  int
	Config InputConfig

	pilot Pilot
}

func NewController(name string, col playfield.Color, cfg InputConfig) *Controller {
	return &Controller{Name: name, Color: col, Index: -1, Config: cfg}
}

func (c *Controller) String() string {
	return fmt.Sprintf("%s (#%d)", c.Name, c.Index)
}

// Possess attaches p to c for the current round.
func (c *Controller) Possess(p Pilot) {
	c.pilot = p
	p.PossessedBy(c)
}

func (c *Controller) Pilot() Pilot { return c.pilot }

// Input reads the binding and forwards the intent to the possessed snake.
func (c *Controller) Input(dev Devices) {
	if c.pilot == nil {
		return
	}
	c.pilot.SetTurnState(c.Config.Poll(dev, c.pilot))
}

func (c *Controller) IsRobot() bool {
	return c.Config != nil && c.Config.Device() == DeviceRobot
}

// Cycle steps through a fixed list of distinct items.
type Cycle[T comparable] struct {
	items []T
}

func NewCycle[T comparable](items []T) *Cycle[T] {
	if len(items) == 0 {
		panic("player: cycle needs at least one item")
	}
	return &Cycle[T]{items: slices.Clone(items)}
}

func (c *Cycle[T]) First() T { return c.items[0] }

// Next returns the item after cur, wrapping around. An unknown cur yields
// the first item.
func (c *Cycle[T]) Next(cur T) T {
	i := slices.Index(c.items, cur)
	if i < 0 {
		return c.items[0]
	}
	return c.items[(i+1)%len(c.items)]
}

func (c *Cycle[T]) Random(r *geom.Rand) T {
	return c.items[r.Intn(len(c.items))]
}

func (c *Cycle[T]) Items() []T { return c.items }
