package arena

import (
	"fmt"
	"math"

	"arcarena/internal/config"
	"arcarena/internal/geom"
	"arcarena/internal/player"
	"arcarena/internal/playfield"
)

const (
	robotWhiskerLength = 75
	nearWhiskerScale   = 0.1
	nearWhiskerAngle   = math.Pi / 1.8
	minWhisker         = 4
)

// Snake is the arc a player steers. It leaves a trail of filled circles in
// the playfield bitmap and dies when the pixel just ahead of its head is
// anything but background.
type Snake struct {
	Pos     geom.Vec2
	LastPos geom.Vec2
	Vel     geom.Vec2

	Body       playfield.Color
	HeadIdx    playfield.Index
	HeadDimIdx playfield.Index
	HeadDimmed bool

	// Turn rates in radians per second. Left is normally negative.
	TurnRateLeft  float64
	TurnRateRight float64
	Turning       player.Turn

	DrawSize     int
	Whisker      float64
	RobotWhisker float64

	GapSize  float64
	WallSize float64

	Wrap       bool
	WrapBounds geom.RectF

	field      *playfield.Bitmap
	bg         playfield.Index
	startDir   geom.Vec2
	drawingGap bool
	curLength  float64

	controller *player.Controller
	onBothTurn func(*Snake)
	// turnFilter sees every turn state first and swallows it by returning true.
	turnFilter func(*Snake, player.Turn) bool
}

// NewSnake places a snake at pos heading along dir at the configured speed.
func NewSnake(cfg *config.Settings, field *playfield.Bitmap, body playfield.Color, pos, dir geom.Vec2) *Snake {
	s := &Snake{
		Pos:           pos,
		LastPos:       pos,
		Body:          body,
		HeadIdx:       cfg.Snake.HeadColorIdx,
		HeadDimIdx:    cfg.ReadyAim.HeadColorDimIdx,
		TurnRateLeft:  -cfg.Snake.TurnRate(),
		TurnRateRight: cfg.Snake.TurnRate(),
		DrawSize:      cfg.Snake.DrawSize,
		Whisker:       float64(cfg.Snake.DrawSize + 2),
		RobotWhisker:  robotWhiskerLength,
		GapSize:       cfg.Snake.GapSize,
		WallSize:      cfg.Snake.WallSize,
		WrapBounds:    field.Bounds().Inflate(-cfg.Win.WrapInset, -cfg.Win.WrapInset),
		field:         field,
		bg:            cfg.Win.BackgroundColorIdx,
		startDir:      dir,
	}
	s.SetInitialSpeed(cfg.Snake.Speed)
	return s
}

func (s *Snake) String() string {
	if s.controller != nil {
		return s.controller.String()
	}
	return fmt.Sprintf("snake at %.0f,%.0f", s.Pos.X, s.Pos.Y)
}

// SetInitialSpeed points the snake back along its start direction.
func (s *Snake) SetInitialSpeed(speed float64) {
	s.Vel = s.startDir.Normalize().Scale(speed)
}

// SetSpeed keeps the current heading.
func (s *Snake) SetSpeed(speed float64) {
	s.Vel = s.Vel.Normalize().Scale(speed)
}

// SetDirection replaces the start direction, used when a round relocates snakes.
func (s *Snake) SetDirection(dir geom.Vec2) {
	s.startDir = dir
}

// SetDrawSize resizes the trail and keeps the whisker just ahead of the head.
func (s *Snake) SetDrawSize(size int) {
	s.DrawSize = size
	s.Whisker = math.Max(minWhisker, float64(size+2))
}

// PossessedBy implements player.Pilot. A snake has one owner for life.
func (s *Snake) PossessedBy(c *player.Controller) {
	if s.controller != nil {
		panic(fmt.Sprintf("snake already possessed by %s", s.controller))
	}
	s.controller = c
}

func (s *Snake) Controller() *player.Controller { return s.controller }

func (s *Snake) SetHeadDim(dimmed bool) { s.HeadDimmed = dimmed }

// OnBothTurn registers the callback run when the state changes to TurnBoth.
func (s *Snake) OnBothTurn(fn func(*Snake)) { s.onBothTurn = fn }

// SetTurnFilter installs a hook that can swallow turn states.
func (s *Snake) SetTurnFilter(fn func(*Snake, player.Turn) bool) { s.turnFilter = fn }

// SetTurnState implements player.Pilot.
func (s *Snake) SetTurnState(t player.Turn) {
	if s.turnFilter != nil && s.turnFilter(s, t) {
		return
	}
	if s.Turning == t {
		return
	}
	s.Turning = t
	if t == player.TurnBoth && s.onBothTurn != nil {
		s.onBothTurn(s)
	}
}

// Turn rotates the heading by rate radians per second for dt seconds.
func (s *Snake) Turn(rate, dt float64) {
	s.Vel = s.Vel.Rotate(rate * dt)
}

// Step moves the snake and advances the wall/gap cycle.
func (s *Snake) Step(dt float64) {
	s.curLength += s.Vel.Scale(dt).Len()
	if s.drawingGap {
		if s.curLength > s.GapSize {
			s.drawingGap = false
			s.curLength = 0
		}
	} else if s.curLength > s.WallSize && s.GapSize > 0 {
		s.drawingGap = true
		s.curLength = 0
	}

	switch s.Turning {
	case player.TurnLeft:
		s.Turn(s.TurnRateLeft, dt)
	case player.TurnRight:
		s.Turn(s.TurnRateRight, dt)
	}

	s.LastPos = s.Pos
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))

	if s.Wrap {
		s.wrap()
	}
}

func (s *Snake) wrap() {
	b := s.WrapBounds
	switch {
	case s.Pos.X > b.X1:
		s.Pos.X = b.X0
	case s.Pos.X < b.X0:
		s.Pos.X = b.X1
	}
	switch {
	case s.Pos.Y > b.Y1:
		s.Pos.Y = b.Y0
	case s.Pos.Y < b.Y0:
		s.Pos.Y = b.Y1
	}
}

// Draw stamps the trail at the previous position, background while in a
// gap, and the head at the current one while alive.
func (s *Snake) Draw() {
	idx := s.Body.Idx
	if s.drawingGap {
		idx = s.bg
	}
	s.field.FillCircle(s.LastPos, s.DrawSize, idx)
	if s.IsDead() {
		return
	}
	head := s.HeadIdx
	if s.HeadDimmed {
		head = s.HeadDimIdx
	}
	s.field.FillCircle(s.Pos, s.DrawSize-1, head)
}

// DrawingGap reports whether the snake is currently leaving no trail.
func (s *Snake) DrawingGap() bool { return s.drawingGap }

// WhiskerPos is the point sampled for collisions.
func (s *Snake) WhiskerPos() geom.Vec2 {
	return s.Pos.Add(s.Vel.Normalize().Scale(s.Whisker))
}

// WhiskerOnField is false when the whisker has left the bitmap.
func (s *Snake) WhiskerOnField() bool {
	x, y := s.WhiskerPos().Pixel()
	return s.field.InBounds(x, y)
}

// IsDead reports a crash. A whisker off the bitmap counts as one.
func (s *Snake) IsDead() bool {
	idx, ok := s.field.SampleAt(s.WhiskerPos())
	return !ok || idx != s.bg
}

// RobotWhiskers implements player.Pilot with three sample points clamped to the
// screen: one far ahead and two short ones angled to either side.
func (s *Snake) RobotWhiskers() (ahead, nearLeft, nearRight bool) {
	dir := s.Vel.Normalize()
	near := dir.Scale(s.RobotWhisker * nearWhiskerScale)
	ahead = s.blocked(s.Pos.Add(dir.Scale(s.RobotWhisker)))
	nearRight = s.blocked(s.Pos.Add(near.Rotate(nearWhiskerAngle)))
	nearLeft = s.blocked(s.Pos.Add(near.Rotate(-nearWhiskerAngle)))
	return ahead, nearLeft, nearRight
}

func (s *Snake) blocked(p geom.Vec2) bool {
	idx, ok := s.field.SampleAt(s.field.Bounds().ClampPoint(p))
	return !ok || idx != s.bg
}
