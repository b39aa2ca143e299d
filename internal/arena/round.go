package arena

import (
	"math"
	"slices"

	"arcarena/internal/fx"
	"arcarena/internal/geom"
	"arcarena/internal/player"
	"arcarena/internal/playfield"
	"arcarena/internal/sound"
)

const (
	startRadiusScale = 0.85
	startCircleFrom  = 40
	startCircleTime  = 4.8
	fastCircleTime   = 0.5
	beatSteps        = 2
	beatStepDt       = 0.025
	labelSize        = 60
	subLabelSize     = 24
	subLabelOffset   = 50
	labelShadow      = 3
	maxParticles     = 4000
)

// Round is one round of play. It owns the playfield bitmap, the snakes
// and every timer it schedules.
type Round struct {
	Variant     Variant
	Field       *playfield.Bitmap
	Effects     *fx.Effects
	Scores      *Scoreboard
	Events      *EventBus
	Timers      Timers
	Controllers []*player.Controller

	// Snakes holds every snake in controller order; Alive shrinks as they crash.
	Snakes []*Snake
	Alive  []*Snake

	svc  Services
	mods []Modifier

	wrap    bool
	paused  bool
	over    bool
	elapsed float64
	age     float64
	frames  int

	labelLeft float64
}

// NewRound builds a round for the given controllers: every controller
// possesses a fresh snake on a ring around the centre of the playfield.
// It panics when there are no controllers.
func NewRound(svc Services, v Variant, ctrls []*player.Controller, scores *Scoreboard) *Round {
	if svc.Sound == nil {
		svc.Sound = sound.Nop{}
	}
	cfg := svc.Cfg
	w, h := int(svc.Screen.W()), int(svc.Screen.H())
	r := &Round{
		Variant:     v,
		Field:       playfield.NewBitmap(w, h, svc.Palette),
		Effects:     fx.NewEffects(maxParticles, svc.Rand),
		Scores:      scores,
		Events:      NewEventBus(),
		Controllers: ctrls,
		svc:         svc,
		paused:      true,
		labelLeft:   cfg.Round.LabelVisibilityTime,
	}
	scores.StartRound()
	r.Field.Fill(cfg.Win.BackgroundColorIdx)

	bounds := r.Field.Bounds()
	center := bounds.Center()
	starts := StartPositions(len(ctrls), bounds)
	if cfg.Round.ShuffleStartLocations {
		svc.Rand.Shuffle(len(starts), func(i, j int) { starts[i], starts[j] = starts[j], starts[i] })
	}
	for i, c := range ctrls {
		dir := center.Sub(starts[i])
		if cfg.Debug.On {
			dir = geom.V(1, 0.05)
		}
		s := NewSnake(cfg, r.Field, c.Color, starts[i], dir)
		r.Snakes = append(r.Snakes, s)
		c.Possess(s)
	}
	r.Alive = slices.Clone(r.Snakes)

	if v.Mods != nil {
		r.mods = v.Mods(cfg)
	}
	for _, m := range r.mods {
		m.Setup(r)
	}
	return r
}

// StartPositions spreads n snakes evenly on a circle inside the playfield.
// A lone snake starts below the centre.
func StartPositions(n int, field geom.RectF) []geom.Vec2 {
	if n <= 0 {
		panic("arena: cannot place zero snakes")
	}
	radius := field.MinSide() / 2 * startRadiusScale
	center := field.Center()
	if n == 1 {
		return []geom.Vec2{center.Add(geom.V(0, radius*0.5))}
	}
	pts := make([]geom.Vec2, n)
	for i := range pts {
		pts[i] = center.Add(geom.FromPolar(float64(i)/float64(n)*2*math.Pi, radius))
	}
	return pts
}

// Begin draws the border, starts the shrinking circles that show where
// everyone is and schedules the countdown.
func (r *Round) Begin() {
	cfg := r.svc.Cfg
	r.svc.Log.Info().Str("round", r.Variant.Name).Int("players", len(r.Controllers)).Msg("start round")

	if !r.wrap {
		r.Field.RectBorder(r.Field.Bounds(), cfg.Win.BorderWidth, cfg.Win.BorderColorIdx)
	}

	shrink := startCircleTime
	if cfg.Debug.On || cfg.Debug.FastStart {
		shrink = fastCircleTime
	}
	for _, s := range r.Alive {
		r.Effects.AddCircle(&fx.GrowingCircle{
			Pos:      s.Pos,
			From:     startCircleFrom,
			To:       0,
			Col:      s.Body.RGB.Darken(0.5),
			Duration: shrink,
		})
	}

	delta := cfg.CountdownDelta()
	r.beat(false)
	r.Timers.After(delta, func() { r.beat(true) })
	r.Timers.After(2*delta, func() { r.beat(true) })
	r.Timers.After(3*delta, r.startGameplay)
}

// beat nudges every snake forward so a stub of trail shows during the countdown.
func (r *Round) beat(beep bool) {
	if beep {
		r.svc.Sound.Play(sound.CountdownBeep)
	}
	for _, s := range r.Alive {
		for range beatSteps {
			s.Step(beatStepDt)
			s.Draw()
		}
	}
}

func (r *Round) startGameplay() {
	r.svc.Sound.Play(sound.Go)
	r.paused = false
	r.elapsed = 0
	for _, m := range r.mods {
		m.GameplayBegins(r)
	}
	r.Events.Emit(Event{Type: EventGameplayBegins, Player: -1})
}

// Step runs one frame: timers and effects, controller input, movement,
// crash detection with survival points, then the end-of-round check.
func (r *Round) Step(dt float64, dev player.Devices) {
	r.frames++
	r.age += dt
	r.Timers.Step(dt)
	r.StepEffects(dt)

	for _, c := range r.Controllers {
		c.Input(dev)
	}

	if !r.paused && !r.over {
		r.elapsed += dt
		r.stepSnakes(dt)
		if r.decided() {
			r.End()
		}
	}

	for _, m := range r.mods {
		m.Step(r, dt)
	}
}

// StepEffects keeps the visual layer and labels animating. The score
// screen calls it after the round is over.
func (r *Round) StepEffects(dt float64) {
	r.Effects.Step(dt)
	if r.labelLeft > 0 {
		r.labelLeft -= dt
	}
}

func (r *Round) stepSnakes(dt float64) {
	for _, s := range r.Alive {
		s.Step(dt)
		s.Draw()
	}

	var crashed []*Snake
	for _, s := range r.Alive {
		if !s.IsDead() {
			continue
		}
		if !s.WhiskerOnField() {
			r.svc.Log.Warn().Stringer("snake", s).Float64("x", s.Pos.X).Float64("y", s.Pos.Y).
				Msg("whisker left the playfield, killing snake")
		}
		r.svc.Log.Debug().Stringer("snake", s).Msg("crashed")
		r.Effects.SnakeExplosion(s.Pos, r.explosionColor(s))
		r.svc.Sound.Play(sound.Explode)
		crashed = append(crashed, s)
		r.Events.Emit(Event{Type: EventSnakeCrashed, Pos: s.Pos, Player: r.playerIndex(s)})

		for _, other := range r.Alive {
			if !other.IsDead() {
				r.AddPoints(other, r.svc.Cfg.Score.PointsForSurviving)
			}
		}
	}
	r.Alive = slices.DeleteFunc(r.Alive, func(s *Snake) bool { return slices.Contains(crashed, s) })
}

func (r *Round) explosionColor(s *Snake) playfield.RGB {
	if c := s.Controller(); c != nil {
		return c.Color.RGB
	}
	return s.Body.RGB
}

// decided reports whether at most one snake is left, or none at all in a
// single player game.
func (r *Round) decided() bool {
	n := len(r.Controllers)
	return (n > 1 && len(r.Alive) < 2) || (n == 1 && len(r.Alive) == 0)
}

// End closes the round and settles the scoreboard.
func (r *Round) End() {
	if r.over {
		return
	}
	r.over = true
	fps := 0.0
	if r.age > 0 {
		fps = float64(r.frames) / r.age
	}
	r.svc.Log.Info().Str("round", r.Variant.Name).Float64("seconds", r.elapsed).
		Int("survivors", len(r.Alive)).Float64("fps", fps).Msg("end round")
	var survivors []int
	for _, s := range r.Alive {
		if idx := r.playerIndex(s); idx >= 0 {
			survivors = append(survivors, idx)
		}
	}
	r.Scores.EndRound(r.elapsed, survivors)
	r.Events.Emit(Event{Type: EventRoundOver, Player: -1})
}

// AddPoints credits the snake's controller.
func (r *Round) AddPoints(s *Snake, points int) {
	idx := r.playerIndex(s)
	if idx < 0 {
		return
	}
	r.Scores.ChangeScore(idx, points)
	r.Events.Emit(Event{Type: EventPointsScored, Pos: s.Pos, Player: idx, Data: points})
}

func (r *Round) playerIndex(s *Snake) int {
	if c := s.Controller(); c != nil {
		return c.Index
	}
	return -1
}

func (r *Round) IsAlive(s *Snake) bool { return slices.Contains(r.Alive, s) }

func (r *Round) Over() bool       { return r.over }
func (r *Round) Paused() bool     { return r.paused }
func (r *Round) Wrap() bool       { return r.wrap }
func (r *Round) Elapsed() float64 { return r.elapsed }

// Age is the time since the round was built, countdown included.
func (r *Round) Age() float64 { return r.age }

func (r *Round) Services() Services { return r.svc }

func (r *Round) Rand() *geom.Rand { return r.svc.Rand }

func (r *Round) Play(c sound.Cue) { r.svc.Sound.Play(c) }

// EnableWrap makes every snake leaving one edge reappear at the opposite
// one. Called from Setup, before Begin decides whether to draw a border.
func (r *Round) EnableWrap() {
	r.wrap = true
	for _, s := range r.Snakes {
		s.Wrap = true
	}
}

// Labels returns the round title, its shadow and the sub-label while they
// are still showing.
func (r *Round) Labels() []Text {
	if r.labelLeft <= 0 {
		return nil
	}
	c := r.Field.Bounds().Center()
	var out []Text
	if r.Variant.Label != "" {
		out = append(out,
			Text{S: r.Variant.Label, Size: labelSize, Pos: c.Add(geom.V(labelShadow, labelShadow)), Col: playfield.Black},
			Text{S: r.Variant.Label, Size: labelSize, Pos: c, Col: playfield.White},
		)
	}
	if r.Variant.SubLabel != "" {
		out = append(out, Text{S: r.Variant.SubLabel, Size: subLabelSize, Pos: c.Add(geom.V(0, subLabelOffset)), Col: playfield.White})
	}
	return out
}

// Render fills c with the sprites that go around the bitmap: effects and
// modifier underlays below, modifier overlays above.
func (r *Round) Render(c *Canvas) {
	c.Reset()
	c.Below = r.Effects.RenderData(c.Below)
	for _, m := range r.mods {
		m.Draw(r, c)
	}
}
