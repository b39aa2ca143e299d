package arena

import "arcarena/internal/geom"

type EventType int

const (
	EventSnakeCrashed EventType = iota
	EventGameplayBegins
	EventRoundOver
	EventPointsScored
)

type Event struct {
	Type EventType
	Pos  geom.Vec2
	// Player is the scoreboard index the event concerns, -1 for none.
	Player int
	Data   int // Generic payload (e.g. points for a score change).
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
