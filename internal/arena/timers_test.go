package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimers_DeadlineOrder(t *testing.T) {
	var tm Timers
	var got []string
	tm.After(0.2, func() { got = append(got, "a") })
	tm.After(0.1, func() { got = append(got, "b") })
	tm.After(0.1, func() { got = append(got, "c") })
	tm.After(1, func() { got = append(got, "late") })

	tm.Step(0.05)
	assert.Empty(t, got)
	tm.Step(0.2)
	assert.Equal(t, []string{"b", "c", "a"}, got)
	assert.Equal(t, 1, tm.Len())
}

func TestTimers_ScheduledFromCallbackWaits(t *testing.T) {
	var tm Timers
	fired := 0
	tm.After(0, func() {
		tm.After(0, func() { fired++ })
	})
	tm.Step(0)
	assert.Equal(t, 0, fired)
	tm.Step(0)
	assert.Equal(t, 1, fired)
}

func TestTimers_ClearDropsPending(t *testing.T) {
	var tm Timers
	tm.After(0.1, func() { t.Fatal("cleared timer fired") })
	tm.Clear()
	tm.Step(1)
	assert.Zero(t, tm.Len())
}

func TestEventBus_Subscribers(t *testing.T) {
	eb := NewEventBus()
	var got []int
	eb.Subscribe(EventPointsScored, func(e Event) { got = append(got, e.Data) })
	eb.Subscribe(EventPointsScored, func(e Event) { got = append(got, e.Data*2) })
	eb.Emit(Event{Type: EventPointsScored, Data: 5})
	eb.Emit(Event{Type: EventRoundOver})
	assert.Equal(t, []int{5, 10}, got)
}
