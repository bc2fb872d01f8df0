package events

import "testing"

func TestBusFansOutToSubscribers(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Publish(Event{Type: EventScrollbackCleared, SessionID: "s1"})

	for i, ch := range []<-chan Event{a, b} {
		evt := <-ch
		if evt.Type != EventScrollbackCleared || evt.SessionID != "s1" {
			t.Fatalf("subscriber %d got %+v", i, evt)
		}
	}
}

func TestBusClosedSubscribeReturnsClosedChannel(t *testing.T) {
	bus := NewBus()
	bus.Close()
	bus.Close()

	if _, ok := <-bus.Subscribe(); ok {
		t.Fatalf("expected closed channel after Close")
	}
	bus.Publish(Event{Type: EventCommandExecuted})
}
