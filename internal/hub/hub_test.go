package hub

import (
	"strings"
	"testing"
)

func TestBroadcastReachesSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Broadcast(Event{Type: "play", Payload: map[string]string{"id": "g1"}})

	for _, client := range []Client{a, b} {
		select {
		case msg := <-client:
			if !strings.Contains(string(msg), `"type":"play"`) {
				t.Errorf("message = %s, want a play event", msg)
			}
		default:
			t.Fatal("subscriber received no message")
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	c := h.Subscribe()
	h.Unsubscribe(c)

	if _, ok := <-c; ok {
		t.Error("channel still open after unsubscribe")
	}

	// Double unsubscribe must not panic.
	h.Unsubscribe(c)

	// Broadcasting to no one is a no-op.
	h.Broadcast(Event{Type: "play"})
}

func TestBroadcastDropsWhenBufferFull(t *testing.T) {
	h := NewHub()
	c := h.Subscribe()

	// Fill the buffer past capacity; the hub must never block.
	for i := 0; i < 20; i++ {
		h.Broadcast(Event{Type: "play", Payload: i})
	}

	if got := len(c); got != cap(c) {
		t.Errorf("buffered = %d, want full buffer %d with the rest dropped", got, cap(c))
	}
}
