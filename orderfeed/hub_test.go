package orderfeed

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	hub.register <- client

	hub.Broadcast(Event{Type: "order_created", OrderID: "o123", Status: "pending", Total: 1899})

	select {
	case got := <-client.Send:
		var event Event
		if err := json.Unmarshal(got, &event); err != nil {
			t.Fatalf("invalid event payload: %v", err)
		}
		if event.OrderID != "o123" || event.Type != "order_created" {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// Zero-capacity channel with nobody reading: the broadcast cannot
	// be delivered and the client must be dropped.
	slow := &Client{Send: make(chan []byte)}
	hub.register <- slow

	hub.Broadcast(Event{Type: "status_changed", OrderID: "o1", Status: "shipped"})

	deadline := time.Now().Add(1 * time.Second)
	for {
		hub.mu.Lock()
		_, present := hub.clients[slow]
		hub.mu.Unlock()
		if !present {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timeout waiting for slow client to be dropped")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, ok := <-slow.Send; ok {
		t.Fatal("expected slow client channel to be closed")
	}
}

func TestStoppedHubDoesNotBlockClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c := &Client{Send: make(chan []byte, 1)}
		if hub.add(c) {
			t.Error("expected add to fail on a stopped hub")
		}
		hub.remove(c)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("add/remove blocked on a stopped hub")
	}
}
