package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp/internal/models"
)

func receive(t *testing.T, c *Connection) []byte {
	t.Helper()
	select {
	case b := <-c.Send:
		return b
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestHubFansOutToAllSubscribers(t *testing.T) {
	hub := NewHub()

	first := &Connection{Send: make(chan []byte, 8)}
	second := &Connection{Send: make(chan []byte, 8)}
	hub.Register <- first
	hub.Register <- second

	msg := &models.Message{MessageID: 1, PostedBy: 7, MessageText: "hi", TimePostedEpoch: 1000}
	hub.Publish("created", msg)

	for _, c := range []*Connection{first, second} {
		var event Event
		require.NoError(t, json.Unmarshal(receive(t, c), &event))
		assert.Equal(t, "created", event.Type)
		assert.Equal(t, "hi", event.Message.MessageText)
	}
}

func TestHubDropsSlowSubscribers(t *testing.T) {
	hub := NewHub()

	slow := &Connection{Send: make(chan []byte, 1)}
	hub.Register <- slow

	msg := &models.Message{MessageID: 1, MessageText: "one"}
	hub.Publish("created", msg)
	// buffer full now; the next publish drops the subscriber
	hub.Publish("created", &models.Message{MessageID: 2, MessageText: "two"})

	// first event is still readable, then the channel closes
	<-slow.Send
	select {
	case _, open := <-slow.Send:
		assert.False(t, open, "send channel should be closed after drop")
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := NewHub()

	c := &Connection{Send: make(chan []byte, 1)}
	hub.Register <- c
	hub.Unregister <- c

	select {
	case _, open := <-c.Send:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was not closed")
	}
}
