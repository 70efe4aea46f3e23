package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"chirp/internal/models"
)

// Event is the envelope broadcast to feed subscribers whenever a
// message is created, updated, or deleted.
type Event struct {
	Type    string          `json:"type"`
	Message *models.Message `json:"message"`
}

// Connection represents a websocket subscriber to the feed.
type Connection struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub maintains the set of feed subscribers and fans events out to
// them. There is a single hub for the whole feed; subscribers that
// cannot keep up are dropped.
type Hub struct {
	conns      map[*Connection]bool
	Register   chan *Connection
	Unregister chan *Connection
	Broadcast  chan []byte
	mu         sync.Mutex
}

func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		Register:   make(chan *Connection),
		Unregister: make(chan *Connection),
		Broadcast:  make(chan []byte),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.Register:
			h.mu.Lock()
			h.conns[c] = true
			h.mu.Unlock()
			logrus.Debug("feed subscriber joined")
		case c := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.conns[c]; ok {
				delete(h.conns, c)
				close(c.Send)
			}
			h.mu.Unlock()
			logrus.Debug("feed subscriber left")
		case msg := <-h.Broadcast:
			h.mu.Lock()
			for c := range h.conns {
				select {
				case c.Send <- msg:
				default:
					// slow subscriber, drop it
					delete(h.conns, c)
					close(c.Send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish broadcasts a message event to all subscribers.
func (h *Hub) Publish(eventType string, msg *models.Message) {
	b, err := json.Marshal(Event{Type: eventType, Message: msg})
	if err != nil {
		return
	}
	h.Broadcast <- b
}

// StartRead consumes the websocket until the client goes away. The feed
// is one-way; inbound frames are discarded.
func (c *Connection) StartRead(hub *Hub) {
	defer func() {
		hub.Unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// StartWrite writes events from the Send channel to the websocket.
func (c *Connection) StartWrite() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
