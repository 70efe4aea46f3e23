package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"chirp/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type FeedHandler struct {
	Hub *ws.Hub
}

// ServeHTTP handles GET /ws: upgrades the connection and streams
// message events until the client disconnects.
func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	c := &ws.Connection{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Hub.Register <- c

	go c.StartWrite()
	c.StartRead(h.Hub)
}
