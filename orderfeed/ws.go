package orderfeed

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades the connection and keeps it on the feed
// until the client goes away. Admin-only; wrap with middleware.AdminOnly
// at route registration.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("orderfeed upgrade:", err)
			return
		}

		client := &Client{Send: make(chan []byte, 256)}
		if !hub.add(client) {
			conn.Close()
			return
		}

		go writePump(client, conn)
		go readPump(client, conn, hub)
	}
}

func writePump(c *Client, conn *websocket.Conn) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards inbound frames; the feed is one-way. Its job is to
// notice the disconnect and unregister.
func readPump(c *Client, conn *websocket.Conn, hub *Hub) {
	defer func() {
		hub.remove(c)
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
