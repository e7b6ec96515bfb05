package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/faceset/faceset/internal/event"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const wsWriteTimeout = 5 * time.Second

// wsEvents streams sampling events to a websocket client.
func wsEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)

	if err != nil {
		log.Debugf("server: %s (websocket upgrade)", err)
		return
	}

	defer conn.Close()

	done := make(chan struct{})

	// Drain client messages to notice a closed connection.
	go func() {
		defer close(done)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sub := event.Subscribe("sample.*")
	defer event.Unsubscribe(sub)

	for {
		select {
		case <-done:
			return
		case msg := <-sub.Receiver:
			if err := conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}

			if err := conn.WriteJSON(map[string]interface{}{
				"event": msg.Name,
				"data":  msg.Fields,
			}); err != nil {
				return
			}
		}
	}
}
