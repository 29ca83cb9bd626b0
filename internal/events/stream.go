package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is same-origin behind the reverse proxy; CORS handles the
	// rest, so all origins are accepted here.
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// Stream upgrades the request to a websocket and forwards bus events as
// JSON until the client disconnects.
func Stream(bus *Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		ch, cancel := bus.Subscribe()
		defer cancel()

		// Inbound frames are view-to-view signals: one client asks the
		// others to open the contract editor or to show a toast. They are
		// republished on the bus so every connected client receives them.
		// Frames with an unknown kind are dropped.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				var event Event
				if err := conn.ReadJSON(&event); err != nil {
					return
				}

				if !event.Kind.Valid() {
					continue
				}

				bus.Publish(event)
			}
		}()

		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}

				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
