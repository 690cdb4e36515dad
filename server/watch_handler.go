package server

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Cross-origin policy is enforced by CorsMiddleware for the rest of
	// the API; the watch endpoint authenticates by token instead.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WatchTasksHandler streams task-set snapshots over a WebSocket. One JSON
// array is written per delivery, the current set first. The subscription
// is released when the client disconnects.
func (s *Server) WatchTasksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		claims, err := s.tokens.Parse(raw)
		if err != nil {
			s.writeError(w, errNoActiveSession())
			return
		}

		sub, err := s.tasks.Watch(claims.Subject)
		if err != nil {
			s.writeError(w, err)
			return
		}

		conn, err := watchUpgrader.Upgrade(w, r, nil)
		if err != nil {
			sub.Unsubscribe()
			s.logger.Error().Err(err).Msg("watch upgrade failed")
			return
		}
		defer conn.Close()
		defer sub.Unsubscribe()

		// Reader: the client sends nothing meaningful; a read error is the
		// disconnect signal.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					sub.Unsubscribe()
					return
				}
			}
		}()

		for snapshot := range sub.Changes() {
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
		}
	}
}
