package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	uxsettings "github.com/goliatone/go-ux-settings"
)

const (
	feedBuffer = 16
	writeWait  = 10 * time.Second
)

// handleThemeFeed streams ThemeState values as JSON text frames. The first
// frame is the current state; later frames follow every store change.
func (s *Server) handleThemeFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("theme feed upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	updates := make(chan uxsettings.ThemeState, feedBuffer)
	unsubscribe := s.settings.CurrentTheme.Subscribe(func(state uxsettings.ThemeState) {
		select {
		case updates <- state:
		default:
			s.metrics.droppedUpdates.Inc()
		}
	})
	defer unsubscribe()

	s.metrics.themeSubscribers.Inc()
	defer s.metrics.themeSubscribers.Dec()

	// Clients never send data; reading only surfaces the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.logger.Debug("theme feed read failed", "error", err)
				}
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-s.closing:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"),
				time.Now().Add(writeWait))
			return
		case state := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(state); err != nil {
				s.logger.Debug("theme feed write failed", "error", err)
				return
			}
		}
	}
}
