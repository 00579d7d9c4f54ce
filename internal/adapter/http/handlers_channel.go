package adapthttp

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// Fixed channel messages.
const (
	WelcomeMessage  = "👋 Welcome! 💧 Don't forget to drink water."
	ReminderMessage = "💧 Time to drink water!"
	EchoPrefix      = "Echo: "
)

// channelReply answers one text frame: "ping" in any case gets the water
// reminder, anything else is echoed.
func channelReply(msg string) string {
	if strings.EqualFold(msg, "ping") {
		return ReminderMessage
	}
	return EchoPrefix + msg
}

func (s *Server) handleChannel(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close() //nolint:errcheck

	log := s.log.With().Str("remote", r.RemoteAddr).Logger()
	log.Info().Msg("websocket connected")

	if err := conn.WriteMessage(websocket.TextMessage, []byte(WelcomeMessage)); err != nil {
		log.Warn().Err(err).Msg("websocket welcome failed")
		return
	}

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("websocket closed unexpectedly")
			} else {
				log.Info().Msg("websocket disconnected")
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		log.Debug().Str("payload", string(payload)).Msg("websocket message")

		if err := conn.WriteMessage(websocket.TextMessage, []byte(channelReply(string(payload)))); err != nil {
			log.Warn().Err(err).Msg("websocket write failed")
			return
		}
	}
}
