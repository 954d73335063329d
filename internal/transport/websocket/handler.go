package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/analysis"
	"github.com/rs/zerolog/log"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
)

// Handler streams analyses over a WebSocket: every "analyze" frame gets one
// "analysis" or "error" frame back, in order.
type Handler struct {
	Service  *analysis.Service
	Upgrader websocket.Upgrader
	// PongWait is how long the connection may stay silent between frames.
	// Time spent searching does not count against it.
	PongWait     time.Duration
	PingInterval time.Duration
}

func NewHandler(svc *analysis.Service, allowedOrigins []string) *Handler {
	return &Handler{
		Service: svc,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin {
						return true
					}
				}
				return false
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		PongWait:     pongWait,
		PingInterval: pingInterval,
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Str("component", "ws").Err(err).Msg("upgrade error")
		return
	}

	h.handleConnection(r.Context(), conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(ctx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		conn.Close()
		log.Debug().Str("component", "ws").Msg("connection closed")
	}()

	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(h.PongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.PongWait))
		return nil
	})

	// Keep-alive pinger; WriteControl may run alongside the reply writes
	go func() {
		ticker := time.NewTicker(h.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Str("component", "ws").Err(err).Msg("client disconnected unexpectedly")
			}
			return
		}

		reply := h.processMessage(ctx, data)
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn().Str("component", "ws").Err(err).Msg("write failed")
			return
		}
		// pongs that arrived during a long search are only read after it, so
		// restart the silence window from the reply
		conn.SetReadDeadline(time.Now().Add(h.PongWait))
	}
}

// processMessage routes a single frame and builds its reply
func (h *Handler) processMessage(ctx context.Context, data []byte) ServerMessage {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ServerMessage{Type: "error", Message: "Invalid message format"}
	}

	switch msg.Type {
	case "analyze":
		resp, err := h.Service.Analyze(ctx, msg.Request)
		if err != nil {
			if analysis.IsClientError(err) {
				return ServerMessage{Type: "error", Message: err.Error()}
			}
			log.Error().Str("component", "ws").Err(err).Msg("analysis failed")
			return ServerMessage{Type: "error", Message: "Analysis failed"}
		}
		return ServerMessage{Type: "analysis", Analysis: resp}
	default:
		return ServerMessage{Type: "error", Message: "Unknown message type"}
	}
}
