package websocket

import "github.com/iamasit07/4-in-a-row/engine/internal/service/analysis"

// ClientMessage is a frame sent by the client. Only "analyze" is understood.
type ClientMessage struct {
	Type string `json:"type"`
	analysis.Request
}

type ServerMessage struct {
	Type     string             `json:"type"`
	Analysis *analysis.Response `json:"analysis,omitempty"`
	Message  string             `json:"message,omitempty"`
}
