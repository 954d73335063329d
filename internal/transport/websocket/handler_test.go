package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/analysis"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, h *Handler, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(server.Close)
	return websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), header)
}

func newTestHandler(t *testing.T, allowedOrigins []string) *Handler {
	t.Helper()
	svc, err := analysis.NewService(4, 8, false)
	require.NoError(t, err)
	return NewHandler(svc, allowedOrigins)
}

func emptyGrid() [][]int {
	grid := make([][]int, 6)
	for i := range grid {
		grid[i] = make([]int, 7)
	}
	return grid
}

func TestAnalyzeOverWebSocket(t *testing.T) {
	h := newTestHandler(t, nil)
	conn, _, err := dial(t, h, nil)
	require.NoError(t, err)
	defer conn.Close()

	grid := emptyGrid()
	grid[5][0], grid[5][1], grid[5][2] = 2, 2, 2

	require.NoError(t, conn.WriteJSON(ClientMessage{
		Type:    "analyze",
		Request: analysis.Request{Board: grid, ToMove: 2},
	}))
	var reply ServerMessage
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "analysis", reply.Type)
	require.NotNil(t, reply.Analysis)
	require.Equal(t, 3, *reply.Analysis.Move)
	require.GreaterOrEqual(t, reply.Analysis.Score, 10000)

	// the same connection keeps answering, errors included
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "resign"}))
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "error", reply.Type)
	require.Equal(t, "Unknown message type", reply.Message)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{oops")))
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "error", reply.Type)
	require.Equal(t, "Invalid message format", reply.Message)

	require.NoError(t, conn.WriteJSON(ClientMessage{
		Type:    "analyze",
		Request: analysis.Request{Board: emptyGrid()[:3]},
	}))
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "error", reply.Type)
	require.Contains(t, reply.Message, "invalid board shape")
}

func TestWebSocketRejectsUnknownOrigin(t *testing.T) {
	h := newTestHandler(t, []string{"https://play.example.com"})

	_, resp, err := dial(t, h, http.Header{"Origin": {"https://evil.example.com"}})
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := dial(t, h, http.Header{"Origin": {"https://play.example.com"}})
	require.NoError(t, err)
	conn.Close()
}

func TestWebSocketSilenceWindowRestartsAfterEachReply(t *testing.T) {
	h := newTestHandler(t, nil)
	h.PongWait = 300 * time.Millisecond
	h.PingInterval = time.Hour
	conn, _, err := dial(t, h, nil)
	require.NoError(t, err)
	defer conn.Close()

	// total time well past PongWait, but no single gap reaches it
	for i := 0; i < 4; i++ {
		time.Sleep(150 * time.Millisecond)
		require.NoError(t, conn.WriteJSON(ClientMessage{
			Type:    "analyze",
			Request: analysis.Request{Board: emptyGrid(), Depth: intPtr(1)},
		}))
		var reply ServerMessage
		require.NoError(t, conn.ReadJSON(&reply))
		require.Equal(t, "analysis", reply.Type, "reply %d", i)
	}

	// a silent client is still dropped
	time.Sleep(500 * time.Millisecond)
	_ = conn.WriteJSON(ClientMessage{Type: "analyze", Request: analysis.Request{Board: emptyGrid()}})
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply ServerMessage
	require.Error(t, conn.ReadJSON(&reply))
}

func intPtr(v int) *int { return &v }
