package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBroker starts a websocket server that answers call frames with
// the given handler. Returns a ws:// URL.
func newTestBroker(t *testing.T, handle func(req wsRequest) wsResponse) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		for {
			var req wsRequest
			if readErr := conn.ReadJSON(&req); readErr != nil {
				return
			}
			if writeErr := conn.WriteJSON(handle(req)); writeErr != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWSBridge_InvokeRoundTrip(t *testing.T) {
	t.Parallel()

	url := newTestBroker(t, func(req wsRequest) wsResponse {
		switch req.Method {
		case "connect":
			return wsResponse{ID: req.ID, Result: []byte(`{"address":"broker-addr"}`)}
		case "disconnect":
			return wsResponse{ID: req.ID}
		default:
			return wsResponse{ID: req.ID, Error: "unknown method"}
		}
	})

	b := NewWSBridge(url)
	defer func() { _ = b.Close() }()

	ctx := context.Background()
	result, err := b.Invoke(ctx, "connect", map[string]any{"permissions": []string{"ACCESS_ADDRESS"}})
	require.NoError(t, err)

	m, err := DecodeMap(result)
	require.NoError(t, err)
	addr, err := MapString(m, "address")
	require.NoError(t, err)
	assert.Equal(t, "broker-addr", addr)

	result, err = b.Invoke(ctx, "disconnect")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestWSBridge_BrokerError(t *testing.T) {
	t.Parallel()

	url := newTestBroker(t, func(req wsRequest) wsResponse {
		return wsResponse{ID: req.ID, Error: "user denied request"}
	})

	b := NewWSBridge(url)
	defer func() { _ = b.Close() }()

	_, err := b.Invoke(context.Background(), "connect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestWSBridge_Available(t *testing.T) {
	t.Parallel()

	url := newTestBroker(t, func(req wsRequest) wsResponse {
		return wsResponse{ID: req.ID}
	})

	b := NewWSBridge(url)
	defer func() { _ = b.Close() }()

	ok, err := b.Available(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWSBridge_UnreachableBroker(t *testing.T) {
	t.Parallel()

	b := NewWSBridge("ws://127.0.0.1:1/never")
	defer func() { _ = b.Close() }()

	ok, err := b.Available(context.Background())
	assert.False(t, ok)
	require.Error(t, err)

	_, err = b.Invoke(context.Background(), "connect")
	require.Error(t, err)
}

func TestWSBridge_ContextExpiry(t *testing.T) {
	t.Parallel()

	// Broker that never answers.
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		for {
			var req wsRequest
			if readErr := conn.ReadJSON(&req); readErr != nil {
				return
			}
			// Swallow the frame without answering.
		}
	}))
	t.Cleanup(srv.Close)

	b := NewWSBridge("ws" + strings.TrimPrefix(srv.URL, "http"))
	defer func() { _ = b.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := b.Invoke(ctx, "connect")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWSBridge_InvokeAfterClose(t *testing.T) {
	t.Parallel()

	url := newTestBroker(t, func(req wsRequest) wsResponse {
		return wsResponse{ID: req.ID}
	})

	b := NewWSBridge(url)
	require.NoError(t, b.Close())

	_, err := b.Invoke(context.Background(), "connect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}
