package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// defaultHandshakeTimeout bounds broker dial attempts during probes.
	defaultHandshakeTimeout = 5 * time.Second

	// writeTimeout bounds individual frame writes.
	writeTimeout = 10 * time.Second
)

// wsRequest is one outbound call frame.
type wsRequest struct {
	ID     uint64 `json:"id"`
	Method string `json:"method"`
	Params []any  `json:"params,omitempty"`
}

// wsResponse is one inbound result frame, matched to a request by ID.
type wsResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// WSBridge reaches a remote agent broker over a websocket and exposes it
// through the Invoker boundary. The connection is dialed lazily on first
// use; a reader goroutine dispatches response frames to waiting calls.
type WSBridge struct {
	url    string
	dialer *websocket.Dialer

	mu      sync.Mutex
	conn    *websocket.Conn
	nextID  uint64
	pending map[uint64]chan wsResponse
	closed  bool
}

// NewWSBridge creates a bridge for the broker at the given websocket URL.
func NewWSBridge(url string) *WSBridge {
	return &WSBridge{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: defaultHandshakeTimeout,
		},
		pending: make(map[uint64]chan wsResponse),
	}
}

// Available reports whether the broker accepts a connection. A successful
// probe keeps the connection open for subsequent calls.
func (b *WSBridge) Available(ctx context.Context) (bool, error) {
	if err := b.ensureConn(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Invoke sends a call frame to the broker and waits for the matching
// response or context expiry.
func (b *WSBridge) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	if err := b.ensureConn(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("bridge closed")
	}
	b.nextID++
	id := b.nextID
	ch := make(chan wsResponse, 1)
	b.pending[id] = ch
	conn := b.conn
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
	}()

	req := wsRequest{ID: id, Method: method, Params: args}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("writing %s frame: %w", method, err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case resp, ok := <-ch:
		if !ok {
			return nil, fmt.Errorf("network error: broker connection lost")
		}
		if resp.Error != "" {
			return nil, fmt.Errorf("%s", resp.Error)
		}
		return decodeRaw(resp.Result)
	}
}

// Close tears down the broker connection. Pending calls fail.
func (b *WSBridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	b.failPendingLocked()
	return err
}

// ensureConn dials the broker if no connection is live.
func (b *WSBridge) ensureConn(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("bridge closed")
	}
	if b.conn != nil {
		return nil
	}

	conn, resp, err := b.dialer.DialContext(ctx, b.url, nil)
	if err != nil {
		return fmt.Errorf("network error: dialing broker %s: %w", b.url, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	b.conn = conn
	go b.readLoop(conn)
	return nil
}

// readLoop dispatches inbound frames to waiting calls until the
// connection dies, then fails everything still pending.
func (b *WSBridge) readLoop(conn *websocket.Conn) {
	for {
		var resp wsResponse
		if err := conn.ReadJSON(&resp); err != nil {
			b.mu.Lock()
			if b.conn == conn {
				b.conn = nil
			}
			b.failPendingLocked()
			b.mu.Unlock()
			return
		}

		b.mu.Lock()
		ch, ok := b.pending[resp.ID]
		if ok {
			delete(b.pending, resp.ID)
		}
		b.mu.Unlock()

		if ok {
			ch <- resp
		}
	}
}

// failPendingLocked closes all pending response channels. Caller holds mu.
func (b *WSBridge) failPendingLocked() {
	for id, ch := range b.pending {
		close(ch)
		delete(b.pending, id)
	}
}

// decodeRaw converts a raw JSON result to a generic value.
func decodeRaw(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return v, nil
}

// Compile-time interface check
var _ Invoker = (*WSBridge)(nil)
var _ Closer = (*WSBridge)(nil)
