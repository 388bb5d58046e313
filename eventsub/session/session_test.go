package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// fakeConn is an in-memory Reader fed from a channel, standing in for a
// real transport.ws.Conn the way the teacher's hub_test.go stands in
// for a real *websocket.Conn with a bare struct.
type fakeConn struct {
	mu     sync.Mutex
	frames chan []byte
	closed bool
}

func newFakeConn() *fakeConn { return &fakeConn{frames: make(chan []byte, 16)} }

func (c *fakeConn) ReadMessage() ([]byte, error) {
	frame, ok := <-c.frames
	if !ok {
		return nil, errors.New("connection closed")
	}
	return frame, nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.frames)
	}
	return nil
}

func (c *fakeConn) push(frame []byte) { c.frames <- frame }

// TestReconnectHandoff covers spec §4.5 "Reconnection semantics" /
// §9's predecessor/successor one-shot channel strategy: a
// session_reconnect frame on the first connection causes a successor
// to be dialed, further frames on the successor still reach the
// handler, and — per §4.5's "signals the predecessor to terminate" —
// Run itself (the predecessor's own actor) returns once the successor
// is live, rather than running forever alongside it.
func TestReconnectHandoff(t *testing.T) {
	first := newFakeConn()
	second := newFakeConn()

	dialCount := 0
	dial := func(ctx context.Context, url string) (Reader, error) {
		dialCount++
		if dialCount == 1 {
			return first, nil
		}
		return second, nil
	}

	var mu sync.Mutex
	var received []string
	handle := func(frame []byte) string {
		var msg struct {
			ReconnectURL string `json:"reconnect_url"`
		}
		json.Unmarshal(frame, &msg)
		mu.Lock()
		received = append(received, string(frame))
		mu.Unlock()
		return msg.ReconnectURL
	}

	sess := New(dial, handle, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx, "wss://example.test/initial") }()

	first.push([]byte(`{"reconnect_url":""}`))
	first.push([]byte(`{"reconnect_url":"wss://example.test/successor"}`))

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected predecessor to terminate cleanly after handoff, got err=%v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("predecessor never terminated after successor connected")
	}
	if dialCount != 2 {
		t.Fatalf("expected successor to be dialed once, dialCount=%d", dialCount)
	}

	second.push([]byte(`{"reconnect_url":""}`))
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	count := len(received)
	mu.Unlock()
	if count < 3 {
		t.Fatalf("expected at least 3 frames handled across both connections, got %d", count)
	}

	cancel()
	first.Close()
	second.Close()
}
