// Package ws adapts gorilla/websocket connections to the minimal
// read/write surface the eventsub and pubsub packages need, carrying
// over the teacher's ping/pong keepalive discipline from
// internal/websocket/client.go (deadlines, read limits, periodic
// pings) rather than exposing gorilla's richer API directly.
package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	defaultPongWait = 60 * time.Second
	maxMessageSize = 1 << 20 // 1 MiB; EventSub/PubSub frames are small JSON documents
)

// Conn is the read/write transport surface; its ReadMessage/Close subset
// satisfies eventsub/session.Reader, and WriteMessage can carry a
// marshaled pubsub LISTEN command. The pubsub package has no client of
// its own that uses Conn.
type Conn interface {
	ReadMessage() ([]byte, error)
	WriteMessage(data []byte) error
	Close() error
}

// GorillaConn wraps a *websocket.Conn, applying read-deadline and
// ping/pong bookkeeping the way the teacher's Client.readPump/writePump
// do, but synchronously rather than via a background hub — callers
// that need concurrent read+write should run ReadMessage in their own
// goroutine, same as the teacher's pump split.
type GorillaConn struct {
	conn    *websocket.Conn
	pongWait time.Duration
}

// Dial connects to url and returns a ready-to-use GorillaConn.
func Dial(url string, header http.Header) (*GorillaConn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return nil, err
	}
	return newGorillaConn(conn), nil
}

func newGorillaConn(conn *websocket.Conn) *GorillaConn {
	c := &GorillaConn{conn: conn, pongWait: defaultPongWait}
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(c.pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(c.pongWait))
		return nil
	})
	return c
}

// SetPongWait overrides the read-deadline window applied after each
// pong, for binding to a server-declared keepalive timeout (spec §4.5
// "Keepalive timeout: ... default carried by the welcome message").
func (c *GorillaConn) SetPongWait(d time.Duration) {
	c.pongWait = d
	c.conn.SetReadDeadline(time.Now().Add(d))
}

// ReadMessage blocks for the next text frame.
func (c *GorillaConn) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

// WriteMessage sends one text frame, honoring the write deadline.
func (c *GorillaConn) WriteMessage(data []byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Ping sends a control ping frame, for a caller-driven keepalive loop
// (mirrors the teacher's pingPeriod ticker, but left to the caller here
// since this package has no background goroutine of its own).
func (c *GorillaConn) Ping() error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Close closes the underlying connection.
func (c *GorillaConn) Close() error { return c.conn.Close() }

// ServerConn is the server-side half, grounded on the teacher's ServeWs
// + Client.readPump/writePump, used by applications that terminate
// their own EventSub-over-websocket relay or PubSub test harness.
type ServerConn struct {
	*GorillaConn
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Upgrade upgrades an inbound HTTP request to a WebSocket connection.
func Upgrade(w http.ResponseWriter, r *http.Request) (*ServerConn, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return &ServerConn{GorillaConn: newGorillaConn(conn)}, nil
}
