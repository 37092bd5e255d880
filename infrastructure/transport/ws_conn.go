package transport

import (
	"chat-relay/errors"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WSConn carries one chat line per websocket text frame.
type WSConn struct {
	conn    *websocket.Conn
	opts    Options
	writeMu sync.Mutex
}

func NewWSConn(conn *websocket.Conn, opts Options) *WSConn {
	if opts.MaxLineLength > 0 {
		conn.SetReadLimit(int64(opts.MaxLineLength))
	}
	return &WSConn{conn: conn, opts: opts}
}

func (c *WSConn) ReadLine() (string, error) {
	if c.opts.IdleTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.opts.IdleTimeout)); err != nil {
			return "", err
		}
	}
	kind, payload, err := c.conn.ReadMessage()
	if err != nil {
		if stderrors.Is(err, websocket.ErrReadLimit) {
			return "", errors.ErrLineTooLong
		}
		return "", err
	}
	if kind != websocket.TextMessage {
		return "", fmt.Errorf("%w: frame type %d", errors.ErrInvalidPayload, kind)
	}
	return strings.TrimRight(string(payload), "\r\n"), nil
}

func (c *WSConn) WriteLine(line string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.opts.WriteTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout)); err != nil {
			return err
		}
	}
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

// Close sends a normal closure frame on a best-effort basis before dropping the connection.
func (c *WSConn) Close() error {
	c.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	c.writeMu.Unlock()
	return c.conn.Close()
}

func (c *WSConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
