package transport

import (
	"bufio"
	"chat-relay/errors"
	"net"
	"strings"
	"sync"
	"time"
)

// Options tunes a line transport. Zero durations disable the matching deadline.
type Options struct {
	IdleTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxLineLength int
}

// TCPConn frames a byte stream as newline-terminated UTF-8 lines.
// A trailing "\r" is dropped so telnet clients work as expected.
type TCPConn struct {
	conn    net.Conn
	reader  *bufio.Reader
	opts    Options
	writeMu sync.Mutex
}

func NewTCPConn(conn net.Conn, opts Options) *TCPConn {
	return &TCPConn{conn: conn, reader: bufio.NewReader(conn), opts: opts}
}

// ReadLine blocks until a full line arrives.
// Lines longer than MaxLineLength fail with ErrLineTooLong; the session treats it like any read error.
func (c *TCPConn) ReadLine() (string, error) {
	if c.opts.IdleTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.opts.IdleTimeout)); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	for {
		chunk, isPrefix, err := c.reader.ReadLine()
		if err != nil {
			return "", err
		}
		sb.Write(chunk)
		if c.opts.MaxLineLength > 0 && sb.Len() > c.opts.MaxLineLength {
			return "", errors.ErrLineTooLong
		}
		if !isPrefix {
			break
		}
	}
	return strings.TrimSuffix(sb.String(), "\r"), nil
}

func (c *TCPConn) WriteLine(line string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.opts.WriteTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout)); err != nil {
			return err
		}
	}
	_, err := c.conn.Write([]byte(line + "\n"))
	return err
}

func (c *TCPConn) Close() error {
	return c.conn.Close()
}

func (c *TCPConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
