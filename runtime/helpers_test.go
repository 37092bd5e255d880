package runtime

import (
	"bufio"
	"chat-relay/contract"
	"chat-relay/infrastructure/transport"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

// recordingSink keeps every delivered line in memory.
type recordingSink struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{}
}

func failingSink(err error) *recordingSink {
	return &recordingSink{err: err}
}

func (s *recordingSink) Deliver(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, line)
	return nil
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// peer is the client end of an in-memory connection.
// Every line the server writes is pushed to lines; lines is closed once the server hangs up.
type peer struct {
	conn  net.Conn
	lines chan string
}

// newPeer returns the client end and the server-side transport of a fresh net.Pipe.
func newPeer(t *testing.T) (*peer, contract.LineConn) {
	t.Helper()
	server, client := net.Pipe()
	p := &peer{conn: client, lines: make(chan string, 256)}
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(client)
		for scanner.Scan() {
			p.lines <- scanner.Text()
		}
	}()
	t.Cleanup(func() { _ = client.Close() })
	return p, transport.NewTCPConn(server, transport.Options{WriteTimeout: waitFor, MaxLineLength: 4096})
}

func (p *peer) send(t *testing.T, line string) {
	t.Helper()
	require.NoError(t, p.conn.SetWriteDeadline(time.Now().Add(waitFor)))
	_, err := p.conn.Write([]byte(line + "\n"))
	require.NoError(t, err)
}

func (p *peer) next(t *testing.T) string {
	t.Helper()
	select {
	case line, ok := <-p.lines:
		require.True(t, ok, "connection closed by server")
		return line
	case <-time.After(waitFor):
		t.Fatal("no line received in time")
		return ""
	}
}

func (p *peer) expect(t *testing.T, want ...string) {
	t.Helper()
	for _, w := range want {
		require.Equal(t, w, p.next(t))
	}
}

// readUntil consumes lines up to and including want and returns everything read.
func (p *peer) readUntil(t *testing.T, want string) []string {
	t.Helper()
	var seen []string
	for {
		line := p.next(t)
		seen = append(seen, line)
		if line == want {
			return seen
		}
	}
}

// expectClosed drains remaining lines and fails if the server keeps the connection open.
func (p *peer) expectClosed(t *testing.T) []string {
	t.Helper()
	var rest []string
	deadline := time.After(waitFor)
	for {
		select {
		case line, ok := <-p.lines:
			if !ok {
				return rest
			}
			rest = append(rest, line)
		case <-deadline:
			t.Fatal("server did not close the connection")
			return rest
		}
	}
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, waitFor, 5*time.Millisecond)
}
