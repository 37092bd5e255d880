package runtime

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"log/slog"
	"sync"
)

// Outbox is the outbound sink of one session.
// Lines are queued in FIFO order and written by a single writer goroutine (Run),
// so concurrent routers never interleave bytes on the transport.
// Deliver never blocks: a full queue drops the line.
type Outbox struct {
	mu     sync.Mutex
	closed bool
	lines  chan string
	done   chan struct{}
	conn   contract.LineConn
	log    *slog.Logger
}

func NewOutbox(conn contract.LineConn, size int, log *slog.Logger) *Outbox {
	if size < 1 {
		size = 1
	}
	return &Outbox{
		lines: make(chan string, size),
		done:  make(chan struct{}),
		conn:  conn,
		log:   log,
	}
}

func (o *Outbox) Deliver(line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return errors.ErrSinkClosed
	}
	select {
	case o.lines <- line:
		return nil
	default:
		return errors.ErrSinkFull
	}
}

// Run writes queued lines until the outbox is closed and drained, or a write fails.
// The transport is closed when Run returns, which unblocks the session's reader.
func (o *Outbox) Run() {
	defer close(o.done)
	defer func() {
		if err := o.conn.Close(); err != nil {
			o.log.Debug("Transport close failed", "error", err)
		}
	}()

	for line := range o.lines {
		if err := o.conn.WriteLine(line); err != nil {
			o.log.Debug("Write failed, closing transport", "error", err)
			return
		}
	}
}

// Close stops accepting lines. Already queued lines are still written.
func (o *Outbox) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	o.closed = true
	close(o.lines)
}

// Wait blocks until Run has returned.
func (o *Outbox) Wait() {
	<-o.done
}
