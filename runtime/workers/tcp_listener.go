package workers

import (
	"chat-relay/contract"
	"chat-relay/infrastructure/transport"
	"context"
	stderrors "errors"
	"log/slog"
	"net"
)

// TCPListener accepts line-oriented TCP clients (telnet, nc, the terminal client)
// and hands each one to the connection handler on its own goroutine.
// The socket is bound by the caller so that a bind failure is fatal at startup.
type TCPListener struct {
	log      *slog.Logger
	listener net.Listener
	handler  contract.ConnectionHandler
	opts     transport.Options
}

func NewTCPListener(log *slog.Logger, listener net.Listener, handler contract.ConnectionHandler, opts transport.Options) *TCPListener {
	return &TCPListener{log: log, listener: listener, handler: handler, opts: opts}
}

// Run returns nil once ctx is cancelled and the socket is closed.
// Any other accept error is returned so the supervisor restarts the loop.
func (l *TCPListener) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = l.listener.Close()
	})
	defer stop()

	l.log.Info("Listening for TCP clients", "addr", l.listener.Addr().String())
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || stderrors.Is(err, net.ErrClosed) {
				l.log.Info("TCP listener stopped")
				return nil
			}
			l.log.Warn("Accept failed", "error", err)
			return err
		}
		go l.handler.Serve(ctx, transport.NewTCPConn(conn, l.opts))
	}
}
