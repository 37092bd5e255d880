package workers

import (
	"chat-relay/contract"
	"chat-relay/infrastructure/transport"
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const WSPath = "/ws"

// WSListener serves the chat over websocket: one text frame per line.
// Sessions behave exactly as on the TCP listener.
type WSListener struct {
	log             *slog.Logger
	listener        net.Listener
	handler         contract.ConnectionHandler
	opts            transport.Options
	upgrader        websocket.Upgrader
	shutdownTimeout time.Duration
}

func NewWSListener(log *slog.Logger, listener net.Listener, handler contract.ConnectionHandler,
	opts transport.Options, shutdownTimeout time.Duration) *WSListener {
	return &WSListener{
		log:             log,
		listener:        listener,
		handler:         handler,
		opts:            opts,
		upgrader:        websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		shutdownTimeout: shutdownTimeout,
	}
}

func (l *WSListener) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc(WSPath, func(w http.ResponseWriter, r *http.Request) {
		l.serveWS(ctx, w, r)
	})
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), l.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.log.Debug("Websocket server shutdown", "error", err)
		}
	})
	defer stop()

	l.log.Info("Listening for websocket clients", "addr", l.listener.Addr().String(), "path", WSPath)
	err := srv.Serve(l.listener)
	switch {
	case stderrors.Is(err, http.ErrServerClosed) || ctx.Err() != nil:
		l.log.Info("Websocket listener stopped")
		return nil
	case stderrors.Is(err, net.ErrClosed):
		l.log.Error("Websocket socket closed unexpectedly", "error", err)
		return nil
	}
	return err
}

// serveWS upgrades the request and blocks for the whole session.
// Hijacked connections are not tracked by http.Server, the handler owns them.
func (l *WSListener) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	ws, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.log.Debug("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	l.handler.Serve(ctx, transport.NewWSConn(ws, l.opts))
}
