package sink

import (
	"chat-relay/domain/event"
	"context"
	"fmt"
	"log/slog"
)

// LogSink renders the journal as the relay's console log.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log.With("component", "journal")}
}

func (s LogSink) Consume(ctx context.Context, e event.Event) error {
	switch p := e.Payload.(type) {
	case event.ClientJoined:
		s.log.InfoContext(ctx, "Client joined", "name", p.Name)
	case event.ClientLeft:
		s.log.InfoContext(ctx, "Client left", "name", p.Name)
	case event.MessageDelivered:
		s.log.InfoContext(ctx, "Message delivered", "sender", p.Sender, "recipients", len(p.Recipients))
		s.log.DebugContext(ctx, "Message body", "sender", p.Sender, "body", p.Body, "to", p.Recipients)
	case event.MessageRejected:
		s.log.InfoContext(ctx, "Message blocked", "sender", p.Sender, "phrase", p.Phrase)
	case event.MessageMalformed:
		s.log.InfoContext(ctx, "Malformed addressing", "sender", p.Sender, "line", p.Line)
	case event.PhrasesUpdated:
		s.log.InfoContext(ctx, "Banned phrases updated", "count", len(p.Phrases), "persisted", p.Persisted)
	case event.ServerShutdown:
		s.log.InfoContext(ctx, "Server shutting down", "connected", p.Connected)
	default:
		s.log.DebugContext(ctx, fmt.Sprintf("Not implemented event : %v", e.Type))
	}
	return nil
}
