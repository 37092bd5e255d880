package sink

import (
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"fmt"
)

// StatsSink feeds the relay monitor from the journal.
type StatsSink struct {
	monitor *observability.RelayMonitor
}

func NewStatsSink(monitor *observability.RelayMonitor) StatsSink {
	return StatsSink{monitor: monitor}
}

func (s StatsSink) Consume(_ context.Context, e event.Event) error {
	switch e.Type {
	case event.ClientJoinedType:
		s.monitor.IncrJoins()
	case event.ClientLeftType:
		s.monitor.IncrLeaves()
	case event.MessageDeliveredType:
		p, ok := e.Payload.(event.MessageDelivered)
		if !ok {
			return invalidPayload(e)
		}
		s.monitor.IncrDelivered(len(p.Recipients))
	case event.MessageRejectedType:
		p, ok := e.Payload.(event.MessageRejected)
		if !ok {
			return invalidPayload(e)
		}
		s.monitor.IncrRejected(p.Phrase)
	case event.MessageMalformedType:
		s.monitor.IncrMalformed()
	}
	return nil
}

func invalidPayload(e event.Event) error {
	return fmt.Errorf("%w: %s carries %T", errors.ErrInvalidPayload, e.Type, e.Payload)
}
