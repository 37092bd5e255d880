package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"log/slog"

	"github.com/samber/lo"
)

// Router delivers chat lines and server notices to registered sessions.
//
// It provides best-effort fan-out: a failing or missing sink is skipped and
// never aborts delivery to the remaining recipients. Each recipient observes
// the messages of one sender in the order that sender routed them; there is no
// global order across senders.
//
// Router is safe for concurrent use; every session routes from its own goroutine.
type Router struct {
	log      *slog.Logger
	registry contract.IRegistry
	filter   contract.IPhraseFilter
	events   chan<- event.Event
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, filter contract.IPhraseFilter, events chan<- event.Event) *Router {
	return &Router{log: log, registry: registry, filter: filter, events: events}
}

// RouteLine parses a raw line written by sender and routes it.
// Malformed addressed lines are dropped without telling the sender.
func (r *Router) RouteLine(sender, line string) domain.Outcome {
	spec, body, err := ParseAddressing(line)
	if err != nil {
		r.log.Debug("Dropping malformed addressed line", "sender", sender, "error", err)
		r.publish(event.New(event.MessageMalformedType, event.MessageMalformed{Sender: sender, Line: line}))
		return domain.Outcome{Malformed: true}
	}
	return r.Route(domain.Message{Sender: sender, Body: body, Recipients: spec})
}

// Route runs the delivery algorithm for one message.
// User messages containing a banned phrase only produce a rejection notice to
// their sender. Server notices are never filtered.
func (r *Router) Route(msg domain.Message) domain.Outcome {
	if !msg.IsNotice() {
		if phrase, banned := r.filter.ContainsBanned(msg.Body); banned {
			r.reject(msg.Sender, phrase)
			return domain.Outcome{Rejected: phrase}
		}
	}

	line := msg.Format()
	var delivered []string
	for _, name := range r.recipients(msg.Recipients) {
		if name == msg.Sender {
			continue
		}
		sink, ok := r.registry.Lookup(name)
		if !ok {
			// Gone between addressing and delivery
			continue
		}
		if err := sink.Deliver(line); err != nil {
			r.log.Debug("Delivery failed", "recipient", name, "error", err)
			continue
		}
		delivered = append(delivered, name)
	}

	if !msg.IsNotice() {
		r.publish(event.New(event.MessageDeliveredType, event.MessageDelivered{
			Sender:     msg.Sender,
			Body:       msg.Body,
			Recipients: delivered,
		}))
	}
	return domain.Outcome{Delivered: delivered}
}

// Announce sends a server notice to every registered session.
func (r *Router) Announce(body string) {
	r.Route(domain.Notice(body))
}

func (r *Router) Join(name string) {
	r.publish(event.New(event.ClientJoinedType, event.ClientJoined{Name: name}))
	r.Announce(domain.JoinedNotice(name))
	r.Announce(domain.RosterNotice(r.registry.SnapshotNames()))
}

func (r *Router) Leave(name string) {
	r.publish(event.New(event.ClientLeftType, event.ClientLeft{Name: name}))
	r.Announce(domain.LeftNotice(name))
	r.Announce(domain.RosterNotice(r.registry.SnapshotNames()))
}

func (r *Router) reject(sender, phrase string) {
	r.publish(event.New(event.MessageRejectedType, event.MessageRejected{Sender: sender, Phrase: phrase}))
	sink, ok := r.registry.Lookup(sender)
	if !ok {
		return
	}
	if err := sink.Deliver(domain.RejectionNotice(phrase)); err != nil {
		r.log.Debug("Rejection notice not delivered", "sender", sender, "error", err)
	}
}

func (r *Router) recipients(spec domain.RecipientSpec) []string {
	switch spec.Kind {
	case domain.Subset:
		return lo.Uniq(spec.Names)
	case domain.AllExcept:
		return lo.Without(r.registry.SnapshotNames(), spec.Names...)
	default:
		return r.registry.SnapshotNames()
	}
}

// publish never blocks the routing path: the journal is allowed to lose events.
func (r *Router) publish(evt event.Event) {
	if r.events == nil {
		return
	}
	select {
	case r.events <- evt:
	default:
		r.log.Debug("Journal event lost", "type", evt.Type)
	}
}
