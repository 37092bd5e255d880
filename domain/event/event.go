package event

import (
	"time"
)

type Type string

const (
	ClientJoinedType     Type = "CLIENT_JOINED"
	ClientLeftType       Type = "CLIENT_LEFT"
	MessageDeliveredType Type = "MESSAGE_DELIVERED"
	MessageRejectedType  Type = "MESSAGE_REJECTED"
	MessageMalformedType Type = "MESSAGE_MALFORMED"
	PhrasesUpdatedType   Type = "PHRASES_UPDATED"
	ServerShutdownType   Type = "SERVER_SHUTDOWN"
)

// Event is an append-only journal entry emitted by the relay.
// It feeds observability and presentation, never routing decisions.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

type ClientJoined struct {
	Name string
}

type ClientLeft struct {
	Name string
}

type MessageDelivered struct {
	Sender     string
	Body       string
	Recipients []string
}

type MessageRejected struct {
	Sender string
	Phrase string
}

type MessageMalformed struct {
	Sender string
	Line   string
}

type PhrasesUpdated struct {
	Phrases   []string
	Persisted bool
}

type ServerShutdown struct {
	Connected int
}
