// Package domain contains core concepts of the chat relay.
// This file defines addressed messages and their recipient rules.
// No runtime, network, or UI logic should be added here.
package domain

// RecipientKind tells how the recipients of a message are selected.
type RecipientKind int

const (
	// All delivers to every registered client.
	All RecipientKind = iota
	// Subset delivers only to the listed names.
	Subset
	// AllExcept delivers to every registered client but the listed names.
	AllExcept
)

func (k RecipientKind) String() string {
	switch k {
	case All:
		return "ALL"
	case Subset:
		return "SUBSET"
	case AllExcept:
		return "ALL_EXCEPT"
	default:
		return "UNKNOWN"
	}
}

// RecipientSpec is the parsed addressing intent of an outgoing line.
// Names are kept verbatim: no trimming, no case folding.
type RecipientSpec struct {
	Kind  RecipientKind
	Names []string
}

func ToAll() RecipientSpec {
	return RecipientSpec{Kind: All}
}

func ToSubset(names ...string) RecipientSpec {
	return RecipientSpec{Kind: Subset, Names: names}
}

func ToAllExcept(names ...string) RecipientSpec {
	return RecipientSpec{Kind: AllExcept, Names: names}
}

// Message is a transient addressed message.
// An empty Sender marks a server notice.
type Message struct {
	Sender     string
	Body       string
	Recipients RecipientSpec
}

func Notice(body string) Message {
	return Message{Body: body, Recipients: ToAll()}
}

func (m Message) IsNotice() bool {
	return m.Sender == ""
}

// Format renders the line as it is written on the wire.
func (m Message) Format() string {
	if m.IsNotice() {
		return m.Body
	}
	return m.Sender + ": " + m.Body
}

// Outcome reports what the router did with a message.
type Outcome struct {
	Delivered []string
	Rejected  string
	Malformed bool
}

func (o Outcome) IsRejected() bool {
	return o.Rejected != ""
}
