//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes journal events (logs, counters).
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// LineConn is a line-oriented transport owned by exactly one session.
type LineConn interface {
	ReadLine() (string, error)
	WriteLine(line string) error
	Close() error
	RemoteAddr() string
}

// LineSink delivers one line of text to exactly one connected session.
type LineSink interface {
	Deliver(line string) error
}

type IRegistry interface {
	Register(name string, sink LineSink) error
	Remove(name string)
	SnapshotNames() []string
	Lookup(name string) (LineSink, bool)
}

type IPhraseFilter interface {
	ContainsBanned(text string) (string, bool)
	ReplaceAll(phrases []string) []string
	Phrases() []string
}

// IPhraseStore persists the active phrase set.
// Load reports found=false when nothing was ever saved.
type IPhraseStore interface {
	Load() ([]string, bool, error)
	Save(phrases []string) error
}

type IRouter interface {
	RouteLine(sender, line string) domain.Outcome
	Route(msg domain.Message) domain.Outcome
	Announce(body string)
	Join(name string)
	Leave(name string)
}

// ConnectionHandler runs a session on an accepted connection and blocks until it ends.
type ConnectionHandler interface {
	Serve(ctx context.Context, conn LineConn)
}

// IOperator is what the operator console is allowed to do on a running relay.
type IOperator interface {
	Clients() []string
	BannedPhrases() []string
	AddBannedPhrase(phrase string) []string
	RemoveBannedPhrase(phrase string) []string
	UpdateBannedPhrases(phrases []string) []string
	Stats() domain.RelayStats
}
