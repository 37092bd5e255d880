package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// maxNameAttempts bounds the "#n" suffixes tried when the wanted name is taken.
const maxNameAttempts = 1000

// Session is the state machine of one client connection:
// CONNECTING -> AWAITING_NAME -> ACTIVE -> DISCONNECTED.
// It owns its transport; the registry only borrows its outbox.
type Session struct {
	ID       uuid.UUID
	log      *slog.Logger
	conn     contract.LineConn
	outbox   *Outbox
	registry contract.IRegistry
	router   contract.IRouter
	filter   contract.IPhraseFilter

	mu         sync.Mutex
	state      domain.SessionState
	name       string
	registered bool
	once       sync.Once
}

func NewSession(log *slog.Logger, conn contract.LineConn, registry contract.IRegistry,
	router contract.IRouter, filter contract.IPhraseFilter, outboxSize int) *Session {
	id := uuid.New()
	log = log.With("session_id", id.String(), "remote", conn.RemoteAddr())
	return &Session{
		ID:       id,
		log:      log,
		conn:     conn,
		outbox:   NewOutbox(conn, outboxSize, log),
		registry: registry,
		router:   router,
		filter:   filter,
		state:    domain.Connecting,
	}
}

// Run drives the session until the transport fails or is closed.
// It returns once the session is DISCONNECTED and its outbox has been flushed.
func (s *Session) Run() {
	go s.outbox.Run()
	defer s.outbox.Wait()
	defer s.disconnect()

	s.log.Info("Client connected")
	s.send(domain.WelcomeMessage)
	s.setState(domain.AwaitingName)

	wanted, err := s.conn.ReadLine()
	if err != nil {
		s.log.Info("Client left before choosing a name", "error", err)
		return
	}
	if strings.TrimSpace(wanted) == "" {
		wanted = domain.AnonymousName
	}

	name, err := s.claim(wanted)
	if err != nil {
		s.log.Warn("No free display name", "wanted", wanted, "error", err)
		return
	}
	if name != wanted {
		s.send(domain.RenamedNotice(wanted, name))
	}
	s.log = s.log.With("name", name)

	s.router.Join(name)
	for _, line := range domain.Instructions {
		s.send(line)
	}

	for {
		line, err := s.conn.ReadLine()
		if err != nil {
			s.log.Info("Connection ended", "error", err)
			return
		}
		s.handle(name, line)
	}
}

// Close asks the session to end. Queued lines are flushed first, then the
// transport is closed, which fails the blocked read and disconnects the session.
func (s *Session) Close() {
	s.outbox.Close()
}

func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *Session) handle(name, line string) {
	if line == domain.BannedCommand {
		s.send(domain.BannedListReply(s.filter.Phrases()))
		return
	}
	s.router.RouteLine(name, line)
}

// claim registers wanted, or wanted#2, wanted#3... when it is taken.
// The session becomes ACTIVE in the same step as its registry entry appears.
func (s *Session) claim(wanted string) (string, error) {
	name := wanted
	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		if attempt > 1 {
			name = fmt.Sprintf("%s#%d", wanted, attempt)
		}
		err := s.registry.Register(name, s.outbox)
		if err == nil {
			s.mu.Lock()
			s.name, s.registered, s.state = name, true, domain.Active
			s.mu.Unlock()
			return name, nil
		}
		if !stderrors.Is(err, errors.ErrNameTaken) {
			return "", err
		}
	}
	return "", errors.ErrNameTaken
}

// disconnect is the one-shot DISCONNECTED transition.
func (s *Session) disconnect() {
	s.once.Do(func() {
		s.mu.Lock()
		name, registered := s.name, s.registered
		s.state = domain.Disconnected
		s.mu.Unlock()

		if registered {
			s.registry.Remove(name)
			s.router.Leave(name)
		}
		s.outbox.Close()
		s.log.Info("Client disconnected")
	})
}

func (s *Session) setState(state domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) send(line string) {
	if err := s.outbox.Deliver(line); err != nil {
		s.log.Debug("Line not queued", "error", err)
	}
}
