// Package runtime holds the live relay: registry, router, sessions and their orchestration.
// Routing decisions are taken synchronously on the sender's goroutine;
// long-lived background work (listeners, journal, console) runs under the supervisor.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"chat-relay/runtime/workers"
	"chat-relay/sink"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Settings struct {
	OutboxSize      int
	EventBufferSize int
	SinkTimeout     time.Duration
}

// Orchestrator wires the relay together and owns its lifecycle.
// It serves connections for the listeners and applies operator commands.
type Orchestrator struct {
	mu           sync.Mutex
	phraseMu     sync.Mutex
	log          *slog.Logger
	supervisor   contract.ISupervisor
	registry     *Registry
	filter       contract.IPhraseFilter
	store        contract.IPhraseStore
	router       *Router
	monitor      *observability.RelayMonitor
	events       chan event.Event
	sinks        []contract.EventSink
	sessions     map[uuid.UUID]*Session
	wg           sync.WaitGroup
	settings     Settings
	started      bool
	shuttingDown bool
	done         chan struct{}
}

// NewOrchestrator builds the relay core. store may be nil, phrases then live in memory only.
func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, registry *Registry,
	filter contract.IPhraseFilter, store contract.IPhraseStore, settings Settings) *Orchestrator {
	events := make(chan event.Event, max(settings.EventBufferSize, 1))
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		filter:     filter,
		store:      store,
		router:     NewRouter(log, registry, filter, events),
		monitor:    observability.NewRelayMonitor(log, registry.Len),
		events:     events,
		sessions:   make(map[uuid.UUID]*Session),
		settings:   settings,
		done:       make(chan struct{}),
	}
}

// AddSinks registers extra journal consumers. It must be called before Start.
func (o *Orchestrator) AddSinks(sinks ...contract.EventSink) {
	o.sinks = append(o.sinks, sinks...)
}

// AddWorkers puts workers (listeners, console, heartbeat) under supervision. It must be called before Start.
func (o *Orchestrator) AddWorkers(w ...contract.Worker) {
	o.supervisor.Add(w...)
}

func (o *Orchestrator) Monitor() *observability.RelayMonitor {
	return o.monitor
}

// Start runs the journal and every added worker under the supervisor, without blocking.
func (o *Orchestrator) Start(ctx context.Context) {
	sinks := append([]contract.EventSink{sink.NewLogSink(o.log), sink.NewStatsSink(o.monitor)}, o.sinks...)
	o.supervisor.Add(workers.NewEventFanout(o.log, o.events, sinks, o.settings.SinkTimeout))

	o.mu.Lock()
	o.started = true
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	go func() {
		defer close(o.done)
		o.supervisor.Run(ctx)
	}()
}

// Serve runs one session on conn and blocks until it is DISCONNECTED.
// Cancelling ctx closes the session.
func (o *Orchestrator) Serve(ctx context.Context, conn contract.LineConn) {
	session := NewSession(o.log, conn, o.registry, o.router, o.filter, o.settings.OutboxSize)
	if !o.track(session) {
		o.log.Info("Connection refused", "remote", conn.RemoteAddr(), "error", errors.ErrServerShutdown)
		_ = conn.Close()
		return
	}
	defer o.untrack(session)

	stop := context.AfterFunc(ctx, session.Close)
	defer stop()
	session.Run()
}

// RestorePhrases initialises the filter at startup.
// A previously persisted set wins over the configured one; otherwise the configured set is applied and saved.
func (o *Orchestrator) RestorePhrases(configured []string) []string {
	o.phraseMu.Lock()
	defer o.phraseMu.Unlock()

	if o.store != nil {
		persisted, found, err := o.store.Load()
		switch {
		case err != nil:
			o.log.Warn("Could not load persisted banned phrases, using configuration", "error", err)
		case found:
			active := o.filter.ReplaceAll(persisted)
			o.log.Info("Banned phrases restored", "count", len(active))
			return active
		}
	}
	active := o.filter.ReplaceAll(configured)
	o.save(active)
	o.log.Info("Banned phrases loaded from configuration", "count", len(active))
	return active
}

// UpdateBannedPhrases replaces the whole phrase set and tells every ACTIVE client.
// Messages already routed are unaffected.
func (o *Orchestrator) UpdateBannedPhrases(phrases []string) []string {
	o.phraseMu.Lock()
	defer o.phraseMu.Unlock()
	return o.apply(phrases)
}

func (o *Orchestrator) AddBannedPhrase(phrase string) []string {
	o.phraseMu.Lock()
	defer o.phraseMu.Unlock()

	current := o.filter.Phrases()
	target := normalizePhrase(phrase)
	if target == "" || lo.Contains(current, target) {
		return current
	}
	return o.apply(append(current, phrase))
}

func (o *Orchestrator) RemoveBannedPhrase(phrase string) []string {
	o.phraseMu.Lock()
	defer o.phraseMu.Unlock()

	current := o.filter.Phrases()
	target := normalizePhrase(phrase)
	if !lo.Contains(current, target) {
		return current
	}
	return o.apply(lo.Without(current, target))
}

func (o *Orchestrator) BannedPhrases() []string {
	return o.filter.Phrases()
}

func (o *Orchestrator) Clients() []string {
	return o.registry.SnapshotNames()
}

func (o *Orchestrator) Stats() domain.RelayStats {
	return o.monitor.Snapshot()
}

// Shutdown tells every ACTIVE client the server is going away, closes every session
// and waits for them to finish or for ctx to expire. New connections are refused from now on.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	first := !o.shuttingDown
	o.shuttingDown = true
	sessions := lo.Values(o.sessions)
	o.mu.Unlock()

	if first {
		o.log.Info("Shutting down relay", "sessions", len(sessions))
		o.router.publish(event.New(event.ServerShutdownType, event.ServerShutdown{Connected: o.registry.Len()}))
		o.router.Announce(domain.ShutdownNotice)
	}
	for _, s := range sessions {
		s.Close()
	}

	drained := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		o.log.Info("All sessions closed")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sessions still open after shutdown timeout: %w", ctx.Err())
	}
}

// Stop cancels the supervised workers (listeners, journal, console) and waits for them.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()

	o.mu.Lock()
	started := o.started
	o.mu.Unlock()
	if started {
		<-o.done
	}
	o.log.Debug("Orchestrator stopped")
}

func (o *Orchestrator) apply(phrases []string) []string {
	active := o.filter.ReplaceAll(phrases)
	persisted := o.save(active)
	o.router.publish(event.New(event.PhrasesUpdatedType, event.PhrasesUpdated{Phrases: active, Persisted: persisted}))
	o.router.Announce(domain.PhrasesUpdatedNotice)
	return active
}

// save reports whether the set reached the store. A failure keeps the in-memory set in force.
func (o *Orchestrator) save(phrases []string) bool {
	if o.store == nil {
		return false
	}
	if err := o.store.Save(phrases); err != nil {
		o.log.Error("Banned phrases not persisted", "error", err)
		return false
	}
	return true
}

func (o *Orchestrator) track(s *Session) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.shuttingDown {
		return false
	}
	o.sessions[s.ID] = s
	o.wg.Add(1)
	return true
}

func (o *Orchestrator) untrack(s *Session) {
	o.mu.Lock()
	delete(o.sessions, s.ID)
	o.mu.Unlock()
	o.wg.Done()
}

func normalizePhrase(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}
