package main

import (
	"chat-relay/infrastructure/storage"
	"chat-relay/infrastructure/transport"
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the relay and blocks until a signal or the console asks for shutdown.
// Returning errors instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel).With("server", config.ServerName)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Banned phrases from configuration
	configured := config.Phrases()
	if config.BannedPhrasesDir != "" {
		lists, err := moderation.NewPhraseLoader(os.DirFS(config.BannedPhrasesDir)).LoadAll(".")
		if err != nil {
			return fmt.Errorf("banned phrase files: %w", err)
		}
		log.Info("Banned phrase files loaded", "files", len(lists.Lists), "phrases", len(lists.Phrases))
		configured = append(configured, lists.Phrases...)
	}

	// 4. Relay core
	registry := runtime.NewRegistry()
	filter := moderation.NewPhraseFilter(log, nil)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, sup, registry, filter,
		storage.NewPhraseRepository(db, log),
		runtime.Settings{
			OutboxSize:      config.OutboxSize,
			EventBufferSize: config.EventBufferSize,
			SinkTimeout:     config.SinkTimeout,
		})
	orchestrator.RestorePhrases(configured)

	// 5. Listeners, bound here so a busy port fails the startup
	opts := transport.Options{
		IdleTimeout:   config.IdleTimeout,
		WriteTimeout:  config.WriteTimeout,
		MaxLineLength: config.MaxLineLength,
	}
	listener, err := net.Listen("tcp", config.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.Address(), err)
	}
	orchestrator.AddWorkers(workers.NewTCPListener(log, listener, orchestrator, opts))

	if address := config.WSAddress(); address != "" {
		wsListener, err := net.Listen("tcp", address)
		if err != nil {
			_ = listener.Close()
			return fmt.Errorf("failed to listen on %s: %w", address, err)
		}
		orchestrator.AddWorkers(workers.NewWSListener(log, wsListener, orchestrator, opts, config.ShutdownTimeout))
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.ConsoleEnabled {
		orchestrator.AddWorkers(workers.NewConsoleWorker(log, os.Stdin, os.Stdout, orchestrator, stop))
	}
	if config.MetricInterval > 0 {
		orchestrator.AddWorkers(workers.NewHeartbeatWorker(log, orchestrator.Monitor(), config.MetricInterval))
	}

	// 7. Start and wait for Stop
	orchestrator.Start(context.Background())
	log.Info("Chat relay started", "address", config.Address(), "ws_address", config.WSAddress())
	<-ctx.Done()

	// 8. Final Cleanup
	log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := orchestrator.Shutdown(shutdownCtx); err != nil {
		log.Warn("Shutdown incomplete", "error", err)
	}
	orchestrator.Stop()
	log.Info("Program stopped cleanly")
	return nil
}
