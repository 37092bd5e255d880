package workers

import (
	"chat-relay/domain"
	"context"
	"log/slog"
	"time"
)

// StatsSource is what the heartbeat samples. RelayMonitor implements it.
type StatsSource interface {
	Snapshot() domain.RelayStats
}

// HeartbeatWorker logs relay health (clients, traffic, CPU, RAM) at a fixed interval.
type HeartbeatWorker struct {
	log      *slog.Logger
	source   StatsSource
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, source StatsSource, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, source: source, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.source.Snapshot()
			w.log.Info("Relay heartbeat",
				"connected", stats.Connected,
				"delivered", stats.Delivered,
				"rejected", stats.Rejected,
				"malformed", stats.Malformed,
				"rss_bytes", stats.RAM,
				"cpu_percent", stats.CPU,
			)
		}
	}
}
