package workers

import (
	"chat-relay/domain"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls atomic.Int32
}

func (s *countingSource) Snapshot() domain.RelayStats {
	s.calls.Add(1)
	return domain.RelayStats{Connected: 1}
}

func TestHeartbeatWorker_Samples_Until_Cancelled(t *testing.T) {
	req := require.New(t)
	source := &countingSource{}
	worker := NewHeartbeatWorker(logs.GetLoggerFromLevel(slog.LevelDebug), source, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	req.Eventually(func() bool { return source.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	req.NoError(<-done)
}
