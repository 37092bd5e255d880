package observability

import (
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestRelayMonitor_Snapshot(t *testing.T) {
	req := require.New(t)
	monitor := NewRelayMonitor(logs.GetLoggerFromLevel(slog.LevelDebug), func() int { return 3 })

	// Given some traffic
	monitor.IncrJoins()
	monitor.IncrJoins()
	monitor.IncrLeaves()
	monitor.IncrDelivered(4)
	monitor.IncrRejected("spam")
	monitor.IncrRejected("spam")
	monitor.IncrRejected("scam")
	monitor.IncrMalformed()

	// When a snapshot is taken
	stats := monitor.Snapshot()

	// Then every counter is reported
	req.Equal(3, stats.Connected)
	req.Equal(uint64(2), stats.Joins)
	req.Equal(uint64(1), stats.Leaves)
	req.Equal(uint64(4), stats.Delivered)
	req.Equal(uint64(3), stats.Rejected)
	req.Equal(uint64(1), stats.Malformed)
	req.Equal(map[string]uint64{"spam": 2, "scam": 1}, stats.PhraseHits)
	req.Equal(int32(os.Getpid()), stats.PID)
}

func TestRelayMonitor_Snapshot_Does_Not_Alias_Hits(t *testing.T) {
	req := require.New(t)
	monitor := NewRelayMonitor(logs.GetLoggerFromLevel(slog.LevelDebug), nil)
	monitor.IncrRejected("spam")

	stats := monitor.Snapshot()
	stats.PhraseHits["spam"] = 100

	req.Equal(uint64(1), monitor.Snapshot().PhraseHits["spam"])
	req.Zero(monitor.Snapshot().Connected)
}

func TestRelayMonitor_Concurrent_Updates(t *testing.T) {
	req := require.New(t)
	monitor := NewRelayMonitor(logs.GetLoggerFromLevel(slog.LevelDebug), nil)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				monitor.IncrDelivered(1)
				monitor.IncrRejected("spam")
			}
		}()
	}
	wg.Wait()

	stats := monitor.Snapshot()
	req.Equal(uint64(1000), stats.Delivered)
	req.Equal(uint64(1000), stats.PhraseHits["spam"])
}
