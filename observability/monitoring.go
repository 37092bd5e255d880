package observability

import (
	"chat-relay/domain"
	"log/slog"
	"maps"
	"os"
	"sync"
	"sync/atomic"

	"github.com/shirou/gopsutil/process"
)

// RelayMonitor aggregates relay counters from the journal.
// Counters are atomic; phrase hits are keyed by phrase and guarded by a mutex.
type RelayMonitor struct {
	log        *slog.Logger
	connected  func() int
	joins      atomic.Uint64
	leaves     atomic.Uint64
	delivered  atomic.Uint64
	rejected   atomic.Uint64
	malformed  atomic.Uint64
	mu         sync.Mutex
	phraseHits map[string]uint64
	proc       *process.Process
}

// NewRelayMonitor takes the live connection count from connected (usually the registry size).
func NewRelayMonitor(log *slog.Logger, connected func() int) *RelayMonitor {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process metrics unavailable", "error", err)
		p = nil
	}
	return &RelayMonitor{
		log:        log,
		connected:  connected,
		phraseHits: make(map[string]uint64),
		proc:       p,
	}
}

func (m *RelayMonitor) IncrJoins()     { m.joins.Add(1) }
func (m *RelayMonitor) IncrLeaves()    { m.leaves.Add(1) }
func (m *RelayMonitor) IncrMalformed() { m.malformed.Add(1) }

// IncrDelivered counts one delivered line per recipient.
func (m *RelayMonitor) IncrDelivered(recipients int) {
	m.delivered.Add(uint64(recipients))
}

func (m *RelayMonitor) IncrRejected(phrase string) {
	m.rejected.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phraseHits[phrase]++
}

// Snapshot returns the counters and, when available, the RSS and CPU usage of the relay process.
func (m *RelayMonitor) Snapshot() domain.RelayStats {
	stats := domain.RelayStats{
		Joins:     m.joins.Load(),
		Leaves:    m.leaves.Load(),
		Delivered: m.delivered.Load(),
		Rejected:  m.rejected.Load(),
		Malformed: m.malformed.Load(),
		PID:       int32(os.Getpid()),
	}
	if m.connected != nil {
		stats.Connected = m.connected()
	}

	m.mu.Lock()
	stats.PhraseHits = maps.Clone(m.phraseHits)
	m.mu.Unlock()

	if m.proc == nil {
		return stats
	}
	if mem, err := m.proc.MemoryInfo(); err == nil {
		stats.RAM = mem.RSS
	} else {
		m.log.Debug("Error while reading process memory", "error", err)
	}
	if cpu, err := m.proc.CPUPercent(); err == nil {
		stats.CPU = cpu
	} else {
		m.log.Debug("Error while reading process cpu", "error", err)
	}
	return stats
}
