package domain

// RelayStats is a point-in-time view of the relay counters and of the process itself.
type RelayStats struct {
	Connected  int
	Joins      uint64
	Leaves     uint64
	Delivered  uint64
	Rejected   uint64
	Malformed  uint64
	PhraseHits map[string]uint64
	PID        int32
	RAM        uint64
	CPU        float64
}
