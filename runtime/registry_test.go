package runtime

import (
	"chat-relay/errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_One_Client(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink := newRecordingSink()

	// Given nobody is connected
	req.Empty(registry.SnapshotNames())

	// When a client registers
	err := registry.Register("alice", sink)

	// Then it can be looked up
	req.NoError(err)
	req.Equal([]string{"alice"}, registry.SnapshotNames())
	found, ok := registry.Lookup("alice")
	req.True(ok)
	req.Same(sink, found)
}

func TestRegistry_Register_Name_Taken(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first := newRecordingSink()

	// Given alice is connected
	req.NoError(registry.Register("alice", first))

	// When another session asks for the same name
	err := registry.Register("alice", newRecordingSink())

	// Then it is refused and the first entry is kept
	req.ErrorIs(err, errors.ErrNameTaken)
	found, _ := registry.Lookup("alice")
	req.Same(first, found)
}

func TestRegistry_Names_Are_Case_Sensitive(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.NoError(registry.Register("alice", newRecordingSink()))
	req.NoError(registry.Register("Alice", newRecordingSink()))
	req.Equal([]string{"Alice", "alice"}, registry.SnapshotNames())
}

func TestRegistry_Remove_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given alice is connected
	req.NoError(registry.Register("alice", newRecordingSink()))

	// When she is removed twice, and an unknown name is removed
	registry.Remove("alice")
	registry.Remove("alice")
	registry.Remove("nobody")

	// Then nobody is left
	req.Empty(registry.SnapshotNames())
	_, ok := registry.Lookup("alice")
	req.False(ok)
}

func TestRegistry_Round_Trip(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink1 := newRecordingSink()
	sink2 := newRecordingSink()

	req.NoError(registry.Register("alice", sink1))
	registry.Remove("alice")

	// Then the name is reusable and points to the new sink
	req.NoError(registry.Register("alice", sink2))
	found, ok := registry.Lookup("alice")
	req.True(ok)
	req.Same(sink2, found)
}

func TestRegistry_Snapshot_Does_Not_Alias(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	req.NoError(registry.Register("alice", newRecordingSink()))

	// Given a snapshot taken before a change
	snapshot := registry.SnapshotNames()

	// When the registry changes
	req.NoError(registry.Register("bob", newRecordingSink()))
	registry.Remove("alice")

	// Then the snapshot is untouched
	req.Equal([]string{"alice"}, snapshot)
	req.Equal([]string{"bob"}, registry.SnapshotNames())
}

func TestRegistry_Concurrent_Registration_Race(t *testing.T) {
	req := require.New(t)

	for round := 0; round < 50; round++ {
		registry := NewRegistry()
		var successes, taken atomic.Int32
		var wg sync.WaitGroup
		start := make(chan struct{})

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				err := registry.Register("X", newRecordingSink())
				switch {
				case err == nil:
					successes.Add(1)
				case err == errors.ErrNameTaken:
					taken.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		req.Equal(int32(1), successes.Load(), "round=%d", round)
		req.Equal(int32(1), taken.Load(), "round=%d", round)
	}
}

func TestRegistry_Uniqueness_Under_Concurrent_Churn(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				name := fmt.Sprintf("user-%d", (id+j)%5)
				if registry.Register(name, newRecordingSink()) == nil && j%2 == 0 {
					registry.Remove(name)
				}
				_ = registry.SnapshotNames()
			}
		}(i)
	}
	wg.Wait()

	// Then every listed name is unique and resolvable
	names := registry.SnapshotNames()
	seen := make(map[string]struct{})
	for _, name := range names {
		_, dup := seen[name]
		req.False(dup, "duplicate %s", name)
		seen[name] = struct{}{}
		_, ok := registry.Lookup(name)
		req.True(ok)
	}
	req.Equal(len(names), registry.Len())
}

func TestRegistry_Nil_Sink_Panics(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	req.Panics(func() { _ = registry.Register("alice", nil) })
}
