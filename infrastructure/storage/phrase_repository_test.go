package storage

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPhraseRepository_Never_Saved(t *testing.T) {
	req := require.New(t)
	repo := NewPhraseRepository(SetupTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	phrases, found, err := repo.Load()

	req.NoError(err)
	req.False(found)
	req.Empty(phrases)
}

func TestPhraseRepository_Save_Replaces_Set(t *testing.T) {
	req := require.New(t)
	repo := NewPhraseRepository(SetupTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given a first set is saved
	req.NoError(repo.Save([]string{"spam", "scam", "buy now"}))

	// When it is replaced by a smaller one
	req.NoError(repo.Save([]string{"scam"}))

	// Then only the new set is loaded back
	phrases, found, err := repo.Load()
	req.NoError(err)
	req.True(found)
	req.Equal([]string{"scam"}, phrases)
}

func TestPhraseRepository_Empty_Set_Is_Found(t *testing.T) {
	req := require.New(t)
	repo := NewPhraseRepository(SetupTestDB(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NoError(repo.Save([]string{"spam"}))
	req.NoError(repo.Save(nil))

	phrases, found, err := repo.Load()
	req.NoError(err)
	req.True(found)
	req.Empty(phrases)
}

func TestPhraseRepository_Survives_Reopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	req.NoError(err)
	req.NoError(NewPhraseRepository(db, log).Save([]string{"b", "a"}))
	req.NoError(db.Close())

	db, err = badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	req.NoError(err)
	defer db.Close()

	phrases, found, err := NewPhraseRepository(db, log).Load()
	req.NoError(err)
	req.True(found)
	req.Equal([]string{"a", "b"}, phrases)
}
