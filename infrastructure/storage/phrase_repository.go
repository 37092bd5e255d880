package storage

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	phrasePrefix = "banned:"
	// markerKey tells "saved an empty set" apart from "never saved".
	markerKey = "meta:banned_phrases"
)

// PhraseRepository persists the banned phrase set in BadgerDB, one key per phrase.
// Values hold the time of the save that wrote them.
type PhraseRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPhraseRepository(db *badger.DB, log *slog.Logger) *PhraseRepository {
	return &PhraseRepository{db: db, log: log}
}

// Load returns the saved phrases in key order. found is false when nothing was ever saved.
func (r *PhraseRepository) Load() ([]string, bool, error) {
	var phrases []string
	found := false

	err := r.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(markerKey)); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		found = true

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(phrasePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			phrases = append(phrases, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("error while loading banned phrases: %w", err)
	}
	return phrases, found, nil
}

// Save replaces the stored set with phrases in a single transaction.
func (r *PhraseRepository) Save(phrases []string) error {
	now := []byte(time.Now().UTC().Format(time.RFC3339Nano))

	err := r.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)

		var stale [][]byte
		prefix := []byte(phrasePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		for _, p := range phrases {
			if err := txn.Set([]byte(phrasePrefix+p), now); err != nil {
				return err
			}
		}
		return txn.Set([]byte(markerKey), []byte(strconv.Itoa(len(phrases))))
	})
	if err != nil {
		return fmt.Errorf("error while saving banned phrases: %w", err)
	}
	r.log.Debug("Banned phrases saved", "count", len(phrases))
	return nil
}
