package moderation

import (
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// snapshot is an immutable phrase set together with its automaton.
// A nil matcher means the set is empty or the automaton could not be built,
// in which case matching falls back to a linear scan of phrases.
type snapshot struct {
	phrases []string
	matcher *goahocorasick.Machine
}

// PhraseFilter blocks messages containing banned phrases (case-insensitive substring match).
// Readers load the active snapshot through an atomic pointer and never take a lock;
// ReplaceAll builds a complete new snapshot before swapping it in.
type PhraseFilter struct {
	log    *slog.Logger
	active atomic.Pointer[snapshot]
}

func NewPhraseFilter(log *slog.Logger, phrases []string) *PhraseFilter {
	f := &PhraseFilter{log: log}
	f.ReplaceAll(phrases)
	return f
}

// ReplaceAll normalizes the given phrases and atomically swaps the active set.
// It returns the normalized set now in force.
func (f *PhraseFilter) ReplaceAll(phrases []string) []string {
	normalized := Normalize(phrases)
	next := &snapshot{phrases: normalized}

	if len(normalized) > 0 {
		patterns := lo.Map(normalized, func(p string, _ int) []rune { return []rune(p) })
		m := new(goahocorasick.Machine)
		if err := m.Build(patterns); err != nil {
			f.log.Warn("Automaton build failed, using linear scan", "phrases", len(normalized), "error", err)
		} else {
			next.matcher = m
		}
	}

	f.active.Store(next)
	f.log.Debug("Banned phrases replaced", "count", len(normalized))
	return append([]string(nil), normalized...)
}

// ContainsBanned returns the banned phrase found in text.
// When several phrases match, the one starting first wins, ties going to the
// lexicographically smaller phrase, so the answer is stable for a given snapshot.
func (f *PhraseFilter) ContainsBanned(text string) (string, bool) {
	snap := f.active.Load()
	if snap == nil || len(snap.phrases) == 0 {
		return "", false
	}
	lowered := strings.ToLower(text)

	if snap.matcher == nil {
		return firstContained(snap.phrases, lowered)
	}

	terms := snap.matcher.MultiPatternSearch([]rune(lowered), false)
	if len(terms) == 0 {
		return "", false
	}
	best := terms[0]
	for _, term := range terms[1:] {
		if term.Pos < best.Pos || (term.Pos == best.Pos && string(term.Word) < string(best.Word)) {
			best = term
		}
	}
	return string(best.Word), true
}

// Phrases returns a copy of the active phrase set, sorted.
func (f *PhraseFilter) Phrases() []string {
	snap := f.active.Load()
	if snap == nil {
		return nil
	}
	return append([]string(nil), snap.phrases...)
}

// Normalize trims and lower-cases every phrase, drops empties and duplicates,
// and sorts the result (the automaton expects sorted keys).
func Normalize(phrases []string) []string {
	cleaned := lo.FilterMap(phrases, func(p string, _ int) (string, bool) {
		n := strings.ToLower(strings.TrimSpace(p))
		return n, n != ""
	})
	unique := lo.Uniq(cleaned)
	sort.Strings(unique)
	return unique
}

func firstContained(phrases []string, lowered string) (string, bool) {
	found := ""
	foundAt := -1
	for _, p := range phrases {
		idx := strings.Index(lowered, p)
		if idx < 0 {
			continue
		}
		if foundAt < 0 || idx < foundAt {
			found, foundAt = p, idx
		}
	}
	return found, foundAt >= 0
}
