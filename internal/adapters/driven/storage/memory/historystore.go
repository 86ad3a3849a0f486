// Package memory provides in-memory implementations of driven port
// interfaces, used by tests and by the --no-history mode.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.SearchHistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.SearchHistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records map[string]record

	// seq breaks recency ties when two saves land on the same clock tick.
	seq int64

	// Now is the clock used for CreatedAt stamps. Overridable in tests.
	Now func() time.Time
}

type record struct {
	entry domain.RecentSearch
	seq   int64
}

// NewHistoryStore creates a new in-memory search history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make(map[string]record),
		Now:     time.Now,
	}
}

// FetchAll returns all recorded terms, most recent first.
func (s *HistoryStore) FetchAll(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]record, 0, len(s.records))
	for _, r := range s.records {
		all = append(all, r)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].entry.CreatedAt.Equal(all[j].entry.CreatedAt) {
			return all[i].entry.CreatedAt.After(all[j].entry.CreatedAt)
		}
		return all[i].seq > all[j].seq
	})

	terms := make([]string, len(all))
	for i, r := range all {
		terms[i] = r.entry.Term
	}
	return terms, nil
}

// Save records a term, refreshing its timestamp if it already exists.
func (s *HistoryStore) Save(_ context.Context, term string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.records[term] = record{
		entry: domain.RecentSearch{Term: term, CreatedAt: s.Now()},
		seq:   s.seq,
	}
	return nil
}

// Delete removes the record with this exact term.
func (s *HistoryStore) Delete(_ context.Context, term string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, term)
	return nil
}

// DeleteAll clears all records.
func (s *HistoryStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]record)
	return nil
}
