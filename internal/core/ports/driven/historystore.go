package driven

import "context"

// SearchHistoryStore persists recent search terms, unique by term and
// ordered by recency. Individual operations are atomic; a Save followed
// by a FetchAll from another caller is not a cross-call transaction.
type SearchHistoryStore interface {
	// FetchAll returns all recorded terms, most recent first.
	FetchAll(ctx context.Context) ([]string, error)

	// Save records a term. If the term already exists its timestamp is
	// refreshed; duplicates are never created.
	Save(ctx context.Context, term string) error

	// Delete removes the record with this exact term. Deleting an
	// unknown term is a no-op.
	Delete(ctx context.Context, term string) error

	// DeleteAll clears all records.
	DeleteAll(ctx context.Context) error
}
