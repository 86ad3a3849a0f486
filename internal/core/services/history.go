package services

import (
	"context"

	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driven"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driving"
	"github.com/custodia-labs/shopfeed-cli/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService manages the recent-search list. All operations are
// best-effort: persistence failures are logged and degrade to no-ops,
// never propagate to callers.
type HistoryService struct {
	store driven.SearchHistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.SearchHistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns recorded terms, most recent first. A store failure
// yields an empty list.
func (s *HistoryService) Recent(ctx context.Context) []string {
	if s.store == nil {
		return []string{}
	}

	terms, err := s.store.FetchAll(ctx)
	if err != nil {
		logger.Warn("Fetching recent searches failed: %v", err)
		return []string{}
	}
	return terms
}

// Delete removes a single term. Unknown terms are a no-op.
func (s *HistoryService) Delete(ctx context.Context, term string) {
	if s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, term); err != nil {
		logger.Warn("Deleting search term %q failed: %v", term, err)
	}
}

// DeleteAll clears the history.
func (s *HistoryService) DeleteAll(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.DeleteAll(ctx); err != nil {
		logger.Warn("Clearing search history failed: %v", err)
	}
}
