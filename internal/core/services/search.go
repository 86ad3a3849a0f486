package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driven"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driving"
	"github.com/custodia-labs/shopfeed-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// MinQueryLength is the minimum trimmed query length that triggers a
// search. Shorter queries return no results and never touch history.
const MinQueryLength = 3

// SearchService filters shop tiles by substring match and records
// successful queries into the search history.
type SearchService struct {
	history driven.SearchHistoryStore
}

// NewSearchService creates a new search service. The history store may
// be nil, in which case successful searches are simply not recorded.
func NewSearchService(history driven.SearchHistoryStore) *SearchService {
	return &SearchService{history: history}
}

// Match returns the candidates whose title or any display tag contains
// the trimmed query, case-insensitively, preserving candidate order.
// It is pure: no history side effect, no error path.
func Match(query string, shops []domain.ShopItem) []domain.ShopItem {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < MinQueryLength {
		return []domain.ShopItem{}
	}

	lowered := strings.ToLower(trimmed)

	results := make([]domain.ShopItem, 0)
	for _, shop := range shops {
		if matchesShop(shop, lowered) {
			results = append(results, shop)
		}
	}
	return results
}

// Search runs Match and, when the result set is non-empty, records the
// trimmed original-case query into the history store. Recording is
// best-effort: a store failure is logged and swallowed, and an empty
// result never touches history.
func (s *SearchService) Search(ctx context.Context, query string, shops []domain.ShopItem) []domain.ShopItem {
	trimmed := strings.TrimSpace(query)
	results := Match(query, shops)

	logger.Debug("Search %q: %d of %d candidates matched", trimmed, len(results), len(shops))

	if len(results) > 0 && s.history != nil {
		if err := s.history.Save(ctx, trimmed); err != nil {
			logger.Warn("Recording search term failed: %v", err)
		}
	}

	return results
}

func matchesShop(shop domain.ShopItem, lowered string) bool {
	if strings.Contains(strings.ToLower(shop.Title), lowered) {
		return true
	}
	for _, tag := range shop.Tags {
		if strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}
