package driving

import (
	"context"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
)

// SearchService filters shop tiles by a query string.
//
// Search has no error surface: below-threshold queries yield an empty
// result, and history recording is best-effort.
type SearchService interface {
	// Search trims the query, applies the minimum-length gate, and
	// returns the matching shops in candidate order. A non-empty result
	// records the trimmed term into the search history.
	Search(ctx context.Context, query string, shops []domain.ShopItem) []domain.ShopItem
}

// HistoryService manages the recent-search list. Operations are
// best-effort: persistence failures degrade to no-ops.
type HistoryService interface {
	// Recent returns recorded terms, most recent first.
	Recent(ctx context.Context) []string

	// Delete removes a single term.
	Delete(ctx context.Context, term string)

	// DeleteAll clears the history.
	DeleteAll(ctx context.Context)
}
