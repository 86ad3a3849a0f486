package driving

import (
	"context"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
)

// HomeFeed is everything a home surface needs from one document fetch:
// the resolved sections, the flattened shop-tile candidates for search,
// and whether search is enabled for the page.
type HomeFeed struct {
	Sections      []domain.Section
	Shops         []domain.ShopItem
	SearchEnabled bool
}

// ShopService produces the resolved home feed.
type ShopService interface {
	// FetchSections fetches the shop document and resolves it into the
	// ordered section list. Errors are gateway errors only; resolution
	// itself never fails.
	FetchSections(ctx context.Context) ([]domain.Section, error)

	// FetchHome fetches the shop document once and returns the resolved
	// sections together with the search candidates (shop tiles of all
	// shop-grid sections, in section order, first occurrence per id).
	FetchHome(ctx context.Context) (*HomeFeed, error)
}
