package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driven"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driving"
	"github.com/custodia-labs/shopfeed-cli/internal/logger"
)

// Ensure ShopService implements the interface.
var _ driving.ShopService = (*ShopService)(nil)

// ShopService orchestrates the shop gateway and section resolution.
// There is no caching: every call re-fetches the document.
type ShopService struct {
	gateway driven.ShopGateway
}

// NewShopService creates a new shop service.
func NewShopService(gateway driven.ShopGateway) *ShopService {
	return &ShopService{gateway: gateway}
}

// FetchSections fetches the shop document and resolves it into the
// ordered section list. Gateway errors propagate untouched so callers
// can distinguish transport, HTTP-status and decode failures.
func (s *ShopService) FetchSections(ctx context.Context) ([]domain.Section, error) {
	feed, err := s.FetchHome(ctx)
	if err != nil {
		return nil, err
	}
	return feed.Sections, nil
}

// FetchHome fetches the shop document once and returns the resolved
// sections, the flattened shop-tile candidates and the search flag.
func (s *ShopService) FetchHome(ctx context.Context) (*driving.HomeFeed, error) {
	logger.Section("Shop Fetch")

	doc, err := s.gateway.Fetch(ctx)
	if err != nil {
		logger.Warn("Fetch failed: %v", err)
		return nil, fmt.Errorf("fetch shop document: %w", err)
	}

	sections := ResolveSections(doc)
	logger.Debug("Resolved %d sections from %d directives",
		len(sections), len(doc.Home.Sections))

	return &driving.HomeFeed{
		Sections:      sections,
		Shops:         flattenShops(sections),
		SearchEnabled: doc.Home.Search,
	}, nil
}

// flattenShops collects the shop tiles of all shop-grid sections in
// section order. The first occurrence wins when the same shop id appears
// in more than one grid.
func flattenShops(sections []domain.Section) []domain.ShopItem {
	var shops []domain.ShopItem
	seen := make(map[string]bool)

	for _, section := range sections {
		grid, ok := section.(domain.ShopGridSection)
		if !ok {
			continue
		}
		for _, shop := range grid.Shops {
			if seen[shop.ID] {
				continue
			}
			seen[shop.ID] = true
			shops = append(shops, shop)
		}
	}

	return shops
}
