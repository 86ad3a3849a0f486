package driven

import (
	"context"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
)

// ShopGateway fetches the merchandising document from the shop endpoint.
// There is a single fixed document; every call re-fetches it.
type ShopGateway interface {
	// Fetch retrieves and decodes the shop document.
	// Transport, HTTP-status and decode failures are returned as
	// distinct error values; there is no retry at this layer.
	Fetch(ctx context.Context) (*domain.ShopDocument, error)
}
