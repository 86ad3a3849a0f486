package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driven"
	"github.com/custodia-labs/shopfeed-cli/internal/logger"
)

const (
	// DocumentPath is the fixed path of the shop document.
	DocumentPath = "/ebcom/shop.json"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Ensure Gateway implements the interface.
var _ driven.ShopGateway = (*Gateway)(nil)

// Gateway fetches the shop document over HTTP.
type Gateway struct {
	baseURL string
	client  *http.Client
}

// NewGateway creates a gateway for the given base URL. A nil client
// gets a default one with DefaultTimeout.
func NewGateway(baseURL string, client *http.Client) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Gateway{
		baseURL: baseURL,
		client:  client,
	}
}

// Fetch retrieves and decodes the shop document.
func (g *Gateway) Fetch(ctx context.Context) (*domain.ShopDocument, error) {
	endpoint, err := url.JoinPath(g.baseURL, DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, g.baseURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, endpoint)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("GET %s", endpoint)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var doc domain.ShopDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	logger.Debug("Decoded document: %d banners, %d categories, %d shops, %d tags",
		len(doc.Banners), len(doc.Categories), len(doc.Shops), len(doc.Tags))

	return &doc, nil
}
