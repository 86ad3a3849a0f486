package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	configfile "github.com/custodia-labs/shopfeed-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/shopfeed-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driving"
	"github.com/custodia-labs/shopfeed-cli/internal/core/services"
)

// mockShopService serves a canned home feed without touching the network.
type mockShopService struct {
	feed *driving.HomeFeed
	err  error
}

func (m *mockShopService) FetchSections(context.Context) ([]domain.Section, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.feed.Sections, nil
}

func (m *mockShopService) FetchHome(context.Context) (*driving.HomeFeed, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.feed, nil
}

func testFeed() *driving.HomeFeed {
	return &driving.HomeFeed{
		Sections: []domain.Section{
			domain.BannerSection{ID: "BANNER-0", Banners: []domain.Banner{
				{ID: "b1", ImageURL: "https://cdn.example.com/b1.png"},
			}},
			domain.ShopGridSection{ID: "SHOP-1", Title: "Popular", Shops: []domain.ShopItem{
				{ID: "s1", Title: "Grill House", Tags: []string{"Kebab"}},
				{ID: "s2", Title: "Green Grocer"},
			}},
			domain.FAQSection{ID: "faq", Title: "FAQ", Items: []domain.FAQItem{
				{ID: "faq-0", Title: "How do I order?", Answer: "Tap a shop."},
			}},
		},
		Shops: []domain.ShopItem{
			{ID: "s1", Title: "Grill House", Tags: []string{"Kebab"}},
			{ID: "s2", Title: "Green Grocer"},
		},
		SearchEnabled: true,
	}
}

// setupTestServices swaps the package services for in-memory fakes and
// returns a cleanup that restores the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	prevConfig := configStore
	prevShop := shopService
	prevSearch := searchService
	prevHistory := historyService

	store, err := configfile.NewConfigStore(t.TempDir())
	if err != nil {
		t.Fatalf("config store: %v", err)
	}
	configStore = store

	historyStore := memory.NewHistoryStore()
	shopService = &mockShopService{feed: testFeed()}
	searchService = services.NewSearchService(historyStore)
	historyService = services.NewHistoryService(historyStore)

	return func() {
		configStore = prevConfig
		shopService = prevShop
		searchService = prevSearch
		historyService = prevHistory
	}
}

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "shopfeed", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "home")
	assert.Contains(t, names, "search")
	assert.Contains(t, names, "history")
	assert.Contains(t, names, "tui")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestRootCmd_MissingBaseURLFailsShopCommands(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	shopService = nil

	_, err := execute(t, "home")

	assert.ErrorIs(t, err, errNoBaseURL)
}
