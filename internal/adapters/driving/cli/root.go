// Package cli wires the cobra command tree to the core services.
//
// Commands depend only on driving ports; the concrete adapters (HTTP
// gateway, sqlite history store, TOML config) are assembled once in
// initServices and swapped for in-memory fakes by the tests.
package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/shopfeed-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/shopfeed-cli/internal/adapters/driven/shopapi"
	"github.com/custodia-labs/shopfeed-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driven"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driving"
	"github.com/custodia-labs/shopfeed-cli/internal/core/services"
	"github.com/custodia-labs/shopfeed-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagBaseURL   string
	flagConfigDir string
	flagDataDir   string
	flagNoHistory bool
)

// Package-level services, assembled in initServices. Tests replace
// these directly.
var (
	configStore    driven.ConfigStore
	shopService    driving.ShopService
	searchService  driving.SearchService
	historyService driving.HistoryService

	// sqliteStore is kept so Execute can close it on exit.
	sqliteStore *sqlite.Store
)

// errNoBaseURL is returned by commands that need the shop API when no
// base URL was supplied by flag or config.
var errNoBaseURL = errors.New("no API base URL configured: pass --base-url or set api.base_url in the config")

var rootCmd = &cobra.Command{
	Use:   "shopfeed",
	Short: "Resolve and search the shop home feed",
	Long: `Shopfeed fetches the shop document, resolves it into the ordered
home-screen section list, and searches shop tiles locally by title or tag.

Recent searches are persisted and shown as suggestions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		logger.SetOutput(cmd.ErrOrStderr())
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "shop API base URL (overrides api.base_url)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.shopfeed)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the history database (default ~/.shopfeed/data)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "disable recent-search recording")
}

// initServices assembles the adapters behind the driving ports. It is
// idempotent per process: tests that pre-populate the services keep
// their fakes.
func initServices() error {
	if configStore == nil {
		store, err := configfile.NewConfigStore(flagConfigDir)
		if err != nil {
			return fmt.Errorf("init config: %w", err)
		}
		if err := store.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		configStore = store
	}

	if shopService == nil {
		baseURL := flagBaseURL
		if baseURL == "" {
			baseURL = configStore.GetString("api.base_url")
		}
		if baseURL != "" {
			gateway := shopapi.NewGateway(baseURL, &http.Client{Timeout: shopapi.DefaultTimeout})
			shopService = services.NewShopService(gateway)
		}
	}

	var historyStore driven.SearchHistoryStore
	if searchService == nil || historyService == nil {
		if historyEnabled() {
			store, err := sqlite.NewStore(flagDataDir)
			if err != nil {
				logger.Warn("history database unavailable, continuing without history: %v", err)
			} else {
				sqliteStore = store
				historyStore = store.HistoryStore()
			}
		}
	}

	if searchService == nil {
		searchService = services.NewSearchService(historyStore)
	}
	if historyService == nil {
		historyService = services.NewHistoryService(historyStore)
	}

	return nil
}

// historyEnabled honours both the flag and the history.enabled config
// key; the key defaults to true when absent.
func historyEnabled() bool {
	if flagNoHistory {
		return false
	}
	if v, ok := configStore.Get("history.enabled"); ok {
		if b, isBool := v.(bool); isBool {
			return b
		}
	}
	return true
}

// requireShopService guards commands that hit the shop API.
func requireShopService() (driving.ShopService, error) {
	if shopService == nil {
		return nil, errNoBaseURL
	}
	return shopService, nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if sqliteStore != nil {
			_ = sqliteStore.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return err
	}
	return nil
}
