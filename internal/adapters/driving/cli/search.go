package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
	"github.com/custodia-labs/shopfeed-cli/internal/core/services"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search shop tiles by title or tag",
	Long: fmt.Sprintf(`Fetches the shop document and filters its shop tiles by a
case-insensitive substring match on the title or any tag.

Queries shorter than %d characters return no results. A query that
matches at least one shop is recorded in the recent-search history.`,
		services.MinQueryLength),
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	svc, err := requireShopService()
	if err != nil {
		return err
	}

	feed, err := svc.FetchHome(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch shop document: %w", err)
	}
	if !feed.SearchEnabled {
		return domain.ErrSearchDisabled
	}

	results := searchService.Search(cmd.Context(), query, feed.Shops)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchList(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ShopItem) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, results []domain.ShopItem) error {
	if len(results) == 0 {
		cmd.Println("No shops found.")
		return nil
	}

	cmd.Printf("%d shops:\n", len(results))
	for i, shop := range results {
		cmd.Printf("  [%d] %s\n", i+1, shop.Title)
		if len(shop.Tags) > 0 {
			cmd.Printf("      Tags: %v\n", shop.Tags)
		}
	}
	return nil
}
