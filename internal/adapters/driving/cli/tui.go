package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shopfeed-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive shop search",
	Long: `Launch the interactive terminal UI for searching shop tiles.

Typing is debounced; results update when you pause. With an empty
query your recent searches are shown as selectable chips.

Controls:
  type     - Edit the query
  up/down  - Navigate results or chips
  enter    - Search a selected chip
  ctrl+d   - Delete the selected chip
  ctrl+x   - Clear all recent searches
  esc      - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
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

	model := tui.NewModel(searchService, historyService, feed.Shops).
		WithContext(cmd.Context())

	if ms := configStore.GetInt("search.debounce_ms"); ms > 0 {
		model = model.WithDebounce(time.Duration(ms) * time.Millisecond)
	}

	return tui.Run(model)
}
