package cli

import (
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the recent-search history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches, most recent first",
	Run: func(cmd *cobra.Command, _ []string) {
		terms := historyService.Recent(cmd.Context())
		if len(terms) == 0 {
			cmd.Println("No recent searches.")
			return
		}
		for _, term := range terms {
			cmd.Println(term)
		}
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [term]",
	Short: "Remove a single search term",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		historyService.Delete(cmd.Context(), args[0])
		cmd.Printf("Deleted %q.\n", args[0])
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recent searches",
	Run: func(cmd *cobra.Command, _ []string) {
		historyService.DeleteAll(cmd.Context())
		cmd.Println("History cleared.")
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
