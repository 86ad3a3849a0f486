package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit configuration",
	Long: `Reads and writes the TOML config file.

Known keys:
  api.base_url       shop API base URL
  search.debounce_ms interactive debounce window in milliseconds (default 300)
  history.enabled    record recent searches (default true)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok := configStore.Get(args[0])
		if !ok {
			return fmt.Errorf("key %q is not set", args[0])
		}
		cmd.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one config value and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]

		if err := configStore.Set(key, coerceValue(raw)); err != nil {
			return fmt.Errorf("set %q: %w", key, err)
		}
		if err := configStore.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		cmd.Printf("Set %s = %s\n", key, raw)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(configStore.Path())
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// coerceValue stores booleans and integers natively so TOML round-trips
// them with the right type; everything else stays a string.
func coerceValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		return b
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
