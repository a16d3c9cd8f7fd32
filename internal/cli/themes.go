package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sutanpu/internal/themes"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes and show the active one",
	RunE: func(cmd *cobra.Command, args []string) error {
		active := themeStore.Current().ID
		for _, t := range themes.Catalog {
			marker := " "
			if t.ID == active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %-10s %s\n", marker, t.Emoji, t.ID, t.Name)
		}
		return nil
	},
}

var themesSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Select the active theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		known := false
		for _, t := range themes.Catalog {
			if t.ID == args[0] {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown theme %q", args[0])
		}
		return themeStore.Select(args[0])
	},
}

func init() {
	themesCmd.AddCommand(themesSetCmd)
	rootCmd.AddCommand(themesCmd)
}
