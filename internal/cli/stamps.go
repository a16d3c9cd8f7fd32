package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sutanpu/internal/stamps"
)

var stampsCmd = &cobra.Command{
	Use:   "stamps [list|add|rm|reset]",
	Short: "Manage the stamp catalog",
}

var stampsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stamp catalog in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range catalog.List() {
			tag := ""
			if stamps.IsFactoryDefault(s.ID) {
				tag = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s  %s%s\n", s.ID, s.Icon, s.Label, tag)
		}
		return nil
	},
}

var stampsAddCmd = &cobra.Command{
	Use:   "add <icon> <label>",
	Short: "Add a stamp to the catalog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := catalog.Add(args[0], args[1])
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("icon and label must not be empty")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s %s (%s)\n", s.Icon, s.Label, s.ID)
		return nil
	},
}

var stampsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a stamp from the catalog",
	Long: `Remove a stamp by id. Days already stamped with its glyph keep
the glyph; the catalog and history are independent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := catalog.Get(args[0]); !ok {
			return fmt.Errorf("no stamp with id %q", args[0])
		}
		return catalog.Remove(args[0])
	},
}

var stampsResetYes bool

var stampsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the catalog with the factory default set",
	Long: `Discard the whole catalog, custom stamps included, and restore the
factory defaults. Destructive; requires --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !stampsResetYes {
			return fmt.Errorf("this discards all custom stamps; pass --yes to confirm")
		}
		if err := catalog.ResetToDefaults(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "catalog reset to defaults")
		return nil
	},
}

func init() {
	stampsResetCmd.Flags().BoolVar(&stampsResetYes, "yes", false, "confirm the destructive reset")

	stampsCmd.AddCommand(stampsListCmd)
	stampsCmd.AddCommand(stampsAddCmd)
	stampsCmd.AddCommand(stampsRmCmd)
	stampsCmd.AddCommand(stampsResetCmd)
	rootCmd.AddCommand(stampsCmd)
}
