package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sutanpu/internal/dates"
	"sutanpu/internal/entries"
)

// dayKeyArg resolves an optional trailing date argument, defaulting to today.
func dayKeyArg(args []string, pos int) (string, error) {
	if len(args) <= pos {
		return dates.TodayKey(), nil
	}
	if _, err := dates.Parse(args[pos]); err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD", args[pos])
	}
	return args[pos], nil
}

var markCmd = &cobra.Command{
	Use:   "mark <icon> [YYYY-MM-DD]",
	Short: "Toggle a stamp on a day",
	Long: `Toggle a stamp glyph on a day (today when no date is given).
The glyph does not have to exist in the catalog; days remember glyphs,
not catalog entries.

Examples:
  sutanpu mark ⭐
  sutanpu mark 🏃 2026-01-15`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := dayKeyArg(args, 1)
		if err != nil {
			return err
		}

		entry := entryStore.Get(key)
		stampsAfter := entries.ToggleStamps(entry.Stamps, args[0])
		if err := entryStore.Set(key, stampsAfter, entry.Note); err != nil {
			return err
		}

		if len(stampsAfter) > len(entry.Stamps) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s に %s を押しました\n", key, args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s の %s を消しました\n", key, args[0])
		}
		return nil
	},
}

var noteCmd = &cobra.Command{
	Use:   "note <text> [YYYY-MM-DD]",
	Short: "Set the note on a day",
	Long: `Set the note of a day (today when no date is given). Notes longer
than 100 characters are truncated. An empty text clears the note.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := dayKeyArg(args, 1)
		if err != nil {
			return err
		}

		note := args[0]
		if runes := []rune(note); len(runes) > entries.MaxNoteLen {
			note = string(runes[:entries.MaxNoteLen])
		}

		entry := entryStore.Get(key)
		if err := entryStore.Set(key, entry.Stamps, note); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s のメモを更新しました\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(noteCmd)
}
