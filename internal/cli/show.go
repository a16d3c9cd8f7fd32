package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sutanpu/internal/dates"
	"sutanpu/internal/grid"
	"sutanpu/internal/holidays"
)

var showCmd = &cobra.Command{
	Use:   "show [YYYY-MM]",
	Short: "Print a month grid",
	Long: `Print the stamp calendar for a month. With no argument the current
month is shown.

Examples:
  sutanpu show
  sutanpu show 2026-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			t, err := time.ParseInLocation("2006-01", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("invalid month %q, use YYYY-MM", args[0])
			}
			year, month = t.Year(), t.Month()
		}

		lookup := holidays.NewLookup()
		holidayMap := lookup.ForMonth(year, month)
		cells := grid.Build(year, month, entryStore, holidayMap, dates.TodayKey())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d年 %d月\n", year, int(month))
		fmt.Fprintln(out, " 日  月  火  水  木  金  土")

		for week := 0; week*7 < len(cells); week++ {
			var line strings.Builder
			for _, c := range cells[week*7 : week*7+7] {
				if c.Blank {
					line.WriteString("    ")
					continue
				}
				marker := " "
				switch {
				case c.IsToday:
					marker = "*"
				case len(c.Stamps) > 0:
					marker = "+"
				case c.HasNote:
					marker = "•"
				}
				line.WriteString(fmt.Sprintf(" %2d%s", c.Day, marker))
			}
			fmt.Fprintln(out, line.String())
		}

		for _, c := range cells {
			if c.HolidayName != "" {
				fmt.Fprintf(out, "%s  %s\n", c.Key, c.HolidayName)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
