package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sutanpu/internal/config"
	"sutanpu/internal/entries"
	"sutanpu/internal/holidays"
	"sutanpu/internal/logs"
	"sutanpu/internal/stamps"
	"sutanpu/internal/themes"
	"sutanpu/internal/tui"
)

var (
	dataDirFlag string

	cfg        *config.Config
	entryStore *entries.Store
	catalog    *stamps.Catalog
	themeStore *themes.Store
)

var rootCmd = &cobra.Command{
	Use:   "sutanpu",
	Short: "A stamp calendar for tracking daily habits",
	Long: `sutanpu is a terminal habit calendar: mark each day with emoji
stamps and a short note, on a month grid annotated with Japanese
national holidays. All data lives in local JSON files.

Run without arguments to open the interactive calendar.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(config.CLIFlags{DataDir: dataDirFlag})
		if err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}
		if err := config.EnsureConfigFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
		}
		if err := cfg.EnsureDataDir(); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		if err := logs.Initialize(cfg.DataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
		}

		entryStore = entries.Load(cfg.EntriesPath())
		catalog = stamps.Load(cfg.StampsPath())
		themeStore = themes.Load(cfg.ThemePath())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logs.Logger.Println("Starting app in TUI mode")
		appModel := tui.NewAppModel(entryStore, catalog, themeStore, holidays.NewLookup())
		p := tea.NewProgram(appModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %v", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDirFlag, "data", "d", "", "data directory (default ~/sutanpu)")
}
