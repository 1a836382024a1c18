// Package cmd holds the folio CLI commands.
package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/folioapp/folio/internal/app"
	"github.com/folioapp/folio/internal/config"
	"github.com/folioapp/folio/internal/logger"
	"github.com/folioapp/folio/internal/page"
)

var (
	debugMode             bool
	quietMode             bool
	viewMode              bool
	dbPath                string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Terminal editor for page-based documents with layered navigation",
	Long: `Folio is a terminal editor for page-based documents. Pages link to each
other, and a link opens its target as a floating popup, a split view, or
a full-page navigation with history.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().BoolVar(&viewMode, "view", false, "Open read-only: browsing works, editing is disabled")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Page database path (defaults to ~/.folio/folio.db)")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("folio %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("folio %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if dbPath != "" {
		cfg.SetDBPath(dbPath)
	}

	path, err := cfg.GetDBPath()
	if err != nil {
		return fmt.Errorf("error resolving database path: %w", err)
	}
	store, err := page.Open(path)
	if err != nil {
		return fmt.Errorf("error opening page database: %w", err)
	}
	defer store.Close()

	defer logger.Close()

	m := app.New(cfg, store, version, viewMode)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
