package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folioapp/folio/internal/config"
	"github.com/folioapp/folio/internal/logger"
	"github.com/folioapp/folio/internal/page"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all pages and log files",
	Long: `Deletes every page from the database and removes the debug log file.
It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
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

	count, err := store.Count()
	if err != nil {
		return fmt.Errorf("error counting pages: %w", err)
	}
	if count == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	fmt.Println("This will clean:")
	fmt.Printf("  - %d page(s) in %s\n", count, path)
	fmt.Printf("  - The log file at %s\n", logger.DefaultLogPath)

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	pages, err := store.ListPages()
	if err != nil {
		return fmt.Errorf("error listing pages: %w", err)
	}
	deleted := 0
	for _, p := range pages {
		if err := store.Delete(p.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error deleting page %s: %v\n", p.ID, err)
			continue
		}
		deleted++
	}

	cfg.SetLastActivePageID("")
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error saving config: %v\n", err)
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	fmt.Printf("  - %d page(s) deleted\n", deleted)
	if logsCleared > 0 {
		fmt.Printf("  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
