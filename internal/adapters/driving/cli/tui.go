package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui"
	"github.com/custodia-labs/charta/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for charta.

The TUI lets you browse charter-party templates, preview them for a
vessel class, ask the route advisor for suitable forms and review saved
charter records.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Suggest
  c        - Cycle vessel class on a template
  r        - Refresh a list
  Esc      - Back
  ?        - Help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(catalogService, routeAdvisor, charterService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(commandContext(cmd))

	// Log lines would corrupt the alt screen.
	logger.SetQuiet(true)
	defer logger.SetQuiet(false)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
