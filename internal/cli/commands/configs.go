package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/ui"
)

// configsCmd is the configs command
var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "list configured planillas",
	Long: `List the planillas registered on the server.

Each entry shows the backing spreadsheet, the tab being mirrored, the
outcome of the last synchronization and when it ran.`,
	Example: `  # List all planillas
  $ sgpctl configs`,
	RunE: runConfigs,
}

func init() {
	configsCmd.SilenceUsage = true
}

func runConfigs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	ui.PrintInfo("Fetching planillas...")

	configs, err := apiClient.ListConfigs(ctx)
	if err != nil {
		ui.PrintError("failed to list planillas: %v", err)
		return fmt.Errorf("list operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderConfigTree(configs))
	fmt.Println(ui.RenderConfigSummary(len(configs)))

	return nil
}
