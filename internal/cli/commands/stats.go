package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/ui"
)

// statsCmd is the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show dashboard totals",
	Long: `Show the dashboard counters: order and subsidy totals, pending and
completed counts, the summed subsidy amount and the per-origin order
distribution.`,
	Example: `  $ sgpctl stats`,
	RunE:    runStats,
}

func init() {
	statsCmd.SilenceUsage = true
}

func runStats(cmd *cobra.Command, args []string) error {
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

	stats, err := apiClient.Stats(ctx)
	if err != nil {
		ui.PrintError("failed to fetch stats: %v", err)
		return fmt.Errorf("fetch failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderStats(stats))

	return nil
}
