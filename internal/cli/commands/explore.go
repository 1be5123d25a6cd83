package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/tui"
	"github.com/fdieguez/sgp/internal/cli/ui"
)

// exploreCmd is the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore <configId>",
	Short: "explore a snapshot interactively",
	Long: `Open an interactive terminal explorer over the stored snapshot of a
planilla: free-text search, per-column filters, sort toggling, a live
bar chart and paging, all recomputed from the same snapshot.

Keys inside the explorer:
  /          search            tab/shift+tab  select column
  s          toggle sort       f              cycle filter on column
  c          chart column      x              clear search and filters
  ←/→        previous/next page
  r          refetch snapshot  q / esc        quit`,
	Example: `  # Explore planilla 3
  $ sgpctl explore 3`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.SilenceUsage = true
}

func runExplore(cmd *cobra.Command, args []string) error {
	configID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || configID <= 0 {
		ui.PrintError("invalid config id: %s", args[0])
		return fmt.Errorf("invalid arguments")
	}

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	program := tui.NewExploreProgram(apiClient, configID)
	if err := program.Run(); err != nil {
		ui.PrintError("explorer failed: %v", err)
		return fmt.Errorf("explorer failed")
	}

	return nil
}
