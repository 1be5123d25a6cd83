package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/ui"
)

// syncCmd is the sync command
var syncCmd = &cobra.Command{
	Use:   "sync <configId>",
	Short: "synchronize one planilla",
	Long: `Trigger a synchronization run for one planilla.

The server fetches the spreadsheet tab, stores a fresh snapshot and
imports the rows it can parse as case records. Rows already imported in
a previous run are counted as duplicates and left untouched.`,
	Example: `  # Synchronize planilla 3
  $ sgpctl sync 3`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.SilenceUsage = true
}

func runSync(cmd *cobra.Command, args []string) error {
	configID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || configID <= 0 {
		ui.PrintError("invalid config id: %s", args[0])
		return fmt.Errorf("invalid arguments")
	}

	// Synchronization fetches and parses the whole tab, give it time
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	ui.PrintInfo("Synchronizing planilla %d...", configID)

	result, err := apiClient.Sync(ctx, configID)
	if err != nil {
		ui.PrintErrorBox("Sync Failed", err.Error())
		return fmt.Errorf("sync failed")
	}

	ui.PrintSuccessBox("✓ Sync Complete", ui.RenderSyncResult(result))

	return nil
}
