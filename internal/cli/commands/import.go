package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/loader"
	"github.com/fdieguez/sgp/internal/cli/ui"
)

var importFile string

// importCmd is the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "create a resource from a YAML file",
	Long: `Create a resource on the server from a YAML definition.

Supported kinds:
  Planilla   register a spreadsheet tab to mirror
  Solicitud  create a case record directly`,
	Example: `  # Register a planilla
  $ sgpctl import -f planilla.yaml

  # planilla.yaml
  kind: Planilla
  spec:
    spreadsheetId: 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
    sheetName: Pedidos 2025

  # Create a case record
  $ sgpctl import -f solicitud.yaml

  # solicitud.yaml
  kind: Solicitud
  spec:
    description: Solicitud de materiales
    personId: 12
    origin: TELEFONO
    entryDate: "2025-03-14"`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to the YAML resource file")
	_ = importCmd.MarkFlagRequired("file")

	importCmd.SilenceUsage = true
}

func runImport(cmd *cobra.Command, args []string) error {
	resource, err := loader.LoadFromFile(importFile)
	if err != nil {
		ui.PrintError("failed to load %s: %v", importFile, err)
		return fmt.Errorf("load failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	switch resource.Kind {
	case "Planilla":
		createReq, err := resource.ToCreateConfigRequest()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("invalid resource")
		}
		created, err := apiClient.CreateConfig(ctx, createReq)
		if err != nil {
			ui.PrintErrorBox("Import Failed", err.Error())
			return fmt.Errorf("create failed")
		}
		ui.PrintSuccess("planilla %q registered with id %d", created.SheetName, created.ID)
		ui.PrintInfo("Run 'sgpctl sync %d' to fetch its data.", created.ID)

	case "Solicitud":
		createReq, err := resource.ToCreateSolicitudRequest()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("invalid resource")
		}
		if err := apiClient.CreateSolicitud(ctx, createReq); err != nil {
			ui.PrintErrorBox("Import Failed", err.Error())
			return fmt.Errorf("create failed")
		}
		ui.PrintSuccess("solicitud created")
	}

	return nil
}
