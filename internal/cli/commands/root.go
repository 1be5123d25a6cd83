package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/client"
	"github.com/fdieguez/sgp/internal/cli/config"
	"github.com/fdieguez/sgp/internal/cli/ui"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "sgpctl",
	Short:   "SGP case management CLI",
	Version: version,
	Long: `A command-line tool for the SGP case management server. Mirrors
spreadsheet planillas, explores the stored snapshots interactively and
inspects the case records parsed out of them.`,
	Example: `  # Authenticate with API server
  $ sgpctl login http://localhost:8080

  # List configured planillas
  $ sgpctl configs

  # Synchronize one planilla and explore it
  $ sgpctl sync 3
  $ sgpctl explore 3

  # One-shot filtered view
  $ sgpctl view 3 --filter Estado=PENDING --chart Origen`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(configsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(solicitudesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("sgpctl version %s\n", version)
}

// authenticatedClient loads the saved credentials and returns a ready
// API client, or an error when the user has not logged in yet.
func authenticatedClient() (*client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}

	if !cfg.IsAuthenticated() {
		ui.PrintError("not authenticated, please login first")
		fmt.Println("\nRun 'sgpctl login' to authenticate.")
		return nil, fmt.Errorf("authentication required")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}
