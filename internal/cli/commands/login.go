package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/client"
	"github.com/fdieguez/sgp/internal/cli/config"
	"github.com/fdieguez/sgp/internal/cli/ui"
)

var (
	loginEmail string
)

// loginCmd is the login command
var loginCmd = &cobra.Command{
	Use:   "login [server]",
	Short: "authenticate with SGP API server",
	Long: `Authenticate with the SGP API server and save credentials locally.

Your authentication token will be stored in ~/.sgpctl/config.json and used
automatically for all subsequent commands. The token remains valid until
it expires or you login again.

If server is not provided, defaults to http://localhost:8080.`,
	Example: `  # Login to default server (localhost:8080)
  $ sgpctl login

  # Login to custom server
  $ sgpctl login http://api.example.com:8080

  # Login with email (will prompt for password)
  $ sgpctl login http://api.example.com:8080 -e admin@example.com`,
	Args: cobra.MaximumNArgs(1), // Allow 0 or 1 server argument
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email for authentication")

	// Silence usage to avoid showing help on every error
	loginCmd.SilenceUsage = true
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Get server from position argument or use default
	loginServer := "http://localhost:8080"
	if len(args) > 0 {
		loginServer = args[0]
	}

	// 1. Prompt for email if not provided
	if loginEmail == "" {
		prompt := &survey.Input{
			Message: "Email:",
		}
		if err := survey.AskOne(prompt, &loginEmail, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read email: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	// 2. Prompt for password (hidden input)
	var password string
	prompt := &survey.Password{
		Message: "Password:",
	}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
		ui.PrintError("failed to read password: %v", err)
		return fmt.Errorf("input failed")
	}

	// 3. Create API client
	apiClient, err := client.NewAPIClient(loginServer, "")
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Connecting to %s...", loginServer)

	// 4. Call login API
	resp, err := apiClient.Login(ctx, loginEmail, password)
	if err != nil {
		ui.PrintErrorBox("Login Failed", err.Error())
		return fmt.Errorf("authentication failed")
	}

	// 5. Save config to local file
	cfg := &config.Config{
		Server:      loginServer,
		AccessToken: resp.Data.Token,
		Email:       resp.Data.Email,
		Role:        resp.Data.Role,
	}

	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	// 6. Display success message
	configPath, _ := config.GetConfigPath()
	successContent := fmt.Sprintf(`Email:          %s
Role:           %s
Token expires:  %s
Config saved:   %s`,
		resp.Data.Email,
		resp.Data.Role,
		resp.Data.Expire,
		configPath,
	)

	ui.PrintSuccessBox("✓ Login Successful", successContent)

	// 7. Display usage hints
	fmt.Println()
	ui.PrintInfo("You can now use the following commands:")
	ui.PrintBold("  sgpctl configs            # List configured planillas")
	ui.PrintBold("  sgpctl explore <configId> # Explore a snapshot interactively")

	return nil
}
