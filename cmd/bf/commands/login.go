package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/orientier/brandfolder-go/internal/constants"
	"github.com/orientier/brandfolder-go/pkg/bfclient"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		apiKey      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the Brandfolder API and store it in the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			viper.Set("api_key", apiKey)

			if apiEndpoint != "" {
				viper.Set("api", apiEndpoint)
			}

			// Verify the key before persisting it. A short timeout keeps
			// the prompt responsive when the endpoint is unreachable.
			client, err := bfclient.New(&brandfolder.Config{
				APIKey:      apiKey,
				APIEndpoint: viper.GetString("api"),
				HTTPTimeout: constants.ShortHTTPTimeout,
				Debug:       viper.GetBool("verbose"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			ctx := context.Background()

			orgs, err := client.Organizations().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			err = saveConfig()
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged in")

			if len(orgs.Data) > 0 {
				fmt.Println("\nAvailable organizations:")

				for i := range orgs.Data {
					fmt.Printf("  - %s\n", orgs.Data[i].Name())
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "API endpoint URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key to store")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored API key",
		Long:  "Remove the API key from the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("api_key", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")
			return nil
		},
	}
}

// saveConfig writes the active viper configuration to the config file,
// creating ~/.bf/config.yml when no config file is in use yet.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".bf")

		err = os.MkdirAll(configDir, 0o700)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	err := viper.WriteConfigAs(configFile)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
