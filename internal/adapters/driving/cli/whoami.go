package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	RunE:  runWhoami,
}

var whoamiToken string

func init() {
	whoamiCmd.Flags().StringVar(&whoamiToken, "token", "", "Dropbox access token (overrides stored credentials)")

	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}

	auth, err := resolveAuth(whoamiToken)
	if err != nil {
		return err
	}

	account, err := loaderService.Whoami(context.Background(), auth)
	if err != nil {
		return fmt.Errorf("whoami: %w", err)
	}

	cmd.Printf("Account:  %s\n", account.AccountID)
	cmd.Printf("Name:     %s\n", account.DisplayName)
	cmd.Printf("Email:    %s\n", account.Email)
	if account.RootNamespaceID != "" {
		cmd.Printf("Root namespace: %s\n", account.RootNamespaceID)
	}
	if account.HomeNamespaceID != "" {
		cmd.Printf("Home namespace: %s\n", account.HomeNamespaceID)
	}
	if account.RootNamespaceID != "" && account.RootNamespaceID != account.HomeNamespaceID {
		cmd.Println("Team space available (use --team)")
	}
	return nil
}
