package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored Dropbox credentials",
	Long: `Store and inspect the Dropbox credentials used by load commands.

A plain access token is enough for short-lived use. For unattended runs,
store a refresh token together with the app key and secret so fresh access
tokens are minted automatically.

Examples:
  # Store an access token (prompted, not echoed)
  dbxloader auth login

  # Store refresh material for unattended use
  dbxloader auth login --refresh-token "rt" --app-key "key" --app-secret "secret"

  # Show what is stored and whether it works
  dbxloader auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store Dropbox credentials",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored credentials and verify them",
	RunE:  runAuthStatus,
}

// Flags for auth login.
var (
	authLoginToken        string
	authLoginRefreshToken string
	authLoginAppKey       string
	authLoginAppSecret    string
)

func init() {
	authLoginCmd.Flags().StringVar(
		&authLoginToken, "token", "", "Dropbox access token (prompted if omitted)")
	authLoginCmd.Flags().StringVar(
		&authLoginRefreshToken, "refresh-token", "", "OAuth refresh token")
	authLoginCmd.Flags().StringVar(
		&authLoginAppKey, "app-key", "", "Dropbox app key (required with --refresh-token)")
	authLoginCmd.Flags().StringVar(
		&authLoginAppSecret, "app-secret", "", "Dropbox app secret (required with --refresh-token)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}
	if configStore == nil {
		return errors.New("config store not configured")
	}

	auth := domain.Auth{
		AccessToken:  authLoginToken,
		RefreshToken: authLoginRefreshToken,
		AppKey:       authLoginAppKey,
		AppSecret:    authLoginAppSecret,
	}

	if auth.RefreshToken != "" && !auth.CanRefresh() {
		return errors.New("--refresh-token requires --app-key and --app-secret")
	}

	// Prompt for the access token when nothing was supplied.
	if auth.AccessToken == "" && !auth.CanRefresh() {
		token, err := promptToken(cmd)
		if err != nil {
			return err
		}
		auth.AccessToken = token
	}

	// Verify before storing.
	account, err := loaderService.Whoami(context.Background(), auth)
	if err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}

	if err := configStore.SetAuth(auth); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}

	cmd.Printf("Logged in as %s (%s)\n", account.DisplayName, account.Email)
	cmd.Printf("Credentials stored in %s\n", configStore.Path())
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}
	if configStore == nil {
		return errors.New("config store not configured")
	}

	auth := configStore.Auth()
	if auth.AccessToken == "" && !auth.CanRefresh() {
		cmd.Println("No stored credentials.")
		cmd.Println("Run: dbxloader auth login")
		return nil
	}

	if auth.CanRefresh() {
		cmd.Println("Stored: refresh token (access tokens minted on demand)")
	} else {
		cmd.Println("Stored: access token")
	}

	account, err := loaderService.Whoami(context.Background(), auth)
	if err != nil {
		return fmt.Errorf("stored credentials no longer work: %w", err)
	}

	cmd.Printf("Account: %s (%s)\n", account.DisplayName, account.Email)
	return nil
}

// promptToken reads the access token without echoing when stdin is a
// terminal, falling back to a plain line read otherwise.
func promptToken(cmd *cobra.Command) (string, error) {
	cmd.Print("Dropbox access token: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		token := strings.TrimSpace(string(raw))
		if token == "" {
			return "", errors.New("no token entered")
		}
		return token, nil
	}

	var token string
	if _, err := fmt.Fscanln(os.Stdin, &token); err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("no token entered")
	}
	return token, nil
}
