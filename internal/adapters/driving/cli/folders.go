package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List top-level folders",
	Long: `List the top-level folders of the personal or team namespace.
Useful for finding the path to pass to 'load --folder'.`,
	RunE: runFolders,
}

// Flags for folders.
var (
	foldersTeam  bool
	foldersToken string
)

func init() {
	foldersCmd.Flags().BoolVar(&foldersTeam, "team", false, "Use the team/shared namespace")
	foldersCmd.Flags().StringVar(&foldersToken, "token", "", "Dropbox access token (overrides stored credentials)")

	rootCmd.AddCommand(foldersCmd)
}

func runFolders(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}

	auth, err := resolveAuth(foldersToken)
	if err != nil {
		return err
	}

	folders, err := loaderService.ListFolders(context.Background(), auth, foldersTeam)
	if err != nil {
		return fmt.Errorf("list folders: %w", err)
	}

	if len(folders) == 0 {
		cmd.Println("No folders found.")
		return nil
	}

	for _, folder := range folders {
		cmd.Printf("%s\t%s\n", folder.Name, folder.Path)
	}
	return nil
}
