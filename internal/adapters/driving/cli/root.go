// Package cli implements the command-line interface using cobra.
// Commands are thin: they parse flags, call the loader service through its
// driving port, and render the result. Services are injected from main via
// SetServices before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/dbxloader/internal/adapters/driven/config/file"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driving"
	"github.com/custodia-labs/dbxloader/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Injected services.
var (
	loaderService driving.Loader
	configStore   *file.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "dbxloader",
	Short: "Load Dropbox files into plain-text records",
	Long: `dbxloader resolves Dropbox files, folders, and Paper notes into
normalized plain-text records for indexing pipelines.

Point it at a single file, an explicit list, or a folder to walk
recursively. Supported formats are classified by extension; anything
else is reported as invalid rather than failing the batch.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
}

// SetServices injects the service implementations used by the commands.
// Must be called before Execute.
func SetServices(loader driving.Loader, store *file.ConfigStore) {
	loaderService = loader
	configStore = store
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
