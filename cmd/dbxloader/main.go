// Command dbxloader loads Dropbox files, folders, and Paper notes into
// normalized plain-text records.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/dbxloader/internal/adapters/driven/config/file"
	"github.com/custodia-labs/dbxloader/internal/adapters/driven/dropbox"
	"github.com/custodia-labs/dbxloader/internal/adapters/driving/cli"
	"github.com/custodia-labs/dbxloader/internal/core/services"
	"github.com/custodia-labs/dbxloader/internal/extractors"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open config: %v\n", err)
		os.Exit(1)
	}

	loader := services.NewLoaderService(dropbox.NewProvider(), extractors.Defaults())
	cli.SetServices(loader, configStore)

	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
