package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load files into plain-text records",
	Long: `Load Dropbox content into normalized plain-text records.

Exactly one target is used per run; when several are given the precedence
is --folder over --files over --file.

Examples:
  # One file
  dbxloader load --file "/notes/meeting.txt"

  # Several files; failures are isolated per file
  dbxloader load --files "/a.pdf" --files "/b.docx"

  # A folder, walked recursively ("" is the account root)
  dbxloader load --folder "/Projects"

  # The team space instead of the personal one
  dbxloader load --folder "/Shared" --team

  # Records as JSON for piping
  dbxloader load --file "/report.pdf" --json`,
	RunE: runLoad,
}

// Flags for load.
var (
	loadFolder  string
	loadFiles   []string
	loadFile    string
	loadTeam    bool
	loadToken   string
	loadDetails string
	loadJSON    bool
)

func init() {
	loadCmd.Flags().StringVar(&loadFolder, "folder", "", `Folder to walk recursively ("" is the root)`)
	loadCmd.Flags().StringArrayVar(&loadFiles, "files", nil, "File path to load (repeatable)")
	loadCmd.Flags().StringVar(&loadFile, "file", "", "Single file path to load")
	loadCmd.Flags().BoolVar(&loadTeam, "team", false, "Use the team/shared namespace")
	loadCmd.Flags().StringVar(&loadToken, "token", "", "Dropbox access token (overrides stored credentials)")
	loadCmd.Flags().StringVar(&loadDetails, "details", "", "Print the progress trail at this severity (debug, info, warning)")
	loadCmd.Flags().BoolVar(&loadJSON, "json", false, "Print records as JSON")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader service not configured")
	}

	auth, err := resolveAuth(loadToken)
	if err != nil {
		return err
	}

	req := domain.LoadRequest{
		Auth:       auth,
		FilePaths:  loadFiles,
		FilePath:   loadFile,
		TeamFolder: loadTeam,
	}
	// The empty string targets the account root, so presence is what counts.
	if cmd.Flags().Changed("folder") {
		req.FolderPath = &loadFolder
	}
	if req.FolderPath == nil && len(req.FilePaths) == 0 && req.FilePath == "" {
		return errors.New("no target: pass --folder, --files, or --file")
	}

	result, err := loaderService.Load(context.Background(), req)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	if loadJSON {
		return printJSON(cmd, result)
	}
	printResult(cmd, result)

	if loadDetails != "" {
		severity, err := parseSeverity(loadDetails)
		if err != nil {
			return err
		}
		printTrail(cmd, result.Details(severity))
	}
	return nil
}

// resolveAuth picks the credential payload: an explicit token flag wins over
// stored credentials.
func resolveAuth(tokenFlag string) (domain.Auth, error) {
	if tokenFlag != "" {
		return domain.Auth{AccessToken: tokenFlag}, nil
	}
	if configStore != nil {
		auth := configStore.Auth()
		if auth.AccessToken != "" || auth.CanRefresh() {
			return auth, nil
		}
	}
	return domain.Auth{}, errors.New("no credentials: pass --token or run 'dbxloader auth login'")
}

func printResult(cmd *cobra.Command, result *domain.LoadResult) {
	cmd.Printf("Loaded %d records (%d invalid files, %d errors)\n",
		len(result.Records), len(result.InvalidFiles), len(result.Errors))

	for _, record := range result.Records {
		if record.Page != nil {
			cmd.Printf("  %s (page %d): %d chars\n", record.Source, *record.Page, len(record.Content))
		} else {
			cmd.Printf("  %s: %d chars\n", record.Source, len(record.Content))
		}
	}

	if len(result.InvalidFiles) > 0 {
		cmd.Println("\nInvalid files (extension not supported):")
		for _, path := range result.InvalidFiles {
			cmd.Printf("  %s\n", path)
		}
	}

	if len(result.Errors) > 0 {
		cmd.Println("\nErrors:")
		for _, rec := range result.Errors {
			switch {
			case rec.File != "":
				cmd.Printf("  [file %s] %s\n", rec.File, rec.Message)
			case rec.Folder != "":
				cmd.Printf("  [folder %s] %s\n", rec.Folder, rec.Message)
			default:
				cmd.Printf("  %s\n", rec.Message)
			}
		}
	}
}

func printJSON(cmd *cobra.Command, result *domain.LoadResult) error {
	payload := struct {
		RunID        string               `json:"run_id"`
		Records      []jsonRecord         `json:"records"`
		InvalidFiles []string             `json:"invalid_files"`
		Errors       []domain.ErrorRecord `json:"errors"`
	}{
		RunID:        result.RunID,
		Records:      make([]jsonRecord, 0, len(result.Records)),
		InvalidFiles: result.InvalidFiles,
		Errors:       result.Errors,
	}
	for _, record := range result.Records {
		payload.Records = append(payload.Records, jsonRecord{
			Content: record.Content,
			Source:  record.Source,
			Kind:    record.Kind,
			Page:    record.Page,
		})
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	cmd.Println(string(encoded))
	return nil
}

type jsonRecord struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Kind    string `json:"kind"`
	Page    *int   `json:"page,omitempty"`
}

func printTrail(cmd *cobra.Command, entries []domain.LogEntry) {
	if len(entries) == 0 {
		return
	}
	cmd.Println("\nProgress:")
	for _, entry := range entries {
		cmd.Printf("  [%s] %s\n", entry.Severity, entry.Message)
	}
}

func parseSeverity(name string) (domain.Severity, error) {
	switch strings.ToLower(name) {
	case "debug":
		return domain.SeverityDebug, nil
	case "info":
		return domain.SeverityInfo, nil
	case "warning":
		return domain.SeverityWarning, nil
	default:
		return 0, fmt.Errorf("unknown severity %q (use debug, info, or warning)", name)
	}
}
