package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lokey/internal/lokerr"
	"lokey/internal/version"
)

var (
	statusFormat string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workspace and snapshot status",
	Long: `Show the workspace configuration summary and the state of the cached scan
snapshot.

Examples:
  lokey status
  lokey status --format=json`,
	Run: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	logger := newLogger(statusFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	resp := &StatusResponse{
		Version:       version.Info(),
		Root:          root,
		DefaultLocale: engine.Config().DefaultLocale,
		RecordCounts:  map[string]int{},
	}

	snap, err := engine.Snapshot()
	switch {
	case err == nil:
		resp.ScanID = snap.ID
		resp.ScannedAt = snap.CreatedAt.Format(time.RFC3339)
		resp.Files = snap.Files
		counts, countErr := engine.Counts()
		if countErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", countErr)
			os.Exit(1)
		}
		resp.RecordCounts = counts
	default:
		var le *lokerr.Error
		if !errors.As(err, &le) || le.Code != lokerr.SnapshotStale {
			fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
			os.Exit(1)
		}
		// No snapshot yet: still report config and version.
	}

	output, err := FormatResponse(resp, OutputFormat(statusFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}
