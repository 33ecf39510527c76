package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	scanFormat string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan locale files and rebuild the key tree snapshot",
	Long: `Walk the configured locale paths, parse every supported locale file and
replace the cached snapshot. All other commands read from this snapshot.

Examples:
  lokey scan
  lokey scan --format=json`,
	Run: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) {
	logger := newLogger(scanFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	result, err := engine.Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning workspace: %v\n", err)
		os.Exit(1)
	}

	resp := &ScanResponse{
		ScanID:     result.ScanID,
		Files:      result.Files,
		Records:    result.Records,
		Locales:    result.Locales,
		Errors:     result.Errors,
		DurationMs: result.Duration.Milliseconds(),
	}

	output, err := FormatResponse(resp, OutputFormat(scanFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}
