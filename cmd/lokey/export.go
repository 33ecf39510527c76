package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the scanned catalog as a compressed archive",
	Long: `Write the cached snapshot as a zstd-compressed JSON archive. Inherited
fallback entries are derived data and are not exported.

Examples:
  lokey export
  lokey export --out=catalog.json.zst`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "lokey-export.json.zst", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	logger := newLogger("human")
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	f, err := os.Create(exportOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := engine.Export(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting catalog: %v\n", err)
		os.Exit(1)
	}

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported catalog to %s (%d bytes)\n", exportOut, info.Size())
}
