package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	locateFormat string
)

var locateCmd = &cobra.Command{
	Use:   "locate <file> <keypath>",
	Short: "Find a key's byte range in a locale file",
	Long: `Report the half-open byte range of a key inside a locale document.
Intended for editor integration; the default output is JSON. A key that
is not present in the file reports found=false, never an error.

Examples:
  lokey locate locales/en.json nav.menu.title
  lokey locate locales/de.json nav.menu.title --format=human`,
	Args: cobra.ExactArgs(2),
	Run:  runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&locateFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) {
	logger := newLogger(locateFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	file, keypath := args[0], args[1]
	r, err := engine.Locate(file, keypath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	resp := &LocateResponse{File: file, KeyPath: keypath}
	if r != nil {
		resp.Found = true
		resp.Start = r.Start
		resp.End = r.End
	}

	output, err := FormatResponse(resp, OutputFormat(locateFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}
