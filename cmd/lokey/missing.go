package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var (
	missingLocale string
	missingFormat string
)

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List untranslated keys per locale",
	Long: `List keypaths that are only covered by a fallback from the default locale,
or not covered at all.

Examples:
  lokey missing
  lokey missing --locale=de
  lokey missing --format=json`,
	Run: runMissing,
}

func init() {
	missingCmd.Flags().StringVar(&missingLocale, "locale", "", "Restrict to one locale")
	missingCmd.Flags().StringVar(&missingFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(missingCmd)
}

func runMissing(cmd *cobra.Command, args []string) {
	logger := newLogger(missingFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	missing, err := engine.Missing()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing missing translations: %v\n", err)
		os.Exit(1)
	}

	if missingLocale != "" {
		filtered := map[string][]string{}
		if keys, ok := missing[missingLocale]; ok {
			filtered[missingLocale] = keys
		}
		missing = filtered
	}

	if OutputFormat(missingFormat) == FormatJSON {
		resp := &MissingResponse{
			DefaultLocale: engine.Config().DefaultLocale,
			Missing:       missing,
		}
		output, err := FormatResponse(resp, FormatJSON)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)
		return
	}

	locales := make([]string, 0, len(missing))
	for l := range missing {
		if len(missing[l]) > 0 {
			locales = append(locales, l)
		}
	}
	sort.Strings(locales)

	if len(locales) == 0 {
		fmt.Println("All keys translated.")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow("LOCALE", "MISSING", "KEYPATHS")
	for _, l := range locales {
		keys := missing[l]
		table.AddRow(l, len(keys), strings.Join(keys, ", "))
	}
	fmt.Println(table)
}
