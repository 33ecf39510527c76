package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	setLocale string
	setDryRun bool
	setFormat string
)

var setCmd = &cobra.Command{
	Use:   "set <keypath> <value>",
	Short: "Set a key's value in one locale",
	Long: `Change the value of a key in one locale's backing file. Setting an
unchanged value is a no-op; so is setting a key the locale only inherits
from the default locale.

Examples:
  lokey set nav.menu.title "Products"
  lokey set nav.menu.title "Produkte" --locale=de
  lokey set nav.menu.title "Produits" --locale=fr --dry-run`,
	Args: cobra.ExactArgs(2),
	Run:  runSet,
}

func init() {
	setCmd.Flags().StringVar(&setLocale, "locale", "", "Target locale (default: default locale)")
	setCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Plan only, write nothing")
	setCmd.Flags().StringVar(&setFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) {
	logger := newLogger(setFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	ops, err := engine.SetValue(args[0], setLocale, args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning edit: %v\n", err)
		os.Exit(1)
	}

	emitPlan(engine, "set", ops, setDryRun, setFormat)
}
