package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rmRecursive bool
	rmDryRun    bool
	rmFormat    string
)

var rmCmd = &cobra.Command{
	Use:   "rm <keypath>",
	Short: "Remove a key from all locales",
	Long: `Delete a key from every locale file that defines it. Inherited fallback
entries are derived data and are never touched. An unknown keypath is a
silent no-op. A grouping keypath is only removed with --recursive, which
deletes the whole subtree.

Examples:
  lokey rm nav.menu.title
  lokey rm nav.menu --recursive
  lokey rm nav.menu.title --dry-run`,
	Args: cobra.ExactArgs(1),
	Run:  runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmRecursive, "recursive", "r", false, "Remove an entire subtree")
	rmCmd.Flags().BoolVar(&rmDryRun, "dry-run", false, "Plan only, write nothing")
	rmCmd.Flags().StringVar(&rmFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) {
	logger := newLogger(rmFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	ops, err := engine.RemoveKey(args[0], rmRecursive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning removal: %v\n", err)
		os.Exit(1)
	}

	emitPlan(engine, "rm", ops, rmDryRun, rmFormat)
}
