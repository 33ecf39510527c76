package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	renameRecursive bool
	renameForce     bool
	renameDryRun    bool
	renameFormat    string
)

var renameCmd = &cobra.Command{
	Use:   "rename <old-keypath> <new-keypath>",
	Short: "Rename a key across all locales",
	Long: `Move a key to a new keypath in every locale file that defines it. Each
record is deleted at the old keypath before the new one is inserted, so a
partial failure never leaves both names pointing at the same value.

Renaming onto an existing key is refused unless --force is given. A
grouping keypath is only renamed with --recursive, which moves the whole
subtree.

Examples:
  lokey rename nav.menu.title nav.menu.heading
  lokey rename nav.menu nav.topbar --recursive
  lokey rename old.key existing.key --force`,
	Args: cobra.ExactArgs(2),
	Run:  runRename,
}

func init() {
	renameCmd.Flags().BoolVarP(&renameRecursive, "recursive", "r", false, "Rename an entire subtree")
	renameCmd.Flags().BoolVarP(&renameForce, "force", "f", false, "Overwrite an existing target key")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "Plan only, write nothing")
	renameCmd.Flags().StringVar(&renameFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) {
	logger := newLogger(renameFormat)
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)

	ops, err := engine.RenameKey(args[0], args[1], renameRecursive, renameForce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning rename: %v\n", err)
		os.Exit(1)
	}

	emitPlan(engine, "rename", ops, renameDryRun, renameFormat)
}
