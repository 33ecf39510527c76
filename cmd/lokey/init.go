package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lokey/internal/config"
	"lokey/internal/lokerr"
	"lokey/internal/paths"
)

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lokey configuration",
	Long:  "Creates a .lokey/ directory with default configuration in the current workspace root",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Force reinitialization (removes existing .lokey directory)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := mustGetWorkspaceRoot()

	stateDir := paths.StateDir(root)
	if _, statErr := os.Stat(stateDir); statErr == nil {
		if !initForce {
			// Idempotent behavior: already initialized is success (CI-friendly)
			fmt.Println("lokey already initialized.")
			fmt.Printf("Configuration at: %s\n", filepath.Join(stateDir, "config.json"))
			fmt.Println("\nRun 'lokey init --force' to reinitialize.")
			return nil
		}
		if removeErr := os.RemoveAll(stateDir); removeErr != nil {
			return lokerr.New(lokerr.Internal, "failed to remove existing .lokey directory", removeErr)
		}
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(root); err != nil {
		return lokerr.New(lokerr.Internal, "failed to write config file", err)
	}

	fmt.Println("lokey initialized successfully!")
	fmt.Printf("Configuration written to: %s\n", filepath.Join(stateDir, "config.json"))
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit .lokey/config.json to point localePaths at your locale files")
	fmt.Println("  2. Run 'lokey scan' to build the key tree")

	return nil
}
