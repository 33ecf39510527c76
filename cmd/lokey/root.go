package main

import (
	"github.com/spf13/cobra"

	"lokey/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lokey",
	Short: "lokey - locale key toolbox",
	Long: `lokey maintains localization keys scattered across per-locale files as one
hierarchical key tree. It scans locale directories, resolves missing
translations through the default locale, and plans and applies safe key
mutations (set, rename, remove) across every locale at once.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("lokey version {{.Version}}\n")
}
