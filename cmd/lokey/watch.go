package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lokey/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch locale files and rescan on changes",
	Long: `Poll the configured locale paths for file changes and refresh the cached
snapshot after each debounced batch of changes. Runs until interrupted.

Examples:
  lokey watch`,
	Run: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	logger := newLogger("human")
	root := mustGetWorkspaceRoot()
	engine := mustGetEngine(root, logger)
	cfg := engine.Config()

	// Initial scan so the snapshot exists before the first change.
	if _, err := engine.Scan(); err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning workspace: %v\n", err)
		os.Exit(1)
	}

	w := watcher.New(watcher.Config{
		Root:         root,
		LocalePaths:  cfg.LocalePaths,
		Registry:     engine.Registry(),
		Debounce:     time.Duration(cfg.Watcher.DebounceMs) * time.Millisecond,
		PollInterval: time.Duration(cfg.Watcher.PollIntervalMs) * time.Millisecond,
	}, logger, func(events []watcher.Event) {
		logger.Info("locale files changed", "count", len(events))
		result, err := engine.Scan()
		if err != nil {
			logger.Error("rescan failed", "error", err.Error())
			return
		}
		logger.Info("snapshot refreshed",
			"files", result.Files, "records", result.Records)
	})

	ctx, stop := signal.NotifyContext(newContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Start(ctx)
	fmt.Printf("Watching %v for changes. Press Ctrl+C to stop.\n", cfg.LocalePaths)

	<-ctx.Done()
	w.Stop()
	fmt.Println("\nStopped.")
}
