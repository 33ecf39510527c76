package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"lokey/internal/config"
	"lokey/internal/engine"
	"lokey/internal/logging"
	"lokey/internal/storage"
)

var (
	engineOnce   sync.Once
	sharedEngine *engine.Engine
	engineErr    error
)

// getEngine returns a shared engine instance, lazily initialized on first use.
func getEngine(root string, logger *slog.Logger) (*engine.Engine, error) {
	engineOnce.Do(func() {
		cfg, err := config.Load(root)
		if err != nil {
			logger.Warn("failed to load config, using defaults", "error", err.Error())
			cfg = config.DefaultConfig()
		}
		if err := cfg.Validate(); err != nil {
			engineErr = fmt.Errorf("invalid configuration: %w", err)
			return
		}

		db, err := storage.Open(root, logger)
		if err != nil {
			engineErr = fmt.Errorf("failed to open database: %w", err)
			return
		}

		sharedEngine = engine.New(root, cfg, db, logger)
	})

	return sharedEngine, engineErr
}

// mustGetEngine returns the shared engine or exits on error.
func mustGetEngine(root string, logger *slog.Logger) *engine.Engine {
	e, err := getEngine(root, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing engine: %v\n", err)
		os.Exit(1)
	}
	return e
}

// getWorkspaceRoot returns the workspace root directory.
func getWorkspaceRoot() (string, error) {
	return os.Getwd()
}

// mustGetWorkspaceRoot returns the workspace root or exits on error.
func mustGetWorkspaceRoot() string {
	root, err := getWorkspaceRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return root
}

// newContext creates a new context for command execution.
func newContext() context.Context {
	return context.Background()
}

// newLogger creates a stderr logger matching the output format, so stdout
// stays machine-parseable in json mode.
func newLogger(format string) *slog.Logger {
	return logging.NewStderr(logging.ParseFormat(format), slog.LevelInfo)
}
