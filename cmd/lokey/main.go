package main

import (
	"log/slog"
	"os"

	"lokey/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := logging.NewStderr(logging.FormatHuman, slog.LevelInfo)
		logger.Error("command execution failed", "error", err.Error())
		os.Exit(1)
	}
}
