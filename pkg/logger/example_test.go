package logger_test

import (
	"log/slog"

	"github.com/etzhaim/netivot/pkg/logger"
)

func ExampleNewDefaultLogger() {
	// Create a logger with default settings
	log := logger.NewDefaultLogger(slog.LevelDebug)

	// Log different levels
	log.Debug("This is a debug message")
	log.Info("This is an info message")
	log.Warn("This is a warning message") // Will be yellow in terminal
	log.Error("This is an error message") // Will be red in terminal
}

func ExampleNewLogger() {
	log := logger.NewDefaultLogger(slog.LevelInfo)

	// Log with attributes
	log.Info("Building letter graph", "letters", 42, "method", "raw")
	log.Warn("Baseline not installed, using text mean")
	log.Error("Segmenting failed", "error", "segment size must be positive")
}
