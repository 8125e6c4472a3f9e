package logger

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/base-agents/base-agents/internal/cache"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
	runID         = uuid.NewString()
)

// Get returns the global logger instance, initializing it once
func Get() *slog.Logger {
	once.Do(func() {
		defaultLogger = initLogger()
	})
	return defaultLogger
}

// RunID identifies this process in the shared log file
func RunID() string {
	return runID
}

// initLogger creates the global logger that writes to base-agents.log in the cache directory.
// If the log file cannot be created, returns a no-op logger that discards all output.
func initLogger() *slog.Logger {
	logPath, err := cache.GetLogFile()
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    1, // MB
		MaxBackups: 0,
		MaxAge:     0,
		Compress:   false,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler).With("run", runID)
}
