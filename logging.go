package toolbase

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// initLoggingOnce guards the process-wide logger. The first Run to reach
// logging setup wins; later calls (a second Run, tests running several
// tools) are ignored rather than reconfiguring the logger under running
// code.
var initLoggingOnce sync.Once

// logLevel maps the verbose flag to the effective slog level and its name
// for the startup message.
func logLevel(verbose bool) (slog.Level, string) {
	if verbose {
		return slog.LevelDebug, "debug"
	}
	return slog.LevelInfo, "info"
}

// logWriter opens the log destination. An empty path means stderr; a path
// is opened in append mode so restarts extend the existing file.
func logWriter(path string) (io.Writer, error) {
	if path == "" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, nil
}

// initLogging installs the default logger exactly once per process.
func initLogging(verbose bool, logFile string) error {
	var initErr error
	initLoggingOnce.Do(func() {
		w, err := logWriter(logFile)
		if err != nil {
			initErr = err
			return
		}
		level, _ := logLevel(verbose)
		slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	})
	return initErr
}
