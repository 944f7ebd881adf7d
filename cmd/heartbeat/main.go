// Command heartbeat is a small demo tool built on toolbase. It logs a
// config-driven message once per second until interrupted, and re-reads
// its config file on SIGHUP:
//
//	heartbeat --cfg heartbeat.yaml --verbose
//	kill -HUP <pid>   # pick up config changes
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/runlab/toolbase"
)

func main() {
	tool := toolbase.New(toolbase.Options{
		Name:        "heartbeat",
		Version:     "0.1.0",
		Main:        run,
		ConfigFile:  true,
		ReloadOnHUP: true,
	})

	if err := tool.Run(os.Args[1:]); err != nil {
		var exitErr *toolbase.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, t *toolbase.Tool) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			slog.Info(message(t))
		}
	}
}

// message reads the current config snapshot on every beat, so a SIGHUP
// reload takes effect on the next tick.
func message(t *toolbase.Tool) string {
	if cfg, ok := t.Config().(map[string]any); ok {
		if m, ok := cfg["message"].(string); ok {
			return m
		}
	}
	return "heartbeat"
}
