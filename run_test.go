package toolbase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRunLifecycle(t *testing.T) {
	path := writeConfig(t, "key: 1\n")

	var gotConfig any
	invoked := false
	tool := New(Options{
		Name:       "test",
		Version:    "1.0",
		ConfigFile: true,
		Main: func(ctx context.Context, tool *Tool) error {
			invoked = true
			gotConfig = tool.Config()
			return nil
		},
	})

	if err := tool.Run([]string{"--cfg", path}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !invoked {
		t.Fatal("main function was not invoked")
	}

	want := map[string]any{"key": 1}
	if !reflect.DeepEqual(gotConfig, want) {
		t.Errorf("config seen by main = %#v, want %#v", gotConfig, want)
	}
}

func TestRunMissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	invoked := false
	tool := New(Options{
		Name:       "test",
		ConfigFile: true,
		Main: func(ctx context.Context, tool *Tool) error {
			invoked = true
			return nil
		},
	})

	err := tool.Run([]string{"--cfg", path})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if invoked {
		t.Error("main function invoked despite config load failure")
	}
}

func TestRunMalformedConfigFile(t *testing.T) {
	path := writeConfig(t, "key: [unclosed\n")

	invoked := false
	tool := New(Options{
		Name:       "test",
		ConfigFile: true,
		Main: func(ctx context.Context, tool *Tool) error {
			invoked = true
			return nil
		},
	})

	err := tool.Run([]string{"--cfg", path})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if invoked {
		t.Error("main function invoked despite malformed config")
	}
}

func TestRunWithoutConfigFile(t *testing.T) {
	invoked := false
	tool := New(Options{
		Name: "test",
		Main: func(ctx context.Context, tool *Tool) error {
			invoked = true
			if tool.Config() != nil {
				t.Errorf("Config() = %v, want nil without a config file", tool.Config())
			}
			return nil
		},
	})

	if err := tool.Run(nil); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !invoked {
		t.Fatal("main function was not invoked")
	}
}

func TestRunDefaultMain(t *testing.T) {
	tool := New(Options{Name: "test"})

	if err := tool.Run(nil); err != nil {
		t.Errorf("Run with default main = %v, want nil", err)
	}
}

func TestRunMainError(t *testing.T) {
	tool := New(Options{
		Name: "test",
		Main: func(ctx context.Context, tool *Tool) error {
			return fmt.Errorf("work failed")
		},
	})

	err := tool.Run(nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
}

func TestRunMainPanic(t *testing.T) {
	tool := New(Options{
		Name: "test",
		Main: func(ctx context.Context, tool *Tool) error {
			panic("boom")
		},
	})

	err := tool.Run(nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
}

func TestRunGracefulInterrupt(t *testing.T) {
	// A main that returns the canceled context's error models a tool
	// stopping in response to an interrupt. That is a clean exit.
	tool := New(Options{
		Name: "test",
		Main: func(ctx context.Context, tool *Tool) error {
			return context.Canceled
		},
	})

	if err := tool.Run(nil); err != nil {
		t.Errorf("Run after interrupt = %v, want nil", err)
	}
}
