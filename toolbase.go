package toolbase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// DefaultVersion is reported by tools that never set a version.
const DefaultVersion = "0.0-dev"

// MainFunc is the tool's long-running entry point. It is called once after
// flags are parsed, logging is configured, and the initial config load (if
// any) has succeeded. The context is canceled when the process receives an
// interrupt; returning the context's error after cancellation counts as a
// graceful shutdown, not a failure.
type MainFunc func(ctx context.Context, t *Tool) error

// ReloadFunc is called from the reload watcher before the config file is
// re-read, for tools that need to react to a reload beyond the config swap.
type ReloadFunc func(t *Tool)

// Options describes a tool to the runner.
type Options struct {
	// Name is used in the startup banner and flag usage output.
	// Defaults to the base name of the executable.
	Name string

	// Version is reported in the startup banner. Defaults to DefaultVersion.
	Version string

	// Main is the tool's work function. When nil, a default implementation
	// that logs a message and returns is used.
	Main MainFunc

	// OnReload, when set, runs before each config reload triggered by SIGHUP.
	OnReload ReloadFunc

	// ConfigFile declares that the tool takes a required --cfg flag naming
	// a YAML config file, loaded at startup and on each reload.
	ConfigFile bool

	// ReloadOnHUP registers a SIGHUP watcher that re-reads the config file.
	ReloadOnHUP bool
}

func (o *Options) applyDefaults() {
	if o.Name == "" {
		o.Name = filepath.Base(os.Args[0])
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
}

// Apply merges a string-keyed override map into the options. Recognized
// keys are "tool_name", "tool_version", "main", "has_config_file", and
// "reload_on_hup". Validation is all-or-nothing: every key is checked for
// name and type before any field is written, so a bad key leaves the
// options untouched.
func (o *Options) Apply(overrides map[string]any) error {
	for key, val := range overrides {
		switch key {
		case "tool_name", "tool_version":
			if _, ok := val.(string); !ok {
				return fmt.Errorf("config key %q: want string, got %T", key, val)
			}
		case "has_config_file", "reload_on_hup":
			if _, ok := val.(bool); !ok {
				return fmt.Errorf("config key %q: want bool, got %T", key, val)
			}
		case "main":
			switch val.(type) {
			case MainFunc, func(context.Context, *Tool) error:
			default:
				return fmt.Errorf("config key %q: want main function, got %T", key, val)
			}
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
	}

	for key, val := range overrides {
		switch key {
		case "tool_name":
			o.Name = val.(string)
		case "tool_version":
			o.Version = val.(string)
		case "has_config_file":
			o.ConfigFile = val.(bool)
		case "reload_on_hup":
			o.ReloadOnHUP = val.(bool)
		case "main":
			switch fn := val.(type) {
			case MainFunc:
				o.Main = fn
			case func(context.Context, *Tool) error:
				o.Main = fn
			}
		}
	}
	return nil
}

// configValue boxes the deserialized config so the live value can be
// swapped through an atomic pointer.
type configValue struct {
	value any
}

// Tool runs the startup lifecycle for one command-line tool.
type Tool struct {
	opts Options
	args parsedArgs
	cfg  atomic.Pointer[configValue]
}

// New creates a tool runner from the given options.
func New(opts Options) *Tool {
	opts.applyDefaults()
	return &Tool{opts: opts}
}

// Name returns the tool name used in the banner and usage output.
func (t *Tool) Name() string { return t.opts.Name }

// Version returns the tool version.
func (t *Tool) Version() string { return t.opts.Version }

// Config returns the current config snapshot, or nil when no config file
// has been loaded. The value is replaced wholesale on reload, so callers
// holding a snapshot never observe a partial update.
func (t *Tool) Config() any {
	if c := t.cfg.Load(); c != nil {
		return c.value
	}
	return nil
}
