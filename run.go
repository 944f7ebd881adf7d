package toolbase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/pflag"
)

// Run executes the startup lifecycle: parse flags, configure logging,
// register the reload watcher, load the config file, then call the tool's
// main function. args is the command line without the program name
// (os.Args[1:]).
//
// The returned error is nil on normal completion, graceful interrupt, or
// --help; otherwise it is an *ExitError carrying the exit code for main
// to apply.
func (t *Tool) Run(args []string) error {
	pa, err := t.parseArgs(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	return t.run(pa)
}

// run is the lifecycle after flag parsing, shared by Run and the cobra
// adapter. Steps are strictly ordered: nothing logs before the logger is
// installed, and the reload watcher is registered before the initial load
// so a signal arriving during startup is not lost.
func (t *Tool) run(pa parsedArgs) error {
	t.args = pa

	if err := initLogging(pa.verbose, pa.logFile); err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	_, levelName := logLevel(pa.verbose)
	slog.Info("starting", "tool", t.opts.Name, "version", t.opts.Version)
	slog.Info("logging initialized", "level", levelName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if t.opts.ReloadOnHUP {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGHUP)
		defer signal.Stop(sigs)
		go t.watchReload(ctx, sigs)
	}

	if t.opts.ConfigFile {
		if err := t.loadConfig(); err != nil {
			if pa.verbose {
				slog.Error("failed to load config file", "path", pa.cfgPath, "error", err)
			} else {
				slog.Error("failed to load config file", "path", pa.cfgPath)
			}
			return &ExitError{Code: 1, Message: err.Error()}
		}
	}

	return t.runMain(ctx)
}

// runMain invokes the tool's main function with top-level containment. A
// graceful interrupt returns nil, any other failure is logged and mapped
// to exit code 1, and panics are recovered rather than re-raised so the
// failure is always reported through the logger.
func (t *Tool) runMain(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if t.args.verbose {
				slog.Error("tool main failed", "panic", r, "stack", string(debug.Stack()))
			} else {
				slog.Error("tool main failed", "panic", r)
			}
			err = &ExitError{Code: 1, Message: fmt.Sprintf("panic: %v", r)}
		}
	}()

	main := t.opts.Main
	if main == nil {
		main = defaultMain
	}

	mainErr := main(ctx, t)
	if mainErr == nil || errors.Is(mainErr, context.Canceled) {
		if ctx.Err() != nil {
			slog.Info("terminating on interrupt, good bye")
		}
		return nil
	}

	slog.Error("tool main failed", "error", mainErr)
	return &ExitError{Code: 1, Message: mainErr.Error()}
}

func defaultMain(ctx context.Context, t *Tool) error {
	slog.Info("default main function called, nothing to do")
	return nil
}
