package toolbase

import (
	"context"
	"log/slog"
	"os"
	"syscall"
)

// watchReload receives reload signals and re-reads the config file. It
// runs as a plain goroutine, so the reload itself happens outside signal
// context — the runtime only pushes the signal onto the channel.
//
// A failed reload keeps the last-known-good config and logs the error;
// only the startup load is fatal. Returns when the context is canceled or
// the channel closes.
func (t *Tool) watchReload(ctx context.Context, sigs <-chan os.Signal) {
	for {
		select {
		case sig, ok := <-sigs:
			if !ok {
				return
			}
			if sig != syscall.SIGHUP || !t.opts.ReloadOnHUP {
				continue
			}

			slog.Info("reloading configuration", "signal", sig.String())
			if t.opts.OnReload != nil {
				t.opts.OnReload(t)
			}
			if t.opts.ConfigFile {
				if err := t.loadConfig(); err != nil {
					slog.Error("config reload failed, keeping previous config", "error", err)
				}
			}
		case <-ctx.Done():
			return
		}
	}
}
