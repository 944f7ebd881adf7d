package toolbase

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// loadConfigFile reads a YAML config file into a generic structured value
// (nested maps, lists, and scalars). No schema is enforced here — the tool
// decides what shape it expects.
func loadConfigFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return v, nil
}

// loadConfig re-reads the config file named by --cfg and swaps the live
// config in a single store. Readers see either the old snapshot or the new
// one, never a mix.
func (t *Tool) loadConfig() error {
	slog.Info("loading config file", "path", t.args.cfgPath)

	v, err := loadConfigFile(t.args.cfgPath)
	if err != nil {
		return err
	}

	t.cfg.Store(&configValue{value: v})
	return nil
}
