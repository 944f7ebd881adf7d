// Package toolbase is a small lifecycle scaffold for command-line tools.
// It parses the common flags (--verbose, --logfile, and --cfg when the tool
// declares a config file), configures the process-wide logger, loads a YAML
// config file, and optionally re-reads it on SIGHUP before handing control
// to the tool's main function. Tools describe themselves with an Options
// struct rather than subclassing anything, so the scaffold composes with
// whatever CLI layer a tool already has — NewCommand mounts the same
// lifecycle as a cobra command.
package toolbase
