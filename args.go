package toolbase

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// parsedArgs holds the flag values for one Run invocation.
type parsedArgs struct {
	verbose bool
	logFile string
	cfgPath string
}

// parseArgs builds the tool's flag set and parses args. The --cfg flag is
// only registered when the tool declares a config file, and is required in
// that case. Parse failures map to exit code 2; pflag.ErrHelp passes
// through so Run can treat --help as a clean exit.
func (t *Tool) parseArgs(args []string) (parsedArgs, error) {
	var pa parsedArgs

	fs := pflag.NewFlagSet(t.opts.Name, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n%s", t.opts.Name, fs.FlagUsages())
	}
	fs.BoolVarP(&pa.verbose, "verbose", "v", false, "enable verbose logging output")
	fs.StringVarP(&pa.logFile, "logfile", "l", "", "append log output to this file")
	if t.opts.ConfigFile {
		fs.StringVarP(&pa.cfgPath, "cfg", "c", "", "path to the YAML config file (required)")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return pa, err
		}
		return pa, &ExitError{Code: 2, Message: err.Error()}
	}

	if t.opts.ConfigFile && pa.cfgPath == "" {
		fs.Usage()
		return pa, &ExitError{Code: 2, Message: fmt.Sprintf("%s: required flag --cfg not set", t.opts.Name)}
	}

	return pa, nil
}
