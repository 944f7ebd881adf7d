package toolbase

import (
	"github.com/spf13/cobra"
)

// NewCommand mounts the tool lifecycle as a cobra command, for tools that
// embed the scaffold in a larger CLI. The command carries the same flags
// Run would parse; cobra enforces the required --cfg flag and owns usage
// output, and the lifecycle from logging setup onward is identical.
func NewCommand(opts Options) *cobra.Command {
	t := New(opts)

	cmd := &cobra.Command{
		Use:          t.opts.Name,
		Version:      t.opts.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pa parsedArgs
			pa.verbose, _ = cmd.Flags().GetBool("verbose")
			pa.logFile, _ = cmd.Flags().GetString("logfile")
			if t.opts.ConfigFile {
				pa.cfgPath, _ = cmd.Flags().GetString("cfg")
			}
			return t.run(pa)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "enable verbose logging output")
	cmd.Flags().StringP("logfile", "l", "", "append log output to this file")
	if t.opts.ConfigFile {
		cmd.Flags().StringP("cfg", "c", "", "path to the YAML config file (required)")
		_ = cmd.MarkFlagRequired("cfg")
	}

	return cmd
}
