package cli

import (
	"github.com/spf13/cobra"

	"github.com/shivanshkc/ctbench/internal/config"
)

// runSettings is the merged result of the config file and the command's flags.
// Both `run` and `list` resolve through it so they select the same benches.
type runSettings struct {
	config.File
}

// resolveRunSettings loads the config file, if any, and overrides it with every flag the
// user set explicitly. Flags the command does not define are never reported as changed.
func resolveRunSettings(cmd *cobra.Command) (runSettings, error) {
	var s runSettings
	if rootConfigPath != "" {
		f, err := config.Load(rootConfigPath)
		if err != nil {
			return runSettings{}, err
		}
		s.File = f
	}

	flags := cmd.Flags()
	if flags.Changed("filter") {
		s.Filter = rootFilter
	}
	if flags.Changed("continuous") {
		s.Continuous = runContinuous
	}
	if flags.Changed("out") {
		s.Out = runOut
	}
	if flags.Changed("verbose") {
		s.Verbose = runVerbose
	}
	return s, nil
}
