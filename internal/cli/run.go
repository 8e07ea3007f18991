package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
	"github.com/shivanshkc/ctbench/pkg/harness"
)

var (
	runContinuous bool
	runOut        string
	runVerbose    bool
)

// runCmd runs the benchmarks and prints one report line per bench (or per round in
// continuous mode).
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmarks.",
	Long: `Runs every benchmark matching --filter once, or with --continuous runs the first
matching benchmark round after round until interrupted, accumulating samples.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		settings, err := resolveRunSettings(cmd)
		if err != nil {
			return err
		}

		opts := harness.Options{
			Filter:        settings.Filter,
			Continuous:    settings.Continuous,
			RunnerOptions: []ctbench.Option{ctbench.WithBandTable(settings.BandTable())},
			Logger:        newLogger(cmd.ErrOrStderr(), settings.Verbose),
		}

		if settings.Out != "" {
			file, ferr := os.Create(settings.Out)
			if ferr != nil {
				return fmt.Errorf("could not open %s for writing: %w", settings.Out, ferr)
			}
			defer closeInto(&err, file, settings.Out)
			opts.Out = file
		}

		con := newConsole(cmd.OutOrStdout(), benches)
		if err := harness.Run(cmd.Context(), opts, benches, con.handle); err != nil {
			return err
		}
		return con.finish(settings.Continuous)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runContinuous, "continuous", false,
		"Run the first matching benchmark continuously until interrupted.")

	runCmd.Flags().StringVarP(&runOut, "out", "o", "",
		"Write raw samples in CSV format to this file.")

	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false,
		"Log debug diagnostics to stderr.")
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// closeInto closes c and stores a close failure in *err unless an earlier error is set.
// The CSV output is buffered by the OS, so a failed close can mean lost samples.
func closeInto(err *error, c io.Closer, name string) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("could not close %s: %w", name, cerr)
	}
}
