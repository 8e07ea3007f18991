// Package cli contains all the command-line interface logic for the application,
// powered by the cobra library. It defines the root command, subcommands,
// and their respective flags.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/ctbench/pkg/harness"
)

var (
	// rootFilter and rootConfigPath hold the values from the root command's persistent flags.
	// Defining them at the package level allows all subcommands within this
	// package (like `run` and `list`) to access these shared values directly.
	rootFilter     string
	rootConfigPath string

	// benches is the explicit benchmark list handed to Execute.
	benches []harness.Bench
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point and parent for all other commands.
var rootCmd = &cobra.Command{
	Use:   "ctbench",
	Short: "Detect timing leaks by comparing execution times of two input classes.",
	Long: `Detect timing leaks by comparing execution times of two input classes.
Each benchmark times its code under test on "Left" and "Right" inputs; ctbench
runs percentile-cropped Welch t-tests and reports the largest |t|. A |t| above 5
is strong evidence of a leak. A small |t| proves nothing.`,
	SilenceUsage: true,
}

// Execute is the primary entry point for the CLI application, called by main.go with
// the benchmarks the binary was built with.
//
// It sets up a single, root cancellable context and wires it up to respond
// to OS interruption signals (like Ctrl+C or SIGTERM). Continuous runs stop
// after the round in progress when this context is canceled.
func Execute(list []harness.Bench) error {
	benches = list

	// Create a root context that can be canceled.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up a channel to listen for specific OS signals.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	// Launch a goroutine to cancel the context upon receiving a signal.
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Execute the root command with the cancellable context.
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFilter, "filter", "f",
		"", "Only use benchmarks whose name contains this substring.")

	rootCmd.PersistentFlags().StringVarP(&rootConfigPath, "config", "c",
		"", "Path to an optional YAML config file.")
}
