package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/ctbench/pkg/harness"
)

// listCmd prints the benchmarks that a run with the same filter would execute.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available benchmarks.",
	Long:  "Lists the available benchmarks, sorted by name, after applying --filter or the config file's filter.",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveRunSettings(cmd)
		if err != nil {
			return err
		}
		for _, b := range harness.Filter(benches, settings.Filter) {
			fmt.Fprintln(cmd.OutOrStdout(), b.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
