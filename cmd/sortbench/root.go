package main

import (
	"fmt"
	"os"

	"sortbench/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"data-dir":     "data_dir",
	"results-dir":  "results_dir",
	"source":       "source",
	"sizes":        "sizes",
	"algorithms":   "algorithms",
	"sampler":      "sampler",
	"force-gc":     "force_gc",
	"metrics-file": "metrics_file",
	"history-db":   "history_db",
	"verbose":      "verbose",
	"log-file":     "log_file",
}

var rootCmd = newRootCmd()

// newRootCmd builds the command tree around a fresh configuration instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Measure sorting algorithm time and memory over fixed datasets",
		Long: `sortbench loads integer datasets (data/test/test_data_<size>.json), runs every
configured sorting algorithm once per dataset while sampling memory before and
after, and writes the measurements to data/results/<source>_results.json.

Running without a subcommand is the same as "sortbench run".`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(v, cfgFile); err != nil {
				return err
			}
			for name, key := range flagKeys {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, v)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./sortbench.yaml)")
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("log-file", "", "Also write logs to this file")
	flags.String("data-dir", "data/test", "Directory holding test_data_<size>.json datasets")
	flags.String("results-dir", "data/results", "Directory for the results file")
	flags.String("source", "go", "Prefix of the results file (<source>_results.json)")
	flags.IntSlice("sizes", []int{1000, 5000, 10000}, "Dataset sizes to measure")
	flags.StringSlice("algorithms", []string{"insertion", "bubble"}, "Algorithms to measure, in order")
	flags.String("sampler", "system", `Memory sampler: "system" (host-wide) or "process" (RSS)`)
	flags.Bool("force-gc", false, "Run a garbage collection before each measurement")
	flags.String("metrics-file", "", "Write Prometheus metrics in text format to this file")
	flags.String("history-db", "", "Append runs to this SQLite file or postgres:// database")

	cmd.AddCommand(newRunCmd(v))
	cmd.AddCommand(newCompareCmd(v))
	cmd.AddCommand(newHistoryCmd(v))

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}
