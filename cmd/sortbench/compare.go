package main

import (
	"fmt"
	"text/tabwriter"

	"sortbench/internal/benchmark"
	"sortbench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCompareCmd(v *viper.Viper) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "compare <baseline.json> <current.json>",
		Short: "Compare two results files",
		Long: `Matches records of two results files by algorithm and data size and prints
the change in execution time (percent) and memory delta (MB). Changes beyond
--threshold percent are flagged as FAIL (slower) or IMPR (faster).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			telemetry.InitLogger(v.GetBool("verbose"), v.GetString("log_file"))

			prev, err := benchmark.ReadResults(args[0])
			if err != nil {
				return fmt.Errorf("failed to load baseline: %w", err)
			}
			curr, err := benchmark.ReadResults(args[1])
			if err != nil {
				return fmt.Errorf("failed to load current results: %w", err)
			}

			printComparison(cmd, prev, curr, threshold)
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "Percentage threshold for regression warning")
	return cmd
}

func printComparison(cmd *cobra.Command, prev, curr []benchmark.Result, threshold float64) {
	comparisons := benchmark.Compare(prev, curr)
	matched := make(map[string]benchmark.Comparison, len(comparisons))
	for _, c := range comparisons {
		matched[fmt.Sprintf("%s/%d", c.Algorithm, c.DataSize)] = c
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tTIME (s)\tDIFF %\tMEM DIFF (MB)\tSTATUS")

	for _, r := range curr {
		c, ok := matched[fmt.Sprintf("%s/%d", r.Algorithm, r.DataSize)]
		if !ok {
			fmt.Fprintf(w, "%s\t%d\t%.6f\t-\t-\tNEW\n", r.Algorithm, r.DataSize, r.ExecutionTime)
			continue
		}

		status := "PASS"
		if c.Regressed(threshold) {
			status = "FAIL"
			telemetry.LogWarn("Performance regression", "comparison", c.String(), "threshold", threshold)
		} else if c.Improved(threshold) {
			status = "IMPR"
		}

		fmt.Fprintf(w, "%s\t%d\t%.6f\t%+.2f%%\t%+.2f\t%s\n",
			r.Algorithm, r.DataSize, r.ExecutionTime, c.ExecutionTimeDiff, c.MemoryUsedDiff, status)
	}
	w.Flush()
}
