package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"sortbench/internal/db"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs from the history database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := v.GetString("history_db")
			if target == "" {
				return fmt.Errorf("no history database configured (use --history-db or SORTBENCH_HISTORY_DB)")
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got: %d", limit)
			}

			store, err := db.NewStore(db.ConfigFromTarget(target))
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}
			printHistory(cmd, runs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of most recent runs to show")
	return cmd
}

func printHistory(cmd *cobra.Command, runs []db.StoredRun) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSOURCE\tRECORDS\tTOTAL TIME (s)")
	for _, run := range runs {
		var total float64
		for _, r := range run.Results {
			total += r.ExecutionTime
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.6f\n",
			run.ID, run.CreatedAt.Local().Format(time.DateTime), run.Source, len(run.Results), total)
	}
	w.Flush()
}
