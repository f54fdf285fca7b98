package main

import (
	"fmt"
	"time"

	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/dataset"
	"sortbench/internal/db"
	"sortbench/internal/memory"
	"sortbench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newSamplerFunc allows swapping the OS-backed sampler in tests.
var newSamplerFunc = memory.New

func newRunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite and write the results file",
		Long: `Runs every configured algorithm against every configured dataset size.
Each dataset is loaded once and shared by all algorithms. Results are written
only after the whole suite finished; a missing or malformed dataset aborts the
run without writing anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, v)
		},
	}
}

func runSuite(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Resolve(v)
	if err != nil {
		return err
	}
	telemetry.InitLogger(cfg.Verbose, cfg.LogFile)

	benchCfg, err := cfg.BenchmarkConfig()
	if err != nil {
		return err
	}

	sampler, err := newSamplerFunc(cfg.Sampler)
	if err != nil {
		return fmt.Errorf("failed to create memory sampler: %w", err)
	}

	telemetry.LogInfo("Starting benchmark suite",
		"sizes", cfg.Sizes,
		"algorithms", cfg.Algorithms,
		"sampler", cfg.Sampler,
		"data_dir", cfg.DataDir,
	)

	out := cmd.OutOrStdout()
	printBanner(out)

	suite := benchmark.NewSuite(benchCfg, dataset.NewFileLoader(cfg.DataDir), sampler).
		WithObserver(progressObserver(out))

	results, err := suite.Run()
	if err != nil {
		return fmt.Errorf("benchmark aborted: %w", err)
	}

	writer := benchmark.NewFileWriter(cfg.ResultsDir, cfg.Source)
	if err := writer.Write(results); err != nil {
		return err
	}
	telemetry.LogInfo("Results written", "path", writer.Path(), "records", len(results))

	printSummary(out, results)
	fmt.Fprintf(out, "\nResults saved to %s\n", writer.Path())

	if cfg.MetricsFile != "" {
		if err := writeMetrics(cfg.MetricsFile, results); err != nil {
			return err
		}
		fmt.Fprintf(out, "Metrics written to %s\n", cfg.MetricsFile)
	}

	if cfg.HistoryDB != "" {
		id, err := saveHistory(cfg.HistoryDB, benchmark.Run{
			Timestamp: time.Now(),
			Source:    cfg.Source,
			Results:   results,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Run #%d recorded in history\n", id)
	}

	return nil
}

func writeMetrics(path string, results []benchmark.Result) error {
	m := telemetry.NewMetrics()
	for _, r := range results {
		m.Observe(r.Algorithm, r.DataSize, r.ExecutionTime, r.MemoryUsedMB)
	}
	return m.WriteTextfile(path)
}

func saveHistory(target string, run benchmark.Run) (int64, error) {
	store, err := db.NewStore(db.ConfigFromTarget(target))
	if err != nil {
		return 0, fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(run)
	if err != nil {
		return 0, fmt.Errorf("failed to save run to history: %w", err)
	}
	return id, nil
}
