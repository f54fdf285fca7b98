package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sortbench/internal/benchmark"
	"sortbench/internal/sorting"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func printBanner(w io.Writer) {
	title := "Go Sorting Algorithms Benchmark"
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("=", len(title))))
}

// progressObserver prints each size header and per-algorithm figures as the suite runs.
func progressObserver(w io.Writer) benchmark.Observer {
	return benchmark.Observer{
		SizeStarted: func(size int) {
			header := fmt.Sprintf("Testing with array size: %d", size)
			fmt.Fprintf(w, "\n%s\n", headerStyle.Render(header))
			fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", len(header))))
		},
		AlgorithmStarted: func(size int, alg sorting.Algorithm) {
			fmt.Fprintf(w, "Running %s...\n", alg.Name)
		},
		ResultRecorded: func(res benchmark.Result) {
			fmt.Fprintf(w, "  Execution time: %.6f seconds\n", res.ExecutionTime)
			fmt.Fprintf(w, "  Memory used: %.2f MB\n", res.MemoryUsedMB)
			fmt.Fprintf(w, "  Initial memory: %.2f MB\n", res.InitialMemoryMB)
			fmt.Fprintf(w, "  Final memory: %.2f MB\n", res.FinalMemoryMB)
		},
	}
}

func printSummary(w io.Writer, results []benchmark.Result) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render("Summary"))

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSIZE\tTIME (s)\tMEM USED (MB)\tINITIAL (MB)\tFINAL (MB)")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.2f\t%.2f\t%.2f\n",
			r.Algorithm, r.DataSize, r.ExecutionTime, r.MemoryUsedMB, r.InitialMemoryMB, r.FinalMemoryMB)
	}
	tw.Flush()
}
