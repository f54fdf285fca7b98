package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	berrors "sortbench/internal/errors"
)

// DefaultResultsDir is where result files are written relative to the working directory.
const DefaultResultsDir = "data/results"

// Writer defines the interface for persisting a result collection.
type Writer interface {
	Write(results []Result) error
}

// FileWriter writes results as an indented JSON array to `<dir>/<source>_results.json`.
type FileWriter struct {
	path string
}

func NewFileWriter(dir, source string) *FileWriter {
	if dir == "" {
		dir = DefaultResultsDir
	}
	return &FileWriter{path: ResultsPath(dir, source)}
}

// ResultsPath returns the results file location for source.
func ResultsPath(dir, source string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_results.json", source))
}

// Path returns the destination file.
func (w *FileWriter) Path() string {
	return w.path
}

// Write encodes results and replaces the destination file. The document is
// fully encoded and written to a temporary file first, so a failure never
// leaves a partial results file behind. Failures are *errors.OutputError.
func (w *FileWriter) Write(results []Result) error {
	if results == nil {
		results = []Result{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return berrors.NewOutputError(w.path, "encode", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return berrors.NewOutputError(w.path, "create", fmt.Errorf("failed to create directory %s: %w", dir, err))
	}

	tmp, err := os.CreateTemp(dir, ".results-*.json")
	if err != nil {
		return berrors.NewOutputError(w.path, "create", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return berrors.NewOutputError(w.path, "write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return berrors.NewOutputError(w.path, "write", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return berrors.NewOutputError(w.path, "write", err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return berrors.NewOutputError(w.path, "create", err)
	}

	return nil
}

// ReadResults loads a results file written by FileWriter.
func ReadResults(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var results []Result
	if len(data) == 0 {
		return []Result{}, nil
	}

	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results from %s: %w", path, err)
	}
	return results, nil
}
