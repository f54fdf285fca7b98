package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	berrors "sortbench/internal/errors"
	"sortbench/internal/telemetry"
)

// DefaultDir is where fixtures live relative to the working directory.
const DefaultDir = "data/test"

// Loader defines the interface for loading a dataset by size.
type Loader interface {
	Load(size int) ([]int, error)
}

// FileLoader reads `<Dir>/test_data_<size>.json` files containing a JSON array of 32-bit integers.
type FileLoader struct {
	Dir string
}

func NewFileLoader(dir string) *FileLoader {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileLoader{Dir: dir}
}

// Path returns the fixture path for size.
func (l *FileLoader) Path(size int) string {
	return filepath.Join(l.Dir, fmt.Sprintf("test_data_%d.json", size))
}

// Load opens and decodes the fixture for size. Failures are returned as *errors.SetupError.
func (l *FileLoader) Load(size int) ([]int, error) {
	path := l.Path(size)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, berrors.NewSetupError(size, path, "open", err)
	}

	// Elements are signed 32-bit; the whole file must be a single array.
	var values []int32
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, berrors.NewSetupError(size, path, "decode", err)
	}
	if values == nil {
		return nil, berrors.NewSetupError(size, path, "decode", errors.New("expected a JSON array of integers, got null"))
	}

	data := make([]int, len(values))
	for i, v := range values {
		data[i] = int(v)
	}

	telemetry.LogDebug("Loaded dataset", "path", path, "size", size, "elements", len(data))
	return data, nil
}
