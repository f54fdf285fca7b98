package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		v := viper.New()
		require.NoError(t, Load(v, ""))

		cfg, err := Resolve(v)
		require.NoError(t, err)

		assert.Equal(t, "data/test", cfg.DataDir)
		assert.Equal(t, "data/results", cfg.ResultsDir)
		assert.Equal(t, "go", cfg.Source)
		assert.Equal(t, []int{1000, 5000, 10000}, cfg.Sizes)
		assert.Equal(t, []string{"insertion", "bubble"}, cfg.Algorithms)
		assert.Equal(t, "system", cfg.Sampler)
		assert.False(t, cfg.ForceGC)
		assert.Empty(t, cfg.MetricsFile)
		assert.Empty(t, cfg.HistoryDB)
	})

	t.Run("Load From Env", func(t *testing.T) {
		t.Setenv("SORTBENCH_SIZES", "10, 20")
		t.Setenv("SORTBENCH_ALGORITHMS", "bubble")
		t.Setenv("SORTBENCH_SAMPLER", "Process")
		t.Setenv("SORTBENCH_SOURCE", "ci")

		v := viper.New()
		require.NoError(t, Load(v, ""))

		cfg, err := Resolve(v)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 20}, cfg.Sizes)
		assert.Equal(t, []string{"bubble"}, cfg.Algorithms)
		assert.Equal(t, "process", cfg.Sampler)
		assert.Equal(t, "ci", cfg.Source)
	})

	t.Run("Load From File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		content := `
data_dir: fixtures
sizes: [3, 5]
algorithms:
  - insertion
force_gc: true
history_db: runs.db
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		v := viper.New()
		require.NoError(t, Load(v, path))

		cfg, err := Resolve(v)
		require.NoError(t, err)
		assert.Equal(t, "fixtures", cfg.DataDir)
		assert.Equal(t, []int{3, 5}, cfg.Sizes)
		assert.Equal(t, []string{"insertion"}, cfg.Algorithms)
		assert.True(t, cfg.ForceGC)
		assert.Equal(t, "runs.db", cfg.HistoryDB)
	})

	t.Run("Explicit File Missing", func(t *testing.T) {
		v := viper.New()
		err := Load(v, filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("Invalid Sizes In Env", func(t *testing.T) {
		t.Setenv("SORTBENCH_SIZES", "10,abc")

		v := viper.New()
		require.NoError(t, Load(v, ""))

		_, err := Resolve(v)
		assert.ErrorContains(t, err, `"abc" is not an integer`)
	})
}

func TestBenchmarkConfig(t *testing.T) {
	cfg := &Config{
		Sizes:      []int{1000},
		Algorithms: []string{"bubble", "insertion"},
		ForceGC:    true,
	}

	bc, err := cfg.BenchmarkConfig()
	require.NoError(t, err)
	assert.Equal(t, []int{1000}, bc.Sizes)
	require.Len(t, bc.Algorithms, 2)
	assert.Equal(t, "Bubble Sort", bc.Algorithms[0].Name)
	assert.Equal(t, "Insertion Sort", bc.Algorithms[1].Name)
	assert.True(t, bc.ForceGC)

	cfg.Algorithms = []string{"merge"}
	_, err = cfg.BenchmarkConfig()
	assert.Error(t, err)
}
