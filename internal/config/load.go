package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sortbench/internal/benchmark"
	"sortbench/internal/dataset"
	"sortbench/internal/memory"
	"sortbench/internal/sorting"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SORTBENCH_DATA_DIR.
const EnvPrefix = "SORTBENCH"

// Config is the resolved configuration of one invocation.
type Config struct {
	DataDir     string
	ResultsDir  string
	Source      string
	Sizes       []int
	Algorithms  []string
	Sampler     string
	ForceGC     bool
	MetricsFile string
	HistoryDB   string
	Verbose     bool
	LogFile     string
}

// SetDefaults registers the defaults. Without overrides they reproduce the
// fixed paths, sizes and algorithms of the plain harness.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", dataset.DefaultDir)
	v.SetDefault("results_dir", benchmark.DefaultResultsDir)
	v.SetDefault("source", "go")
	v.SetDefault("sizes", append([]int(nil), benchmark.DefaultSizes...))
	v.SetDefault("algorithms", append([]string(nil), sorting.DefaultKeys...))
	v.SetDefault("sampler", memory.KindSystem)
	v.SetDefault("force_gc", false)
	v.SetDefault("metrics_file", "")
	v.SetDefault("history_db", "")
	v.SetDefault("verbose", false)
	v.SetDefault("log_file", "")
}

// Load initializes v from .env, the config file and environment variables.
// An explicit cfgFile must exist; the implicit ./sortbench.yaml is optional.
func Load(v *viper.Viper, cfgFile string) error {
	// explicit .env loading, a missing file is fine
	_ = godotenv.Load()

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("sortbench")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}

// Resolve reads the typed configuration out of v and validates it.
func Resolve(v *viper.Viper) (*Config, error) {
	sizes, err := intSlice(v.Get("sizes"))
	if err != nil {
		return nil, fmt.Errorf("invalid sizes: %w", err)
	}

	cfg := &Config{
		DataDir:     v.GetString("data_dir"),
		ResultsDir:  v.GetString("results_dir"),
		Source:      v.GetString("source"),
		Sizes:       sizes,
		Algorithms:  stringSlice(v.Get("algorithms")),
		Sampler:     strings.ToLower(v.GetString("sampler")),
		ForceGC:     v.GetBool("force_gc"),
		MetricsFile: v.GetString("metrics_file"),
		HistoryDB:   v.GetString("history_db"),
		Verbose:     v.GetBool("verbose"),
		LogFile:     v.GetString("log_file"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BenchmarkConfig converts the configuration into a suite configuration.
func (c *Config) BenchmarkConfig() (benchmark.Config, error) {
	algs, err := sorting.Resolve(c.Algorithms)
	if err != nil {
		return benchmark.Config{}, err
	}
	return benchmark.Config{
		Sizes:      append([]int(nil), c.Sizes...),
		Algorithms: algs,
		ForceGC:    c.ForceGC,
	}, nil
}

// intSlice accepts lists from YAML and flags as well as "1000,5000" strings from the environment.
func intSlice(raw any) ([]int, error) {
	s, ok := raw.(string)
	if !ok {
		return cast.ToIntSliceE(raw)
	}

	var out []int
	for _, field := range splitList(s) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", field)
		}
		out = append(out, n)
	}
	return out, nil
}

func stringSlice(raw any) []string {
	if s, ok := raw.(string); ok {
		return splitList(s)
	}
	return cast.ToStringSlice(raw)
}

func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '[' || r == ']'
	})
	return fields
}
