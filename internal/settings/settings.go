// Package settings loads msaviz runtime configuration: a YAML file overlaid
// with MSAVIZ_* environment variables, optionally seeded from a .env file.
package settings

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/msaviz/core"
	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/internal/observability"
)

// Settings holds all msaviz configuration.
type Settings struct {
	// RefData is the reference calibration directory.
	RefData string `yaml:"refdata"`

	Log     LogSettings                 `yaml:"log"`
	Solver  SolverSettings              `yaml:"solver"`
	Compute ComputeSettings             `yaml:"compute"`
	Server  ServerSettings              `yaml:"server"`
	Tracing observability.TracingConfig `yaml:"tracing"`
}

// LogSettings configures the process logger.
type LogSettings struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SolverSettings configures trace integration.
type SolverSettings struct {
	RelTol          float64 `yaml:"rel_tol"`
	AbsTol          float64 `yaml:"abs_tol"`
	DivergenceLimit float64 `yaml:"divergence_limit"` // microns
}

// ComputeSettings configures full-grid recomputation.
type ComputeSettings struct {
	Workers   int `yaml:"workers"`
	BatchSize int `yaml:"batch_size"`
}

// ServerSettings configures the gRPC service.
type ServerSettings struct {
	GRPCAddr    string `yaml:"grpc_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the built-in configuration.
func Default() *Settings {
	return &Settings{
		RefData: "refdata",
		Log:     LogSettings{Level: "info", Format: "text"},
		Solver: SolverSettings{
			RelTol:          core.DefaultRelTol,
			AbsTol:          core.DefaultAbsTol,
			DivergenceLimit: core.DefaultDivergenceLimit,
		},
		Compute: ComputeSettings{Workers: runtime.GOMAXPROCS(0), BatchSize: 256},
		Server:  ServerSettings{GRPCAddr: ":50051", MetricsAddr: ":9090"},
		Tracing: observability.DefaultTracingConfig(),
	}
}

// Load reads the YAML file at path (skipped when path is empty) on top of
// the defaults, then applies environment overrides. A missing file is an
// error only when path was given explicitly.
func Load(path string) (*Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}
	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadDotEnv loads variables from the given .env files without overriding
// variables already set. Files that do not exist are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func (s *Settings) applyEnv() error {
	if v := os.Getenv("MSAVIZ_REFDATA"); v != "" {
		s.RefData = v
	}
	if v := os.Getenv("MSAVIZ_LOG_LEVEL"); v != "" {
		s.Log.Level = v
	}
	if v := os.Getenv("MSAVIZ_LOG_FORMAT"); v != "" {
		s.Log.Format = v
	}
	if v := os.Getenv("MSAVIZ_GRPC_ADDR"); v != "" {
		s.Server.GRPCAddr = v
	}
	if v := os.Getenv("MSAVIZ_METRICS_ADDR"); v != "" {
		s.Server.MetricsAddr = v
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"MSAVIZ_REL_TOL", &s.Solver.RelTol},
		{"MSAVIZ_ABS_TOL", &s.Solver.AbsTol},
		{"MSAVIZ_DIVERGENCE_LIMIT", &s.Solver.DivergenceLimit},
	}
	for _, f := range floats {
		if v := os.Getenv(f.key); v != "" {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = parsed
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MSAVIZ_WORKERS", &s.Compute.Workers},
		{"MSAVIZ_BATCH_SIZE", &s.Compute.BatchSize},
	}
	for _, i := range ints {
		if v := os.Getenv(i.key); v != "" {
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: %w", i.key, err)
			}
			*i.dst = parsed
		}
	}

	s.Tracing = observability.ApplyTracingEnv(s.Tracing)
	return nil
}

// Validate checks that numeric settings are usable.
func (s *Settings) Validate() error {
	switch {
	case s.RefData == "":
		return errors.New("settings: refdata directory not configured")
	case s.Solver.RelTol <= 0 || s.Solver.AbsTol <= 0:
		return fmt.Errorf("settings: tolerances must be positive (rel %g, abs %g)", s.Solver.RelTol, s.Solver.AbsTol)
	case s.Solver.DivergenceLimit <= 0:
		return fmt.Errorf("settings: divergence limit must be positive, got %g", s.Solver.DivergenceLimit)
	case s.Compute.Workers < 0 || s.Compute.BatchSize < 0:
		return fmt.Errorf("settings: workers and batch size must not be negative")
	case s.Tracing.SampleRatio < 0 || s.Tracing.SampleRatio > 1:
		return fmt.Errorf("settings: tracing sample ratio %g outside [0,1]", s.Tracing.SampleRatio)
	}
	return nil
}

// Logger builds the process logger from the log settings, writing to w
// (stderr when nil).
func (s *Settings) Logger(w io.Writer) logging.Logger {
	return logging.New(logging.Config{Level: s.Log.Level, Format: s.Log.Format, Writer: w})
}

// SolverOptions returns the solver configuration as options.
func (s *Settings) SolverOptions() []core.SolverOption {
	return []core.SolverOption{
		core.WithTolerance(s.Solver.RelTol, s.Solver.AbsTol),
		core.WithDivergenceLimit(s.Solver.DivergenceLimit),
	}
}

// MSAConfigOptions returns the aggregator configuration as options, with the
// solver options folded in.
func (s *Settings) MSAConfigOptions() []core.MSAConfigOption {
	return []core.MSAConfigOption{
		core.WithWorkers(s.Compute.Workers),
		core.WithBatchSize(s.Compute.BatchSize),
		core.WithSolverOptions(s.SolverOptions()...),
	}
}
