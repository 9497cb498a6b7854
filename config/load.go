package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file-based configuration.
const (
	EnvLogLevel       = "POLYCALC_LOG_LEVEL"
	EnvLogFormat      = "POLYCALC_LOG_FORMAT"
	EnvParserMaxDepth = "POLYCALC_PARSER_MAX_DEPTH"
	EnvBenchSeed      = "POLYCALC_BENCH_SEED"
)

// Load reads the YAML configuration at path, applies the environment overrides and the
// defaults, then validates the result. A zero value set from the environment is defaulted
// like a zero value read from the file.
//
// An empty path or a missing file yields the default configuration, still subject to
// the environment overrides.
func Load(path string) (*Config, error) {

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("cannot Load: failed to read configuration file %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("cannot Load: failed to parse configuration file %q: %w", path, err)
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("cannot Load: %w", err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("cannot Load: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies the POLYCALC_* environment variables to cfg.
func applyEnvOverrides(cfg *Config) error {

	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.Log.Level = val
	}

	if val := os.Getenv(EnvLogFormat); val != "" {
		cfg.Log.Format = val
	}

	if val := os.Getenv(EnvParserMaxDepth); val != "" {
		depth, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvParserMaxDepth, val, err)
		}
		cfg.Parser.MaxDepth = depth
	}

	if val := os.Getenv(EnvBenchSeed); val != "" {
		cfg.Bench.Seed = val
	}

	return nil
}
