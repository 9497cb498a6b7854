package config

import (
	"fmt"
	"strings"

	"github.com/tuneinsight/polycalc/poly"
	"github.com/tuneinsight/polycalc/utils/sampling"
)

// MaxSeedLen is the maximum length of the bench seed, which keys a sampling.KeyedPRNG.
const MaxSeedLen = sampling.MaxKeySize

// FieldError is a validation error on a single configuration field.
type FieldError struct {
	// Field is the dotted YAML path of the field, e.g. "log.level".
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {

	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid configuration: %s", e.Errors[0])
	}

	msgs := make([]string, len(e.Errors))
	for i := range e.Errors {
		msgs[i] = e.Errors[i].Error()
	}

	return fmt.Sprintf("invalid configuration: %d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Validate returns a ValidationError listing every invalid field of cfg, or nil.
func Validate(cfg *Config) error {

	var errs []FieldError

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{"log.level", fmt.Sprintf("invalid level %q, must be one of debug, info, warn, error", cfg.Log.Level)})
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, FieldError{"log.format", fmt.Sprintf("invalid format %q, must be text or json", cfg.Log.Format)})
	}

	if len(cfg.Bench.Seed) > MaxSeedLen {
		errs = append(errs, FieldError{"bench.seed", fmt.Sprintf("must be at most %d bytes long, got %d", MaxSeedLen, len(cfg.Bench.Seed))})
	}

	if cfg.Bench.Runs < 1 {
		errs = append(errs, FieldError{"bench.runs", fmt.Sprintf("must be at least 1, got %d", cfg.Bench.Runs)})
	}

	if cfg.Bench.Depth < 0 {
		errs = append(errs, FieldError{"bench.depth", fmt.Sprintf("must be non-negative, got %d", cfg.Bench.Depth)})
	}

	if cfg.Bench.Terms < 1 {
		errs = append(errs, FieldError{"bench.terms", fmt.Sprintf("must be at least 1, got %d", cfg.Bench.Terms)})
	}

	if cfg.Bench.MaxExp > poly.MaxExponent {
		errs = append(errs, FieldError{"bench.max_exp", fmt.Sprintf("must be at most %d, got %d", poly.MaxExponent, cfg.Bench.MaxExp)})
	}

	if cfg.Bench.CoeffBound < 0 {
		errs = append(errs, FieldError{"bench.coeff_bound", fmt.Sprintf("must be non-negative, got %d", cfg.Bench.CoeffBound)})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}
