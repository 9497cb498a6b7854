// Package config implements the YAML configuration of the polycalc command.
package config

// Config is the root configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Parser ParserConfig `yaml:"parser"`
	Bench  BenchConfig  `yaml:"bench"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
	// Format is either "text" or "json".
	Format string `yaml:"format"`
}

// ParserConfig configures the polynomial literal parser used by the calculator.
type ParserConfig struct {
	// MaxDepth bounds the nesting of literals. Zero selects DefaultParserMaxDepth and a
	// negative value disables the bound.
	MaxDepth int `yaml:"max_depth"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	// Seed keys the deterministic PRNG the random operands are drawn from.
	Seed string `yaml:"seed"`
	// Runs is the number of timed runs per operation.
	Runs int `yaml:"runs"`
	// Depth is the number of variables of the operands.
	Depth int `yaml:"depth"`
	// Terms is the maximum number of monomials per nesting level.
	Terms int `yaml:"terms"`
	// MaxExp is the largest exponent drawn.
	MaxExp uint32 `yaml:"max_exp"`
	// CoeffBound bounds the scalar coefficients. Zero draws over the full int64 range.
	CoeffBound int64 `yaml:"coeff_bound"`
}
