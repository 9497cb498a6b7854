package config

// Default values for configuration fields.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	DefaultParserMaxDepth = 4096

	DefaultBenchSeed   = "polycalc"
	DefaultBenchRuns   = 64
	DefaultBenchDepth  = 3
	DefaultBenchTerms  = 4
	DefaultBenchMaxExp = 8
)

// Default returns a configuration with every field set to its default value.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets the unset fields of cfg to their default values.
// Bench.CoeffBound has no default: its zero value is meaningful.
func ApplyDefaults(cfg *Config) {

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Parser.MaxDepth == 0 {
		cfg.Parser.MaxDepth = DefaultParserMaxDepth
	}

	if cfg.Bench.Seed == "" {
		cfg.Bench.Seed = DefaultBenchSeed
	}
	if cfg.Bench.Runs == 0 {
		cfg.Bench.Runs = DefaultBenchRuns
	}
	if cfg.Bench.Depth == 0 {
		cfg.Bench.Depth = DefaultBenchDepth
	}
	if cfg.Bench.Terms == 0 {
		cfg.Bench.Terms = DefaultBenchTerms
	}
	if cfg.Bench.MaxExp == 0 {
		cfg.Bench.MaxExp = DefaultBenchMaxExp
	}
}
