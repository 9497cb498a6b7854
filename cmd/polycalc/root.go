package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/polycalc/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "polycalc",
	Short: "Stack calculator over sparse multivariate polynomials",
	Long: `Polycalc is a line-oriented stack calculator over sparse multivariate
polynomials with 64-bit integer coefficients.

Each input line is either a polynomial literal, pushed on the stack, or a
command operating on the top of the stack:

  ZERO IS_COEFF IS_ZERO CLONE ADD MUL NEG SUB IS_EQ DEG DEG_BY <k>
  AT <x> PRINT POP COMPOSE <k> HASH

A literal is a scalar or a sum of monomials (coeff,exp) where coeff is itself
a literal in the next variable, e.g. ((1,2),3)+(-4,0).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "polycalc.yaml", "config file path (defaults apply if missing)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

// setup loads the configuration and builds the logger of a command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("configuration loaded", "path", cfgFile, "level", cfg.Log.Level, "format", cfg.Log.Format)

	return cfg, logger, nil
}
