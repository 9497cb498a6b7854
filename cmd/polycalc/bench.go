package main

import (
	"fmt"
	"io"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/polycalc/config"
	"github.com/tuneinsight/polycalc/poly"
	"github.com/tuneinsight/polycalc/utils"
	"github.com/tuneinsight/polycalc/utils/sampling"
)

var benchFlags struct {
	runs   int
	seed   string
	random bool
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the polynomial operations on random operands",
	Long: `Time Add, Mul, At, Compose and Digest on random polynomials and report the
mean, median and standard deviation of each operation, in microseconds.

The operands are drawn from a PRNG keyed with the configured seed, so that two
runs with the same configuration time the same operations.

Examples:
  polycalc bench
  polycalc bench --runs 1000 --seed other
  polycalc bench --random`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchFlags.runs, "runs", 0, "number of runs per operation (overrides bench.runs)")
	benchCmd.Flags().StringVar(&benchFlags.seed, "seed", "", "PRNG seed (overrides bench.seed)")
	benchCmd.Flags().BoolVar(&benchFlags.random, "random", false, "draw the operands from crypto/rand instead of the seeded PRNG")
}

// benchResult holds the durations of one operation, in microseconds.
type benchResult struct {
	name      string
	durations []float64
}

func runBench(cmd *cobra.Command, args []string) error {

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	bench := cfg.Bench

	if benchFlags.runs != 0 {
		bench.Runs = benchFlags.runs
	}

	if benchFlags.seed != "" {
		bench.Seed = benchFlags.seed
	}

	if err := config.Validate(&config.Config{Log: cfg.Log, Parser: cfg.Parser, Bench: bench}); err != nil {
		return fmt.Errorf("cannot bench: %w", err)
	}

	var prng sampling.PRNG
	if benchFlags.random {
		prng = sampling.NewPRNG()
	} else {
		if prng, err = sampling.NewKeyedPRNG([]byte(bench.Seed)); err != nil {
			return fmt.Errorf("cannot bench: %w", err)
		}
	}

	sampler, err := poly.NewSampler(prng, poly.SamplerParams{
		Depth:      bench.Depth,
		Terms:      bench.Terms,
		MaxExp:     bench.MaxExp,
		CoeffBound: bench.CoeffBound,
	})
	if err != nil {
		return fmt.Errorf("cannot bench: %w", err)
	}

	logger.Info("benchmark started", "runs", bench.Runs, "depth", bench.Depth, "terms", bench.Terms, "max_exp", bench.MaxExp, "random", benchFlags.random)

	results := benchmarkOperations(sampler, bench.Runs)

	logger.Info("benchmark finished")

	return printBenchResults(cmd.OutOrStdout(), bench, results)
}

// benchmarkOperations times every operation on runs pairs of random operands.
func benchmarkOperations(sampler *poly.Sampler, runs int) []benchResult {

	// Compose substitutes x_v with x_0 + v + 1, which keeps the degree of the operand.
	subs := make([]poly.Polynomial, sampler.Params().Depth)
	for v := range subs {
		subs[v] = poly.NewMonomial(poly.NewScalar(1), 1).Add(poly.NewScalar(int64(v + 1)))
	}

	ops := []struct {
		name string
		f    func(p, q poly.Polynomial) poly.Polynomial
	}{
		{"Add", func(p, q poly.Polynomial) poly.Polynomial { return p.Add(q) }},
		{"Mul", func(p, q poly.Polynomial) poly.Polynomial { return p.Mul(q) }},
		{"At", func(p, q poly.Polynomial) poly.Polynomial { return p.At(3) }},
		{"Compose", func(p, q poly.Polynomial) poly.Polynomial { return p.Compose(subs) }},
		{"Digest", func(p, q poly.Polynomial) poly.Polynomial { p.Digest(); return poly.Zero() }},
	}

	results := make([]benchResult, len(ops))
	for i := range ops {
		results[i] = benchResult{name: ops[i].name, durations: make([]float64, 0, runs)}
	}

	for run := 0; run < runs; run++ {

		p, q := sampler.Read(), sampler.Read()

		for i, op := range ops {
			start := time.Now()
			res := op.f(p, q)
			results[i].durations = append(results[i].durations, float64(time.Since(start).Nanoseconds())/1e3)
			res.Release()
		}
	}

	return results
}

func printBenchResults(w io.Writer, bench config.BenchConfig, results []benchResult) (err error) {

	widths := make([]int, len(results))
	for i := range results {
		widths[i] = len(results[i].name)
	}
	width := utils.MaxSlice(widths)

	if _, err = fmt.Fprintf(w, "Averaged durations over %d runs (depth=%d, terms=%d, max_exp=%d):\n", bench.Runs, bench.Depth, bench.Terms, bench.MaxExp); err != nil {
		return
	}

	for _, res := range results {

		mean, _ := stats.Mean(res.durations)
		median, _ := stats.Median(res.durations)
		stddev, _ := stats.StandardDeviation(res.durations)

		if _, err = fmt.Fprintf(w, "  %-*s  mean %10.3f us  median %10.3f us  stddev %10.3f us\n", width, res.name, mean, median, stddev); err != nil {
			return
		}
	}

	return
}
