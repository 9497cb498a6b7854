package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/polycalc/calculator"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the stack calculator",
	Long: `Run the stack calculator on the lines of file, or of the standard input if
no file is given.

Results are written to the standard output. Erroneous lines are reported on
the standard error as "ERROR <line> <reason>" and do not stop the execution.

Examples:
  polycalc run < commands.txt
  polycalc run commands.txt --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalculator,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runCalculator(cmd *cobra.Command, args []string) (err error) {

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	input, name := cmd.InOrStdin(), "stdin"

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot run: %w", err)
		}
		defer f.Close()
		input, name = f, args[0]
	}

	out := bufio.NewWriter(cmd.OutOrStdout())

	calc := calculator.NewCalculator(out, cmd.ErrOrStderr(), calculator.Config{
		MaxDepth: cfg.Parser.MaxDepth,
		Logger:   logger,
	})

	logger.Info("calculator started", "input", name, "max_depth", cfg.Parser.MaxDepth)

	err = calc.Run(input)

	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("cannot run: %w", ferr)
	}

	logger.Info("calculator finished", "lines", calc.Lines(), "stack", calc.Stack().Len())

	calc.Reset()

	return
}
