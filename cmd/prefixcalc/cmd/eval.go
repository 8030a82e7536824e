package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mathpine/go-prefixeval"
	"github.com/mathpine/go-prefixeval/internal/format"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression tokens...]",
	Short: "Evaluate a single expression and exit",
	Long: `Evaluates one prefix-notation expression and prints the result.

Examples:
  prefixcalc eval "+ 5 3"
  prefixcalc eval - / 6 2 3
  prefixcalc eval --vars vars.yaml "+ x 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	cfg.mergeFlags()

	formatter, err := format.New(cfg.Locale, cfg.Precision)
	if err != nil {
		return err
	}

	vars, err := LoadVariables(varsFile)
	if err != nil {
		return err
	}

	expression := strings.Join(args, " ")
	result, err := prefixeval.Evaluate(cmd.Context(), expression, vars)
	if err != nil {
		fmt.Fprintln(os.Stderr, classifyError(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.Number(result))
	return nil
}

// classifyError renders the two failure kinds with distinct prefixes.
func classifyError(err error) string {
	switch {
	case errors.Is(err, prefixeval.ErrDivisionByZero):
		return fmt.Sprintf("arithmetic error: %v", err)
	case errors.Is(err, prefixeval.ErrMalformedExpression):
		return fmt.Sprintf("syntax error: %v", err)
	default:
		return err.Error()
	}
}
