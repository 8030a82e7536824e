package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	varsFile      string
	localeFlag    string
	precisionFlag int
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "prefixcalc",
	Short: "Prefix (Polish) notation calculator",
	Long: `prefixcalc evaluates arithmetic expressions written in prefix notation:
the operator comes first, so no parentheses or precedence rules are needed.

  + 5 3        -> 8
  - / 6 2 3    -> 0
  sqrt 16      -> 4
  sin 90       -> 1 (trigonometric functions take degrees)

Without arguments an interactive session starts. Variables can be supplied
from a YAML file with --vars, or assigned in-session with "let".`,
	RunE:          runREPL,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default: ~/.prefixcalc.toml)")
	rootCmd.PersistentFlags().
		StringVar(&varsFile, "vars", "", "YAML file with variable definitions")
	rootCmd.PersistentFlags().
		StringVar(&localeFlag, "locale", "", "BCP 47 tag for number output (overrides config)")
	rootCmd.PersistentFlags().
		IntVar(&precisionFlag, "precision", -2, "fraction digits for output, -1 for shortest (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// newLogHandler builds the handler handed to the evaluation stack.
func newLogHandler() slog.Handler {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}
