package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mathpine/go-prefixeval"
	"github.com/mathpine/go-prefixeval/internal/format"
	"github.com/spf13/cobra"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// session holds the state of one interactive run: the variable mapping and
// the output formatter. Expressions themselves carry no state between lines.
type session struct {
	vars      map[string]float64
	formatter *format.Formatter
	out       io.Writer
}

func runREPL(cmd *cobra.Command, args []string) error {
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

	s := &session{
		vars:      vars,
		formatter: formatter,
		out:       cmd.OutOrStdout(),
	}

	fmt.Fprintln(s.out, mutedStyle.Render(
		`prefix notation calculator; "help" lists commands, "quit" leaves`))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(s.out, promptStyle.Render(cfg.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		if quit := s.handleLine(cmd.Context(), scanner.Text()); quit {
			return nil
		}
	}
}

// handleLine processes one line of input and reports whether the session
// should end.
func (s *session) handleLine(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		// Re-prompt on empty input.
		return false
	case line == "quit" || line == "exit":
		fmt.Fprintln(s.out, mutedStyle.Render("bye"))
		return true
	case line == "help":
		s.printHelp()
		return false
	case line == "vars":
		s.printVars()
		return false
	}

	if rest, ok := strings.CutPrefix(line, "let "); ok {
		s.assign(ctx, rest)
		return false
	}

	s.evaluate(ctx, line)
	return false
}

func (s *session) evaluate(ctx context.Context, expression string) {
	result, err := prefixeval.Evaluate(ctx, expression, s.vars)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render(classifyError(err)))
		return
	}
	fmt.Fprintln(s.out, resultStyle.Render(s.formatter.Number(result)))
}

// assign handles "let name expression". The right-hand side is itself a
// prefix expression evaluated against the current variables.
func (s *session) assign(ctx context.Context, rest string) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		fmt.Fprintln(s.out, errorStyle.Render("usage: let <name> <expression>"))
		return
	}

	name := fields[0]
	if _, err := strconv.ParseFloat(name, 64); err == nil {
		fmt.Fprintln(s.out, errorStyle.Render(
			fmt.Sprintf("%q is a number, not a usable variable name", name)))
		return
	}

	value, err := prefixeval.Evaluate(ctx, strings.Join(fields[1:], " "), s.vars)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render(classifyError(err)))
		return
	}

	s.vars[name] = value
	fmt.Fprintf(s.out, "%s = %s\n", name, resultStyle.Render(s.formatter.Number(value)))
}

func (s *session) printVars() {
	if len(s.vars) == 0 {
		fmt.Fprintln(s.out, mutedStyle.Render("no variables defined"))
		return
	}
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(s.out, "%s = %s\n", name, s.formatter.Number(s.vars[name]))
	}
}

func (s *session) printHelp() {
	fmt.Fprintln(s.out, `operators: + - * / ^   functions: sqrt sin cos tan (degrees)
  <expression>          evaluate, e.g. "+ 5 3" or "- / 6 2 3"
  let <name> <expr>     assign a variable, e.g. "let x + 1 2"
  vars                  list defined variables
  quit | exit           leave`)
}
