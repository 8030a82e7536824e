package evaluator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalTokens(t *testing.T, source string, vars map[string]float64) (float64, error) {
	t.Helper()
	return newMachine(strings.Fields(source), vars).run()
}

func TestMachine_Arithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		vars   map[string]float64
		want   float64
	}{
		{name: "addition", source: "+ 5 3", want: 8},
		{name: "subtraction is left minus right", source: "- 5 3", want: 2},
		{name: "multiplication", source: "* 4 2.5", want: 10},
		{name: "division", source: "/ 6 2", want: 3},
		{name: "power", source: "^ 2 10", want: 1024},
		{name: "nested operands", source: "- / 6 2 3", want: 0},
		{name: "deeply nested", source: "+ * 2 3 - 10 ^ 2 2", want: 12},
		{name: "single number", source: "42", want: 42},
		{name: "single negative number", source: "-3.5", want: -3.5},
		{name: "negative literal operand", source: "+ -2 5", want: 3},
		{name: "sqrt", source: "sqrt 16", want: 4},
		{name: "variable operand", source: "+ x 3", vars: map[string]float64{"x": 2}, want: 5},
		{name: "both operands variables", source: "* x y", vars: map[string]float64{"x": 3, "y": 4}, want: 12},
		{name: "single variable", source: "answer", vars: map[string]float64{"answer": 42}, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalTokens(t, tt.source, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMachine_TrigInDegrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   float64
	}{
		{name: "sin 90 is 1", source: "sin 90", want: 1},
		{name: "sin 0 is 0", source: "sin 0", want: 0},
		{name: "cos 0 is 1", source: "cos 0", want: 1},
		{name: "cos 60 is one half", source: "cos 60", want: 0.5},
		{name: "tan 45 is 1", source: "tan 45", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalTokens(t, tt.source, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestMachine_VariableShadowsOperator(t *testing.T) {
	t.Parallel()

	t.Run("function name as variable", func(t *testing.T) {
		got, err := evalTokens(t, "sin", map[string]float64{"sin": 7})
		require.NoError(t, err)
		assert.Equal(t, 7.0, got, "variable lookup takes priority over function dispatch")
	})

	t.Run("operator symbol as variable", func(t *testing.T) {
		got, err := evalTokens(t, "+", map[string]float64{"+": 3})
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	})

	t.Run("number check still precedes variable lookup", func(t *testing.T) {
		got, err := evalTokens(t, "5", map[string]float64{"5": 9})
		require.NoError(t, err)
		assert.Equal(t, 5.0, got, "a token that parses as a number is never a variable")
	})
}

func TestMachine_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		vars     map[string]float64
		wantErr  error
		contains string
	}{
		{
			name:     "empty expression",
			source:   "",
			wantErr:  ErrMalformedExpression,
			contains: "empty expression",
		},
		{
			name:     "operator without operands",
			source:   "+",
			wantErr:  ErrMalformedExpression,
			contains: "unexpected end of expression",
		},
		{
			name:     "operator with one operand",
			source:   "+ 5",
			wantErr:  ErrMalformedExpression,
			contains: "unexpected end of expression",
		},
		{
			name:     "function without operand",
			source:   "sqrt",
			wantErr:  ErrMalformedExpression,
			contains: "unexpected end of expression",
		},
		{
			name:     "leading bare number with trailing tokens",
			source:   "5 3",
			wantErr:  ErrMalformedExpression,
			contains: "bare number",
		},
		{
			name:     "unrecognized token",
			source:   "log 10",
			wantErr:  ErrMalformedExpression,
			contains: "unrecognized token",
		},
		{
			name:     "unknown variable",
			source:   "+ missing 3",
			wantErr:  ErrMalformedExpression,
			contains: "unrecognized token",
		},
		{
			name:    "division by zero literal",
			source:  "/ 5 0",
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "division by zero via variable",
			source:  "/ 5 z",
			vars:    map[string]float64{"z": 0},
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "division by zero in nested operand",
			source:  "+ 1 / 2 - 3 3",
			wantErr: ErrDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evalTokens(t, tt.source, tt.vars)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}

func TestMachine_OperatorFlagIsEvaluationScoped(t *testing.T) {
	t.Parallel()

	t.Run("literals pass at every depth after first operator", func(t *testing.T) {
		// Every literal after the leading "-" sits at a different nesting
		// depth; none of them trip the bare-number guard.
		got, err := evalTokens(t, "- / 6 2 3", nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("trailing tokens after complete application are ignored", func(t *testing.T) {
		m := newMachine([]string{"+", "5", "3", "9"}, nil)
		got, err := m.run()
		require.NoError(t, err)
		assert.Equal(t, 8.0, got)
		assert.Equal(t, 1, m.remaining(), "the 9 is left unconsumed, not rejected")
	})

	t.Run("guard only fires for a leading bare number", func(t *testing.T) {
		_, err := evalTokens(t, "5 3", nil)
		require.ErrorIs(t, err, ErrMalformedExpression)
	})
}

func TestMachine_DivisionIsExactZeroCheck(t *testing.T) {
	t.Parallel()

	// Tiny but nonzero denominators divide normally.
	got, err := evalTokens(t, "/ 1 0.0000001", nil)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e7, got, 1e-9)
}

func TestMachine_Idempotence(t *testing.T) {
	t.Parallel()

	vars := map[string]float64{"x": 2}
	first, err := evalTokens(t, "+ * x 3 sqrt 2", vars)
	require.NoError(t, err)
	second, err := evalTokens(t, "+ * x 3 sqrt 2", vars)
	require.NoError(t, err)

	assert.Equal(t, math.Float64bits(first), math.Float64bits(second),
		"repeat evaluations must be bit-identical")
}

func TestMachine_CursorNeverRewinds(t *testing.T) {
	t.Parallel()

	m := newMachine([]string{"+", "1", "2"}, nil)
	_, err := m.run()
	require.NoError(t, err)
	assert.Equal(t, 0, m.remaining())

	// A drained machine reports exhaustion rather than restarting.
	_, err = m.next()
	assert.ErrorIs(t, err, ErrMalformedExpression)
}
