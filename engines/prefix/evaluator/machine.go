package evaluator

import (
	"fmt"
	"math"
	"strconv"
)

// machine runs one evaluation of a token program. Every Eval call allocates
// a fresh machine, so the cursor and the operator flag never leak between
// evaluations of the same unit.
type machine struct {
	tokens []string
	vars   map[string]float64
	pos    int

	// awaitingOperator starts true and flips to false the first time any
	// operator or function is dispatched, at any recursion depth. It is
	// owned by the machine rather than a recursion frame: only the class of
	// the very first token matters. That makes "5 3" an error while
	// "+ 5 3 9" evaluates to 8 with the 9 ignored.
	awaitingOperator bool
}

func newMachine(tokens []string, vars map[string]float64) *machine {
	return &machine{
		tokens:           tokens,
		vars:             vars,
		awaitingOperator: true,
	}
}

// run evaluates the top-level expression. Tokens left unconsumed after a
// complete application are not an error; remaining() reports them.
func (m *machine) run() (float64, error) {
	if len(m.tokens) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}
	return m.expr()
}

// remaining returns the count of tokens the top-level expression left behind.
func (m *machine) remaining() int {
	return len(m.tokens) - m.pos
}

// next consumes one token and advances the cursor. The cursor only ever
// moves forward; prefix notation needs no backtracking.
func (m *machine) next() (string, error) {
	if m.pos >= len(m.tokens) {
		return "", fmt.Errorf("%w: unexpected end of expression", ErrMalformedExpression)
	}
	tok := m.tokens[m.pos]
	m.pos++
	return tok, nil
}

// expr reads one token and evaluates the sub-expression it introduces.
// Resolution order is fixed: numeric literal, then variable, then operator.
// A variable whose name matches an operator keyword shadows the operator.
func (m *machine) expr() (float64, error) {
	tok, err := m.next()
	if err != nil {
		return 0, err
	}

	if v, convErr := strconv.ParseFloat(tok, 64); convErr == nil {
		// A bare number is only a complete expression when it stands alone.
		// Once any operator has been consumed the flag is down for good, so
		// literals at every later depth pass this check unconditionally.
		if len(m.tokens) > 1 && m.awaitingOperator {
			return 0, fmt.Errorf(
				"%w: bare number %q cannot start a multi-token expression",
				ErrMalformedExpression, tok)
		}
		return v, nil
	}

	if v, ok := m.vars[tok]; ok {
		return v, nil
	}

	switch tok {
	case "+", "-", "*", "/", "^":
		m.awaitingOperator = false
		left, err := m.expr()
		if err != nil {
			return 0, err
		}
		right, err := m.expr()
		if err != nil {
			return 0, err
		}
		return applyBinary(tok, left, right)
	case "sqrt":
		m.awaitingOperator = false
		arg, err := m.expr()
		if err != nil {
			return 0, err
		}
		return math.Sqrt(arg), nil
	case "sin", "cos", "tan":
		m.awaitingOperator = false
		arg, err := m.expr()
		if err != nil {
			return 0, err
		}
		return applyTrig(tok, arg), nil
	default:
		return 0, fmt.Errorf("%w: unrecognized token %q", ErrMalformedExpression, tok)
	}
}

func applyBinary(op string, left, right float64) (float64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		// Exact comparison with zero, not an epsilon check.
		if right == 0 {
			return 0, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, left)
		}
		return left / right, nil
	case "^":
		return math.Pow(left, right), nil
	}
	return 0, fmt.Errorf("%w: unrecognized operator %q", ErrMalformedExpression, op)
}

// applyTrig applies fn to an angle given in degrees.
func applyTrig(fn string, deg float64) float64 {
	rad := deg * math.Pi / 180
	switch fn {
	case "sin":
		return math.Sin(rad)
	case "cos":
		return math.Cos(rad)
	default:
		return math.Tan(rad)
	}
}
