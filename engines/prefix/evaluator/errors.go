package evaluator

import "errors"

// ErrMalformedExpression classifies every syntactic failure: an empty token
// sequence, running out of tokens while an operator still expects operands,
// an unrecognized operator or function token, and a leading bare number
// followed by more tokens. Wrapped errors carry the specific condition.
var ErrMalformedExpression = errors.New("malformed expression")

// ErrDivisionByZero classifies a division whose denominator evaluates to
// exactly zero. It is reported distinctly from ErrMalformedExpression because
// it is a runtime arithmetic condition, not a syntactic one.
var ErrDivisionByZero = errors.New("division by zero")
