// Package prefixeval evaluates arithmetic expressions written in prefix
// (Polish) notation, where each operator or function token precedes its
// operands: "+ 5 3" is 8, "- / 6 2 3" is 0. Tokens are numeric literals,
// variable names resolved against a caller-supplied mapping, the binary
// operators + - * / ^, or the unary functions sqrt, sin, cos and tan (the
// trigonometric functions take degrees).
//
// The one-call API is Evaluate. For the compile-once, run-many pattern, use
// FromString to build a reusable evaluator and bind per-call variables with
// AddDataToContext.
package prefixeval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mathpine/go-prefixeval/engines/prefix"
	"github.com/mathpine/go-prefixeval/engines/prefix/evaluator"
	"github.com/mathpine/go-prefixeval/platform"
	"github.com/mathpine/go-prefixeval/platform/data"
	"github.com/mathpine/go-prefixeval/platform/expr/loader"
)

// The two failure classifications. Every error returned by Evaluate wraps
// exactly one of these; callers branch with errors.Is.
var (
	ErrMalformedExpression = evaluator.ErrMalformedExpression
	ErrDivisionByZero      = evaluator.ErrDivisionByZero
)

// FromString creates a reusable evaluator from an expression string. The
// expression is tokenized once; variables are bound per call through
// AddDataToContext. A nil logHandler falls back to a default handler.
func FromString(expression string, logHandler slog.Handler) (platform.Evaluator, error) {
	l, err := loader.NewFromString(expression)
	if err != nil {
		return nil, err
	}

	return prefix.FromPrefixLoader(logHandler, l)
}

// FromStringWithData creates a reusable evaluator with a static variable
// mapping bound at construction. Variables added later through
// AddDataToContext override static ones with the same name.
func FromStringWithData(
	expression string,
	vars map[string]float64,
	logHandler slog.Handler,
) (platform.Evaluator, error) {
	l, err := loader.NewFromString(expression)
	if err != nil {
		return nil, err
	}

	return prefix.FromPrefixLoaderWithData(logHandler, l, toAnyMap(vars))
}

// Evaluate tokenizes and evaluates one expression against vars in a single
// call. The returned error always wraps either ErrMalformedExpression or
// ErrDivisionByZero; faults outside those two classifications are normalized
// into ErrMalformedExpression carrying the original description.
func Evaluate(
	ctx context.Context,
	expression string,
	vars map[string]float64,
) (float64, error) {
	if strings.TrimSpace(expression) == "" {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}

	l, err := loader.NewFromString(expression)
	if err != nil {
		return 0, normalize(err)
	}

	ev, err := prefix.NewEvaluator(
		slog.Default().Handler(),
		l,
		data.NewStaticProvider(toAnyMap(vars)),
	)
	if err != nil {
		return 0, normalize(err)
	}

	result, err := ev.Eval(ctx)
	if err != nil {
		return 0, normalize(err)
	}

	return result.Float64(), nil
}

// normalize folds unclassified faults into ErrMalformedExpression so callers
// of Evaluate only ever observe the two documented kinds.
func normalize(err error) error {
	if errors.Is(err, ErrMalformedExpression) || errors.Is(err, ErrDivisionByZero) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformedExpression, err)
}

func toAnyMap(vars map[string]float64) map[string]any {
	out := make(map[string]any, len(vars))
	for name, value := range vars {
		out[name] = value
	}
	return out
}
