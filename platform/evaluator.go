package platform

import (
	"context"

	"github.com/mathpine/go-prefixeval/platform/data"
)

// EvalOnly is the interface for the generic expression evaluator.
type EvalOnly interface {
	// Eval evaluates the pre-tokenized expression with variables from the
	// context. The expression and its configuration were provided during
	// evaluator creation; the variable mapping is retrieved through the
	// ExecutableUnit's DataProvider.
	//
	// This design encourages the "compile once, run many times" pattern,
	// where tokenization is separated from evaluation. For per-call
	// variables, use a ContextProvider with the constants.EvalData key.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Evaluator combines the EvalOnly and data.Setter interfaces, providing a
// unified API for variable binding and expression evaluation. It allows
// these steps to be performed separately while maintaining their logical
// connection.
type Evaluator interface {
	EvalOnly
	data.Setter
}
