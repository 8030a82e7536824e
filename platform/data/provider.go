package data

import (
	"context"
)

// Getter defines the interface for retrieving data from a context.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares data for expression evaluation by enriching a context.
// This interface supports separating variable preparation from evaluation, so
// a caller can bind variables once and evaluate many times, or bind a fresh
// set per call.
type Setter interface {
	// AddDataToContext enriches a context with variables for expression
	// evaluation. The variadic data parameter accepts maps from variable name
	// to value; later maps override earlier ones for duplicate keys.
	//
	// Example:
	//  vars := map[string]any{"x": 2.0, "y": 40.0}
	//  enrichedCtx, err := evaluator.AddDataToContext(ctx, vars)
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(enrichedCtx)
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider defines the interface for accessing the variable mapping used
// during expression evaluation.
type Provider interface {
	// Getter retrieves the variable mapping from a context during evaluation.
	Getter

	// Setter enriches a context with a link to the variable mapping, allowing
	// the evaluation to resolve variable tokens against it.
	Setter
}
