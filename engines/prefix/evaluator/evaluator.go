// Package evaluator implements single-pass recursive-descent evaluation of
// prefix (Polish) notation arithmetic. An operator or function token precedes
// its operands, so the identity of a token fully determines how many
// subsequent tokens it consumes; no syntax tree is built and no backtracking
// occurs.
//
// Two behaviors are deliberate and surprising:
//
//   - A variable whose name matches an operator or function keyword shadows
//     that keyword, so "sin" with a variable sin=7 evaluates to 7.
//   - Tokens left over after a complete top-level application are silently
//     ignored: "+ 5 3 9" evaluates to 8. Only a leading bare number followed
//     by more tokens (such as "5 3") is rejected.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mathpine/go-prefixeval/internal/helpers"
	"github.com/mathpine/go-prefixeval/platform"
	"github.com/mathpine/go-prefixeval/platform/data"
	"github.com/mathpine/go-prefixeval/platform/expr"
)

// Evaluator runs a tokenized prefix expression against the variable mapping
// supplied by the executable unit's data provider.
type Evaluator struct {
	// execUnit contains the token program and data provider
	execUnit *expr.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object
func New(handler slog.Handler, execUnit *expr.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "prefix", "Evaluator")

	return &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "prefix.Evaluator"
}

// loadVariables retrieves the variable mapping using the data provider in
// the executable unit and converts it to the float64 form the machine needs.
func (be *Evaluator) loadVariables(ctx context.Context) (map[string]float64, error) {
	logger := be.logger.WithGroup("loadVariables")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		logger.WarnContext(ctx, "no data provider available, using empty variable mapping")
		return make(map[string]float64), nil
	}

	inputData, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get variable mapping from provider", "error", err)
		return nil, err
	}

	vars, err := toVariableMap(inputData)
	if err != nil {
		logger.ErrorContext(ctx, "variable mapping rejected", "error", err)
		return nil, err
	}

	logger.DebugContext(ctx, "variable mapping loaded from provider", "vars", vars)
	return vars, nil
}

// Eval evaluates the tokenized expression using the variable mapping bound
// to the provided context. The returned error, when the evaluation itself
// fails, wraps either ErrMalformedExpression or ErrDivisionByZero.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	exprID := be.execUnit.GetID()
	if exprID == "" {
		return nil, fmt.Errorf("exprID is empty")
	}
	logger = logger.With("exprID", exprID)

	tokens := be.execUnit.GetContent().GetTokens()

	vars, err := be.loadVariables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get variable mapping: %w", err)
	}

	m := newMachine(tokens, vars)
	startTime := time.Now()
	value, err := m.run()
	execTime := time.Since(startTime)
	if err != nil {
		return nil, err
	}

	if left := m.remaining(); left > 0 {
		// Observed-behavior quirk: leftovers are ignored, not rejected.
		logger.DebugContext(ctx, "tokens left unconsumed after top-level application",
			"remaining", left)
	}

	result := newEvalResult(be.logHandler, value, execTime, exprID)
	logger.DebugContext(ctx, "evaluation complete", "result", result)
	return result, nil
}

// AddDataToContext implements the data.Setter interface, binding a variable
// mapping to the context for a later Eval call.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	return data.AddDataToContextHelper(
		ctx,
		logger,
		be.execUnit.GetDataProvider(),
		d...,
	)
}
