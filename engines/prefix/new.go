package prefix

import (
	"fmt"
	"log/slog"

	"github.com/mathpine/go-prefixeval/engines/prefix/compiler"
	"github.com/mathpine/go-prefixeval/engines/prefix/evaluator"
	"github.com/mathpine/go-prefixeval/platform/constants"
	"github.com/mathpine/go-prefixeval/platform/data"
	"github.com/mathpine/go-prefixeval/platform/expr"
	"github.com/mathpine/go-prefixeval/platform/expr/loader"
)

// FromPrefixLoader creates a prefix evaluator from a loader with dynamic
// variables only (ContextProvider).
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the expression text
//
// Returns an evaluator, which implements the platform.Evaluator interface.
func FromPrefixLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		ldr,
		data.NewContextProvider(constants.EvalData),
	)
}

// FromPrefixLoaderWithData creates a prefix evaluator with both static and
// dynamic variable capabilities. To add runtime variables, use the
// AddDataToContext method on the evaluator before calling Eval.
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the expression text
// - staticVars: variables available to every evaluation of this unit
//
// Returns an evaluator, which implements the platform.Evaluator interface.
func FromPrefixLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticVars map[string]any,
) (*evaluator.Evaluator, error) {
	staticProvider := data.NewStaticProvider(staticVars)
	dynamicProvider := data.NewContextProvider(constants.EvalData)
	compositeProvider := data.NewCompositeProvider(staticProvider, dynamicProvider)

	return NewEvaluator(
		logHandler,
		ldr,
		compositeProvider,
	)
}

// NewCompiler creates a new prefix compiler using the functional options
// pattern. Returns a compiler implementing the expr.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator creates a prefix evaluator with the expression tokenized and
// ready for execution.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	dataProvider data.Provider,
) (*evaluator.Evaluator, error) {
	if dataProvider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	var compilerOpts []compiler.FunctionalOption
	if logHandler != nil {
		compilerOpts = append(compilerOpts, compiler.WithLogHandler(logHandler))
	}
	comp, err := NewCompiler(compilerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prefix compiler: %w", err)
	}

	execUnitID := ""
	sourceURL := ldr.GetSourceURL()
	if sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	// Create executable unit (tokenizes and validates the expression)
	execUnit, err := expr.NewExecutableUnit(
		logHandler,
		execUnitID,
		ldr,
		comp,
		dataProvider,
	)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit), nil
}
