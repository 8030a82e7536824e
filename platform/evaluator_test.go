package platform_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mathpine/go-prefixeval/engines/prefix"
	"github.com/mathpine/go-prefixeval/engines/prefix/evaluator"
	"github.com/mathpine/go-prefixeval/platform"
	"github.com/mathpine/go-prefixeval/platform/expr/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The prefix engine must satisfy the platform contracts.
var _ platform.Evaluator = (*evaluator.Evaluator)(nil)

func TestEvaluatorContract(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromString("+ a b")
	require.NoError(t, err)

	var ev platform.Evaluator
	ev, err = prefix.FromPrefixLoader(slog.NewTextHandler(io.Discard, nil), ldr)
	require.NoError(t, err)

	ctx, err := ev.AddDataToContext(context.Background(), map[string]any{"a": 1.0, "b": 2.0})
	require.NoError(t, err)

	var response platform.EvaluatorResponse
	response, err = ev.Eval(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3.0, response.Float64())
	assert.Equal(t, any(3.0), response.Interface())
	assert.Equal(t, "3", response.Inspect())
	assert.NotEmpty(t, response.GetExprID())
	assert.NotEmpty(t, response.GetExecTime())
}
