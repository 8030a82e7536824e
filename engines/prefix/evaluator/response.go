package evaluator

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// execResult carries the numeric result of one evaluation, plus metadata
// about which expression unit produced it and how long the run took.
type execResult struct {
	value    float64
	execTime time.Duration
	exprID   string

	logHandler slog.Handler
	logger     *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	value float64,
	execTime time.Duration,
	exprID string,
) *execResult {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stderr, nil)
		handler = defaultHandler.WithGroup("prefix")
		defaultLogger := slog.New(handler)
		defaultLogger.Warn("Handler is nil, using the default logger configuration.")
	}

	return &execResult{
		value:      value,
		execTime:   execTime,
		exprID:     exprID,
		logHandler: handler,
		logger:     slog.New(handler.WithGroup("execResult")),
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Value: %v, ExecTime: %s, ExprID: %s}",
		r.value, r.GetExecTime(), r.GetExprID())
}

// Interface returns the result as a native Go value.
func (r *execResult) Interface() any {
	return r.value
}

// Float64 returns the numeric result.
func (r *execResult) Float64() float64 {
	return r.value
}

// Inspect renders the result using the shortest representation that
// round-trips through ParseFloat.
func (r *execResult) Inspect() string {
	return strconv.FormatFloat(r.value, 'g', -1, 64)
}

func (r *execResult) GetExprID() string {
	return r.exprID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
