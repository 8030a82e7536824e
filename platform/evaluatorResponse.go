package platform

// EvaluatorResponse is the result of one expression evaluation.
type EvaluatorResponse interface {
	// Interface converts the result to a native Go value.
	Interface() any

	// Float64 returns the numeric result of the evaluation.
	Float64() float64

	// Inspect returns a string representation of the result.
	Inspect() string

	// GetExprID returns the ID of the expression unit that produced the result.
	GetExprID() string

	// GetExecTime returns the wall-clock time the evaluation took.
	GetExecTime() string
}
