// Description: This file contains constants used for accessing values from context objects.
package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// EvalData is the key used to store the variable mapping in the context
// before it is sent to the evaluator. Load with ctx.Value().
const EvalData ContextKey = "eval_data"
