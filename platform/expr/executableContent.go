package expr

// ExecutableContent represents a validated expression, tokenized and ready
// for evaluation. Implementations store the raw source text alongside the
// immutable token sequence the compiler produced from it.
type ExecutableContent interface {
	// GetSource returns the original expression text before tokenization.
	GetSource() string

	// GetTokens returns the token sequence in source order. The returned
	// slice is the caller's to keep; the content's own copy never changes.
	GetTokens() []string
}
