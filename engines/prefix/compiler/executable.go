package compiler

import "slices"

// Executable holds a tokenized prefix expression. The token slice is fixed
// at construction and handed out as copies, so a single Executable can back
// any number of concurrent evaluations.
type Executable struct {
	source string
	tokens []string
}

// NewExecutable returns nil when the source or token sequence is empty.
func NewExecutable(source string, tokens []string) *Executable {
	if source == "" || len(tokens) == 0 {
		return nil
	}

	return &Executable{
		source: source,
		tokens: slices.Clone(tokens),
	}
}

// GetSource returns the original expression text.
func (e *Executable) GetSource() string {
	return e.source
}

// GetTokens returns a copy of the token sequence in source order.
func (e *Executable) GetTokens() []string {
	return slices.Clone(e.tokens)
}
