package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mathpine/go-prefixeval/internal/helpers"
	"github.com/mathpine/go-prefixeval/platform/expr"
)

// Compiler turns raw prefix-notation text into an immutable token sequence.
// "Compilation" here is deliberately minimal: the grammar is unambiguous, so
// splitting on whitespace is the entire front end. Structural validation
// happens during evaluation, where operand counts are known.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new prefix Compiler instance with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if c.logger != nil {
		// User provided a custom logger
		c.logHandler = c.logger.Handler()
	} else {
		// User provided a handler or we're using the default
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "prefix", "Compiler")
	}

	return c, nil
}

func (c *Compiler) String() string {
	return "prefix.Compiler"
}

// Compile reads the expression text and tokenizes it into ExecutableContent.
func (c *Compiler) Compile(reader io.ReadCloser) (expr.ExecutableContent, error) {
	if reader == nil {
		return nil, ErrContentNil
	}

	sourceBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read expression: %w", err)
	}

	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(sourceBytes)
}

func (c *Compiler) compile(sourceBytes []byte) (*Executable, error) {
	logger := c.logger.WithGroup("compile")
	if len(sourceBytes) == 0 {
		return nil, ErrContentNil
	}
	source := string(sourceBytes)

	// Fields collapses runs of whitespace and discards empty tokens.
	tokens := strings.Fields(source)
	if len(tokens) == 0 {
		logger.Warn("Empty expression content")
		return nil, ErrNoTokens
	}

	logger.Debug("Tokenization successful", "source", source, "tokenCount", len(tokens))

	executable := NewExecutable(source, tokens)
	if executable == nil {
		logger.Error("Failed to create executable from tokens")
		return nil, ErrExecCreationFailed
	}

	return executable, nil
}
