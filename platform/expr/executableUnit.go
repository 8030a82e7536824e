package expr

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mathpine/go-prefixeval/internal/helpers"
	"github.com/mathpine/go-prefixeval/platform/data"
	"github.com/mathpine/go-prefixeval/platform/expr/loader"
)

const checksumLength = 12

// ExecutableUnit pairs a tokenized expression with the data provider that
// supplies its variable mapping. It is immutable after construction, so one
// unit can serve many evaluations, including concurrent ones.
type ExecutableUnit struct {
	// ID is a unique identifier for this unit, typically derived from a hash
	// of the expression text.
	ID string

	// CreatedAt records when this unit was instantiated.
	CreatedAt time.Time

	// SourceLoader loads the expression text (inline string, bytes, etc.).
	SourceLoader loader.Loader

	// Compiler is the engine-specific compiler that tokenized this unit.
	Compiler Compiler

	// Content holds the source text and the immutable token sequence.
	Content ExecutableContent

	// DataProvider supplies the variable mapping at evaluation time,
	// enabling the "compile once, run many times" design.
	DataProvider data.Provider

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit creates a new ExecutableUnit from the provided loader and
// compiler. When unitID is empty, an ID is derived from a checksum of the
// expression text.
func NewExecutableUnit(
	handler slog.Handler,
	unitID string,
	sourceLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "expr", "ExecutableUnit")

	if compiler == nil {
		return nil, errors.New("compiler is nil")
	}
	if sourceLoader == nil {
		return nil, errors.New("loader is nil")
	}

	reader, err := sourceLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	content, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if unitID == "" {
		unitID = helpers.SHA256(content.GetSource())
		if len(unitID) > checksumLength {
			unitID = unitID[:checksumLength]
		}
	}

	return &ExecutableUnit{
		ID:           unitID,
		CreatedAt:    time.Now(),
		SourceLoader: sourceLoader,
		Compiler:     compiler,
		Content:      content,
		DataProvider: dataProvider,
		logHandler:   handler,
		logger:       logger.With("ID", unitID),
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.SourceLoader)
}

// GetID returns the unique identifier for this expression unit.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the validated and tokenized expression content.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetCreatedAt returns the timestamp when the unit was created.
func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetCompiler returns the compiler used to tokenize the expression.
func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

// GetLoader returns the loader used to load the expression text.
func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.SourceLoader
}

// GetDataProvider returns the provider that supplies the variable mapping.
func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}
