package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mathpine/go-prefixeval/internal/helpers"
)

// FromString implements the Loader interface for inline expression text.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a new loader from an expression string.
// The content is trimmed of whitespace and must be non-empty.
func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrExpressionNotAvailable)
	}

	// A URL with a short checksum, so each distinct expression gets a stable identifier
	u, err := url.Parse("string://inline/" + helpers.SHA256(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the expression.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
