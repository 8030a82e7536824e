package expr

import "io"

// Compiler validates raw expression text and turns it into ExecutableContent.
type Compiler interface {
	// Compile reads the full expression from the reader, closes it, and
	// returns the tokenized content, or an error when the text is unusable.
	Compile(reader io.ReadCloser) (ExecutableContent, error)
}
