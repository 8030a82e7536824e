package loader

import "errors"

var ErrExpressionNotAvailable = errors.New("expression not available")
