package compiler

import "errors"

var ErrContentNil = errors.New("prefix expression content is nil")
var ErrNoTokens = errors.New("prefix expression has zero tokens")
var ErrExecCreationFailed = errors.New("unable to create prefix executable")
