package passbuilder

import "errors"

// ErrMissingExecute indicates Build was called without an Execute
// function ever having been set via WithExecute.
var ErrMissingExecute = errors.New("passbuilder: execute function is required")
