package errors

import stderrors "errors"

// Is, As and Unwrap forward to the standard library so callers importing this
// package do not also need the standard errors package.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
)
