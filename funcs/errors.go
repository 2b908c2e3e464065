package funcs

import "errors"

// ErrInvalidWait is returned by [Throttle] when the window is negative.
var ErrInvalidWait = errors.New("funcs: wait must not be negative")
