package activity

import "errors"

// ErrInvalidInput indicates a missing activity entry.
var ErrInvalidInput = errors.New("invalid activity input")
