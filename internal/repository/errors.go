package repository

import "errors"

// ErrDuplicateCase is returned when a case id is already taken in a workspace
var ErrDuplicateCase = errors.New("duplicate case id")
