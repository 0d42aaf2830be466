package storyboard

import "errors"

// ErrCaseNotFound indicates no case with the id exists in the workspace.
var ErrCaseNotFound = errors.New("case not found")
