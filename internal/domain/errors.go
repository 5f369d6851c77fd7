package domain

import "errors"

// Core error taxonomy. All validation runs before any mutation, so none of
// these ever leaves a partial write behind. Match with errors.Is; the
// transport layer translates them to status codes.
var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrInternal        = errors.New("internal error")
)
