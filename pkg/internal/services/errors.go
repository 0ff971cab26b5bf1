package services

import "errors"

// Failure classes surfaced by this package. Specific faults wrap one of
// these so the boundary can map them onto a response status with errors.Is,
// and callers know only the unavailable class is worth a retry.
var (
	ErrValidation   = errors.New("validation failed")
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("storage unavailable")
)
