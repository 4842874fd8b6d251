package services

import "errors"

// ErrNotFound is the typed not-found outcome surfaced by the service layer;
// handlers translate it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ValidationError names the first missing required field of a request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}
