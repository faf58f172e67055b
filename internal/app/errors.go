package app

import "errors"

// Business-tier errors. They carry no HTTP concepts; the transport mapping
// lives in internal/transport/http/response.
var ErrNotFound = errors.New("entity not found")

// AlreadyExistsError signals a uniqueness conflict. Detail is safe to show
// to the caller.
type AlreadyExistsError struct {
	Detail string
}

func (e *AlreadyExistsError) Error() string {
	return e.Detail
}
