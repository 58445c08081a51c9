package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrTransport = errors.New("favorites service unreachable")
	ErrDecode    = errors.New("cannot decode response body")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// StatusError reports a response whose status code was not the one the
// endpoint defines as success. Body holds the raw (trimmed) response text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d", e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

// Unwrap returns the sentinel matching Code.
func (e *StatusError) Unwrap() error {
	return kindOf(e.Code)
}
