package service

import "errors"

var (
	// ErrBlankInput is returned when the user submitted an empty value.
	// No request is sent in that case.
	ErrBlankInput = errors.New("blank input")
)
