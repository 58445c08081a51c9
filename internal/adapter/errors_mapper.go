package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// expectStatus returns nil when resp carries exactly the want status and a
// [*StatusError] otherwise.
func expectStatus(resp *resty.Response, want int) error {
	if resp.StatusCode() == want {
		return nil
	}

	return newStatusError(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

func newStatusError(code int, body string) *StatusError {
	return &StatusError{Code: code, Body: body}
}

func kindOf(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

func decodeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDecode, op, err)
}
