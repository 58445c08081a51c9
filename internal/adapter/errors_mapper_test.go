package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatusError_Kinds(t *testing.T) {
	tests := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusTeapot:              ErrUnexpectedStatus,
	}

	for code, want := range tests {
		err := newStatusError(code, "body")
		assert.ErrorIs(t, err, want, "code %d", code)
		assert.Equal(t, code, err.Code)
	}
}

func TestStatusError_Error(t *testing.T) {
	assert.Equal(t, "http 418", newStatusError(http.StatusTeapot, "").Error())
	assert.Equal(t, "http 404: gone", newStatusError(http.StatusNotFound, "gone").Error())
}

func TestTransportError_Wraps(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := transportError("list favorites", cause)

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, cause)
}
