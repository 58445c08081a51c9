package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/app"
)

// statusOf extracts the HTTP status carried by err, if any.
func statusOf(err error) (*adapter.StatusError, bool) {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// describeFailure renders errors that are not a status the caller handles
// itself: unreachable server, undecodable body, or anything unexpected.
func describeFailure(err error) string {
	switch {
	case errors.Is(err, adapter.ErrDecode):
		return fmt.Sprintf(app.MsgDecodeError, err)
	default:
		return fmt.Sprintf(app.MsgConnectionError, err)
	}
}
