package protocodec

import "errors"

var (
	// ErrSchemaUnavailable is returned by [New] when the favorites schema
	// cannot be compiled or a message type cannot be resolved.
	ErrSchemaUnavailable = errors.New("favorites protobuf schema unavailable")

	// ErrMalformedPayload is returned by [Codec.Decode] when the body is not
	// a valid ListaReceitas message.
	ErrMalformedPayload = errors.New("malformed favorites payload")

	// ErrIDOutOfRange is returned by [Codec.Encode] for ids that do not fit
	// the int32 id field of Receita.
	ErrIDOutOfRange = errors.New("recipe id out of int32 range")
)
