package utils

import "github.com/google/uuid"

// UUIDGenerator issues the X-Trace-ID values attached to outgoing requests.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new trace id. Ids sort by creation time, so log lines
// of consecutive menu actions stay in order; a random id is used when the
// time source is unavailable.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
