package auth

import "github.com/google/uuid"

type IDGenerator interface {
	NewID() string
}

// UUIDGenerator mints random (version 4) UUIDs for session ids.
type UUIDGenerator struct{}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
