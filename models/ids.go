package models

import "github.com/google/uuid"

// NewID generates a locally-unique record identifier. UUIDv7 is preferred so
// that ids sort roughly by creation time; falls back to v4 if the system
// clock misbehaves.
func NewID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}
