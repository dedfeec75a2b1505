package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 generates a new UUID v7. Time ordering keeps catalog
// listings stable without an extra sort column.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (highly unlikely)
		return uuid.New()
	}
	return id
}

// GenerateFileID generates an opaque file id for stored logo objects.
func GenerateFileID() string {
	return GenerateUUIDv7().String()
}
