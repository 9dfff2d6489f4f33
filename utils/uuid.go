package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ValidID reports whether id has the fixed-length identifier format produced
// by GenerateID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
