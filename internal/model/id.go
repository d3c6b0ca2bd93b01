package model

import "github.com/google/uuid"

// NewGridID returns a fresh identifier suitable for stamping a synthetic
// "id" tag onto a grid built programmatically via GridBuilder rather than
// parsed from Zinc text.
func NewGridID() string {
	return uuid.NewString()
}
