package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewId returns a random UUID without dashes, used to name pools and instrument instances.
//
func NewId() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// ShortId returns the first 8 characters of NewId.
//
func ShortId() string {
	return NewId()[:8]
}
