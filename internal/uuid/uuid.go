// Package uuid mints the ids handed out for encounters and characters.
// The indirection exists so tests can pin ids instead of parsing random
// ones out of results.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique id strings
type Generator interface {
	New() string
}

// GoogleUUIDGenerator is the production Generator, backed by google/uuid v4
type GoogleUUIDGenerator struct{}

// New returns a random UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
