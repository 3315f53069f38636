package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator assigns lexicographically sortable IDs to rows as they are
// first saved.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
