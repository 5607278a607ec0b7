package utils

import "github.com/google/uuid"

// UUIDGenerator issues the time-ordered ids that tag each sync pass in logs,
// so runs sort chronologically when filtering by sync_run_id.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
