package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateIsVersioned(t *testing.T) {
	g := NewUUIDGenerator()

	parsed, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_GenerateIsTimeOrdered(t *testing.T) {
	g := NewUUIDGenerator()

	// v7 ids embed a millisecond timestamp prefix, so ids from consecutive
	// calls compare in generation order.
	first := g.Generate()
	second := g.Generate()

	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first, second)
}
