package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUID(CharacterPrefix)

	id := gen.Generate()

	require.True(t, strings.HasPrefix(id, "char_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}

func TestUUIDGeneratorWithoutPrefix(t *testing.T) {
	_, err := uuid.Parse(NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequential("char")
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	bare := NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
