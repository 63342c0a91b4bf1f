package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

func TestParseIncrease(t *testing.T) {
	inc, err := parseIncrease("Strength+2")
	require.NoError(t, err)
	assert.Equal(t, entities.AbilityIncrease{Ability: entities.AbilityStrength, Increase: 2}, inc)

	_, err = parseIncrease("strength")
	assert.Error(t, err)

	_, err = parseIncrease("luck+1")
	assert.Error(t, err)

	_, err = parseIncrease("wisdom+x")
	assert.Error(t, err)
}
