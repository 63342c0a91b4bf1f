package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// EntityTypeCharacter is the rpg-toolkit entity type for characters
const EntityTypeCharacter = "character"

// CharacterEntity wraps entities.Character to implement core.Entity interface
type CharacterEntity struct {
	*entities.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

var _ core.Entity = (*CharacterEntity)(nil)

// WrapCharacter converts an entities.Character to a CharacterEntity
func WrapCharacter(character *entities.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}

// ExtractCharacter returns the wrapped character of an event source
func ExtractCharacter(entity core.Entity) (*entities.Character, bool) {
	wrapped, ok := entity.(*CharacterEntity)
	if !ok || wrapped == nil {
		return nil, false
	}
	return wrapped.Character, true
}
