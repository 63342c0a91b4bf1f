// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/grimoire-api/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update applies a patch to the stored character and returns the merged snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Aborted if the character kept changing underneath the update
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Save replaces the stored character with a full snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Aborted if ExpectedRevision is set and the stored revision differs
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all characters for a player, oldest first
	// Returns errors.InvalidArgument for empty/invalid player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the patch to apply
type UpdateInput struct {
	ID    string
	Patch *entities.Patch
}

// UpdateOutput contains the merged character
type UpdateOutput struct {
	Character *entities.Character
}

// SaveInput defines a full-snapshot write.
// A zero ExpectedRevision skips the revision check.
type SaveInput struct {
	Character        *entities.Character
	ExpectedRevision int64
}

// SaveOutput contains the stored character
type SaveOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing characters by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing characters by player
type ListByPlayerIDOutput struct {
	Characters []*entities.Character
}
