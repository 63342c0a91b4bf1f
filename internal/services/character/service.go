// Package character defines the interface for character build operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/grimoire-api/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/grimoire-api/internal/engine"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// Service defines the interface for character build operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// Policy-checked edits; a rejected edit is not an error and stores nothing
	ToggleCastingSkill(ctx context.Context, input *ToggleSkillInput) (*EditOutput, error)
	ToggleExpertise(ctx context.Context, input *ToggleSkillInput) (*EditOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*EditOutput, error)
	SetLevel1Choice(ctx context.Context, input *SetLevel1ChoiceInput) (*EditOutput, error)
	UnlockLevel1(ctx context.Context, input *UnlockLevel1Input) (*EditOutput, error)
	SetMilestone(ctx context.Context, input *SetMilestoneInput) (*EditOutput, error)

	// Derived views of a stored character
	GetBuildSheet(ctx context.Context, input *GetBuildSheetInput) (*GetBuildSheetOutput, error)
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)
	CommitBuild(ctx context.Context, input *CommitBuildInput) (*CommitBuildOutput, error)

	// Stateless resolution of a caller-supplied snapshot
	ResolveSkills(ctx context.Context, input *SnapshotInput) (*ResolveSkillsOutput, error)
	ResolveAbilityModifiers(ctx context.Context, input *ResolveAbilityModifiersInput) (*ResolveAbilityModifiersOutput, error)
	ResolveProgression(ctx context.Context, input *SnapshotInput) (*ResolveProgressionOutput, error)
	ValidateBuild(ctx context.Context, input *SnapshotInput) (*ValidateBuildOutput, error)
	ComputeHitPoints(ctx context.Context, input *ComputeHitPointsInput) (*ComputeHitPointsOutput, error)
}

// Character lifecycle types

// CreateCharacterInput defines the request for creating a character.
// Initial is applied on top of the new-character defaults.
type CreateCharacterInput struct {
	PlayerID string
	Name     string
	Initial  *entities.Patch
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// UpdateCharacterInput defines a partial update
type UpdateCharacterInput struct {
	CharacterID string
	Patch       *entities.Patch
}

// UpdateCharacterOutput contains the stored character and its validation
type UpdateCharacterOutput struct {
	Character  *entities.Character
	Validation *rules.ValidationResult
}

// Edit types

// ToggleSkillInput names the skill to toggle
type ToggleSkillInput struct {
	CharacterID string
	Skill       string
}

// SetLevelInput contains the new level
type SetLevelInput struct {
	CharacterID string
	Level       int
}

// SetLevel1ChoiceInput contains the level-1 pick
type SetLevel1ChoiceInput struct {
	CharacterID string
	Choice      entities.Level1Choice
	// Name is the heritage for innate or the feat for feat
	Name string
}

// UnlockLevel1Input names the character to unlock
type UnlockLevel1Input struct {
	CharacterID string
}

// SetMilestoneInput resolves one ASI milestone
type SetMilestoneInput struct {
	CharacterID string
	Level       int
	Type        entities.ASIType
	Increases   []entities.AbilityIncrease
	Feat        string
	FeatChoices map[string]string
}

// EditOutput is the character after an edit.
// When Applied is false, Character is the unchanged stored snapshot and Reason says why.
type EditOutput struct {
	Character  *entities.Character
	Applied    bool
	Reason     rules.RejectReason
	Validation *rules.ValidationResult
}

// Derived view types

// GetBuildSheetInput names the character to summarise
type GetBuildSheetInput struct {
	CharacterID string
}

// GetBuildSheetOutput contains the sheet
type GetBuildSheetOutput struct {
	Sheet *engine.BuildSheet
}

// RollHitPointsInput names the character to roll for
type RollHitPointsInput struct {
	CharacterID string
}

// RollHitPointsOutput contains the stored character and the roll breakdown
type RollHitPointsOutput struct {
	Character *entities.Character
	HitPoints *rules.HitPointResult
}

// CommitBuildInput names the character to commit
type CommitBuildInput struct {
	CharacterID string
}

// CommitBuildOutput contains the committed character and its final sheet
type CommitBuildOutput struct {
	Character *entities.Character
	Sheet     *engine.BuildSheet
}

// Stateless types

// SnapshotInput carries a caller-supplied character
type SnapshotInput struct {
	Character *entities.Character
}

// ResolveSkillsOutput contains the skill partition
type ResolveSkillsOutput struct {
	Skills *rules.SkillResolution
}

// ResolveAbilityModifiersInput carries a snapshot plus in-progress choices
type ResolveAbilityModifiersInput struct {
	Character *entities.Character
	Choices   rules.ModifierChoices
}

// ResolveAbilityModifiersOutput contains the layered bonuses and resulting scores
type ResolveAbilityModifiersOutput struct {
	Modifiers          *rules.ModifierResolution
	EffectiveScores    map[entities.Ability]int
	EffectiveModifiers map[entities.Ability]int
}

// ResolveProgressionOutput contains the progression view
type ResolveProgressionOutput struct {
	Progression *rules.ProgressionView
}

// ValidateBuildOutput contains the validation result
type ValidateBuildOutput struct {
	Result *rules.ValidationResult
}

// ComputeHitPointsInput carries a snapshot and hit point mode; an empty mode uses the server default
type ComputeHitPointsInput struct {
	Character *entities.Character
	Mode      rules.HitPointMode
}

// ComputeHitPointsOutput contains the hit point breakdown
type ComputeHitPointsOutput struct {
	HitPoints *rules.HitPointResult
}
