package v1alpha1

import (
	"github.com/KirkDiggler/grimoire-api/internal/engine"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// Requests

// CreateCharacterRequest creates a character for a player
type CreateCharacterRequest struct {
	PlayerID string          `json:"player_id"`
	Name     string          `json:"name,omitempty"`
	Initial  *entities.Patch `json:"initial,omitempty"`
}

// CharacterRequest names a stored character
type CharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// ListCharactersRequest names a player
type ListCharactersRequest struct {
	PlayerID string `json:"player_id"`
}

// UpdateCharacterRequest patches a stored character
type UpdateCharacterRequest struct {
	CharacterID string          `json:"character_id"`
	Patch       *entities.Patch `json:"patch"`
}

// ToggleSkillRequest toggles a casting-style skill or an expertise pick
type ToggleSkillRequest struct {
	CharacterID string `json:"character_id"`
	Skill       string `json:"skill"`
}

// SetLevelRequest sets the character level
type SetLevelRequest struct {
	CharacterID string `json:"character_id"`
	Level       int    `json:"level"`
}

// SetLevel1ChoiceRequest picks the level-1 advancement
type SetLevel1ChoiceRequest struct {
	CharacterID string                `json:"character_id"`
	Choice      entities.Level1Choice `json:"choice"`
	Name        string                `json:"name,omitempty"`
}

// SetMilestoneRequest resolves one milestone
type SetMilestoneRequest struct {
	CharacterID string                     `json:"character_id"`
	Level       int                        `json:"level"`
	Type        entities.ASIType           `json:"type"`
	Increases   []entities.AbilityIncrease `json:"increases,omitempty"`
	Feat        string                     `json:"feat,omitempty"`
	FeatChoices map[string]string          `json:"feat_choices,omitempty"`
}

// SnapshotRequest carries a character that is not read from storage
type SnapshotRequest struct {
	Character *entities.Character `json:"character"`
}

// ResolveAbilityModifiersRequest carries a snapshot and in-progress choices
type ResolveAbilityModifiersRequest struct {
	Character       *entities.Character `json:"character"`
	FeatChoices     map[string]string   `json:"feat_choices,omitempty"`
	HouseChoices    entities.ChoiceMap  `json:"house_choices,omitempty"`
	HeritageChoices entities.ChoiceMap  `json:"heritage_choices,omitempty"`
}

// ComputeHitPointsRequest carries a snapshot and an optional mode
type ComputeHitPointsRequest struct {
	Character *entities.Character `json:"character"`
	Mode      rules.HitPointMode  `json:"mode,omitempty"`
}

// Responses

// CharacterResponse holds one character
type CharacterResponse struct {
	Character *entities.Character `json:"character"`
}

// ListCharactersResponse holds a player's characters
type ListCharactersResponse struct {
	Characters []*entities.Character `json:"characters"`
}

// UpdateCharacterResponse holds the stored character and its validation
type UpdateCharacterResponse struct {
	Character  *entities.Character     `json:"character"`
	Validation *rules.ValidationResult `json:"validation"`
}

// EditResponse reports whether an edit was applied
type EditResponse struct {
	Character  *entities.Character     `json:"character"`
	Applied    bool                    `json:"applied"`
	Reason     rules.RejectReason      `json:"reason,omitempty"`
	Validation *rules.ValidationResult `json:"validation"`
}

// BuildSheetResponse holds every derived view
type BuildSheetResponse struct {
	Sheet *engine.BuildSheet `json:"sheet"`
}

// RollHitPointsResponse holds the stored character and the roll
type RollHitPointsResponse struct {
	Character *entities.Character   `json:"character"`
	HitPoints *rules.HitPointResult `json:"hit_points"`
}

// CommitBuildResponse holds the committed character and final sheet
type CommitBuildResponse struct {
	Character *entities.Character `json:"character"`
	Sheet     *engine.BuildSheet  `json:"sheet"`
}

// ResolveSkillsResponse holds the skill partition
type ResolveSkillsResponse struct {
	Skills *rules.SkillResolution `json:"skills"`
}

// ResolveAbilityModifiersResponse holds layered bonuses and resulting scores
type ResolveAbilityModifiersResponse struct {
	Modifiers          *rules.ModifierResolution `json:"modifiers"`
	EffectiveScores    map[entities.Ability]int  `json:"effective_scores"`
	EffectiveModifiers map[entities.Ability]int  `json:"effective_modifiers"`
}

// ResolveProgressionResponse holds the progression view
type ResolveProgressionResponse struct {
	Progression *rules.ProgressionView `json:"progression"`
}

// ValidateBuildResponse holds the validation result
type ValidateBuildResponse struct {
	Result *rules.ValidationResult `json:"result"`
}

// ComputeHitPointsResponse holds the hit point breakdown
type ComputeHitPointsResponse struct {
	HitPoints *rules.HitPointResult `json:"hit_points"`
}
