package engine

import (
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// ResolveSkillsInput contains the snapshot to resolve skills for
type ResolveSkillsInput struct {
	Character *entities.Character
	Reference *reference.Data
}

// ResolveSkillsOutput contains the skill partition
type ResolveSkillsOutput struct {
	Skills *rules.SkillResolution
}

// ResolveAbilityModifiersInput contains the snapshot plus optional in-progress choices
type ResolveAbilityModifiersInput struct {
	Character *entities.Character
	Reference *reference.Data
	// Choices override the character's stored feat, house and heritage choices when set
	Choices rules.ModifierChoices
}

// ResolveAbilityModifiersOutput contains the layered bonuses and the resulting scores
type ResolveAbilityModifiersOutput struct {
	Modifiers          *rules.ModifierResolution
	EffectiveScores    map[entities.Ability]int
	EffectiveModifiers map[entities.Ability]int
}

// ResolveProgressionInput contains the snapshot to derive progression for
type ResolveProgressionInput struct {
	Character *entities.Character
}

// ResolveProgressionOutput contains the progression view
type ResolveProgressionOutput struct {
	Progression *rules.ProgressionView
}

// ValidateInput contains the snapshot to validate
type ValidateInput struct {
	Character *entities.Character
	Reference *reference.Data
}

// ValidateOutput contains the validation result
type ValidateOutput struct {
	Result *rules.ValidationResult
}

// ComputeHitPointsInput selects the hit point mode.
// An empty mode means average.
type ComputeHitPointsInput struct {
	Character *entities.Character
	Reference *reference.Data
	Mode      rules.HitPointMode
}

// ComputeHitPointsOutput contains the computed hit points
type ComputeHitPointsOutput struct {
	HitPoints *rules.HitPointResult
}

// BuildSheetInput contains the snapshot to summarise
type BuildSheetInput struct {
	Character *entities.Character
	Reference *reference.Data
}

// BuildSheet is every derived view of a character in one place
type BuildSheet struct {
	Character          *entities.Character         `json:"character"`
	Skills             *rules.SkillResolution      `json:"skills"`
	SkillModifiers     []rules.SkillModifier       `json:"skill_modifiers"`
	Modifiers          *rules.ModifierResolution   `json:"modifiers"`
	EffectiveScores    map[entities.Ability]int    `json:"effective_scores"`
	EffectiveModifiers map[entities.Ability]int    `json:"effective_modifiers"`
	Progression        *rules.ProgressionView      `json:"progression"`
	Validation         *rules.ValidationResult     `json:"validation"`
	HitPoints          *rules.HitPointResult       `json:"hit_points"`
	Initiative         *rules.InitiativeComparison `json:"initiative"`
}

// BuildSheetOutput contains the sheet
type BuildSheetOutput struct {
	Sheet *BuildSheet
}

// ToggleSkillInput names the skill to toggle
type ToggleSkillInput struct {
	Character *entities.Character
	Reference *reference.Data
	Skill     string
}

// SetLevelInput contains the new level
type SetLevelInput struct {
	Character *entities.Character
	Level     int
}

// SetLevel1ChoiceInput contains the level-1 pick.
// Name is the heritage for innate or the feat for feat.
type SetLevel1ChoiceInput struct {
	Character *entities.Character
	Choice    entities.Level1Choice
	Name      string
}

// UnlockLevel1Input contains the snapshot to unlock
type UnlockLevel1Input struct {
	Character *entities.Character
}

// SetMilestoneInput resolves one milestone.
// Type unset clears it; asi with no increases only switches the type.
type SetMilestoneInput struct {
	Character   *entities.Character
	Level       int
	Type        entities.ASIType
	Increases   []entities.AbilityIncrease
	Feat        string
	FeatChoices map[string]string
}

// EditOutput is the new snapshot and whether the edit was accepted.
// A rejected edit returns an unchanged copy and the reason.
type EditOutput struct {
	Character *entities.Character
	Applied   bool
	Reason    rules.RejectReason
}
