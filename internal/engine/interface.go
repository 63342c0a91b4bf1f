// Package engine is the build-resolution boundary the service layer talks to.
// Implementations resolve a character snapshot against reference data; they never persist anything.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/grimoire-api/internal/engine Engine

import (
	"context"
)

// Engine resolves character builds and applies rule-checked edits to snapshots
type Engine interface {
	// Resolution
	ResolveSkills(ctx context.Context, input *ResolveSkillsInput) (*ResolveSkillsOutput, error)
	ResolveAbilityModifiers(
		ctx context.Context,
		input *ResolveAbilityModifiersInput,
	) (*ResolveAbilityModifiersOutput, error)
	ResolveProgression(ctx context.Context, input *ResolveProgressionInput) (*ResolveProgressionOutput, error)
	Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error)
	ComputeHitPoints(ctx context.Context, input *ComputeHitPointsInput) (*ComputeHitPointsOutput, error)
	BuildSheet(ctx context.Context, input *BuildSheetInput) (*BuildSheetOutput, error)

	// Edits return a new snapshot and never touch the input
	ToggleCastingSkill(ctx context.Context, input *ToggleSkillInput) (*EditOutput, error)
	ToggleExpertise(ctx context.Context, input *ToggleSkillInput) (*EditOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*EditOutput, error)
	SetLevel1Choice(ctx context.Context, input *SetLevel1ChoiceInput) (*EditOutput, error)
	UnlockLevel1(ctx context.Context, input *UnlockLevel1Input) (*EditOutput, error)
	SetMilestone(ctx context.Context, input *SetMilestoneInput) (*EditOutput, error)
}
