// Package character implements the character build orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/grimoire-api/internal/clients/catalog"
	"github.com/KirkDiggler/grimoire-api/internal/engine"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/idgen"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
	characterrepo "github.com/KirkDiggler/grimoire-api/internal/repositories/character"
	"github.com/KirkDiggler/grimoire-api/internal/services/character"
)

// Events published after a stored character changes
const (
	EventCharacterCreated   = "grimoire.character.created"
	EventCharacterUpdated   = "grimoire.character.updated"
	EventCharacterCommitted = "grimoire.character.committed"
	EventCharacterDeleted   = "grimoire.character.deleted"
)

// Event context keys
const (
	ContextOperation = "operation"
	ContextRevision  = "revision"
)

// Operation names carried in event context and error messages
const (
	opCreate          = "create"
	opUpdate          = "update"
	opDelete          = "delete"
	opToggleSkill     = "toggle_casting_skill"
	opToggleExpertise = "toggle_expertise"
	opSetLevel        = "set_level"
	opSetLevel1Choice = "set_level1_choice"
	opUnlockLevel1    = "unlock_level1"
	opSetMilestone    = "set_milestone"
	opRollHitPoints   = "roll_hit_points"
	opCommit          = "commit"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	CatalogClient catalog.Client
	Engine        engine.Engine
	EventBus      events.EventBus
	IDGenerator   idgen.Generator
	// HitPointMode is used by CommitBuild and by ComputeHitPoints when the caller names no mode.
	// Empty means average.
	HitPointMode rules.HitPointMode
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CatalogClient == nil {
		vb.RequiredField("CatalogClient")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.HitPointMode != "" {
		errors.ValidateEnum("HitPointMode", string(c.HitPointMode),
			[]string{string(rules.HitPointsAverage), string(rules.HitPointsRolled)}, vb)
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	catalogClient catalog.Client
	engine        engine.Engine
	eventBus      events.EventBus
	idGenerator   idgen.Generator
	hitPointMode  rules.HitPointMode
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	mode := cfg.HitPointMode
	if mode == "" {
		mode = rules.HitPointsAverage
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		catalogClient: cfg.CatalogClient,
		engine:        cfg.Engine,
		eventBus:      cfg.EventBus,
		idGenerator:   cfg.IDGenerator,
		hitPointMode:  mode,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Character lifecycle

// CreateCharacter stores a new level 1 character with the initial patch applied
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	validatePatchLevel(input.Initial, vb)
	validatePatchProgression(input.Initial, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	id := o.idGenerator.Generate()
	c := entities.NewCharacter(id, input.PlayerID, input.Name)
	if input.Initial != nil {
		c = input.Initial.Apply(c)
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character").
			WithMeta(errors.MetaCharacterID, id)
	}

	slog.InfoContext(ctx, "character created",
		"character_id", id,
		"player_id", input.PlayerID)
	o.publish(ctx, EventCharacterCreated, created.Character, opCreate)

	return &character.CreateCharacterOutput{Character: created.Character}, nil
}

// GetCharacter retrieves a stored character
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{Character: c}, nil
}

// ListCharacters lists a player's characters, oldest first
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters").
			WithMeta("player_id", input.PlayerID)
	}

	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter removes a stored character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character").
			WithMeta(errors.MetaCharacterID, input.CharacterID)
	}

	slog.InfoContext(ctx, "character deleted", "character_id", input.CharacterID)
	o.publish(ctx, EventCharacterDeleted, c, opDelete)

	return &character.DeleteCharacterOutput{}, nil
}

// UpdateCharacter merges a partial update into the stored character.
// The update is stored even when it leaves the build invalid; the validation is returned alongside.
// The level-1 pick and milestone picks are refused here so the lock and milestone checks always apply.
func (o *Orchestrator) UpdateCharacter(
	ctx context.Context,
	input *character.UpdateCharacterInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if input.Patch.IsEmpty() {
		vb.Field("patch", "must change at least one field")
	}
	validatePatchLevel(input.Patch, vb)
	validatePatchProgression(input.Patch, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{
		ID:    input.CharacterID,
		Patch: input.Patch,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character").
			WithMeta(errors.MetaCharacterID, input.CharacterID)
	}
	o.publish(ctx, EventCharacterUpdated, updated.Character, opUpdate)

	ref, err := o.reference(ctx)
	if err != nil {
		return nil, err
	}
	validation, err := o.engine.Validate(ctx, &engine.ValidateInput{Character: updated.Character, Reference: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to validate character")
	}

	return &character.UpdateCharacterOutput{
		Character:  updated.Character,
		Validation: validation.Result,
	}, nil
}

// Policy-checked edits

// ToggleCastingSkill adds or removes a casting-style skill pick
func (o *Orchestrator) ToggleCastingSkill(
	ctx context.Context,
	input *character.ToggleSkillInput,
) (*character.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	return o.edit(ctx, input.CharacterID, opToggleSkill,
		func(c *entities.Character, ref *reference.Data) (*engine.EditOutput, error) {
			return o.engine.ToggleCastingSkill(ctx, &engine.ToggleSkillInput{Character: c, Reference: ref, Skill: input.Skill})
		})
}

// ToggleExpertise marks a proficient skill as expertise, or clears the mark, through an
// active expertise granter such as Practice Makes Perfect
func (o *Orchestrator) ToggleExpertise(
	ctx context.Context,
	input *character.ToggleSkillInput,
) (*character.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	return o.edit(ctx, input.CharacterID, opToggleExpertise,
		func(c *entities.Character, ref *reference.Data) (*engine.EditOutput, error) {
			return o.engine.ToggleExpertise(ctx, &engine.ToggleSkillInput{Character: c, Reference: ref, Skill: input.Skill})
		})
}

// SetLevel changes the character level; milestone choices above the new level are kept but inactive
func (o *Orchestrator) SetLevel(ctx context.Context, input *character.SetLevelInput) (*character.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(ctx, input.CharacterID, opSetLevel,
		func(c *entities.Character, _ *reference.Data) (*engine.EditOutput, error) {
			return o.engine.SetLevel(ctx, &engine.SetLevelInput{Character: c, Level: input.Level})
		})
}

// SetLevel1Choice picks the innate heritage or the level-1 feat
func (o *Orchestrator) SetLevel1Choice(
	ctx context.Context,
	input *character.SetLevel1ChoiceInput,
) (*character.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(ctx, input.CharacterID, opSetLevel1Choice,
		func(c *entities.Character, _ *reference.Data) (*engine.EditOutput, error) {
			return o.engine.SetLevel1Choice(ctx, &engine.SetLevel1ChoiceInput{
				Character: c,
				Choice:    input.Choice,
				Name:      input.Name,
			})
		})
}

// UnlockLevel1 allows the level-1 choice to be changed on a character past level 1
func (o *Orchestrator) UnlockLevel1(
	ctx context.Context,
	input *character.UnlockLevel1Input,
) (*character.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(ctx, input.CharacterID, opUnlockLevel1,
		func(c *entities.Character, _ *reference.Data) (*engine.EditOutput, error) {
			return o.engine.UnlockLevel1(ctx, &engine.UnlockLevel1Input{Character: c})
		})
}

// SetMilestone resolves one ASI milestone as an ability increase or a feat
func (o *Orchestrator) SetMilestone(
	ctx context.Context,
	input *character.SetMilestoneInput,
) (*character.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.edit(ctx, input.CharacterID, opSetMilestone,
		func(c *entities.Character, _ *reference.Data) (*engine.EditOutput, error) {
			return o.engine.SetMilestone(ctx, &engine.SetMilestoneInput{
				Character:   c,
				Level:       input.Level,
				Type:        input.Type,
				Increases:   input.Increases,
				Feat:        input.Feat,
				FeatChoices: input.FeatChoices,
			})
		})
}

// Derived views

// GetBuildSheet resolves every derived view of a stored character
func (o *Orchestrator) GetBuildSheet(
	ctx context.Context,
	input *character.GetBuildSheetInput,
) (*character.GetBuildSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ref, err := o.reference(ctx)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.BuildSheet(ctx, &engine.BuildSheetInput{Character: c, Reference: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build sheet").
			WithMeta(errors.MetaCharacterID, input.CharacterID)
	}

	return &character.GetBuildSheetOutput{Sheet: out.Sheet}, nil
}

// RollHitPoints rolls hit points for a stored character and stores the total
func (o *Orchestrator) RollHitPoints(
	ctx context.Context,
	input *character.RollHitPointsInput,
) (*character.RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ref, err := o.reference(ctx)
	if err != nil {
		return nil, err
	}

	hp, err := o.engine.ComputeHitPoints(ctx, &engine.ComputeHitPointsInput{
		Character: current,
		Reference: ref,
		Mode:      rules.HitPointsRolled,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll hit points").
			WithMeta(errors.MetaCharacterID, input.CharacterID)
	}

	next := current.Clone()
	next.HitPoints = hp.HitPoints.HitPoints
	saved, err := o.save(ctx, current, next)
	if err != nil {
		return nil, err
	}
	o.publish(ctx, EventCharacterUpdated, saved, opRollHitPoints)

	return &character.RollHitPointsOutput{
		Character: saved,
		HitPoints: hp.HitPoints,
	}, nil
}

// CommitBuild finalises a build. Builds with validation errors are refused with FailedPrecondition;
// otherwise hit points are recomputed, the character is marked committed and stored.
func (o *Orchestrator) CommitBuild(
	ctx context.Context,
	input *character.CommitBuildInput,
) (*character.CommitBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ref, err := o.reference(ctx)
	if err != nil {
		return nil, err
	}

	validation, err := o.engine.Validate(ctx, &engine.ValidateInput{Character: current, Reference: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to validate character")
	}
	if !validation.Result.IsValid {
		slog.InfoContext(ctx, "commit refused",
			"character_id", input.CharacterID,
			"errors", len(validation.Result.Errors))
		return nil, errors.FailedPreconditionf("character %s has %d build errors",
			input.CharacterID, len(validation.Result.Errors)).
			WithMeta(errors.MetaCharacterID, input.CharacterID).
			WithMeta(errors.MetaValidationErrors, validation.Result.Errors)
	}

	hp, err := o.engine.ComputeHitPoints(ctx, &engine.ComputeHitPointsInput{
		Character: current,
		Reference: ref,
		Mode:      o.hitPointMode,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compute hit points").
			WithMeta(errors.MetaCharacterID, input.CharacterID)
	}

	next := current.Clone()
	next.HitPoints = hp.HitPoints.HitPoints
	next.Committed = true
	saved, err := o.save(ctx, current, next)
	if err != nil {
		return nil, err
	}

	sheet, err := o.engine.BuildSheet(ctx, &engine.BuildSheetInput{Character: saved, Reference: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build sheet").
			WithMeta(errors.MetaCharacterID, input.CharacterID)
	}

	slog.InfoContext(ctx, "character committed",
		"character_id", saved.ID,
		"level", saved.Level,
		"hit_points", saved.HitPoints)
	o.publish(ctx, EventCharacterCommitted, saved, opCommit)

	return &character.CommitBuildOutput{
		Character: saved,
		Sheet:     sheet.Sheet,
	}, nil
}

// Stateless resolution

// ResolveSkills partitions a snapshot's skills by provenance
func (o *Orchestrator) ResolveSkills(
	ctx context.Context,
	input *character.SnapshotInput,
) (*character.ResolveSkillsOutput, error) {
	ref, err := o.snapshotReference(ctx, input)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.ResolveSkills(ctx, &engine.ResolveSkillsInput{Character: input.Character, Reference: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve skills")
	}

	return &character.ResolveSkillsOutput{Skills: out.Skills}, nil
}

// ResolveAbilityModifiers layers a snapshot's ability bonuses, honouring in-progress choices
func (o *Orchestrator) ResolveAbilityModifiers(
	ctx context.Context,
	input *character.ResolveAbilityModifiersInput,
) (*character.ResolveAbilityModifiersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ref, err := o.snapshotReference(ctx, &character.SnapshotInput{Character: input.Character})
	if err != nil {
		return nil, err
	}

	out, err := o.engine.ResolveAbilityModifiers(ctx, &engine.ResolveAbilityModifiersInput{
		Character: input.Character,
		Reference: ref,
		Choices:   input.Choices,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve ability modifiers")
	}

	return &character.ResolveAbilityModifiersOutput{
		Modifiers:          out.Modifiers,
		EffectiveScores:    out.EffectiveScores,
		EffectiveModifiers: out.EffectiveModifiers,
	}, nil
}

// ResolveProgression derives the level-1 and milestone state of a snapshot
func (o *Orchestrator) ResolveProgression(
	ctx context.Context,
	input *character.SnapshotInput,
) (*character.ResolveProgressionOutput, error) {
	if err := requireSnapshot(input); err != nil {
		return nil, err
	}

	out, err := o.engine.ResolveProgression(ctx, &engine.ResolveProgressionInput{Character: input.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve progression")
	}

	return &character.ResolveProgressionOutput{Progression: out.Progression}, nil
}

// ValidateBuild validates a snapshot
func (o *Orchestrator) ValidateBuild(
	ctx context.Context,
	input *character.SnapshotInput,
) (*character.ValidateBuildOutput, error) {
	ref, err := o.snapshotReference(ctx, input)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.Validate(ctx, &engine.ValidateInput{Character: input.Character, Reference: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to validate character")
	}

	return &character.ValidateBuildOutput{Result: out.Result}, nil
}

// ComputeHitPoints totals hit points for a snapshot
func (o *Orchestrator) ComputeHitPoints(
	ctx context.Context,
	input *character.ComputeHitPointsInput,
) (*character.ComputeHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ref, err := o.snapshotReference(ctx, &character.SnapshotInput{Character: input.Character})
	if err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = o.hitPointMode
	}

	out, err := o.engine.ComputeHitPoints(ctx, &engine.ComputeHitPointsInput{
		Character: input.Character,
		Reference: ref,
		Mode:      mode,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compute hit points")
	}

	return &character.ComputeHitPointsOutput{HitPoints: out.HitPoints}, nil
}

// Helpers

type editFunc func(c *entities.Character, ref *reference.Data) (*engine.EditOutput, error)

// edit loads the character, applies fn and stores the result when the engine accepted it.
// Rejected edits store nothing and return the stored snapshot with the reason.
func (o *Orchestrator) edit(
	ctx context.Context,
	characterID, operation string,
	fn editFunc,
) (*character.EditOutput, error) {
	current, err := o.load(ctx, characterID)
	if err != nil {
		return nil, err
	}
	ref, err := o.reference(ctx)
	if err != nil {
		return nil, err
	}

	result, err := fn(current, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", operation).
			WithMeta(errors.MetaCharacterID, characterID)
	}

	out := &character.EditOutput{
		Character: current,
		Applied:   result.Applied,
		Reason:    result.Reason,
	}

	if result.Applied {
		saved, err := o.save(ctx, current, result.Character)
		if err != nil {
			return nil, err
		}
		out.Character = saved
		o.publish(ctx, EventCharacterUpdated, saved, operation)
	} else {
		slog.DebugContext(ctx, "edit rejected",
			"character_id", characterID,
			"operation", operation,
			"reason", result.Reason)
	}

	validation, err := o.engine.Validate(ctx, &engine.ValidateInput{Character: out.Character, Reference: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to validate character")
	}
	out.Validation = validation.Result

	return out, nil
}

func (o *Orchestrator) load(ctx context.Context, characterID string) (*entities.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta(errors.MetaCharacterID, characterID)
	}
	return out.Character, nil
}

// save stores next only if the stored revision still matches the one current was loaded at
func (o *Orchestrator) save(ctx context.Context, current, next *entities.Character) (*entities.Character, error) {
	out, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{
		Character:        next,
		ExpectedRevision: current.Revision,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character").
			WithMeta(errors.MetaCharacterID, current.ID)
	}
	return out.Character, nil
}

func (o *Orchestrator) reference(ctx context.Context) (*reference.Data, error) {
	ref, err := o.catalogClient.GetReference(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load reference data")
	}
	return ref, nil
}

func (o *Orchestrator) snapshotReference(ctx context.Context, input *character.SnapshotInput) (*reference.Data, error) {
	if err := requireSnapshot(input); err != nil {
		return nil, err
	}
	return o.reference(ctx)
}

func (o *Orchestrator) publish(ctx context.Context, eventType string, c *entities.Character, operation string) {
	event := events.NewGameEvent(eventType, rpgtoolkit.WrapCharacter(c), nil)
	event.Context().Set(ContextOperation, operation)
	event.Context().Set(ContextRevision, c.Revision)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish character event",
			"character_id", c.ID,
			"event", eventType,
			"error", err)
	}
}

func requireSnapshot(input *character.SnapshotInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return errors.InvalidArgument("character is required")
	}
	return nil
}

func validatePatchLevel(p *entities.Patch, vb *errors.ValidationBuilder) {
	if p != nil && p.Level != nil {
		errors.ValidateRange("level", *p.Level, entities.MinLevel, entities.MaxLevel, vb)
	}
}

// validatePatchProgression refuses the fields owned by SetLevel1Choice and SetMilestone
func validatePatchProgression(p *entities.Patch, vb *errors.ValidationBuilder) {
	if p == nil {
		return
	}
	if p.Level1Choice != nil {
		vb.Field("level1_choice", "use SetLevel1Choice")
	}
	if p.InnateHeritage != nil {
		vb.Field("innate_heritage", "use SetLevel1Choice")
	}
	if p.StandardFeats != nil {
		vb.Field("standard_feats", "use SetLevel1Choice")
	}
	if p.ASIChoices != nil {
		vb.Field("asi_choices", "use SetMilestone")
	}
}
