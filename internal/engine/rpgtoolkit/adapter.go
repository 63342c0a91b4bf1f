// Package rpgtoolkit provides the concrete implementation of the engine interface,
// backed by the rules package with rpg-toolkit dice and events.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/grimoire-api/internal/engine"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

// EventHitPointsRolled is published whenever rolled hit points are computed
const EventHitPointsRolled = "grimoire.build.hit_points_rolled"

// Event context keys
const (
	ContextRolls     = "rolls"
	ContextHitPoints = "hit_points"
	ContextHitDie    = "hit_die"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ResolveSkills partitions the character's skills by provenance
func (a *Adapter) ResolveSkills(_ context.Context, input *engine.ResolveSkillsInput) (*engine.ResolveSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &engine.ResolveSkillsOutput{
		Skills: rules.ResolveSkills(input.Character, input.Reference),
	}, nil
}

// ResolveAbilityModifiers sums the layered ability bonuses and derives effective scores
func (a *Adapter) ResolveAbilityModifiers(
	_ context.Context,
	input *engine.ResolveAbilityModifiersInput,
) (*engine.ResolveAbilityModifiersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	mods := rules.ResolveAbilityModifiers(input.Character, input.Reference, input.Choices)
	scores := rules.EffectiveScores(input.Character, mods, rules.ASIIncreases(input.Character))
	return &engine.ResolveAbilityModifiersOutput{
		Modifiers:          mods,
		EffectiveScores:    scores,
		EffectiveModifiers: rules.EffectiveModifiers(scores),
	}, nil
}

// ResolveProgression derives the level-1 and milestone state
func (a *Adapter) ResolveProgression(
	_ context.Context,
	input *engine.ResolveProgressionInput,
) (*engine.ResolveProgressionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &engine.ResolveProgressionOutput{
		Progression: rules.ResolveProgression(input.Character),
	}, nil
}

// Validate checks feats for duplicates and unmet prerequisites
func (a *Adapter) Validate(_ context.Context, input *engine.ValidateInput) (*engine.ValidateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &engine.ValidateOutput{
		Result: rules.Validate(input.Character, input.Reference),
	}, nil
}

// ComputeHitPoints totals hit points, rolling with the configured dice roller in rolled mode
func (a *Adapter) ComputeHitPoints(
	ctx context.Context,
	input *engine.ComputeHitPointsInput,
) (*engine.ComputeHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode := input.Mode
	switch mode {
	case "":
		mode = rules.HitPointsAverage
	case rules.HitPointsAverage, rules.HitPointsRolled:
	default:
		return nil, errors.InvalidArgumentf("unknown hit point mode %q", mode)
	}

	hp := rules.ComputeHitPoints(input.Character, input.Reference, mode, a.diceRoller)
	if hp.Mode == rules.HitPointsRolled {
		a.publishRoll(ctx, input, hp)
	}

	return &engine.ComputeHitPointsOutput{HitPoints: hp}, nil
}

func (a *Adapter) publishRoll(ctx context.Context, input *engine.ComputeHitPointsInput, hp *rules.HitPointResult) {
	if input.Character == nil {
		return
	}
	event := events.NewGameEvent(EventHitPointsRolled, WrapCharacter(input.Character), nil)
	event.Context().Set(ContextRolls, hp.Rolls)
	event.Context().Set(ContextHitPoints, hp.HitPoints)
	if style, ok := input.Reference.CastingStyle(input.Character.CastingStyle); ok {
		event.Context().Set(ContextHitDie, style.HitDie)
	}

	if err := a.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish hit point roll",
			"character_id", input.Character.ID,
			"error", err)
	}
}

// BuildSheet resolves every derived view of the character with average hit points
func (a *Adapter) BuildSheet(_ context.Context, input *engine.BuildSheetInput) (*engine.BuildSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, ref := input.Character, input.Reference
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	skills := rules.ResolveSkills(c, ref)
	mods := rules.ResolveAbilityModifiers(c, ref, rules.ModifierChoices{})
	scores := rules.EffectiveScores(c, mods, rules.ASIIncreases(c))

	return &engine.BuildSheetOutput{
		Sheet: &engine.BuildSheet{
			Character:          c.Clone(),
			Skills:             skills,
			SkillModifiers:     rules.SkillModifiers(c, ref, skills),
			Modifiers:          mods,
			EffectiveScores:    scores,
			EffectiveModifiers: rules.EffectiveModifiers(scores),
			Progression:        rules.ResolveProgression(c),
			Validation:         rules.Validate(c, ref),
			HitPoints:          rules.ComputeHitPoints(c, ref, rules.HitPointsAverage, nil),
			Initiative:         rules.CompareInitiative(c, ref),
		},
	}, nil
}

// ToggleCastingSkill adds or removes a manual casting style skill pick
func (a *Adapter) ToggleCastingSkill(_ context.Context, input *engine.ToggleSkillInput) (*engine.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}
	return toEditOutput(rules.ToggleCastingStyleSkill(input.Character, input.Reference, input.Skill)), nil
}

// ToggleExpertise marks or unmarks expertise through an expertise granter
func (a *Adapter) ToggleExpertise(_ context.Context, input *engine.ToggleSkillInput) (*engine.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}
	return toEditOutput(rules.ToggleExpertise(input.Character, input.Reference, input.Skill)), nil
}

// SetLevel changes the character level
func (a *Adapter) SetLevel(_ context.Context, input *engine.SetLevelInput) (*engine.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return toEditOutput(rules.SetLevel(input.Character, input.Level)), nil
}

// SetLevel1Choice picks the level-1 heritage or feat
func (a *Adapter) SetLevel1Choice(_ context.Context, input *engine.SetLevel1ChoiceInput) (*engine.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return toEditOutput(rules.SetLevel1Choice(input.Character, input.Choice, input.Name)), nil
}

// UnlockLevel1 allows the next level-1 change
func (a *Adapter) UnlockLevel1(_ context.Context, input *engine.UnlockLevel1Input) (*engine.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return toEditOutput(rules.UnlockLevel1(input.Character)), nil
}

// SetMilestone resolves, switches or clears an ASI milestone
func (a *Adapter) SetMilestone(_ context.Context, input *engine.SetMilestoneInput) (*engine.EditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var res rules.EditResult
	switch input.Type {
	case entities.ASITypeUnset:
		res = rules.ClearMilestone(input.Character, input.Level)
	case entities.ASITypeASI:
		if len(input.Increases) == 0 {
			res = rules.SetMilestoneType(input.Character, input.Level, entities.ASITypeASI)
		} else {
			res = rules.SetMilestoneASI(input.Character, input.Level, input.Increases)
		}
	case entities.ASITypeFeat:
		res = rules.SetMilestoneFeat(input.Character, input.Level, input.Feat, input.FeatChoices)
	default:
		return nil, errors.InvalidArgumentf("unknown milestone type %q", input.Type)
	}
	return toEditOutput(res), nil
}

func toEditOutput(res rules.EditResult) *engine.EditOutput {
	return &engine.EditOutput{
		Character: res.Character,
		Applied:   res.Applied,
		Reason:    res.Reason,
	}
}
