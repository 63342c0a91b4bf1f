package rpgtoolkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/grimoire-api/internal/engine"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
	"github.com/KirkDiggler/grimoire-api/internal/testutils"
	"github.com/KirkDiggler/grimoire-api/internal/testutils/builders"
)

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing event bus", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &stubDiceRoller{}})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "event bus is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{EventBus: &stubEventBus{}})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("valid config", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{
			EventBus:   &stubEventBus{},
			DiceRoller: &stubDiceRoller{},
		})
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})
}

type AdapterTestSuite struct {
	suite.Suite
	ctx     context.Context
	bus     *events.Bus
	roller  *stubDiceRoller
	adapter *Adapter
	ref     *reference.Data
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.roller = &stubDiceRoller{value: 7}
	s.ref = testutils.TestReferenceData()

	adapter, err := NewAdapter(&AdapterConfig{EventBus: s.bus, DiceRoller: s.roller})
	s.Require().NoError(err)
	s.adapter = adapter
}

func (s *AdapterTestSuite) TestNilInputs() {
	_, err := s.adapter.ResolveSkills(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.adapter.Validate(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.adapter.BuildSheet(s.ctx, &engine.BuildSheetInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.adapter.ToggleCastingSkill(s.ctx, &engine.ToggleSkillInput{Character: testutils.CreateTestCharacter()})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestComputeHitPointsAverageByDefault() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithAbilityScore(entities.AbilityConstitution, 14).
		Build()

	out, err := s.adapter.ComputeHitPoints(s.ctx, &engine.ComputeHitPointsInput{Character: c, Reference: s.ref})

	s.Require().NoError(err)
	s.Equal(rules.HitPointsAverage, out.HitPoints.Mode)
	s.Equal(12, out.HitPoints.HitPoints)
	s.Zero(s.roller.calls)
}

func (s *AdapterTestSuite) TestComputeHitPointsRolledPublishesEvent() {
	c := builders.NewCharacterBuilder().
		WithID("char-roll").
		WithLevel(2).
		WithCastingStyle(testutils.StyleVigor).
		Build()

	var published events.Event
	s.bus.SubscribeFunc(EventHitPointsRolled, 100, func(_ context.Context, e events.Event) error {
		published = e
		return nil
	})

	out, err := s.adapter.ComputeHitPoints(s.ctx, &engine.ComputeHitPointsInput{
		Character: c,
		Reference: s.ref,
		Mode:      rules.HitPointsRolled,
	})

	s.Require().NoError(err)
	s.Equal([]int{7, 7}, out.HitPoints.Rolls)
	s.Equal(14, out.HitPoints.HitPoints)

	s.Require().NotNil(published)
	s.Equal("char-roll", published.Source().GetID())
	hp, ok := published.Context().Get(ContextHitPoints)
	s.True(ok)
	s.Equal(14, hp)
	die, ok := published.Context().Get(ContextHitDie)
	s.True(ok)
	s.Equal(12, die)
}

func (s *AdapterTestSuite) TestComputeHitPointsUnknownMode() {
	_, err := s.adapter.ComputeHitPoints(s.ctx, &engine.ComputeHitPointsInput{
		Character: testutils.CreateTestCharacter(),
		Mode:      "maximum",
	})

	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestBuildSheet() {
	c := builders.NewCharacterBuilder().
		WithLevel(4).
		WithCastingStyle(testutils.StyleIntellect).
		WithBackground(testutils.BackgroundBookworm).
		WithAbilityScore(entities.AbilityIntelligence, 15).
		WithMilestoneFeat(4, "Spell Sniper", nil).
		Build()

	out, err := s.adapter.BuildSheet(s.ctx, &engine.BuildSheetInput{Character: c, Reference: s.ref})

	s.Require().NoError(err)
	sheet := out.Sheet
	s.Equal(c, sheet.Character)
	s.NotSame(c, sheet.Character)
	s.Equal(17, sheet.EffectiveScores[entities.AbilityIntelligence])
	s.Equal(3, sheet.EffectiveModifiers[entities.AbilityIntelligence])
	s.True(sheet.Validation.IsValid)
	s.True(sheet.Initiative.Applies)
	s.Equal(entities.AbilityIntelligence, sheet.Initiative.Higher)
	s.Equal(2, sheet.Progression.ProficiencyBonus)
	s.Len(sheet.SkillModifiers, 2)
	s.Equal(8+3*5, sheet.HitPoints.HitPoints)
}

func (s *AdapterTestSuite) TestSetMilestone() {
	c := builders.NewCharacterBuilder().WithLevel(4).Build()

	out, err := s.adapter.SetMilestone(s.ctx, &engine.SetMilestoneInput{
		Character: c,
		Level:     4,
		Type:      entities.ASITypeFeat,
		Feat:      "Alert",
	})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal("Alert", out.Character.ASIChoices[4].SelectedFeat)

	out, err = s.adapter.SetMilestone(s.ctx, &engine.SetMilestoneInput{
		Character: out.Character,
		Level:     4,
		Type:      entities.ASITypeASI,
		Increases: []entities.AbilityIncrease{{Ability: entities.AbilityDexterity, Increase: 2}},
	})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Empty(out.Character.ASIChoices[4].SelectedFeat)

	out, err = s.adapter.SetMilestone(s.ctx, &engine.SetMilestoneInput{
		Character: out.Character,
		Level:     4,
		Type:      entities.ASITypeUnset,
	})
	s.Require().NoError(err)
	s.NotContains(out.Character.ASIChoices, 4)

	_, err = s.adapter.SetMilestone(s.ctx, &engine.SetMilestoneInput{Character: c, Level: 4, Type: "both"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestToggleCastingSkillRejection() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithBackground(testutils.BackgroundGroundskeeper).
		Build()

	out, err := s.adapter.ToggleCastingSkill(s.ctx, &engine.ToggleSkillInput{
		Character: c,
		Reference: s.ref,
		Skill:     "Herbology",
	})

	s.Require().NoError(err)
	s.False(out.Applied)
	s.Equal(rules.RejectAutomaticSkill, out.Reason)
}

// Simple stubs for testing
type stubEventBus struct{}

type stubDiceRoller struct {
	value int
	calls int
}

// Minimal implementation to satisfy events.EventBus interface
func (s *stubEventBus) Publish(_ context.Context, _ events.Event) error { return nil }
func (s *stubEventBus) Subscribe(_ string, _ events.Handler) string     { return "sub-id" }
func (s *stubEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (s *stubEventBus) Unsubscribe(_ string) error { return nil }
func (s *stubEventBus) Clear(_ string)             {}
func (s *stubEventBus) ClearAll()                  {}

// Minimal implementation to satisfy dice.Roller interface
func (s *stubDiceRoller) Roll(_ int) (int, error) {
	s.calls++
	return s.value, nil
}

func (s *stubDiceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = s.Roll(size)
	}
	return out, nil
}
