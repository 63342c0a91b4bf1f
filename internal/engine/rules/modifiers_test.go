package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
	"github.com/KirkDiggler/grimoire-api/internal/testutils"
	"github.com/KirkDiggler/grimoire-api/internal/testutils/builders"
)

type ModifiersTestSuite struct {
	suite.Suite
	ref *reference.Data
}

func TestModifiersSuite(t *testing.T) {
	suite.Run(t, new(ModifiersTestSuite))
}

func (s *ModifiersTestSuite) SetupTest() {
	s.ref = testutils.TestReferenceData()
}

func (s *ModifiersTestSuite) assertAdditive(r *rules.ModifierResolution) {
	for _, a := range entities.Abilities {
		sum := r.FeatModifiers[a] + r.BackgroundModifiers[a] + r.HouseModifiers[a] + r.HeritageModifiers[a]
		s.Equal(sum, r.TotalModifiers[a], "total for %s", a)
	}
}

func (s *ModifiersTestSuite) TestLayersStack() {
	c := builders.NewCharacterBuilder().
		WithLevel(4).
		WithBackground(testutils.BackgroundBookworm).
		WithHouse("Ravenclaw").
		WithHouseChoice(testutils.FeatureHouseVirtue, entities.SimpleChoice{Name: "Wit"}).
		WithInnateHeritage(testutils.HeritageSeer).
		WithHeritageChoice("Inner Eye", entities.CompoundChoice{MainChoice: "wisdom", SubChoice: "charisma"}).
		WithMilestoneFeat(4, "Alert", nil).
		Build()

	r := rules.ResolveAbilityModifiers(c, s.ref, rules.ModifierChoices{})

	s.Empty(r.Warnings)
	s.assertAdditive(r)
	s.Equal(2, r.TotalModifiers[entities.AbilityIntelligence])
	s.Equal(1, r.TotalModifiers[entities.AbilityWisdom])
	s.Equal(1, r.TotalModifiers[entities.AbilityCharisma])
	s.Equal(1, r.TotalModifiers[entities.AbilityDexterity])
	s.Equal(0, r.TotalModifiers[entities.AbilityStrength])
	s.Equal(1, r.FeatModifiers[entities.AbilityDexterity])
	s.Equal(1, r.BackgroundModifiers[entities.AbilityIntelligence])
	s.Equal(1, r.HouseModifiers[entities.AbilityIntelligence])
	s.Equal(1, r.HeritageModifiers[entities.AbilityWisdom])

	s.Require().Len(r.AllDetails, 5)
	s.Equal(rules.ModifierDetail{
		Source:     rules.ModifierFeat,
		SourceName: "Alert",
		Ability:    entities.AbilityDexterity,
		Amount:     1,
		Slot:       4,
	}, r.AllDetails[0])
	s.Equal(rules.ModifierBackground, r.AllDetails[1].Source)
	s.Equal(rules.ModifierHouse, r.AllDetails[2].Source)
	s.Equal("House Virtue: Wit", r.AllDetails[2].SourceName)
}

func (s *ModifiersTestSuite) TestEveryAbilityPresent() {
	r := rules.ResolveAbilityModifiers(nil, nil, rules.ModifierChoices{})

	s.Len(r.TotalModifiers, len(entities.Abilities))
	s.NotNil(r.AllDetails)
	s.assertAdditive(r)
	for _, a := range entities.Abilities {
		s.Zero(r.TotalModifiers[a])
	}
}

func (s *ModifiersTestSuite) TestCompoundHouseChoice() {
	c := builders.NewCharacterBuilder().
		WithHouse("Slytherin").
		WithHouseChoice(testutils.FeatureHouseVirtue, entities.CompoundChoice{MainChoice: "Cunning", SubChoice: "dexterity"}).
		Build()

	r := rules.ResolveAbilityModifiers(c, s.ref, rules.ModifierChoices{})

	s.Equal(1, r.HouseModifiers[entities.AbilityDexterity])
	s.Empty(r.Warnings)
}

func (s *ModifiersTestSuite) TestInvalidHouseSubChoiceWarns() {
	c := builders.NewCharacterBuilder().
		WithHouse("Slytherin").
		WithHouseChoice(testutils.FeatureHouseVirtue, entities.CompoundChoice{MainChoice: "Cunning", SubChoice: "strength"}).
		Build()

	r := rules.ResolveAbilityModifiers(c, s.ref, rules.ModifierChoices{})

	s.Zero(r.TotalModifiers[entities.AbilityStrength])
	s.Require().Len(r.Warnings, 1)
	s.Equal(rules.IssueInvalidChoice, r.Warnings[0].Code)
}

func (s *ModifiersTestSuite) TestChoiceOverridesStoredChoices() {
	c := builders.NewCharacterBuilder().
		WithHouse("Hufflepuff").
		WithHouseChoice(testutils.FeatureHouseVirtue, entities.SimpleChoice{Name: "Loyalty"}).
		Build()

	r := rules.ResolveAbilityModifiers(c, s.ref, rules.ModifierChoices{
		HouseChoices: entities.ChoiceMap{testutils.FeatureHouseVirtue: entities.SimpleChoice{Name: "Patience"}},
	})

	s.Equal(1, r.HouseModifiers[entities.AbilityWisdom])
	s.Zero(r.HouseModifiers[entities.AbilityConstitution])
	s.Equal(entities.SimpleChoice{Name: "Loyalty"}, c.HouseChoices[testutils.FeatureHouseVirtue])
}

func (s *ModifiersTestSuite) TestFeatAbilityChoice() {
	c := builders.NewCharacterBuilder().
		WithLevel(8).
		WithMilestoneFeat(4, "Resilient", map[string]string{
			rules.FeatChoiceKey("Resilient", "ability", 0): "constitution",
		}).
		WithMilestoneFeat(8, "Keen Mind", map[string]string{
			rules.FeatChoiceKey("Keen Mind", "ability", 0): "strength",
		}).
		Build()

	r := rules.ResolveAbilityModifiers(c, s.ref, rules.ModifierChoices{})

	s.Equal(1, r.FeatModifiers[entities.AbilityConstitution])
	s.Zero(r.FeatModifiers[entities.AbilityStrength])
	s.Require().Len(r.Warnings, 1)
	s.Equal("Keen Mind", r.Warnings[0].Subject)
}

func (s *ModifiersTestSuite) TestSameSelectionAppliesAbilityOnce() {
	c := builders.NewCharacterBuilder().
		WithInnateHeritage(testutils.HeritageSeer).
		WithHeritageChoice("Inner Eye", entities.CompoundChoice{MainChoice: "wisdom", SubChoice: "wisdom"}).
		Build()

	r := rules.ResolveAbilityModifiers(c, s.ref, rules.ModifierChoices{})

	s.Equal(1, r.HeritageModifiers[entities.AbilityWisdom])
	s.Require().Len(r.Warnings, 1)
	s.Equal(rules.IssueInvalidChoice, r.Warnings[0].Code)
}

func (s *ModifiersTestSuite) TestUnknownHouseSuggests() {
	c := builders.NewCharacterBuilder().WithHouse("Ravenclw").Build()

	r := rules.ResolveAbilityModifiers(c, s.ref, rules.ModifierChoices{})

	s.Require().Len(r.Warnings, 1)
	s.Equal(rules.IssueUnknownReference, r.Warnings[0].Code)
	s.Equal("Ravenclaw", r.Warnings[0].Suggestion)
	s.Contains(r.Warnings[0].Message, `did you mean "Ravenclaw"?`)
}

func (s *ModifiersTestSuite) TestEffectiveScoresCap() {
	c := builders.NewCharacterBuilder().
		WithLevel(4).
		WithAbilityScore(entities.AbilityIntelligence, 39).
		WithAbilityScore(entities.AbilityConstitution, 14).
		WithBackground(testutils.BackgroundBookworm).
		WithHouse("Ravenclaw").
		WithHouseChoice(testutils.FeatureHouseVirtue, entities.SimpleChoice{Name: "Wit"}).
		WithMilestoneASI(4, entities.AbilityIncrease{Ability: entities.AbilityConstitution, Increase: 2}).
		Build()

	scores := rules.ResolveEffectiveScores(c, s.ref)

	s.Equal(entities.MaxAbilityScore, scores[entities.AbilityIntelligence])
	s.Equal(16, scores[entities.AbilityConstitution])
	s.Equal(entities.DefaultAbilityScore, scores[entities.AbilityStrength])

	mods := rules.EffectiveModifiers(scores)
	s.Equal(15, mods[entities.AbilityIntelligence])
	s.Equal(3, mods[entities.AbilityConstitution])
	s.Equal(0, mods[entities.AbilityStrength])
}

func (s *ModifiersTestSuite) TestModifierFloorsNegative() {
	s.Equal(-1, entities.Modifier(9))
	s.Equal(-1, entities.Modifier(8))
	s.Equal(-5, entities.Modifier(1))
	s.Equal(0, entities.Modifier(11))
}
