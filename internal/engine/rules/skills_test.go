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

type SkillsTestSuite struct {
	suite.Suite
	ref *reference.Data
}

func TestSkillsSuite(t *testing.T) {
	suite.Run(t, new(SkillsTestSuite))
}

func (s *SkillsTestSuite) SetupTest() {
	s.ref = testutils.TestReferenceData()
}

func (s *SkillsTestSuite) TestAvailableSkillsFollowCastingStyle() {
	c := builders.NewCharacterBuilder().WithCastingStyle(testutils.StyleTechnique).Build()

	r := rules.ResolveSkills(c, s.ref)

	s.Equal([]string{"Acrobatics", "Sleight of Hand", "Stealth", "Potion-Making", "Investigation", "Deception"},
		r.AvailableCastingSkills)
	s.Empty(r.SelectedCastingStyleSkills)
	s.Empty(r.AllSkillProficiencies)
}

func (s *SkillsTestSuite) TestNoCastingStyleMeansNoAvailableSkills() {
	r := rules.ResolveSkills(testutils.CreateTestCharacter(), s.ref)

	s.NotNil(r.AvailableCastingSkills)
	s.Empty(r.AvailableCastingSkills)
	s.Empty(r.Warnings)
}

func (s *SkillsTestSuite) TestToggleRejectsSkillGrantedByBackground() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithBackground(testutils.BackgroundGroundskeeper).
		Build()

	res := rules.ToggleCastingStyleSkill(c, s.ref, "Herbology")

	s.False(res.Applied)
	s.Equal(rules.RejectAutomaticSkill, res.Reason)
	s.Equal(c, res.Character)
	s.NotSame(c, res.Character)
	s.Empty(rules.ResolveSkills(res.Character, s.ref).SelectedCastingStyleSkills)
}

func (s *SkillsTestSuite) TestToggleRejectsSkillOutsideStyleList() {
	c := builders.NewCharacterBuilder().WithCastingStyle(testutils.StyleWillpower).Build()

	res := rules.ToggleCastingStyleSkill(c, s.ref, "Stealth")

	s.False(res.Applied)
	s.Equal(rules.RejectNotAvailable, res.Reason)
}

func (s *SkillsTestSuite) TestToggleEnforcesCap() {
	c := builders.NewCharacterBuilder().WithCastingStyle(testutils.StyleWillpower).Build()

	res := rules.ToggleCastingStyleSkill(c, s.ref, "Athletics")
	s.Require().True(res.Applied)
	res = rules.ToggleCastingStyleSkill(res.Character, s.ref, "Intimidation")
	s.Require().True(res.Applied)

	third := rules.ToggleCastingStyleSkill(res.Character, s.ref, "Perception")

	s.False(third.Applied)
	s.Equal(rules.RejectCapReached, third.Reason)
	s.Equal([]string{"Athletics", "Intimidation"}, rules.ResolveSkills(third.Character, s.ref).SelectedCastingStyleSkills)
}

func (s *SkillsTestSuite) TestToggleRemovesManualPick() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithSkillProficiencies("Athletics", "Survival").
		Build()

	res := rules.ToggleCastingStyleSkill(c, s.ref, "Athletics")

	s.True(res.Applied)
	s.Equal([]string{"Survival"}, res.Character.SkillProficiencies)
	s.Equal([]string{"Athletics", "Survival"}, c.SkillProficiencies, "input snapshot must not change")
}

func (s *SkillsTestSuite) TestStoredPicksNeverExceedCap() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithSkillProficiencies("Athletics", "Intimidation", "Perception", "Survival").
		Build()

	r := rules.ResolveSkills(c, s.ref)

	s.LessOrEqual(len(r.SelectedCastingStyleSkills), rules.MaxCastingStyleSkills)
	s.Equal([]string{"Athletics", "Intimidation"}, r.SelectedCastingStyleSkills)
	s.NotContains(r.AllSkillProficiencies, "Perception")
}

func (s *SkillsTestSuite) TestBackgroundSkillNotDoubleCounted() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleIntellect).
		WithBackground(testutils.BackgroundBookworm).
		WithSkillProficiencies("History of Magic", "Magical Theory").
		Build()

	r := rules.ResolveSkills(c, s.ref)

	s.Equal([]string{"Magical Theory"}, r.SelectedCastingStyleSkills)
	s.Equal([]string{"History of Magic", "Investigation"}, r.BackgroundSkills)
	s.Equal([]string{"History of Magic", "Investigation", "Magical Theory"}, r.AllSkillProficiencies)
	s.Equal(rules.SourceBackground, r.Source("History of Magic"))
	s.Equal(rules.SourceCastingStyle, r.Source("Magical Theory"))
}

func (s *SkillsTestSuite) TestStudyBuddyDuplicateBecomesExpertise() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithBackground(testutils.BackgroundGroundskeeper).
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureAcademicFocus,
			entities.CompoundChoice{MainChoice: rules.StudyBuddy, SubChoice: "Herbology"}).
		Build()

	r := rules.ResolveSkills(c, s.ref)

	s.Equal([]string{"Herbology"}, r.ExpertiseSkills)
	s.Equal([]string{"Herbology"}, r.StudyBuddySkills)
	s.NotContains(r.SubclassSkills, "Herbology")
	s.True(r.IsExpertise("Herbology"))
	s.Equal(rules.SourceBackground, r.Source("Herbology"))
}

func (s *SkillsTestSuite) TestStudyBuddyNewSkillIsSubclassProficiency() {
	c := builders.NewCharacterBuilder().
		WithBackground(testutils.BackgroundBookworm).
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureAcademicFocus,
			entities.CompoundChoice{MainChoice: rules.StudyBuddy, SubChoice: "Potion-Making"}).
		Build()

	r := rules.ResolveSkills(c, s.ref)

	s.Equal([]string{"Potion-Making"}, r.SubclassSkills)
	s.Empty(r.ExpertiseSkills)
	s.Contains(r.AllSkillProficiencies, "Potion-Making")
}

func (s *SkillsTestSuite) TestStudyBuddyAllowsDeliberateCastingDuplicate() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureAcademicFocus,
			entities.CompoundChoice{MainChoice: rules.StudyBuddy, SubChoice: "Athletics"}).
		Build()

	res := rules.ToggleCastingStyleSkill(c, s.ref, "Athletics")
	s.Require().True(res.Applied)

	r := rules.ResolveSkills(res.Character, s.ref)
	s.Equal([]string{"Athletics"}, r.SelectedCastingStyleSkills)
	s.Equal([]string{"Athletics"}, r.ExpertiseSkills)
	s.Equal(rules.GrantedWithExpertiseOption, r.AutomaticGrant("Athletics"))
}

func (s *SkillsTestSuite) TestSimpleSubclassSkillChoice() {
	c := builders.NewCharacterBuilder().
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureFieldTraining, entities.SimpleChoice{Name: "Survival"}).
		Build()

	r := rules.ResolveSkills(c, s.ref)

	s.Equal([]string{"Survival"}, r.SubclassSkills)
	s.Equal(rules.SourceSubclass, r.Source("Survival"))
	s.False(r.HasExpertiseGranter)
}

func (s *SkillsTestSuite) TestExpertiseGranter() {
	c := builders.NewCharacterBuilder().
		WithBackground(testutils.BackgroundBookworm).
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureAcademicFocus, entities.SimpleChoice{Name: testutils.PracticeMakesPerfect}).
		Build()

	r := rules.ResolveSkills(c, s.ref)
	s.True(r.HasExpertiseGranter)
	s.Equal(2, r.ExpertisePicks)
	s.Equal(0, r.ExpertisePicksUsed)

	res := rules.ToggleExpertise(c, s.ref, "Athletics")
	s.False(res.Applied)
	s.Equal(rules.RejectNotProficient, res.Reason)

	res = rules.ToggleExpertise(c, s.ref, "Investigation")
	s.Require().True(res.Applied)
	s.Equal([]string{"Investigation"}, res.Character.SkillExpertise)

	again := rules.ToggleExpertise(res.Character, s.ref, "Investigation")
	s.True(again.Applied)
	s.Empty(again.Character.SkillExpertise)
}

func (s *SkillsTestSuite) TestExpertiseGranterCap() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleIntellect).
		WithBackground(testutils.BackgroundBookworm).
		WithSkillProficiencies("Medicine").
		WithSkillExpertise("History of Magic", "Investigation").
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureAcademicFocus, entities.SimpleChoice{Name: testutils.PracticeMakesPerfect}).
		Build()

	r := rules.ResolveSkills(c, s.ref)
	s.Equal(2, r.ExpertisePicksUsed)
	s.Equal([]string{"History of Magic", "Investigation"}, r.ExpertiseSkills)

	res := rules.ToggleExpertise(c, s.ref, "Medicine")
	s.False(res.Applied)
	s.Equal(rules.RejectCapReached, res.Reason)
}

func (s *SkillsTestSuite) TestExpertiseWithoutGranterRejected() {
	c := builders.NewCharacterBuilder().WithBackground(testutils.BackgroundBookworm).Build()

	res := rules.ToggleExpertise(c, s.ref, "Investigation")

	s.False(res.Applied)
	s.Equal(rules.RejectNoExpertiseGranter, res.Reason)
}

func (s *SkillsTestSuite) TestFeatSkillChoices() {
	c := builders.NewCharacterBuilder().
		WithLevel1Feat("Skilled").
		WithFeatChoice(rules.FeatChoiceKey("Skilled", "skill", 0), "Stealth").
		Build()

	r := rules.ResolveSkills(c, s.ref)

	s.Equal([]string{"Stealth"}, r.FeatSkills)
	s.Equal(rules.SourceFeat, r.Source("Stealth"))
	s.Require().Len(r.Warnings, 1)
	s.Equal(rules.IssueIncomplete, r.Warnings[0].Code)
	s.Equal(rules.Level1Slot, r.Warnings[0].Level)
}

func (s *SkillsTestSuite) TestFeatSkillChoiceOutsideList() {
	c := builders.NewCharacterBuilder().
		WithLevel(4).
		WithMilestoneFeat(4, "Keen Mind", map[string]string{
			rules.FeatChoiceKey("Keen Mind", "skill", 0): "Athletics",
		}).
		Build()

	r := rules.ResolveSkills(c, s.ref)

	s.Empty(r.FeatSkills)
	s.Require().NotEmpty(r.Warnings)
	s.Equal(rules.IssueInvalidChoice, r.Warnings[0].Code)
	s.Equal(4, r.Warnings[0].Level)
}

func (s *SkillsTestSuite) TestFeatExpertiseNeedsProficiency() {
	proficient := builders.NewCharacterBuilder().
		WithBackground(testutils.BackgroundGroundskeeper).
		WithLevel1Feat("Herbalist").
		Build()
	s.Equal([]string{"Herbology"}, rules.ResolveSkills(proficient, s.ref).ExpertiseSkills)

	missing := builders.NewCharacterBuilder().WithLevel1Feat("Herbalist").Build()
	r := rules.ResolveSkills(missing, s.ref)
	s.Empty(r.ExpertiseSkills)
	s.Require().Len(r.Warnings, 1)
	s.Equal(rules.IssueExpertiseUnavailable, r.Warnings[0].Code)
}

func (s *SkillsTestSuite) TestUnknownBackgroundFallsBackToCachedSkills() {
	c := builders.NewCharacterBuilder().WithBackground("Bookwrm").Build()
	c.BackgroundSkills = []string{"History of Magic"}

	r := rules.ResolveSkills(c, s.ref)

	s.Equal([]string{"History of Magic"}, r.BackgroundSkills)
	s.Require().Len(r.Warnings, 1)
	s.Equal(rules.IssueUnknownReference, r.Warnings[0].Code)
	s.Equal(testutils.BackgroundBookworm, r.Warnings[0].Suggestion)
}

func (s *SkillsTestSuite) TestMilestoneFeatAboveLevelIgnored() {
	c := builders.NewCharacterBuilder().
		WithLevel(3).
		WithMilestoneFeat(4, "Skilled", map[string]string{
			rules.FeatChoiceKey("Skilled", "skill", 0): "Stealth",
			rules.FeatChoiceKey("Skilled", "skill", 1): "Insight",
		}).
		Build()

	s.Empty(rules.ResolveSkills(c, s.ref).FeatSkills)
}

func (s *SkillsTestSuite) TestIdempotent() {
	c := builders.NewCharacterBuilder().
		WithCastingStyle(testutils.StyleWillpower).
		WithBackground(testutils.BackgroundGroundskeeper).
		WithInnateHeritage(testutils.HeritageSeer).
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureAcademicFocus,
			entities.CompoundChoice{MainChoice: rules.StudyBuddy, SubChoice: "Perception"}).
		WithSubclassChoice(testutils.FeatureFieldTraining, entities.SimpleChoice{Name: "Medicine"}).
		WithSkillProficiencies("Athletics", "Survival").
		Build()

	first := rules.ResolveSkills(c, s.ref)
	second := rules.ResolveSkills(c, s.ref)

	s.Equal(first, second)
	s.Equal([]string{"Perception"}, first.ExpertiseSkills)
}

func (s *SkillsTestSuite) TestNilInputs() {
	s.NotPanics(func() {
		r := rules.ResolveSkills(nil, nil)
		s.Empty(r.AllSkillProficiencies)
	})
}
