package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/testutils/builders"
)

func TestGetAvailableASILevels(t *testing.T) {
	testCases := []struct {
		name  string
		level int
		want  []int
	}{
		{name: "level 1", level: 1, want: []int{}},
		{name: "level 3", level: 3, want: []int{}},
		{name: "level 4", level: 4, want: []int{4}},
		{name: "level 5", level: 5, want: []int{4}},
		{name: "level 18", level: 18, want: []int{4, 8, 12, 16}},
		{name: "level 20", level: 20, want: []int{4, 8, 12, 16, 19}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.GetAvailableASILevels(tc.level))
		})
	}
}

func TestNextASILevel(t *testing.T) {
	next, ok := rules.NextASILevel(4)
	assert.True(t, ok)
	assert.Equal(t, 8, next)

	next, ok = rules.NextASILevel(1)
	assert.True(t, ok)
	assert.Equal(t, 4, next)

	_, ok = rules.NextASILevel(19)
	assert.False(t, ok)
}

func TestProficiencyBonus(t *testing.T) {
	assert.Equal(t, 2, rules.ProficiencyBonus(1))
	assert.Equal(t, 2, rules.ProficiencyBonus(4))
	assert.Equal(t, 3, rules.ProficiencyBonus(5))
	assert.Equal(t, 4, rules.ProficiencyBonus(9))
	assert.Equal(t, 6, rules.ProficiencyBonus(20))
	assert.Equal(t, 2, rules.ProficiencyBonus(0))
}

type ProgressionTestSuite struct {
	suite.Suite
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) TestLevelRaiseExposesUnsetMilestone() {
	c := builders.NewCharacterBuilder().WithLevel(3).Build()
	s.Empty(rules.GetAvailableASILevels(c.Level))

	res := rules.SetLevel(c, 5)
	s.Require().True(res.Applied)

	s.Equal([]int{4}, rules.GetAvailableASILevels(res.Character.Level))
	view := rules.ResolveProgression(res.Character)
	s.Require().Len(view.Milestones, 1)
	s.Equal(4, view.Milestones[0].Level)
	s.Equal(rules.MilestoneUnset, view.Milestones[0].Status)
	s.Equal(entities.ASITypeUnset, view.Milestones[0].Type)
	s.Empty(res.Character.ASIChoices)
	s.Equal(3, c.Level)
}

func (s *ProgressionTestSuite) TestSetLevelRejectsOutOfRange() {
	c := builders.NewCharacterBuilder().Build()

	s.Equal(rules.RejectInvalidLevel, rules.SetLevel(c, 0).Reason)
	s.Equal(rules.RejectInvalidLevel, rules.SetLevel(c, 21).Reason)
	s.True(rules.SetLevel(c, 20).Applied)
}

func (s *ProgressionTestSuite) TestCollectAllFeatsCount() {
	testCases := []struct {
		name    string
		builder *builders.CharacterBuilder
		want    int
	}{
		{
			name:    "empty",
			builder: builders.NewCharacterBuilder(),
			want:    0,
		},
		{
			name:    "level 1 feat",
			builder: builders.NewCharacterBuilder().WithLevel1Feat("Alert"),
			want:    1,
		},
		{
			name:    "level 1 heritage ignores stale feat list",
			builder: builders.NewCharacterBuilder().WithLevel1Feat("Alert").WithInnateHeritage("Seer"),
			want:    0,
		},
		{
			name: "milestones",
			builder: builders.NewCharacterBuilder().
				WithLevel(12).
				WithLevel1Feat("Alert").
				WithMilestoneFeat(4, "Lucky", nil).
				WithMilestoneASI(8, entities.AbilityIncrease{Ability: entities.AbilityStrength, Increase: 2}).
				WithMilestoneFeat(12, "", nil),
			want: 3,
		},
		{
			name: "milestones above a lowered level",
			builder: builders.NewCharacterBuilder().
				WithLevel(5).
				WithMilestoneFeat(4, "Lucky", nil).
				WithMilestoneFeat(8, "Alert", nil),
			want: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Len(rules.CollectAllFeats(tc.builder.Build()), tc.want)
		})
	}
}

func (s *ProgressionTestSuite) TestCollectAllFeatsFollowsLevelChanges() {
	c := builders.NewCharacterBuilder().
		WithLevel(8).
		WithMilestoneFeat(8, "Lucky", nil).
		Build()
	s.Len(rules.CollectAllFeats(c), 1)

	lowered := rules.SetLevel(c, 5)
	s.Require().True(lowered.Applied)
	s.Empty(rules.CollectAllFeats(lowered.Character))
	s.Equal("Lucky", lowered.Character.ASIChoices[8].SelectedFeat, "kept but inactive")

	raised := rules.SetLevel(lowered.Character, 8)
	s.Require().True(raised.Applied)
	feats := rules.CollectAllFeats(raised.Character)
	s.Require().Len(feats, 1)
	s.Equal("Lucky", feats[0].Name)
	s.Equal(8, feats[0].Slot)
}

func (s *ProgressionTestSuite) TestCollectAllFeatsSlots() {
	c := builders.NewCharacterBuilder().
		WithLevel(8).
		WithLevel1Feat("Alert").
		WithMilestoneFeat(8, "Lucky", nil).
		WithMilestoneFeat(4, "Skilled", nil).
		Build()

	feats := rules.CollectAllFeats(c)

	s.Require().Len(feats, 3)
	s.Equal("Alert", feats[0].Name)
	s.Equal(rules.Level1Slot, feats[0].Slot)
	s.Equal("Skilled", feats[1].Name)
	s.Equal(4, feats[1].Slot)
	s.Equal("Lucky", feats[2].Name)
	s.Equal(8, feats[2].Slot)
}

func (s *ProgressionTestSuite) TestLevel1Lock() {
	fresh := builders.NewCharacterBuilder().Build()
	s.False(rules.IsLevel1Locked(fresh))

	res := rules.SetLevel1Choice(fresh, entities.Level1Innate, "Seer")
	s.Require().True(res.Applied)
	s.True(rules.IsLevel1Locked(res.Character))

	locked := rules.SetLevel1Choice(res.Character, entities.Level1Feat, "Alert")
	s.False(locked.Applied)
	s.Equal(rules.RejectLevel1Locked, locked.Reason)

	same := rules.SetLevel1Choice(res.Character, entities.Level1Innate, "Seer")
	s.True(same.Applied)

	unlocked := rules.UnlockLevel1(res.Character)
	s.False(rules.IsLevel1Locked(unlocked.Character))

	switched := rules.SetLevel1Choice(unlocked.Character, entities.Level1Feat, "Alert")
	s.Require().True(switched.Applied)
	s.Equal("", switched.Character.InnateHeritage)
	s.Equal([]string{"Alert"}, switched.Character.StandardFeats)
	s.False(switched.Character.Level1Unlocked)
	s.True(rules.IsLevel1Locked(switched.Character))
}

func (s *ProgressionTestSuite) TestLevel1LockedAboveLevelOne() {
	c := builders.NewCharacterBuilder().WithLevel(2).Build()

	res := rules.SetLevel1Choice(c, entities.Level1Feat, "Alert")

	s.False(res.Applied)
	s.Equal(rules.RejectLevel1Locked, res.Reason)
}

func (s *ProgressionTestSuite) TestMilestoneTypeSwitchClearsOtherFields() {
	c := builders.NewCharacterBuilder().
		WithLevel(4).
		WithMilestoneFeat(4, "Alert", map[string]string{"k": "v"}).
		Build()

	res := rules.SetMilestoneType(c, 4, entities.ASITypeASI)

	s.Require().True(res.Applied)
	choice := res.Character.ASIChoices[4]
	s.Equal(entities.ASITypeASI, choice.Type)
	s.Empty(choice.SelectedFeat)
	s.Nil(choice.FeatChoices)
	s.Equal("Alert", c.ASIChoices[4].SelectedFeat)
}

func (s *ProgressionTestSuite) TestMilestoneEditsRequireReachedMilestone() {
	c := builders.NewCharacterBuilder().WithLevel(5).Build()

	s.Equal(rules.RejectNotMilestone, rules.SetMilestoneType(c, 8, entities.ASITypeFeat).Reason)
	s.Equal(rules.RejectNotMilestone, rules.SetMilestoneFeat(c, 5, "Alert", nil).Reason)
	s.True(rules.SetMilestoneFeat(c, 4, "Alert", nil).Applied)
}

func (s *ProgressionTestSuite) TestSetMilestoneASI() {
	c := builders.NewCharacterBuilder().WithLevel(4).Build()

	res := rules.SetMilestoneASI(c, 4, []entities.AbilityIncrease{
		{Ability: entities.AbilityWisdom, Increase: 1},
		{Ability: entities.AbilityStrength, Increase: 1},
	})
	s.Require().True(res.Applied)
	s.Equal([]entities.AbilityIncrease{
		{Ability: entities.AbilityStrength, Increase: 1},
		{Ability: entities.AbilityWisdom, Increase: 1},
	}, res.Character.ASIChoices[4].AbilityScoreIncreases)

	view := rules.ResolveProgression(res.Character)
	s.Equal(rules.MilestoneComplete, view.Milestones[0].Status)
	s.Equal(1, view.AbilityScoreIncreases[entities.AbilityWisdom])

	over := rules.SetMilestoneASI(c, 4, []entities.AbilityIncrease{{Ability: entities.AbilityWisdom, Increase: 3}})
	s.Equal(rules.RejectCapReached, over.Reason)

	bad := rules.SetMilestoneASI(c, 4, []entities.AbilityIncrease{{Ability: "luck", Increase: 1}})
	s.Equal(rules.RejectInvalidChoice, bad.Reason)
}

func (s *ProgressionTestSuite) TestLevelDecreaseKeepsInactiveMilestones() {
	c := builders.NewCharacterBuilder().
		WithLevel(8).
		WithMilestoneFeat(8, "Lucky", nil).
		Build()

	res := rules.SetLevel(c, 5)
	s.Require().True(res.Applied)

	s.Equal("Lucky", res.Character.ASIChoices[8].SelectedFeat)
	s.Empty(rules.CollectAllFeats(res.Character))

	view := rules.ResolveProgression(res.Character)
	s.Require().Len(view.Milestones, 2)
	s.True(view.Milestones[0].Active)
	s.Equal(8, view.Milestones[1].Level)
	s.False(view.Milestones[1].Active)
	s.Equal(rules.MilestoneComplete, view.Milestones[1].Status)
	s.Equal(8, view.NextASILevel)
	s.True(view.HasNextASILevel)
}

func (s *ProgressionTestSuite) TestClearMilestone() {
	c := builders.NewCharacterBuilder().
		WithLevel(4).
		WithMilestoneFeat(4, "Lucky", nil).
		Build()

	res := rules.ClearMilestone(c, 4)

	s.Require().True(res.Applied)
	s.NotContains(res.Character.ASIChoices, 4)
}
