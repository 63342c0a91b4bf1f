package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-toolkit/events"

	catalogmock "github.com/KirkDiggler/grimoire-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/grimoire-api/internal/engine"
	enginemock "github.com/KirkDiggler/grimoire-api/internal/engine/mock"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rules"
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	orchestrator "github.com/KirkDiggler/grimoire-api/internal/orchestrators/character"
	idgenmock "github.com/KirkDiggler/grimoire-api/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
	characterrepo "github.com/KirkDiggler/grimoire-api/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/grimoire-api/internal/repositories/character/mock"
	"github.com/KirkDiggler/grimoire-api/internal/services/character"
	"github.com/KirkDiggler/grimoire-api/internal/testutils"
	"github.com/KirkDiggler/grimoire-api/internal/testutils/builders"
	"github.com/KirkDiggler/grimoire-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *characterrepomock.MockRepository
	mockCatalog   *catalogmock.MockClient
	mockEngine    *enginemock.MockEngine
	mockIDGen     *idgenmock.MockGenerator
	bus           *events.Bus
	orchestrator  *orchestrator.Orchestrator
	ctx           context.Context
	ref           *reference.Data
	stored        *entities.Character
	publishedType []string
	published     []events.Event
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockCatalog = catalogmock.NewMockClient(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.bus = events.NewBus()
	s.ctx = context.Background()
	s.ref = testutils.TestReferenceData()

	s.published = nil
	s.publishedType = nil
	for _, t := range []string{
		orchestrator.EventCharacterCreated,
		orchestrator.EventCharacterUpdated,
		orchestrator.EventCharacterCommitted,
		orchestrator.EventCharacterDeleted,
	} {
		eventType := t
		s.bus.SubscribeFunc(eventType, 100, func(_ context.Context, e events.Event) error {
			s.publishedType = append(s.publishedType, eventType)
			s.published = append(s.published, e)
			return nil
		})
	}

	s.stored = builders.NewCharacterBuilder().
		WithID(testutils.TestCharacterID).
		WithPlayerID(testutils.TestPlayerID).
		WithCastingStyle(testutils.StyleWillpower).
		Build()
	s.stored.Revision = 3

	var err error
	s.orchestrator, err = orchestrator.New(&orchestrator.Config{
		CharacterRepo: s.mockRepo,
		CatalogClient: s.mockCatalog,
		Engine:        s.mockEngine,
		EventBus:      s.bus,
		IDGenerator:   s.mockIDGen,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectLoad() {
	mocks.ExpectCharacterGet(s.ctx, s.mockRepo, testutils.TestCharacterID, s.stored, nil)
}

func (s *OrchestratorTestSuite) expectReference() {
	mocks.ExpectReference(s.ctx, s.mockCatalog, s.ref)
}

func (s *OrchestratorTestSuite) expectValidate(result *rules.ValidationResult) {
	mocks.ExpectValidate(s.ctx, s.mockEngine, result)
}

func validResult() *rules.ValidationResult {
	return &rules.ValidationResult{IsValid: true, Errors: []rules.Issue{}, Warnings: []rules.Issue{}}
}

func (s *OrchestratorTestSuite) TestNew_MissingDependencies() {
	_, err := orchestrator.New(&orchestrator.Config{})

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	for _, field := range []string{"CharacterRepo", "CatalogClient", "Engine", "EventBus", "IDGenerator"} {
		s.Contains(err.Error(), field)
	}
}

func (s *OrchestratorTestSuite) TestNew_InvalidHitPointMode() {
	_, err := orchestrator.New(&orchestrator.Config{
		CharacterRepo: s.mockRepo,
		CatalogClient: s.mockCatalog,
		Engine:        s.mockEngine,
		EventBus:      s.bus,
		IDGenerator:   s.mockIDGen,
		HitPointMode:  "max",
	})

	s.Error(err)
	s.Contains(err.Error(), "HitPointMode")
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Success() {
	name := "Overridden"
	s.mockIDGen.EXPECT().Generate().Return("char-new")
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			s.Equal("char-new", input.Character.ID)
			s.Equal(testutils.TestPlayerID, input.Character.PlayerID)
			s.Equal(name, input.Character.Name)
			s.Equal(testutils.StyleVigor, input.Character.CastingStyle)
			s.Equal(entities.MinLevel, input.Character.Level)
			stored := input.Character.Clone()
			stored.Revision = 1
			return &characterrepo.CreateOutput{Character: stored}, nil
		})

	style := testutils.StyleVigor
	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		PlayerID: testutils.TestPlayerID,
		Name:     "Original",
		Initial:  &entities.Patch{Name: &name, CastingStyle: &style},
	})

	s.Require().NoError(err)
	s.Equal("char-new", output.Character.ID)
	s.Equal(int64(1), output.Character.Revision)
	s.Equal([]string{orchestrator.EventCharacterCreated}, s.publishedType)
	s.Equal("char-new", s.published[0].Source().GetID())
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Validation() {
	badLevel := 21

	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		Initial: &entities.Patch{Level: &badLevel},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "playerID: is required")
	s.Contains(err.Error(), "level: must be between 1 and 20")
}

func (s *OrchestratorTestSuite) TestCreateCharacter_NilInput() {
	output, err := s.orchestrator.CreateCharacter(s.ctx, nil)

	s.Error(err)
	s.Nil(output)
	s.Contains(err.Error(), "input is required")
}

func (s *OrchestratorTestSuite) TestGetCharacter_Success() {
	s.expectLoad()

	output, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{
		CharacterID: testutils.TestCharacterID,
	})

	s.Require().NoError(err)
	s.Equal(s.stored, output.Character)
}

func (s *OrchestratorTestSuite) TestGetCharacter_EmptyID() {
	output, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "characterID: is required")
}

func (s *OrchestratorTestSuite) TestGetCharacter_NotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char-missing"}).
		Return(nil, errors.NotFound("character not found"))

	output, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "char-missing"})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to get character")
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.mockRepo.EXPECT().
		ListByPlayerID(s.ctx, characterrepo.ListByPlayerIDInput{PlayerID: testutils.TestPlayerID}).
		Return(&characterrepo.ListByPlayerIDOutput{Characters: []*entities.Character{s.stored}}, nil)

	output, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: testutils.TestPlayerID})

	s.Require().NoError(err)
	s.Len(output.Characters, 1)

	_, err = s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.expectLoad()
	s.mockRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: testutils.TestCharacterID}).
		Return(&characterrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{
		CharacterID: testutils.TestCharacterID,
	})

	s.Require().NoError(err)
	s.Equal([]string{orchestrator.EventCharacterDeleted}, s.publishedType)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_Success() {
	house := "Gryffindor"
	updated := s.stored.Clone()
	updated.House = house
	updated.Revision = 4

	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal(testutils.TestCharacterID, input.ID)
			s.Equal(&house, input.Patch.House)
			return &characterrepo.UpdateOutput{Character: updated}, nil
		})
	s.expectReference()
	warned := &rules.ValidationResult{
		IsValid:  true,
		Errors:   []rules.Issue{},
		Warnings: []rules.Issue{{Code: rules.IssueIncomplete, Severity: rules.SeverityWarning}},
	}
	s.expectValidate(warned)

	output, err := s.orchestrator.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{
		CharacterID: testutils.TestCharacterID,
		Patch:       &entities.Patch{House: &house},
	})

	s.Require().NoError(err)
	s.Equal(updated, output.Character)
	s.Equal(warned, output.Validation)
	s.Equal([]string{orchestrator.EventCharacterUpdated}, s.publishedType)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_EmptyPatch() {
	output, err := s.orchestrator.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{
		CharacterID: testutils.TestCharacterID,
		Patch:       &entities.Patch{},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "must change at least one field")
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_RefusesProgressionFields() {
	feats := []string{"Lucky"}

	output, err := s.orchestrator.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{
		CharacterID: testutils.TestCharacterID,
		Patch:       &entities.Patch{StandardFeats: feats},
	})

	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "use SetLevel1Choice")
}

func (s *OrchestratorTestSuite) TestCreateCharacter_RefusesMilestonePicks() {
	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		PlayerID: testutils.TestPlayerID,
		Initial: &entities.Patch{ASIChoices: map[int]*entities.ASIChoice{
			4: {Type: entities.ASITypeASI},
		}},
	})

	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "use SetMilestone")
}

func (s *OrchestratorTestSuite) TestToggleCastingSkill_AppliedIsSaved() {
	edited := s.stored.Clone()
	edited.SkillProficiencies = []string{"Athletics"}
	saved := edited.Clone()
	saved.Revision = 4

	s.expectLoad()
	s.expectReference()
	s.mockEngine.EXPECT().
		ToggleCastingSkill(s.ctx, &engine.ToggleSkillInput{Character: s.stored, Reference: s.ref, Skill: "Athletics"}).
		Return(&engine.EditOutput{Character: edited, Applied: true}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, characterrepo.SaveInput{Character: edited, ExpectedRevision: 3}).
		Return(&characterrepo.SaveOutput{Character: saved}, nil)
	s.expectValidate(validResult())

	output, err := s.orchestrator.ToggleCastingSkill(s.ctx, &character.ToggleSkillInput{
		CharacterID: testutils.TestCharacterID,
		Skill:       "Athletics",
	})

	s.Require().NoError(err)
	s.True(output.Applied)
	s.Equal(saved, output.Character)
	s.True(output.Validation.IsValid)
	s.Require().Equal([]string{orchestrator.EventCharacterUpdated}, s.publishedType)
	op, ok := s.published[0].Context().Get(orchestrator.ContextOperation)
	s.True(ok)
	s.Equal("toggle_casting_skill", op)
	rev, ok := s.published[0].Context().Get(orchestrator.ContextRevision)
	s.True(ok)
	s.Equal(int64(4), rev)
}

func (s *OrchestratorTestSuite) TestToggleCastingSkill_RejectedStoresNothing() {
	s.expectLoad()
	s.expectReference()
	s.mockEngine.EXPECT().
		ToggleCastingSkill(s.ctx, gomock.Any()).
		Return(&engine.EditOutput{Character: s.stored.Clone(), Applied: false, Reason: rules.RejectCapReached}, nil)
	s.expectValidate(validResult())

	output, err := s.orchestrator.ToggleCastingSkill(s.ctx, &character.ToggleSkillInput{
		CharacterID: testutils.TestCharacterID,
		Skill:       "Perception",
	})

	s.Require().NoError(err)
	s.False(output.Applied)
	s.Equal(rules.RejectCapReached, output.Reason)
	s.Equal(s.stored, output.Character)
	s.Empty(s.publishedType)
}

func (s *OrchestratorTestSuite) TestToggleCastingSkill_RequiresSkill() {
	_, err := s.orchestrator.ToggleCastingSkill(s.ctx, &character.ToggleSkillInput{CharacterID: testutils.TestCharacterID})

	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "skill is required")
}

func (s *OrchestratorTestSuite) TestToggleExpertise_ConcurrentChangeAborts() {
	edited := s.stored.Clone()
	edited.SkillExpertise = []string{"Athletics"}

	s.expectLoad()
	s.expectReference()
	s.mockEngine.EXPECT().
		ToggleExpertise(s.ctx, gomock.Any()).
		Return(&engine.EditOutput{Character: edited, Applied: true}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Aborted("character is at revision 4, expected 3"))

	output, err := s.orchestrator.ToggleExpertise(s.ctx, &character.ToggleSkillInput{
		CharacterID: testutils.TestCharacterID,
		Skill:       "Athletics",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAborted(err))
	s.Empty(s.publishedType)
}

func (s *OrchestratorTestSuite) TestEdit_CatalogUnavailable() {
	s.expectLoad()
	s.mockCatalog.EXPECT().GetReference(s.ctx).Return(nil, errors.Unavailable("catalog down"))

	output, err := s.orchestrator.SetLevel(s.ctx, &character.SetLevelInput{
		CharacterID: testutils.TestCharacterID,
		Level:       4,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "failed to load reference data")
}

func (s *OrchestratorTestSuite) TestSetMilestone_PassesChoice() {
	edited := s.stored.Clone()
	edited.Level = 4

	s.expectLoad()
	s.expectReference()
	s.mockEngine.EXPECT().
		SetMilestone(s.ctx, &engine.SetMilestoneInput{
			Character: s.stored,
			Level:     4,
			Type:      entities.ASITypeFeat,
			Feat:      "Alert",
		}).
		Return(&engine.EditOutput{Character: edited, Applied: true}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, characterrepo.SaveInput{Character: edited, ExpectedRevision: 3}).
		Return(&characterrepo.SaveOutput{Character: edited}, nil)
	s.expectValidate(validResult())

	output, err := s.orchestrator.SetMilestone(s.ctx, &character.SetMilestoneInput{
		CharacterID: testutils.TestCharacterID,
		Level:       4,
		Type:        entities.ASITypeFeat,
		Feat:        "Alert",
	})

	s.Require().NoError(err)
	s.True(output.Applied)
}

func (s *OrchestratorTestSuite) TestRollHitPoints() {
	s.expectLoad()
	s.expectReference()
	s.mockEngine.EXPECT().
		ComputeHitPoints(s.ctx, &engine.ComputeHitPointsInput{Character: s.stored, Reference: s.ref, Mode: rules.HitPointsRolled}).
		Return(&engine.ComputeHitPointsOutput{HitPoints: &rules.HitPointResult{HitPoints: 17, Mode: rules.HitPointsRolled, Rolls: []int{7}}}, nil)
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
			s.Equal(17, input.Character.HitPoints)
			s.Equal(int64(3), input.ExpectedRevision)
			s.False(input.Character.Committed)
			return &characterrepo.SaveOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.RollHitPoints(s.ctx, &character.RollHitPointsInput{CharacterID: testutils.TestCharacterID})

	s.Require().NoError(err)
	s.Equal(17, output.Character.HitPoints)
	s.Equal([]int{7}, output.HitPoints.Rolls)
	s.Zero(s.stored.HitPoints, "loaded snapshot must not change")
}

func (s *OrchestratorTestSuite) TestCommitBuild_InvalidBuildRefused() {
	s.expectLoad()
	s.expectReference()
	s.expectValidate(&rules.ValidationResult{
		IsValid:  false,
		Errors:   []rules.Issue{{Code: rules.IssueDuplicateFeat, Subject: "Alert"}},
		Warnings: []rules.Issue{},
	})

	output, err := s.orchestrator.CommitBuild(s.ctx, &character.CommitBuildInput{CharacterID: testutils.TestCharacterID})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "1 build errors")
	s.NotNil(errors.GetMeta(err)[errors.MetaValidationErrors])
	s.Empty(s.publishedType)
}

func (s *OrchestratorTestSuite) TestCommitBuild_Success() {
	sheet := &engine.BuildSheet{}

	s.expectLoad()
	s.expectReference()
	s.expectValidate(validResult())
	s.mockEngine.EXPECT().
		ComputeHitPoints(s.ctx, &engine.ComputeHitPointsInput{Character: s.stored, Reference: s.ref, Mode: rules.HitPointsAverage}).
		Return(&engine.ComputeHitPointsOutput{HitPoints: &rules.HitPointResult{HitPoints: 12, Mode: rules.HitPointsAverage}}, nil)
	mocks.ExpectCharacterSave(s.ctx, s.mockRepo, s.stored.Revision)
	s.mockEngine.EXPECT().
		BuildSheet(s.ctx, gomock.Any()).
		Return(&engine.BuildSheetOutput{Sheet: sheet}, nil)

	output, err := s.orchestrator.CommitBuild(s.ctx, &character.CommitBuildInput{CharacterID: testutils.TestCharacterID})

	s.Require().NoError(err)
	s.True(output.Character.Committed)
	s.Equal(12, output.Character.HitPoints)
	s.Equal(int64(4), output.Character.Revision)
	s.Same(sheet, output.Sheet)
	s.Equal([]string{orchestrator.EventCharacterCommitted}, s.publishedType)
}

func (s *OrchestratorTestSuite) TestGetBuildSheet() {
	sheet := &engine.BuildSheet{Character: s.stored}

	s.expectLoad()
	s.expectReference()
	s.mockEngine.EXPECT().
		BuildSheet(s.ctx, &engine.BuildSheetInput{Character: s.stored, Reference: s.ref}).
		Return(&engine.BuildSheetOutput{Sheet: sheet}, nil)

	output, err := s.orchestrator.GetBuildSheet(s.ctx, &character.GetBuildSheetInput{CharacterID: testutils.TestCharacterID})

	s.Require().NoError(err)
	s.Same(sheet, output.Sheet)
}

func (s *OrchestratorTestSuite) TestStateless_RequireCharacter() {
	_, err := s.orchestrator.ResolveSkills(s.ctx, &character.SnapshotInput{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "character is required")

	_, err = s.orchestrator.ResolveProgression(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ComputeHitPoints(s.ctx, &character.ComputeHitPointsInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestComputeHitPoints_DefaultsMode() {
	snapshot := testutils.CreateTestCharacter()

	s.expectReference()
	s.mockEngine.EXPECT().
		ComputeHitPoints(s.ctx, &engine.ComputeHitPointsInput{Character: snapshot, Reference: s.ref, Mode: rules.HitPointsAverage}).
		Return(&engine.ComputeHitPointsOutput{HitPoints: &rules.HitPointResult{HitPoints: 1}}, nil)

	output, err := s.orchestrator.ComputeHitPoints(s.ctx, &character.ComputeHitPointsInput{Character: snapshot})

	s.Require().NoError(err)
	s.Equal(1, output.HitPoints.HitPoints)
}

func (s *OrchestratorTestSuite) TestResolveAbilityModifiers_PassesChoices() {
	snapshot := testutils.CreateTestCharacter()
	choices := rules.ModifierChoices{FeatChoices: map[string]string{"Resilient_ability_0": "constitution"}}

	s.expectReference()
	s.mockEngine.EXPECT().
		ResolveAbilityModifiers(s.ctx, &engine.ResolveAbilityModifiersInput{Character: snapshot, Reference: s.ref, Choices: choices}).
		Return(&engine.ResolveAbilityModifiersOutput{EffectiveScores: map[entities.Ability]int{}}, nil)

	output, err := s.orchestrator.ResolveAbilityModifiers(s.ctx, &character.ResolveAbilityModifiersInput{
		Character: snapshot,
		Choices:   choices,
	})

	s.Require().NoError(err)
	s.NotNil(output.EffectiveScores)
}
