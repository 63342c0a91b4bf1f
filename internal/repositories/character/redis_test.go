package character_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	mockclock "github.com/KirkDiggler/grimoire-api/internal/pkg/clock/mock"
	character "github.com/KirkDiggler/grimoire-api/internal/repositories/character"
	"github.com/KirkDiggler/grimoire-api/internal/testutils"
	"github.com/KirkDiggler/grimoire-api/internal/testutils/builders"
)

const (
	testCharID    = "char_123"
	testPlayerID  = "player_456"
	testCharKey   = "character:char_123"
	testPlayerKey = "character:player:player_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      character.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()
	s.ctx = context.Background()

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) testCharacter() *entities.Character {
	c := builders.NewCharacterBuilder().
		WithID(testCharID).
		WithPlayerID(testPlayerID).
		WithName("Luna").
		WithCastingStyle(testutils.StyleIntellect).
		WithHouse("Ravenclaw").
		WithHouseChoice(testutils.FeatureHouseVirtue, entities.SimpleChoice{Name: "Wit"}).
		WithSubclass(testutils.SubclassScholar).
		WithSubclassChoice(testutils.FeatureAcademicFocus, entities.CompoundChoice{
			MainChoice: "Study Buddy",
			SubChoice:  "Herbology",
		}).
		Build()
	c.CreatedAt = 0
	c.UpdatedAt = 0
	return c
}

func (s *RedisRepositoryTestSuite) create() *entities.Character {
	out, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)
	return out.Character
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("stores character and player index", func() {
		created := s.create()

		s.Equal(int64(1), created.Revision)
		s.Equal(s.now.Unix(), created.CreatedAt)
		s.Equal(s.now.Unix(), created.UpdatedAt)
		s.True(s.mr.Exists(testCharKey))

		members, err := s.mr.Members(testPlayerKey)
		s.Require().NoError(err)
		s.Equal([]string{testCharID}, members)
	})

	s.Run("rejects duplicate ID", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("validates input", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{}})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestCreateDoesNotMutateInput() {
	input := s.testCharacter()

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: input})

	s.Require().NoError(err)
	s.Zero(input.Revision)
	s.Zero(input.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestGetPreservesChoiceShapes() {
	s.create()

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})

	s.Require().NoError(err)
	s.Equal(entities.SimpleChoice{Name: "Wit"}, out.Character.HouseChoices[testutils.FeatureHouseVirtue])
	s.Equal(entities.CompoundChoice{MainChoice: "Study Buddy", SubChoice: "Herbology"},
		out.Character.SubclassChoices[testutils.FeatureAcademicFocus])

	raw, err := s.mr.Get(testCharKey)
	s.Require().NoError(err)
	var stored map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
	s.JSONEq(`{"House Virtue":"Wit"}`, string(stored["house_choices"]))
	s.JSONEq(`{"Academic Focus":{"main_choice":"Study Buddy","sub_choice":"Herbology"}}`,
		string(stored["subclass_choices"]))
}

func (s *RedisRepositoryTestSuite) TestGetLegacyChoiceShape() {
	legacy := `{"id":"char_legacy","player_id":"p","name":"Old","level":3,` +
		`"subclass_choices":{"Academic Focus":{"mainChoice":"Study Buddy","subChoice":"Potion-Making"}}}`
	s.Require().NoError(s.mr.Set("character:char_legacy", legacy))

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_legacy"})

	s.Require().NoError(err)
	s.Equal(entities.CompoundChoice{MainChoice: "Study Buddy", SubChoice: "Potion-Making"},
		out.Character.SubclassChoices["Academic Focus"])
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateAppliesPatch() {
	s.create()
	level := 4
	style := testutils.StyleVigor

	out, err := s.repo.Update(s.ctx, character.UpdateInput{
		ID: testCharID,
		Patch: &entities.Patch{
			Level:        &level,
			CastingStyle: &style,
			FeatChoices:  map[string]string{"Skilled_skill_0": "Stealth"},
		},
	})

	s.Require().NoError(err)
	s.Equal(4, out.Character.Level)
	s.Equal(testutils.StyleVigor, out.Character.CastingStyle)
	s.Equal("Ravenclaw", out.Character.House)
	s.Equal(int64(2), out.Character.Revision)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal(out.Character, got.Character)
}

func (s *RedisRepositoryTestSuite) TestUpdateErrors() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{ID: "missing", Patch: &entities.Patch{}})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, character.UpdateInput{ID: testCharID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveChecksRevision() {
	created := s.create()

	next := created.Clone()
	next.Level = 8
	out, err := s.repo.Save(s.ctx, character.SaveInput{Character: next, ExpectedRevision: created.Revision})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Character.Revision)

	stale := created.Clone()
	stale.Level = 2
	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: stale, ExpectedRevision: created.Revision})
	s.True(errors.IsAborted(err))

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal(8, got.Character.Level)
}

func (s *RedisRepositoryTestSuite) TestSaveMovesPlayerIndex() {
	created := s.create()

	moved := created.Clone()
	moved.PlayerID = "player_new"
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: moved})
	s.Require().NoError(err)

	old, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	now, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_new"})
	s.Require().NoError(err)
	s.Len(now.Characters, 1)
}

func (s *RedisRepositoryTestSuite) TestSaveKeepsBookkeeping() {
	created := s.create()

	tampered := created.Clone()
	tampered.CreatedAt = 1
	tampered.Revision = 99
	out, err := s.repo.Save(s.ctx, character.SaveInput{Character: tampered})

	s.Require().NoError(err)
	s.Equal(created.CreatedAt, out.Character.CreatedAt)
	s.Equal(int64(2), out.Character.Revision)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.create()

	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.Require().NoError(err)
	s.False(s.mr.Exists(testCharKey))

	members, _ := s.mr.Members(testPlayerKey)
	s.Empty(members)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	for i, id := range []string{"char_b", "char_a", "char_c"} {
		c := builders.NewCharacterBuilder().WithID(id).WithPlayerID(testPlayerID).Build()
		c.CreatedAt = int64(100 - i)
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})

	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)
	s.Equal("char_c", out.Characters[0].ID)
	s.Equal("char_a", out.Characters[1].ID)
	s.Equal("char_b", out.Characters[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListPrunesStaleIndex() {
	s.create()
	_, err := s.mr.SAdd(testPlayerKey, "char_gone")
	s.Require().NoError(err)

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})

	s.Require().NoError(err)
	s.Len(out.Characters, 1)
	members, _ := s.mr.Members(testPlayerKey)
	s.Equal([]string{testCharID}, members)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	_, err = s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestNewRedisValidation(t *testing.T) {
	if _, err := character.NewRedis(nil); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := character.NewRedis(&character.RedisConfig{}); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
