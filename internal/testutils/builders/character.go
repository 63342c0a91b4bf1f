// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	now := time.Now().Unix()
	c := entities.NewCharacter("char-test-123", "player-test-123", "Test Character")
	c.CreatedAt = now
	c.UpdatedAt = now
	return &CharacterBuilder{character: c}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithCastingStyle sets the casting style
func (b *CharacterBuilder) WithCastingStyle(style string) *CharacterBuilder {
	b.character.CastingStyle = style
	return b
}

// WithHouse sets the house
func (b *CharacterBuilder) WithHouse(house string) *CharacterBuilder {
	b.character.House = house
	return b
}

// WithHouseChoice records a house feature choice
func (b *CharacterBuilder) WithHouseChoice(feature string, choice entities.Choice) *CharacterBuilder {
	if b.character.HouseChoices == nil {
		b.character.HouseChoices = entities.ChoiceMap{}
	}
	b.character.HouseChoices[feature] = choice
	return b
}

// WithBackground sets the background
func (b *CharacterBuilder) WithBackground(background string) *CharacterBuilder {
	b.character.Background = background
	return b
}

// WithInnateHeritage takes an innate heritage at level 1
func (b *CharacterBuilder) WithInnateHeritage(heritage string) *CharacterBuilder {
	b.character.Level1Choice = entities.Level1Innate
	b.character.InnateHeritage = heritage
	return b
}

// WithHeritageChoice records a heritage feature choice
func (b *CharacterBuilder) WithHeritageChoice(feature string, choice entities.Choice) *CharacterBuilder {
	if b.character.HeritageChoices == nil {
		b.character.HeritageChoices = entities.ChoiceMap{}
	}
	b.character.HeritageChoices[feature] = choice
	return b
}

// WithLevel1Feat takes a feat at level 1
func (b *CharacterBuilder) WithLevel1Feat(feat string) *CharacterBuilder {
	b.character.Level1Choice = entities.Level1Feat
	b.character.StandardFeats = []string{feat}
	return b
}

// WithFeatChoice records a character-wide feat choice
func (b *CharacterBuilder) WithFeatChoice(key, value string) *CharacterBuilder {
	if b.character.FeatChoices == nil {
		b.character.FeatChoices = map[string]string{}
	}
	b.character.FeatChoices[key] = value
	return b
}

// WithSubclass sets the subclass
func (b *CharacterBuilder) WithSubclass(subclass string) *CharacterBuilder {
	b.character.Subclass = subclass
	return b
}

// WithSubclassChoice records a subclass feature choice
func (b *CharacterBuilder) WithSubclassChoice(feature string, choice entities.Choice) *CharacterBuilder {
	if b.character.SubclassChoices == nil {
		b.character.SubclassChoices = entities.ChoiceMap{}
	}
	b.character.SubclassChoices[feature] = choice
	return b
}

// WithAbilityScore sets one base ability score
func (b *CharacterBuilder) WithAbilityScore(a entities.Ability, score int) *CharacterBuilder {
	if b.character.AbilityScores == nil {
		b.character.AbilityScores = entities.AbilityScores{}
	}
	b.character.AbilityScores[a] = score
	return b
}

// WithSkillProficiencies sets the manual casting style picks
func (b *CharacterBuilder) WithSkillProficiencies(skills ...string) *CharacterBuilder {
	b.character.SkillProficiencies = skills
	return b
}

// WithSkillExpertise sets the manual expertise picks
func (b *CharacterBuilder) WithSkillExpertise(skills ...string) *CharacterBuilder {
	b.character.SkillExpertise = skills
	return b
}

// WithMilestoneFeat resolves a milestone as a feat
func (b *CharacterBuilder) WithMilestoneFeat(level int, feat string, choices map[string]string) *CharacterBuilder {
	b.milestones()[level] = &entities.ASIChoice{
		Type:         entities.ASITypeFeat,
		SelectedFeat: feat,
		FeatChoices:  choices,
	}
	return b
}

// WithMilestoneASI resolves a milestone as ability score increases
func (b *CharacterBuilder) WithMilestoneASI(level int, increases ...entities.AbilityIncrease) *CharacterBuilder {
	b.milestones()[level] = &entities.ASIChoice{
		Type:                  entities.ASITypeASI,
		AbilityScoreIncreases: increases,
	}
	return b
}

func (b *CharacterBuilder) milestones() map[int]*entities.ASIChoice {
	if b.character.ASIChoices == nil {
		b.character.ASIChoices = map[int]*entities.ASIChoice{}
	}
	return b.character.ASIChoices
}

// Committed marks the build as committed with the given hit points
func (b *CharacterBuilder) Committed(hp int) *CharacterBuilder {
	b.character.Committed = true
	b.character.HitPoints = hp
	return b
}

// Build returns a copy of the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
