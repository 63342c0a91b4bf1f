// Package testutils provides shared fixtures and Redis helpers for tests
package testutils

import (
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// Names used across fixtures
const (
	TestCharacterID   = "char-test-001"
	TestPlayerID      = "player-test-001"
	TestCharacterName = "Hermione Test"

	StyleWillpower = "Willpower Caster"
	StyleTechnique = "Technique Caster"
	StyleIntellect = "Intellect Caster"
	StyleVigor     = "Vigor Caster"

	BackgroundBookworm      = "Bookworm"
	BackgroundGroundskeeper = "Groundskeeper"
	BackgroundStreetUrchin  = "Street Urchin"

	HeritageMetamorphmagus = "Metamorphmagus"
	HeritageParselmouth    = "Parselmouth"
	HeritageSeer           = "Seer"

	SubclassScholar = "Scholar"
	SubclassDuelist = "Duelist"

	FeatureAcademicFocus = "Academic Focus"
	FeatureFieldTraining = "Field Training"
	FeatureHouseVirtue   = "House Virtue"

	PracticeMakesPerfect = "Practice Makes Perfect"
)

// TestCatalog returns a small but complete reference catalog
func TestCatalog() *reference.Catalog {
	any1 := func(from ...entities.Ability) reference.AbilityBonus {
		return reference.AbilityBonus{From: from, Amount: 1}
	}
	fixed := func(a entities.Ability, n int) reference.AbilityBonus {
		return reference.AbilityBonus{Ability: a, Amount: n}
	}

	return &reference.Catalog{
		Version: "test",
		CastingStyles: []reference.CastingStyle{
			{
				Name: StyleWillpower, HitDie: 10, BaseHP: 10, HPPerLevel: 6,
				Skills: []string{"Athletics", "Herbology", "Intimidation", "Perception", "Survival", "Magical Creatures"},
			},
			{
				Name: StyleTechnique, HitDie: 6, BaseHP: 6, HPPerLevel: 4,
				Skills: []string{"Acrobatics", "Sleight of Hand", "Stealth", "Potion-Making", "Investigation", "Deception"},
			},
			{
				Name: StyleIntellect, HitDie: 8, BaseHP: 8, HPPerLevel: 5,
				Skills:              []string{"History of Magic", "Investigation", "Magical Theory", "Muggle Studies", "Medicine", "Insight"},
				InitiativeAbilities: []entities.Ability{entities.AbilityDexterity, entities.AbilityIntelligence},
			},
			{
				Name: StyleVigor, HitDie: 12, BaseHP: 12, HPPerLevel: 7,
				Skills: []string{"Athletics", "Survival", "Intimidation", "Perception", "Medicine", "Magical Creatures"},
			},
		},
		Feats: []reference.Feat{
			{Name: "Alert", Benefits: reference.FeatBenefits{
				AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityDexterity, 1)},
			}},
			{Name: "Lucky"},
			{Name: "Skilled", Benefits: reference.FeatBenefits{
				Skills: []reference.SkillGrant{{}, {}},
			}},
			{Name: "Resilient", Repeatable: true, Benefits: reference.FeatBenefits{
				AbilityBonuses: []reference.AbilityBonus{any1()},
			}},
			{Name: "Magical Adept", Repeatable: true},
			{Name: "Spell Sniper",
				Prerequisites: []reference.Prerequisite{
					{Type: reference.PrereqAbilityScore, Ability: entities.AbilityIntelligence, Minimum: 13},
				},
				Benefits: reference.FeatBenefits{
					AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityIntelligence, 1)},
				},
			},
			{Name: "Elemental Adept", Prerequisites: []reference.Prerequisite{
				{Type: reference.PrereqFeat, Feat: "Spell Sniper"},
			}},
			{Name: "Heavy Armor Master",
				Prerequisites: []reference.Prerequisite{
					{Type: reference.PrereqCastingStyle, CastingStyles: []string{StyleVigor}},
				},
				Benefits: reference.FeatBenefits{
					AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityStrength, 1)},
				},
			},
			{Name: "Herbalist",
				Prerequisites: []reference.Prerequisite{
					{Type: reference.PrereqSkill, Skill: "Herbology"},
				},
				Benefits: reference.FeatBenefits{
					Expertise: []reference.SkillGrant{{Skill: "Herbology"}},
				},
			},
			{Name: "Prefect", Prerequisites: []reference.Prerequisite{
				{Type: reference.PrereqAnyOf, AnyOf: []reference.Prerequisite{
					{Type: reference.PrereqHouse, House: "Gryffindor"},
					{Type: reference.PrereqLevel, Minimum: 8},
				}},
			}},
			{Name: "Keen Mind", Benefits: reference.FeatBenefits{
				Skills:         []reference.SkillGrant{{From: []string{"Investigation", "History of Magic"}}},
				AbilityBonuses: []reference.AbilityBonus{any1(entities.AbilityIntelligence, entities.AbilityWisdom)},
			}},
		},
		Backgrounds: []reference.Background{
			{Name: BackgroundBookworm, Skills: []string{"History of Magic", "Investigation"},
				AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityIntelligence, 1)}},
			{Name: BackgroundGroundskeeper, Skills: []string{"Herbology", "Magical Creatures"},
				AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityWisdom, 1)}},
			{Name: BackgroundStreetUrchin, Skills: []string{"Sleight of Hand", "Stealth"}},
		},
		Heritages: []reference.Heritage{
			{Name: HeritageMetamorphmagus, Skills: []string{"Deception"}, Feature: "Shapeshifting",
				AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityCharisma, 1), any1(entities.AbilityDexterity, entities.AbilityConstitution)}},
			{Name: HeritageParselmouth, Skills: []string{"Intimidation"},
				AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityWisdom, 1)}},
			{Name: HeritageSeer, Skills: []string{"Insight", "Perception"}, Feature: "Inner Eye",
				AbilityBonuses: []reference.AbilityBonus{any1(entities.AbilityWisdom, entities.AbilityIntelligence), any1()}},
		},
		Houses: []reference.House{
			{Name: "Gryffindor", Features: []reference.Feature{{Name: FeatureHouseVirtue, Options: []reference.Option{
				{Name: "Daring", AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityStrength, 1)}},
				{Name: "Chivalry", AbilityBonuses: []reference.AbilityBonus{any1(entities.AbilityStrength, entities.AbilityCharisma)},
					SubOptions: []string{"strength", "charisma"}},
			}}}},
			{Name: "Hufflepuff", Features: []reference.Feature{{Name: FeatureHouseVirtue, Options: []reference.Option{
				{Name: "Loyalty", AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityConstitution, 1)}},
				{Name: "Patience", AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityWisdom, 1)}},
			}}}},
			{Name: "Ravenclaw", Features: []reference.Feature{{Name: FeatureHouseVirtue, Options: []reference.Option{
				{Name: "Wit", AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityIntelligence, 1)}},
				{Name: "Wisdom", AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityWisdom, 1)}},
			}}}},
			{Name: "Slytherin", Features: []reference.Feature{{Name: FeatureHouseVirtue, Options: []reference.Option{
				{Name: "Ambition", AbilityBonuses: []reference.AbilityBonus{fixed(entities.AbilityCharisma, 1)}},
				{Name: "Cunning", AbilityBonuses: []reference.AbilityBonus{any1(entities.AbilityIntelligence, entities.AbilityDexterity)},
					SubOptions: []string{"intelligence", "dexterity"}},
			}}}},
		},
		Subclasses: []reference.Subclass{
			{Name: SubclassScholar, Features: []reference.Feature{
				{Name: FeatureAcademicFocus, Level: 1, Options: []reference.Option{
					{Name: "Study Buddy"},
					{Name: PracticeMakesPerfect},
				}},
				{Name: FeatureFieldTraining, Level: 3, Options: []reference.Option{
					{Name: "Survival"},
					{Name: "Medicine"},
				}},
			}},
			{Name: SubclassDuelist, Features: []reference.Feature{
				{Name: "Dueling Stance", Level: 1, Options: []reference.Option{{Name: "Aggressive"}, {Name: "Defensive"}}},
			}},
		},
		Skills: []reference.Skill{
			{Name: "Athletics", Ability: entities.AbilityStrength},
			{Name: "Acrobatics", Ability: entities.AbilityDexterity},
			{Name: "Sleight of Hand", Ability: entities.AbilityDexterity},
			{Name: "Stealth", Ability: entities.AbilityDexterity},
			{Name: "History of Magic", Ability: entities.AbilityIntelligence},
			{Name: "Investigation", Ability: entities.AbilityIntelligence},
			{Name: "Magical Theory", Ability: entities.AbilityIntelligence},
			{Name: "Muggle Studies", Ability: entities.AbilityIntelligence},
			{Name: "Herbology", Ability: entities.AbilityWisdom},
			{Name: "Insight", Ability: entities.AbilityWisdom},
			{Name: "Magical Creatures", Ability: entities.AbilityWisdom},
			{Name: "Medicine", Ability: entities.AbilityWisdom},
			{Name: "Perception", Ability: entities.AbilityWisdom},
			{Name: "Survival", Ability: entities.AbilityWisdom},
			{Name: "Potion-Making", Ability: entities.AbilityWisdom},
			{Name: "Deception", Ability: entities.AbilityCharisma},
			{Name: "Intimidation", Ability: entities.AbilityCharisma},
			{Name: "Performance", Ability: entities.AbilityCharisma},
			{Name: "Persuasion", Ability: entities.AbilityCharisma},
		},
		ExpertiseGranters: []reference.ExpertiseGranter{
			{Name: PracticeMakesPerfect, Picks: 2},
		},
	}
}

// TestReferenceData returns TestCatalog indexed for lookups
func TestReferenceData() *reference.Data {
	return reference.NewData(TestCatalog())
}

// CreateTestCharacter creates a level 1 character with flat 10s and no selections
func CreateTestCharacter() *entities.Character {
	return entities.NewCharacter(TestCharacterID, TestPlayerID, TestCharacterName)
}
