// Package reference defines the read-only catalogs the build engine resolves against:
// casting styles, feats, backgrounds, heritages, houses, subclasses and skills.
package reference

import "github.com/KirkDiggler/grimoire-api/internal/entities"

// CastingStyle is one of the top-level spellcasting archetypes
type CastingStyle struct {
	Name       string   `yaml:"name" json:"name"`
	HitDie     int      `yaml:"hit_die" json:"hit_die"`
	BaseHP     int      `yaml:"base_hp" json:"base_hp"`
	HPPerLevel int      `yaml:"hp_per_level" json:"hp_per_level"`
	Skills     []string `yaml:"skills" json:"skills"`
	// InitiativeAbilities lists the abilities the player may pick from to govern initiative.
	// Empty for styles that always use Dexterity.
	InitiativeAbilities []entities.Ability `yaml:"initiative_abilities,omitempty" json:"initiative_abilities,omitempty"`
}

// PrerequisiteType identifies what a prerequisite checks
type PrerequisiteType string

// Prerequisite types
const (
	PrereqAbilityScore PrerequisiteType = "ability_score"
	PrereqLevel        PrerequisiteType = "level"
	PrereqFeat         PrerequisiteType = "feat"
	PrereqCastingStyle PrerequisiteType = "casting_style"
	PrereqSkill        PrerequisiteType = "skill"
	PrereqHouse        PrerequisiteType = "house"
	PrereqAnyOf        PrerequisiteType = "any_of"
)

// Prerequisite is one structured predicate on a feat; all of a feat's prerequisites must hold
type Prerequisite struct {
	Type          PrerequisiteType `yaml:"type" json:"type"`
	Ability       entities.Ability `yaml:"ability,omitempty" json:"ability,omitempty"`
	Minimum       int              `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Feat          string           `yaml:"feat,omitempty" json:"feat,omitempty"`
	CastingStyles []string         `yaml:"casting_styles,omitempty" json:"casting_styles,omitempty"`
	Skill         string           `yaml:"skill,omitempty" json:"skill,omitempty"`
	House         string           `yaml:"house,omitempty" json:"house,omitempty"`
	AnyOf         []Prerequisite   `yaml:"any_of,omitempty" json:"any_of,omitempty"`
}

// SkillGrant is either a fixed skill or a pick from a list.
// Choice grants are resolved through the character's feat choices.
type SkillGrant struct {
	Skill string   `yaml:"skill,omitempty" json:"skill,omitempty"`
	From  []string `yaml:"from,omitempty" json:"from,omitempty"`
}

// IsChoice reports whether the grant needs a player pick
func (g SkillGrant) IsChoice() bool {
	return g.Skill == ""
}

// AbilityBonus is a fixed bonus, or a pick from a list of abilities when Ability is empty
type AbilityBonus struct {
	Ability entities.Ability   `yaml:"ability,omitempty" json:"ability,omitempty"`
	From    []entities.Ability `yaml:"from,omitempty" json:"from,omitempty"`
	Amount  int                `yaml:"amount" json:"amount"`
}

// IsChoice reports whether the bonus needs a player pick
func (b AbilityBonus) IsChoice() bool {
	return b.Ability == ""
}

// Allows reports whether a is a valid pick for a choice bonus
func (b AbilityBonus) Allows(a entities.Ability) bool {
	if !a.IsValid() {
		return false
	}
	if len(b.From) == 0 {
		return true
	}
	for _, f := range b.From {
		if f == a {
			return true
		}
	}
	return false
}

// FeatBenefits are the mechanical effects of a feat
type FeatBenefits struct {
	Skills         []SkillGrant   `yaml:"skills,omitempty" json:"skills,omitempty"`
	Expertise      []SkillGrant   `yaml:"expertise,omitempty" json:"expertise,omitempty"`
	AbilityBonuses []AbilityBonus `yaml:"ability_bonuses,omitempty" json:"ability_bonuses,omitempty"`
}

// Feat is a named bundle of benefits selectable at level 1 or at an ASI milestone
type Feat struct {
	Name          string         `yaml:"name" json:"name"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Prerequisites []Prerequisite `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Benefits      FeatBenefits   `yaml:"benefits,omitempty" json:"benefits,omitempty"`
	Repeatable    bool           `yaml:"repeatable,omitempty" json:"repeatable,omitempty"`
	// RepeatableKey groups instances of a repeatable feat; defaults to the feat name
	RepeatableKey string `yaml:"repeatable_key,omitempty" json:"repeatable_key,omitempty"`
}

// Background is a character's upbringing
type Background struct {
	Name           string         `yaml:"name" json:"name"`
	Skills         []string       `yaml:"skills,omitempty" json:"skills,omitempty"`
	AbilityBonuses []AbilityBonus `yaml:"ability_bonuses,omitempty" json:"ability_bonuses,omitempty"`
}

// Heritage is an innate magical heritage chosen at level 1.
// Choice bonuses are resolved through the character's heritage choices, keyed by Feature.
type Heritage struct {
	Name           string         `yaml:"name" json:"name"`
	Skills         []string       `yaml:"skills,omitempty" json:"skills,omitempty"`
	AbilityBonuses []AbilityBonus `yaml:"ability_bonuses,omitempty" json:"ability_bonuses,omitempty"`
	Feature        string         `yaml:"feature,omitempty" json:"feature,omitempty"`
}

// Option is one selectable branch of a house or subclass feature
type Option struct {
	Name           string         `yaml:"name" json:"name"`
	AbilityBonuses []AbilityBonus `yaml:"ability_bonuses,omitempty" json:"ability_bonuses,omitempty"`
	// SubOptions lists what a compound choice may pick under this option
	SubOptions []string `yaml:"sub_options,omitempty" json:"sub_options,omitempty"`
}

// Feature is a named choice point offered by a house or subclass
type Feature struct {
	Name    string   `yaml:"name" json:"name"`
	Level   int      `yaml:"level,omitempty" json:"level,omitempty"`
	Options []Option `yaml:"options,omitempty" json:"options,omitempty"`
}

// Option returns the option with the given name
func (f *Feature) Option(name string) (*Option, bool) {
	if f == nil {
		return nil, false
	}
	for i := range f.Options {
		if f.Options[i].Name == name {
			return &f.Options[i], true
		}
	}
	return nil, false
}

// House is a school house with its own feature choice tree
type House struct {
	Name     string    `yaml:"name" json:"name"`
	Features []Feature `yaml:"features,omitempty" json:"features,omitempty"`
}

// Subclass is a specialisation with its own feature choice tree
type Subclass struct {
	Name     string    `yaml:"name" json:"name"`
	Features []Feature `yaml:"features,omitempty" json:"features,omitempty"`
}

// Skill is a known skill and the ability it keys off
type Skill struct {
	Name    string           `yaml:"name" json:"name"`
	Ability entities.Ability `yaml:"ability" json:"ability"`
}

// ExpertiseGranter is a subclass option that lets the player upgrade existing proficiencies
type ExpertiseGranter struct {
	Name  string `yaml:"name" json:"name"`
	Picks int    `yaml:"picks" json:"picks"`
}
