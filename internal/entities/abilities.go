package entities

// Ability names one of the six core ability scores
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

const (
	// MaxAbilityScore is the ceiling applied when a base score is combined with bonuses
	MaxAbilityScore = 40

	// DefaultAbilityScore is used for abilities that have not been entered yet
	DefaultAbilityScore = 10
)

// Abilities lists every ability in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// IsValid reports whether a is one of the six known abilities
func (a Ability) IsValid() bool {
	for _, known := range Abilities {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the ability name
func (a Ability) String() string {
	return string(a)
}

// AbilityScores maps each ability to its base score. A nil map means the scores are unset.
type AbilityScores map[Ability]int

// Get returns the base score for a, or DefaultAbilityScore when it is unset
func (s AbilityScores) Get(a Ability) int {
	if v, ok := s[a]; ok {
		return v
	}
	return DefaultAbilityScore
}

// Clone returns an independent copy of the scores
func (s AbilityScores) Clone() AbilityScores {
	if s == nil {
		return nil
	}
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Modifier converts an ability score into its modifier, rounding toward negative infinity
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// AbilityIncrease is a single +N applied to an ability at an ASI milestone
type AbilityIncrease struct {
	Ability  Ability `json:"ability"`
	Increase int     `json:"increase"`
}
