// Package entities holds the character snapshot the build engine resolves against
package entities

import "sort"

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 20
)

// Level1Choice is the advancement picked at level 1
type Level1Choice string

// Level1Choice values
const (
	Level1Unset  Level1Choice = ""
	Level1Innate Level1Choice = "innate"
	Level1Feat   Level1Choice = "feat"
)

// ASIType is the kind of advancement resolved at a milestone
type ASIType string

// ASIType values
const (
	ASITypeUnset ASIType = ""
	ASITypeASI   ASIType = "asi"
	ASITypeFeat  ASIType = "feat"
)

// ASIChoice is what the player picked at one ASI milestone
type ASIChoice struct {
	Type                  ASIType           `json:"type"`
	AbilityScoreIncreases []AbilityIncrease `json:"ability_score_increases,omitempty"`
	SelectedFeat          string            `json:"selected_feat,omitempty"`
	FeatChoices           map[string]string `json:"feat_choices,omitempty"`
}

// Clone returns a deep copy
func (a *ASIChoice) Clone() *ASIChoice {
	if a == nil {
		return nil
	}
	out := &ASIChoice{
		Type:         a.Type,
		SelectedFeat: a.SelectedFeat,
	}
	if a.AbilityScoreIncreases != nil {
		out.AbilityScoreIncreases = append([]AbilityIncrease(nil), a.AbilityScoreIncreases...)
	}
	out.FeatChoices = cloneStrings(a.FeatChoices)
	return out
}

// Character is a full snapshot of one character sheet.
// Every field is optional; the engine substitutes safe defaults for anything missing.
type Character struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`

	CastingStyle   string `json:"casting_style,omitempty"`
	House          string `json:"house,omitempty"`
	Background     string `json:"background,omitempty"`
	InnateHeritage string `json:"innate_heritage,omitempty"`
	Subclass       string `json:"subclass,omitempty"`

	SubclassChoices ChoiceMap `json:"subclass_choices,omitempty"`
	HouseChoices    ChoiceMap `json:"house_choices,omitempty"`
	HeritageChoices ChoiceMap `json:"heritage_choices,omitempty"`

	Level1Choice   Level1Choice `json:"level1_choice,omitempty"`
	Level1Unlocked bool         `json:"level1_unlocked,omitempty"`
	StandardFeats  []string     `json:"standard_feats,omitempty"`
	// FeatChoices resolves choice benefits of the level-1 feat, keyed "<feat>_skill_<i>" etc.
	FeatChoices map[string]string  `json:"feat_choices,omitempty"`
	ASIChoices  map[int]*ASIChoice `json:"asi_choices,omitempty"`

	AbilityScores      AbilityScores `json:"ability_scores,omitempty"`
	SkillProficiencies []string      `json:"skill_proficiencies,omitempty"`
	SkillExpertise     []string      `json:"skill_expertise,omitempty"`

	// Cached grants from the background and heritage catalogs, used when the catalog entry is unavailable
	BackgroundSkills     []string `json:"background_skills,omitempty"`
	InnateHeritageSkills []string `json:"innate_heritage_skills,omitempty"`

	InitiativeAbility Ability `json:"initiative_ability,omitempty"`
	HitPoints         int     `json:"hit_points"`
	Committed         bool    `json:"committed,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
	// Revision increments on every stored write; zero means never stored
	Revision int64 `json:"revision"`
}

// NewCharacter returns a character with the defaults used for "new character"
func NewCharacter(id, playerID, name string) *Character {
	return &Character{
		ID:       id,
		PlayerID: playerID,
		Name:     name,
		Level:    MinLevel,
	}
}

// EffectiveLevel clamps Level into [MinLevel, MaxLevel]
func (c *Character) EffectiveLevel() int {
	if c == nil || c.Level < MinLevel {
		return MinLevel
	}
	if c.Level > MaxLevel {
		return MaxLevel
	}
	return c.Level
}

// Level1Feat returns the feat taken at level 1, if any
func (c *Character) Level1Feat() string {
	if c == nil {
		return ""
	}
	for _, f := range c.StandardFeats {
		if f != "" {
			return f
		}
	}
	return ""
}

// HasSkillProficiency reports whether skill was manually selected
func (c *Character) HasSkillProficiency(skill string) bool {
	if c == nil {
		return false
	}
	for _, s := range c.SkillProficiencies {
		if s == skill {
			return true
		}
	}
	return false
}

// MilestoneLevels returns the levels that carry an ASI choice, ascending
func (c *Character) MilestoneLevels() []int {
	if c == nil {
		return nil
	}
	levels := make([]int, 0, len(c.ASIChoices))
	for lvl := range c.ASIChoices {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

// Clone returns a deep copy so edits never leak into the caller's snapshot
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.SubclassChoices = c.SubclassChoices.Clone()
	out.HouseChoices = c.HouseChoices.Clone()
	out.HeritageChoices = c.HeritageChoices.Clone()
	out.StandardFeats = cloneSlice(c.StandardFeats)
	out.FeatChoices = cloneStrings(c.FeatChoices)
	out.AbilityScores = c.AbilityScores.Clone()
	out.SkillProficiencies = cloneSlice(c.SkillProficiencies)
	out.SkillExpertise = cloneSlice(c.SkillExpertise)
	out.BackgroundSkills = cloneSlice(c.BackgroundSkills)
	out.InnateHeritageSkills = cloneSlice(c.InnateHeritageSkills)
	if c.ASIChoices != nil {
		out.ASIChoices = make(map[int]*ASIChoice, len(c.ASIChoices))
		for lvl, choice := range c.ASIChoices {
			out.ASIChoices[lvl] = choice.Clone()
		}
	}
	return &out
}

func cloneSlice(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
