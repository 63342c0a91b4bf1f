package rules

import (
	"sort"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// Level1Slot is the slot number used for the feat picked at level 1
const Level1Slot = 1

// ASIMilestones are the levels that grant an ability score increase or feat
var ASIMilestones = []int{4, 8, 12, 16, 19}

// MaxASIPoints is the total an ASI milestone distributes across abilities
const MaxASIPoints = 2

// MilestoneStatus describes how far a milestone has been resolved
type MilestoneStatus string

// Milestone statuses
const (
	MilestoneUnset      MilestoneStatus = "unset"
	MilestoneIncomplete MilestoneStatus = "incomplete"
	MilestoneComplete   MilestoneStatus = "complete"
)

// SelectedFeat is one feat in the canonical feat set.
// Slot is Level1Slot for the level-1 feat, otherwise the milestone level.
type SelectedFeat struct {
	Name    string            `json:"name"`
	Slot    int               `json:"slot"`
	Choices map[string]string `json:"choices,omitempty"`
}

// MilestoneView is the resolved state of one milestone
type MilestoneView struct {
	Level        int                        `json:"level"`
	Type         entities.ASIType           `json:"type"`
	Status       MilestoneStatus            `json:"status"`
	Active       bool                       `json:"active"`
	SelectedFeat string                     `json:"selected_feat,omitempty"`
	Increases    []entities.AbilityIncrease `json:"increases,omitempty"`
}

// ProgressionView is the derived advancement state of a character
type ProgressionView struct {
	Level                 int                      `json:"level"`
	ProficiencyBonus      int                      `json:"proficiency_bonus"`
	Level1Choice          entities.Level1Choice    `json:"level1_choice"`
	Level1Locked          bool                     `json:"level1_locked"`
	Level1Feat            string                   `json:"level1_feat,omitempty"`
	AvailableASILevels    []int                    `json:"available_asi_levels"`
	NextASILevel          int                      `json:"next_asi_level,omitempty"`
	HasNextASILevel       bool                     `json:"has_next_asi_level"`
	Milestones            []MilestoneView          `json:"milestones"`
	AllFeats              []SelectedFeat           `json:"all_feats"`
	AbilityScoreIncreases map[entities.Ability]int `json:"ability_score_increases"`
}

// GetAvailableASILevels returns the milestones reached at level, ascending
func GetAvailableASILevels(level int) []int {
	out := []int{}
	for _, m := range ASIMilestones {
		if m <= level {
			out = append(out, m)
		}
	}
	return out
}

// NextASILevel returns the smallest milestone above level
func NextASILevel(level int) (int, bool) {
	for _, m := range ASIMilestones {
		if m > level {
			return m, true
		}
	}
	return 0, false
}

// IsMilestone reports whether level grants an ASI
func IsMilestone(level int) bool {
	for _, m := range ASIMilestones {
		if m == level {
			return true
		}
	}
	return false
}

// ProficiencyBonus returns the proficiency bonus for a character level
func ProficiencyBonus(level int) int {
	if level < entities.MinLevel {
		level = entities.MinLevel
	}
	return 2 + (level-1)/4
}

// IsLevel1Locked reports whether the level-1 choice may no longer change without an explicit unlock
func IsLevel1Locked(c *entities.Character) bool {
	if c == nil || c.Level1Unlocked {
		return false
	}
	return c.Level > entities.MinLevel || c.InnateHeritage != "" || c.Level1Feat() != ""
}

// CollectAllFeats returns the canonical set of selected feats: the level-1 feat when the level-1
// choice is a feat, followed by every feat picked at a reached milestone, ascending by level.
func CollectAllFeats(c *entities.Character) []SelectedFeat {
	feats := []SelectedFeat{}
	if c == nil {
		return feats
	}

	if c.Level1Choice == entities.Level1Feat {
		if name := c.Level1Feat(); name != "" {
			feats = append(feats, SelectedFeat{
				Name:    name,
				Slot:    Level1Slot,
				Choices: c.FeatChoices,
			})
		}
	}

	for _, lvl := range GetAvailableASILevels(c.EffectiveLevel()) {
		choice := c.ASIChoices[lvl]
		if choice == nil || choice.Type != entities.ASITypeFeat || choice.SelectedFeat == "" {
			continue
		}
		feats = append(feats, SelectedFeat{
			Name:    choice.SelectedFeat,
			Slot:    lvl,
			Choices: choice.FeatChoices,
		})
	}

	return feats
}

// ASIIncreases sums the ability increases of every resolved ASI milestone that has been reached
func ASIIncreases(c *entities.Character) map[entities.Ability]int {
	out := make(map[entities.Ability]int)
	if c == nil {
		return out
	}
	for _, lvl := range GetAvailableASILevels(c.EffectiveLevel()) {
		choice := c.ASIChoices[lvl]
		if choice == nil || choice.Type != entities.ASITypeASI {
			continue
		}
		for _, inc := range choice.AbilityScoreIncreases {
			if inc.Ability.IsValid() && inc.Increase > 0 {
				out[inc.Ability] += inc.Increase
			}
		}
	}
	return out
}

// ResolveProgression derives the level-1 and milestone state of a character
func ResolveProgression(c *entities.Character) *ProgressionView {
	if c == nil {
		c = &entities.Character{}
	}
	level := c.EffectiveLevel()

	view := &ProgressionView{
		Level:                 level,
		ProficiencyBonus:      ProficiencyBonus(level),
		Level1Choice:          c.Level1Choice,
		Level1Locked:          IsLevel1Locked(c),
		AvailableASILevels:    GetAvailableASILevels(level),
		Milestones:            []MilestoneView{},
		AllFeats:              CollectAllFeats(c),
		AbilityScoreIncreases: ASIIncreases(c),
	}
	if c.Level1Choice == entities.Level1Feat {
		view.Level1Feat = c.Level1Feat()
	}
	view.NextASILevel, view.HasNextASILevel = NextASILevel(level)

	seen := make(map[int]bool)
	for _, lvl := range view.AvailableASILevels {
		seen[lvl] = true
		view.Milestones = append(view.Milestones, milestoneView(lvl, c.ASIChoices[lvl], true))
	}
	// Choices kept from before a level decrease stay visible but inactive
	for _, lvl := range c.MilestoneLevels() {
		if seen[lvl] || !IsMilestone(lvl) {
			continue
		}
		view.Milestones = append(view.Milestones, milestoneView(lvl, c.ASIChoices[lvl], false))
	}
	sort.SliceStable(view.Milestones, func(i, j int) bool {
		return view.Milestones[i].Level < view.Milestones[j].Level
	})

	return view
}

func milestoneView(level int, choice *entities.ASIChoice, active bool) MilestoneView {
	view := MilestoneView{
		Level:  level,
		Status: MilestoneUnset,
		Active: active,
	}
	if choice == nil {
		return view
	}
	view.Type = choice.Type
	switch choice.Type {
	case entities.ASITypeASI:
		view.Increases = append([]entities.AbilityIncrease{}, choice.AbilityScoreIncreases...)
		if asiPoints(choice.AbilityScoreIncreases) == MaxASIPoints {
			view.Status = MilestoneComplete
		} else {
			view.Status = MilestoneIncomplete
		}
	case entities.ASITypeFeat:
		view.SelectedFeat = choice.SelectedFeat
		if choice.SelectedFeat != "" {
			view.Status = MilestoneComplete
		} else {
			view.Status = MilestoneIncomplete
		}
	}
	return view
}

func asiPoints(increases []entities.AbilityIncrease) int {
	total := 0
	for _, inc := range increases {
		total += inc.Increase
	}
	return total
}

// SetLevel changes the character level. Milestone choices above the new level are kept.
func SetLevel(c *entities.Character, level int) EditResult {
	if level < entities.MinLevel || level > entities.MaxLevel {
		return rejected(c, RejectInvalidLevel)
	}
	out := cloneOrNew(c)
	out.Level = level
	return applied(out)
}

// SetLevel1Choice picks what the character took at level 1.
// name is the heritage for Level1Innate or the feat for Level1Feat; the other kind is cleared.
func SetLevel1Choice(c *entities.Character, choice entities.Level1Choice, name string) EditResult {
	switch choice {
	case entities.Level1Unset, entities.Level1Innate, entities.Level1Feat:
	default:
		return rejected(c, RejectInvalidChoice)
	}
	if IsLevel1Locked(c) && !sameLevel1(c, choice, name) {
		return rejected(c, RejectLevel1Locked)
	}

	out := cloneOrNew(c)
	out.Level1Choice = choice
	switch choice {
	case entities.Level1Innate:
		if out.InnateHeritage != name {
			out.HeritageChoices = nil
			out.InnateHeritageSkills = nil
		}
		out.InnateHeritage = name
		out.StandardFeats = nil
		out.FeatChoices = nil
	case entities.Level1Feat:
		out.InnateHeritage = ""
		out.HeritageChoices = nil
		out.InnateHeritageSkills = nil
		if out.Level1Feat() != name {
			out.FeatChoices = nil
		}
		out.StandardFeats = nil
		if name != "" {
			out.StandardFeats = []string{name}
		}
	case entities.Level1Unset:
		out.InnateHeritage = ""
		out.HeritageChoices = nil
		out.InnateHeritageSkills = nil
		out.StandardFeats = nil
		out.FeatChoices = nil
	}
	// An unlock only covers the next change
	out.Level1Unlocked = false
	return applied(out)
}

func sameLevel1(c *entities.Character, choice entities.Level1Choice, name string) bool {
	if c.Level1Choice != choice {
		return false
	}
	switch choice {
	case entities.Level1Innate:
		return c.InnateHeritage == name
	case entities.Level1Feat:
		return c.Level1Feat() == name
	default:
		return true
	}
}

// UnlockLevel1 allows the next SetLevel1Choice to override a locked choice
func UnlockLevel1(c *entities.Character) EditResult {
	out := cloneOrNew(c)
	out.Level1Unlocked = true
	return applied(out)
}

// SetMilestoneType switches a reached milestone between unset, ASI and feat, clearing the other type's fields
func SetMilestoneType(c *entities.Character, level int, t entities.ASIType) EditResult {
	if !milestoneReached(c, level) {
		return rejected(c, RejectNotMilestone)
	}

	out := cloneOrNew(c)
	switch t {
	case entities.ASITypeUnset:
		delete(out.ASIChoices, level)
		return applied(out)
	case entities.ASITypeASI, entities.ASITypeFeat:
	default:
		return rejected(c, RejectInvalidChoice)
	}

	if out.ASIChoices == nil {
		out.ASIChoices = make(map[int]*entities.ASIChoice)
	}
	current := out.ASIChoices[level]
	if current == nil {
		current = &entities.ASIChoice{}
		out.ASIChoices[level] = current
	}
	if current.Type != t {
		current.Type = t
		current.AbilityScoreIncreases = nil
		current.SelectedFeat = ""
		current.FeatChoices = nil
	}
	return applied(out)
}

// SetMilestoneASI resolves a milestone as ability score increases totalling at most MaxASIPoints
func SetMilestoneASI(c *entities.Character, level int, increases []entities.AbilityIncrease) EditResult {
	if !milestoneReached(c, level) {
		return rejected(c, RejectNotMilestone)
	}

	perAbility := make(map[entities.Ability]int)
	for _, inc := range increases {
		if !inc.Ability.IsValid() || inc.Increase <= 0 {
			return rejected(c, RejectInvalidChoice)
		}
		perAbility[inc.Ability] += inc.Increase
	}
	if asiPoints(increases) > MaxASIPoints {
		return rejected(c, RejectCapReached)
	}

	merged := make([]entities.AbilityIncrease, 0, len(perAbility))
	for _, a := range entities.Abilities {
		if n := perAbility[a]; n > 0 {
			merged = append(merged, entities.AbilityIncrease{Ability: a, Increase: n})
		}
	}

	res := SetMilestoneType(c, level, entities.ASITypeASI)
	res.Character.ASIChoices[level].AbilityScoreIncreases = merged
	return res
}

// SetMilestoneFeat resolves a milestone as a feat. Duplicates are allowed here and reported by Validate.
func SetMilestoneFeat(c *entities.Character, level int, feat string, choices map[string]string) EditResult {
	if !milestoneReached(c, level) {
		return rejected(c, RejectNotMilestone)
	}

	res := SetMilestoneType(c, level, entities.ASITypeFeat)
	choice := res.Character.ASIChoices[level]
	if choice.SelectedFeat != feat {
		choice.FeatChoices = nil
	}
	choice.SelectedFeat = feat
	if choices != nil {
		choice.FeatChoices = make(map[string]string, len(choices))
		for k, v := range choices {
			choice.FeatChoices[k] = v
		}
	}
	return res
}

// ClearMilestone returns a milestone to unset
func ClearMilestone(c *entities.Character, level int) EditResult {
	return SetMilestoneType(c, level, entities.ASITypeUnset)
}

func milestoneReached(c *entities.Character, level int) bool {
	return IsMilestone(level) && c != nil && level <= c.EffectiveLevel()
}

func cloneOrNew(c *entities.Character) *entities.Character {
	if c == nil {
		return &entities.Character{Level: entities.MinLevel}
	}
	return c.Clone()
}
