package rules

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// ValidationResult is the outcome of Validate.
// Errors are duplicate feats and unmet prerequisites; Warnings never affect IsValid.
type ValidationResult struct {
	IsValid  bool    `json:"is_valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Validate checks the canonical feat set for duplicates and unmet prerequisites and reports
// incomplete or inconsistent build state. It never mutates the character.
func Validate(c *entities.Character, ref *reference.Data) *ValidationResult {
	if c == nil {
		c = &entities.Character{}
	}
	v := &validator{
		c:      c,
		ref:    ref,
		feats:  CollectAllFeats(c),
		skills: ResolveSkills(c, ref),
		mods:   ResolveAbilityModifiers(c, ref, ModifierChoices{}),
		asi:    ASIIncreases(c),
		title:  cases.Title(language.English),
		result: &ValidationResult{Errors: []Issue{}, Warnings: []Issue{}},
	}

	v.checkDuplicates()
	v.checkPrerequisites()
	v.checkReferences()
	v.checkLevel1()
	v.checkMilestones()
	v.checkCastingSkills()

	v.result.Warnings = mergeIssues(v.result.Warnings, v.skills.Warnings...)
	v.result.Warnings = mergeIssues(v.result.Warnings, v.mods.Warnings...)
	v.result.IsValid = len(v.result.Errors) == 0
	return v.result
}

type validator struct {
	c      *entities.Character
	ref    *reference.Data
	feats  []SelectedFeat
	skills *SkillResolution
	mods   *ModifierResolution
	asi    map[entities.Ability]int
	title  cases.Caser
	result *ValidationResult
}

func (v *validator) errorf(code IssueCode, subject string, level int, format string, args ...interface{}) {
	v.result.Errors = append(v.result.Errors, Issue{
		Severity: SeverityError,
		Code:     code,
		Subject:  subject,
		Level:    level,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) warnf(code IssueCode, subject string, level int, format string, args ...interface{}) {
	issue := warning(code, subject, format, args...)
	issue.Level = level
	v.result.Warnings = mergeIssues(v.result.Warnings, issue)
}

func (v *validator) abilityName(a entities.Ability) string {
	return v.title.String(string(a))
}

// checkDuplicates flags a feat selected more than once. Repeatable feats are keyed by their
// repeatable key plus the choices made for that instance.
func (v *validator) checkDuplicates() {
	firstSlot := make(map[string]int)
	for _, sel := range v.feats {
		key := sel.Name
		if def, ok := v.ref.Feat(sel.Name); ok && def.Repeatable {
			instance, distinct := v.instanceKey(def, sel)
			if distinct {
				continue
			}
			group := def.RepeatableKey
			if group == "" {
				group = def.Name
			}
			key = group + "|" + instance
		}

		if first, seen := firstSlot[key]; seen {
			v.errorf(IssueDuplicateFeat, sel.Name, sel.Slot,
				"%s is selected at %s and again at %s", sel.Name, slotLabel(first), slotLabel(sel.Slot))
			continue
		}
		firstSlot[key] = sel.Slot
	}
}

// instanceKey describes the choices that make a repeatable feat instance unique.
// A repeatable feat with no choice benefits is distinct at every slot.
func (v *validator) instanceKey(def *reference.Feat, sel SelectedFeat) (string, bool) {
	var parts []string
	for i, g := range def.Benefits.Skills {
		if g.IsChoice() {
			parts = append(parts, lookupFeatChoice(sel, v.c.FeatChoices, FeatChoiceKey(def.Name, "skill", i)))
		}
	}
	for i, g := range def.Benefits.Expertise {
		if g.IsChoice() {
			parts = append(parts, lookupFeatChoice(sel, v.c.FeatChoices, FeatChoiceKey(def.Name, "expertise", i)))
		}
	}
	for i, b := range def.Benefits.AbilityBonuses {
		if b.IsChoice() {
			parts = append(parts, lookupFeatChoice(sel, v.c.FeatChoices, FeatChoiceKey(def.Name, "ability", i)))
		}
	}
	if len(parts) == 0 {
		return "", true
	}
	sort.Strings(parts)
	return strings.Join(parts, ","), false
}

func (v *validator) checkPrerequisites() {
	for _, sel := range v.feats {
		def, ok := v.ref.Feat(sel.Name)
		if !ok {
			continue
		}
		scores := v.scoresWithout(sel.Slot)
		for _, p := range def.Prerequisites {
			met, desc := v.evaluate(p, sel, scores)
			if !met {
				v.errorf(IssueUnmetPrerequisite, sel.Name, sel.Slot,
					"%s at %s requires %s", sel.Name, slotLabel(sel.Slot), desc)
			}
		}
	}
}

// scoresWithout returns effective scores minus the bonuses of the feat at slot,
// so a feat never satisfies its own ability prerequisite
func (v *validator) scoresWithout(slot int) map[entities.Ability]int {
	mods := &ModifierResolution{TotalModifiers: make(map[entities.Ability]int, len(entities.Abilities))}
	for a, n := range v.mods.TotalModifiers {
		mods.TotalModifiers[a] = n
	}
	for _, d := range v.mods.AllDetails {
		if d.Source == ModifierFeat && d.Slot == slot {
			mods.TotalModifiers[d.Ability] -= d.Amount
		}
	}
	return EffectiveScores(v.c, mods, v.asi)
}

func (v *validator) evaluate(p reference.Prerequisite, sel SelectedFeat, scores map[entities.Ability]int) (bool, string) {
	switch p.Type {
	case reference.PrereqAbilityScore:
		have := scores[p.Ability]
		return have >= p.Minimum, fmt.Sprintf("%s %d (has %d)", v.abilityName(p.Ability), p.Minimum, have)
	case reference.PrereqLevel:
		level := v.c.EffectiveLevel()
		return level >= p.Minimum, fmt.Sprintf("level %d (is %d)", p.Minimum, level)
	case reference.PrereqFeat:
		for _, other := range v.feats {
			if other.Name == p.Feat && other.Slot < sel.Slot {
				return true, ""
			}
		}
		return false, fmt.Sprintf("%s taken earlier", p.Feat)
	case reference.PrereqCastingStyle:
		return contains(p.CastingStyles, v.c.CastingStyle), fmt.Sprintf("casting style %s", strings.Join(p.CastingStyles, " or "))
	case reference.PrereqSkill:
		return contains(v.skills.AllSkillProficiencies, p.Skill), fmt.Sprintf("proficiency in %s", p.Skill)
	case reference.PrereqHouse:
		return v.c.House == p.House, fmt.Sprintf("house %s", p.House)
	case reference.PrereqAnyOf:
		descs := make([]string, 0, len(p.AnyOf))
		for _, alt := range p.AnyOf {
			met, desc := v.evaluate(alt, sel, scores)
			if met {
				return true, ""
			}
			descs = append(descs, desc)
		}
		return len(p.AnyOf) == 0, "one of: " + strings.Join(descs, "; ")
	default:
		v.warnf(IssueUnknownReference, sel.Name, sel.Slot, "%s has an unknown prerequisite type %q", sel.Name, p.Type)
		return true, ""
	}
}

func (v *validator) checkReferences() {
	if v.c.House != "" {
		if _, ok := v.ref.House(v.c.House); !ok {
			v.result.Warnings = mergeIssues(v.result.Warnings, unknownReference(v.ref, reference.KindHouse, v.c.House))
		}
	}
	if v.c.InitiativeAbility != "" && !v.c.InitiativeAbility.IsValid() {
		v.warnf(IssueInvalidChoice, "initiative", 0, "unknown initiative ability %q", v.c.InitiativeAbility)
	}
}

func (v *validator) checkLevel1() {
	switch v.c.Level1Choice {
	case entities.Level1Unset:
		v.warnf(IssueIncomplete, "level1", Level1Slot, "choose an innate heritage or a feat for level 1")
	case entities.Level1Innate:
		if v.c.InnateHeritage == "" {
			v.warnf(IssueIncomplete, "level1", Level1Slot, "choose an innate heritage for level 1")
		}
	case entities.Level1Feat:
		if v.c.Level1Feat() == "" {
			v.warnf(IssueIncomplete, "level1", Level1Slot, "choose a feat for level 1")
		}
	}
}

func (v *validator) checkMilestones() {
	level := v.c.EffectiveLevel()
	for _, lvl := range GetAvailableASILevels(level) {
		choice := v.c.ASIChoices[lvl]
		if choice == nil || choice.Type == entities.ASITypeUnset {
			v.warnf(IssuePendingMilestone, "milestone", lvl, "level %d milestone has not been chosen", lvl)
			continue
		}
		switch choice.Type {
		case entities.ASITypeASI:
			v.checkASI(lvl, choice.AbilityScoreIncreases)
		case entities.ASITypeFeat:
			if choice.SelectedFeat == "" {
				v.warnf(IssueIncomplete, "milestone", lvl, "level %d milestone is a feat but none is selected", lvl)
			}
		default:
			v.warnf(IssueInvalidChoice, "milestone", lvl, "level %d milestone has unknown type %q", lvl, choice.Type)
		}
	}

	for _, lvl := range v.c.MilestoneLevels() {
		switch {
		case !IsMilestone(lvl):
			v.warnf(IssueInvalidChoice, "milestone", lvl, "level %d is not an ability score milestone", lvl)
		case lvl > level:
			v.warnf(IssueInactiveMilestone, "milestone", lvl,
				"level %d milestone is kept but inactive at level %d", lvl, level)
		}
	}
}

func (v *validator) checkASI(level int, increases []entities.AbilityIncrease) {
	total := 0
	for _, inc := range increases {
		if !inc.Ability.IsValid() {
			v.warnf(IssueInvalidASI, "milestone", level, "level %d increases unknown ability %q", level, inc.Ability)
			continue
		}
		if inc.Increase > MaxASIPoints {
			v.warnf(IssueInvalidASI, "milestone", level, "level %d raises %s by %d; at most %d per ability",
				level, v.abilityName(inc.Ability), inc.Increase, MaxASIPoints)
		}
		total += inc.Increase
	}
	if total != MaxASIPoints {
		v.warnf(IssueInvalidASI, "milestone", level, "level %d distributes %d of %d ability points",
			level, total, MaxASIPoints)
	}
}

// checkCastingSkills reports stored manual picks that were dropped by the cap
func (v *validator) checkCastingSkills() {
	eligible := 0
	for _, skill := range v.c.SkillProficiencies {
		if !contains(v.skills.AvailableCastingSkills, skill) {
			continue
		}
		if v.skills.AutomaticGrant(skill) == Granted {
			continue
		}
		eligible++
	}
	if eligible > MaxCastingStyleSkills {
		v.warnf(IssueCastingSkillCap, "casting_style", 0,
			"%d casting style skills are stored; only the first %d count", eligible, MaxCastingStyleSkills)
	}
}

func slotLabel(slot int) string {
	if slot == Level1Slot {
		return "level 1"
	}
	return fmt.Sprintf("level %d", slot)
}
