package rules

import (
	"fmt"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// StudyBuddy is the subclass option whose sub-choice grants a skill, or expertise when already proficient
const StudyBuddy = "Study Buddy"

// MaxCastingStyleSkills caps the skills picked manually from the casting style list
const MaxCastingStyleSkills = 2

// SkillSource is the provenance of a skill proficiency
type SkillSource string

// Skill sources, in provenance priority order
const (
	SourceBackground   SkillSource = "background"
	SourceHeritage     SkillSource = "heritage"
	SourceSubclass     SkillSource = "subclass"
	SourceStudyBuddy   SkillSource = "study_buddy"
	SourceCastingStyle SkillSource = "casting_style"
	SourceFeat         SkillSource = "feat"
	SourceUnknown      SkillSource = "unknown"
)

// GrantStatus is a provider's answer for one skill
type GrantStatus int

// Grant statuses
const (
	NotGranted GrantStatus = iota
	Granted
	// GrantedWithExpertiseOption marks a grant that may be doubled up deliberately to signal expertise
	GrantedWithExpertiseOption
)

// SkillGrantProvider answers whether one source grants a skill
type SkillGrantProvider interface {
	Source() SkillSource
	Grant(skill string) GrantStatus
}

type setProvider struct {
	source SkillSource
	skills *stringSet
	status GrantStatus
}

func (p *setProvider) Source() SkillSource { return p.source }

func (p *setProvider) Grant(skill string) GrantStatus {
	if p.skills.has(skill) {
		return p.status
	}
	return NotGranted
}

// SkillResolution partitions a character's skills by provenance
type SkillResolution struct {
	AvailableCastingSkills     []string `json:"available_casting_skills"`
	SelectedCastingStyleSkills []string `json:"selected_casting_style_skills"`
	BackgroundSkills           []string `json:"background_skills"`
	InnateHeritageSkills       []string `json:"innate_heritage_skills"`
	SubclassSkills             []string `json:"subclass_skills"`
	ExpertiseSkills            []string `json:"expertise_skills"`
	StudyBuddySkills           []string `json:"study_buddy_skills"`
	HasExpertiseGranter        bool     `json:"has_expertise_granter"`
	ExpertisePicks             int      `json:"expertise_picks"`
	ExpertisePicksUsed         int      `json:"expertise_picks_used"`
	FeatSkills                 []string `json:"feat_skills"`
	AllSkillProficiencies      []string `json:"all_skill_proficiencies"`
	Warnings                   []Issue  `json:"warnings,omitempty"`

	// providers in provenance priority order
	providers []SkillGrantProvider
}

// Source returns the highest-priority source that grants skill
func (r *SkillResolution) Source(skill string) SkillSource {
	for _, p := range r.providers {
		if p.Grant(skill) != NotGranted {
			return p.Source()
		}
	}
	return SourceUnknown
}

// AutomaticGrant returns how the automatic sources (everything except the manual casting style picks)
// grant skill. The strongest status wins, so a Study Buddy duplicate reports the expertise option.
func (r *SkillResolution) AutomaticGrant(skill string) GrantStatus {
	best := NotGranted
	for _, p := range r.providers {
		if p.Source() == SourceCastingStyle {
			continue
		}
		if s := p.Grant(skill); s > best {
			best = s
		}
	}
	return best
}

// IsAutomatic reports whether skill comes from any automatic source
func (r *SkillResolution) IsAutomatic(skill string) bool {
	return r.AutomaticGrant(skill) != NotGranted
}

// IsExpertise reports whether skill resolved to expertise
func (r *SkillResolution) IsExpertise(skill string) bool {
	return contains(r.ExpertiseSkills, skill)
}

// ResolveSkills partitions the character's skills by provenance and applies the selection rules
func ResolveSkills(c *entities.Character, ref *reference.Data) *SkillResolution {
	if c == nil {
		c = &entities.Character{}
	}
	r := &SkillResolution{}

	available := newStringSet()
	if style, ok := ref.CastingStyle(c.CastingStyle); ok {
		available.add(style.Skills...)
	} else if c.CastingStyle != "" {
		r.Warnings = append(r.Warnings, unknownReference(ref, reference.KindCastingStyle, c.CastingStyle))
	}

	background := newStringSet()
	if bg, ok := ref.Background(c.Background); ok {
		background.add(bg.Skills...)
	} else {
		if c.Background != "" {
			r.Warnings = append(r.Warnings, unknownReference(ref, reference.KindBackground, c.Background))
		}
		background.add(c.BackgroundSkills...)
	}

	heritage := newStringSet()
	if h, ok := ref.Heritage(c.InnateHeritage); ok {
		heritage.add(h.Skills...)
	} else {
		if c.InnateHeritage != "" {
			r.Warnings = append(r.Warnings, unknownReference(ref, reference.KindHeritage, c.InnateHeritage))
		}
		heritage.add(c.InnateHeritageSkills...)
	}

	scan := scanSubclassChoices(c, ref)
	r.HasExpertiseGranter = scan.hasGranter
	r.ExpertisePicks = scan.granterPicks
	r.Warnings = append(r.Warnings, scan.warnings...)

	featSkills, featExpertise, featWarnings := resolveFeatSkills(c, ref)
	r.Warnings = append(r.Warnings, featWarnings...)

	// Manual picks count as "granted elsewhere" for Study Buddy so a deliberate duplicate becomes expertise
	granted := newStringSet()
	granted.add(background.list()...)
	granted.add(heritage.list()...)
	granted.add(scan.direct.list()...)
	granted.add(featSkills.list()...)
	for _, s := range c.SkillProficiencies {
		if available.has(s) {
			granted.add(s)
		}
	}

	subclass := newStringSet(scan.direct.list()...)
	studyBuddy := newStringSet()
	expertise := newStringSet()
	for _, skill := range scan.studyBuddy.list() {
		studyBuddy.add(skill)
		if granted.has(skill) {
			expertise.add(skill)
			continue
		}
		subclass.add(skill)
		granted.add(skill)
	}

	r.providers = []SkillGrantProvider{
		&setProvider{source: SourceBackground, skills: background, status: Granted},
		&setProvider{source: SourceHeritage, skills: heritage, status: Granted},
		&setProvider{source: SourceSubclass, skills: scan.direct, status: Granted},
		&setProvider{source: SourceStudyBuddy, skills: studyBuddy, status: GrantedWithExpertiseOption},
	}

	selected := newStringSet()
	for _, skill := range c.SkillProficiencies {
		if selected.len() >= MaxCastingStyleSkills {
			break
		}
		if !available.has(skill) {
			continue
		}
		if !studyBuddy.has(skill) && (background.has(skill) || heritage.has(skill) ||
			subclass.has(skill) || featSkills.has(skill)) {
			continue
		}
		selected.add(skill)
	}

	r.providers = append(r.providers,
		&setProvider{source: SourceCastingStyle, skills: selected, status: Granted},
		&setProvider{source: SourceFeat, skills: featSkills, status: Granted},
	)

	all := newStringSet()
	all.add(background.list()...)
	all.add(heritage.list()...)
	all.add(subclass.list()...)
	all.add(featSkills.list()...)
	all.add(selected.list()...)

	for _, skill := range featExpertise {
		if all.has(skill) {
			expertise.add(skill)
			continue
		}
		r.Warnings = append(r.Warnings, warning(IssueExpertiseUnavailable, skill,
			"expertise in %s requires proficiency in it", skill))
	}

	if scan.hasGranter {
		picks := append(scan.granterSkills.list(), c.SkillExpertise...)
		for _, skill := range picks {
			if r.ExpertisePicksUsed >= r.ExpertisePicks {
				break
			}
			if !all.has(skill) || expertise.has(skill) {
				continue
			}
			expertise.add(skill)
			r.ExpertisePicksUsed++
		}
	}

	r.AvailableCastingSkills = available.list()
	r.SelectedCastingStyleSkills = selected.list()
	r.BackgroundSkills = background.list()
	r.InnateHeritageSkills = heritage.list()
	r.SubclassSkills = subclass.list()
	r.StudyBuddySkills = studyBuddy.list()
	r.FeatSkills = featSkills.list()
	r.ExpertiseSkills = expertise.sorted()
	r.AllSkillProficiencies = all.sorted()

	return r
}

type subclassScan struct {
	direct        *stringSet
	studyBuddy    *stringSet
	granterSkills *stringSet
	hasGranter    bool
	granterPicks  int
	warnings      []Issue
}

func scanSubclassChoices(c *entities.Character, ref *reference.Data) *subclassScan {
	scan := &subclassScan{
		direct:        newStringSet(),
		studyBuddy:    newStringSet(),
		granterSkills: newStringSet(),
	}
	if c.Subclass != "" {
		if _, ok := ref.Subclass(c.Subclass); !ok {
			scan.warnings = append(scan.warnings, unknownReference(ref, reference.KindSubclass, c.Subclass))
		}
	}

	for _, feature := range c.SubclassChoices.Keys() {
		switch choice := c.SubclassChoices[feature].(type) {
		case entities.SimpleChoice:
			if ref.IsSkill(choice.Name) {
				scan.direct.add(choice.Name)
			} else if g, ok := ref.ExpertiseGranter(choice.Name); ok {
				scan.hasGranter = true
				scan.granterPicks += g.Picks
			}
		case entities.CompoundChoice:
			switch {
			case choice.MainChoice == StudyBuddy:
				if !ref.IsSkill(choice.SubChoice) {
					scan.warnings = append(scan.warnings, unknownReference(ref, reference.KindSkill, choice.SubChoice))
					continue
				}
				scan.studyBuddy.add(choice.SubChoice)
			default:
				if g, ok := ref.ExpertiseGranter(choice.MainChoice); ok {
					scan.hasGranter = true
					scan.granterPicks += g.Picks
					if ref.IsSkill(choice.SubChoice) {
						scan.granterSkills.add(choice.SubChoice)
					}
					continue
				}
				if ref.IsSkill(choice.SubChoice) {
					scan.direct.add(choice.SubChoice)
				}
			}
		}
	}
	return scan
}

// FeatChoiceKey builds the key a feat's choice benefit is resolved under, e.g. "Skilled_skill_0"
func FeatChoiceKey(feat, kind string, index int) string {
	return fmt.Sprintf("%s_%s_%d", feat, kind, index)
}

// lookupFeatChoice resolves a choice key from the slot's own choices, then the character-wide map
func lookupFeatChoice(sel SelectedFeat, fallback map[string]string, key string) string {
	if v, ok := sel.Choices[key]; ok && v != "" {
		return v
	}
	return fallback[key]
}

func resolveFeatSkills(c *entities.Character, ref *reference.Data) (*stringSet, []string, []Issue) {
	skills := newStringSet()
	var expertise []string
	var warnings []Issue

	for _, sel := range CollectAllFeats(c) {
		def, ok := ref.Feat(sel.Name)
		if !ok {
			warnings = append(warnings, unknownReference(ref, reference.KindFeat, sel.Name))
			continue
		}
		for i, grant := range def.Benefits.Skills {
			skill, issue := resolveSkillGrant(sel, c.FeatChoices, grant, "skill", i)
			if issue != nil {
				warnings = append(warnings, *issue)
			}
			skills.add(skill)
		}
		for i, grant := range def.Benefits.Expertise {
			skill, issue := resolveSkillGrant(sel, c.FeatChoices, grant, "expertise", i)
			if issue != nil {
				warnings = append(warnings, *issue)
			}
			if skill != "" {
				expertise = append(expertise, skill)
			}
		}
	}
	return skills, expertise, warnings
}

func resolveSkillGrant(
	sel SelectedFeat,
	fallback map[string]string,
	grant reference.SkillGrant,
	kind string,
	index int,
) (string, *Issue) {
	if !grant.IsChoice() {
		return grant.Skill, nil
	}
	key := FeatChoiceKey(sel.Name, kind, index)
	skill := lookupFeatChoice(sel, fallback, key)
	if skill == "" {
		issue := warning(IssueIncomplete, sel.Name, "%s: choose a %s for %s", key, kind, sel.Name)
		issue.Level = sel.Slot
		return "", &issue
	}
	if len(grant.From) > 0 && !contains(grant.From, skill) {
		issue := warning(IssueInvalidChoice, sel.Name, "%s is not a valid %s choice for %s", skill, kind, sel.Name)
		issue.Level = sel.Slot
		return "", &issue
	}
	return skill, nil
}

// ToggleCastingStyleSkill adds or removes a manual casting style skill pick.
// Adding is refused for skills outside the style list, skills an automatic source already grants
// (unless Study Buddy offers the expertise path), and beyond MaxCastingStyleSkills.
// Removing is only allowed for manual picks.
func ToggleCastingStyleSkill(c *entities.Character, ref *reference.Data, skill string) EditResult {
	r := ResolveSkills(c, ref)

	if contains(r.SelectedCastingStyleSkills, skill) {
		out := cloneOrNew(c)
		out.SkillProficiencies = without(out.SkillProficiencies, skill)
		return applied(out)
	}

	if r.AutomaticGrant(skill) == Granted {
		return rejected(c, RejectAutomaticSkill)
	}
	if !contains(r.AvailableCastingSkills, skill) {
		return rejected(c, RejectNotAvailable)
	}
	if len(r.SelectedCastingStyleSkills) >= MaxCastingStyleSkills {
		return rejected(c, RejectCapReached)
	}

	out := cloneOrNew(c)
	out.SkillProficiencies = append(without(out.SkillProficiencies, skill), skill)
	return applied(out)
}

// ToggleExpertise marks or unmarks an existing proficiency as expertise through an expertise granter
func ToggleExpertise(c *entities.Character, ref *reference.Data, skill string) EditResult {
	r := ResolveSkills(c, ref)
	if !r.HasExpertiseGranter {
		return rejected(c, RejectNoExpertiseGranter)
	}

	if c != nil && contains(c.SkillExpertise, skill) {
		out := c.Clone()
		out.SkillExpertise = without(out.SkillExpertise, skill)
		return applied(out)
	}

	if !contains(r.AllSkillProficiencies, skill) {
		return rejected(c, RejectNotProficient)
	}
	if r.IsExpertise(skill) {
		return rejected(c, RejectAlreadyExpertise)
	}
	if r.ExpertisePicksUsed >= r.ExpertisePicks {
		return rejected(c, RejectCapReached)
	}

	out := cloneOrNew(c)
	out.SkillExpertise = append(out.SkillExpertise, skill)
	return applied(out)
}
