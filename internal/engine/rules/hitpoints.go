package rules

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// HitPointMode selects how levels past the first are scored
type HitPointMode string

// Hit point modes
const (
	HitPointsAverage HitPointMode = "average"
	HitPointsRolled  HitPointMode = "rolled"
)

// MinHitPoints is the floor for any computed total
const MinHitPoints = 1

// HitPointResult is the computed total plus the inputs that produced it
type HitPointResult struct {
	HitPoints   int          `json:"hit_points"`
	Mode        HitPointMode `json:"mode"`
	ConModifier int          `json:"con_modifier"`
	Rolls       []int        `json:"rolls,omitempty"`
	Warnings    []Issue      `json:"warnings,omitempty"`
}

// ComputeHitPoints totals hit points for the character's casting style and level.
// Rolled mode draws one hit die per level from roller; a nil roller uses dice.DefaultRoller.
// The result is never below MinHitPoints.
func ComputeHitPoints(c *entities.Character, ref *reference.Data, mode HitPointMode, roller dice.Roller) *HitPointResult {
	if c == nil {
		c = &entities.Character{}
	}
	level := c.EffectiveLevel()
	conMod := entities.Modifier(ResolveEffectiveScores(c, ref)[entities.AbilityConstitution])
	res := &HitPointResult{Mode: mode, ConModifier: conMod}

	var base, perLevel, hitDie int
	if style, ok := ref.CastingStyle(c.CastingStyle); ok {
		base, perLevel, hitDie = style.BaseHP, style.HPPerLevel, style.HitDie
	} else {
		issue := warning(IssueIncomplete, "casting_style", "no casting style chosen; hit points use constitution only")
		if c.CastingStyle != "" {
			issue = unknownReference(ref, reference.KindCastingStyle, c.CastingStyle)
		}
		res.Warnings = append(res.Warnings, issue)
	}

	switch mode {
	case HitPointsAverage:
	case HitPointsRolled:
		if hitDie <= 0 {
			res.Warnings = append(res.Warnings, warning(IssueInvalidChoice, c.CastingStyle,
				"casting style %q has no hit die; using average hit points", c.CastingStyle))
			res.Mode = HitPointsAverage
			break
		}
		if roller == nil {
			roller = dice.DefaultRoller
		}
		rolls, err := roller.RollN(level, hitDie)
		if err != nil || len(rolls) != level {
			res.Warnings = append(res.Warnings, warning(IssueInvalidChoice, c.CastingStyle,
				"rolling d%d failed; using average hit points", hitDie))
			res.Mode = HitPointsAverage
			break
		}
		res.Rolls = rolls
		total := 0
		for _, r := range rolls {
			total += r + conMod
		}
		res.HitPoints = floorHitPoints(total)
		return res
	default:
		res.Warnings = append(res.Warnings, warning(IssueInvalidChoice, string(mode),
			"unknown hit point mode %q; using average", mode))
		res.Mode = HitPointsAverage
	}

	total := base + conMod + (level-1)*(perLevel+conMod)
	res.HitPoints = floorHitPoints(total)
	return res
}

func floorHitPoints(hp int) int {
	if hp < MinHitPoints {
		return MinHitPoints
	}
	return hp
}

// AbilityModifierOption is one ability the player may choose to govern initiative
type AbilityModifierOption struct {
	Ability  entities.Ability `json:"ability"`
	Modifier int              `json:"modifier"`
}

// InitiativeComparison lists the initiative options for casting styles that offer a choice.
// Chosen is the stored character state; Higher is informational.
type InitiativeComparison struct {
	Applies bool                    `json:"applies"`
	Options []AbilityModifierOption `json:"options,omitempty"`
	Higher  entities.Ability        `json:"higher,omitempty"`
	Chosen  entities.Ability        `json:"chosen"`
}

// CompareInitiative surfaces the candidate initiative modifiers for the character's casting style.
// Styles without initiative options always use Dexterity.
func CompareInitiative(c *entities.Character, ref *reference.Data) *InitiativeComparison {
	if c == nil {
		c = &entities.Character{}
	}
	out := &InitiativeComparison{Chosen: entities.AbilityDexterity}
	style, ok := ref.CastingStyle(c.CastingStyle)
	if !ok || len(style.InitiativeAbilities) == 0 {
		return out
	}

	out.Applies = true
	mods := EffectiveModifiers(ResolveEffectiveScores(c, ref))
	best := 0
	for i, a := range style.InitiativeAbilities {
		m := mods[a]
		out.Options = append(out.Options, AbilityModifierOption{Ability: a, Modifier: m})
		if i == 0 || m > best {
			best = m
			out.Higher = a
		}
	}
	for _, a := range style.InitiativeAbilities {
		if a == c.InitiativeAbility {
			out.Chosen = a
		}
	}
	return out
}

// SkillModifier is the total check bonus for one proficient skill
type SkillModifier struct {
	Skill     string           `json:"skill"`
	Ability   entities.Ability `json:"ability"`
	Modifier  int              `json:"modifier"`
	Expertise bool             `json:"expertise"`
	Source    SkillSource      `json:"source"`
}

// SkillModifiers computes ability modifier plus proficiency for every proficient skill,
// with proficiency doubled for expertise, in AllSkillProficiencies order
func SkillModifiers(c *entities.Character, ref *reference.Data, skills *SkillResolution) []SkillModifier {
	if skills == nil {
		skills = ResolveSkills(c, ref)
	}
	level := entities.MinLevel
	if c != nil {
		level = c.EffectiveLevel()
	}
	prof := ProficiencyBonus(level)
	mods := EffectiveModifiers(ResolveEffectiveScores(c, ref))

	out := make([]SkillModifier, 0, len(skills.AllSkillProficiencies))
	for _, skill := range skills.AllSkillProficiencies {
		ability := ref.SkillAbility(skill)
		expertise := skills.IsExpertise(skill)
		bonus := prof
		if expertise {
			bonus *= 2
		}
		out = append(out, SkillModifier{
			Skill:     skill,
			Ability:   ability,
			Modifier:  mods[ability] + bonus,
			Expertise: expertise,
			Source:    skills.Source(skill),
		})
	}
	return out
}
