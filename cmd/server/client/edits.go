package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/build/v1alpha1"
)

var (
	skill       string
	expertise   bool
	targetLevel int
	choice      string
	choiceName  string
	milestone   int
	asiType     string
	increases   []string
	feat        string
	featChoices map[string]string
)

var toggleSkillCmd = &cobra.Command{
	Use:   "toggle-skill",
	Short: "Toggle a casting-style skill or an expertise pick",
	RunE:  runToggleSkill,
}

var setLevelCmd = &cobra.Command{
	Use:   "set-level",
	Short: "Set a character's level",
	RunE:  runSetLevel,
}

var setLevel1Cmd = &cobra.Command{
	Use:   "set-level1",
	Short: "Pick the level 1 advancement (innate or feat)",
	Long:  `Pick the level 1 advancement. Pass --unlock to reopen a locked pick instead.`,
	RunE:  runSetLevel1,
}

var setMilestoneCmd = &cobra.Command{
	Use:   "set-milestone",
	Short: "Resolve an ASI milestone with increases or a feat",
	Example: `  grimoire-api client set-milestone --character-id char_1 --level 4 --type asi --increase strength+2
  grimoire-api client set-milestone --character-id char_1 --level 8 --type feat --feat Alert`,
	RunE: runSetMilestone,
}

var unlock bool

func init() {
	for _, cmd := range []*cobra.Command{toggleSkillCmd, setLevelCmd, setLevel1Cmd, setMilestoneCmd} {
		cmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}

	toggleSkillCmd.Flags().StringVar(&skill, "skill", "", "Skill name (required)")
	toggleSkillCmd.Flags().BoolVar(&expertise, "expertise", false, "Toggle expertise instead of proficiency")
	_ = toggleSkillCmd.MarkFlagRequired("skill") // nolint:errcheck // safe to ignore in init

	setLevelCmd.Flags().IntVar(&targetLevel, "level", 0, "Level between 1 and 20 (required)")
	_ = setLevelCmd.MarkFlagRequired("level") // nolint:errcheck // safe to ignore in init

	setLevel1Cmd.Flags().StringVar(&choice, "choice", "", "innate or feat")
	setLevel1Cmd.Flags().StringVar(&choiceName, "name", "", "Heritage or feat name")
	setLevel1Cmd.Flags().BoolVar(&unlock, "unlock", false, "Unlock the level 1 pick")

	setMilestoneCmd.Flags().IntVar(&milestone, "level", 0, "Milestone level (required)")
	setMilestoneCmd.Flags().StringVar(&asiType, "type", "", "asi or feat (required)")
	setMilestoneCmd.Flags().StringSliceVar(&increases, "increase", nil, "Ability increase as ability+N, repeatable")
	setMilestoneCmd.Flags().StringVar(&feat, "feat", "", "Feat name")
	setMilestoneCmd.Flags().StringToStringVar(&featChoices, "feat-choice", nil, "Feat choice as key=value, repeatable")
	_ = setMilestoneCmd.MarkFlagRequired("level") // nolint:errcheck // safe to ignore in init
	_ = setMilestoneCmd.MarkFlagRequired("type")  // nolint:errcheck // safe to ignore in init
}

func runToggleSkill(_ *cobra.Command, _ []string) error {
	method := v1alpha1.MethodToggleCastingSkill
	if expertise {
		method = v1alpha1.MethodToggleExpertise
	}
	return call(method, &v1alpha1.ToggleSkillRequest{CharacterID: characterID, Skill: skill})
}

func runSetLevel(_ *cobra.Command, _ []string) error {
	return call(v1alpha1.MethodSetLevel, &v1alpha1.SetLevelRequest{CharacterID: characterID, Level: targetLevel})
}

func runSetLevel1(_ *cobra.Command, _ []string) error {
	if unlock {
		return call(v1alpha1.MethodUnlockLevel1, &v1alpha1.CharacterRequest{CharacterID: characterID})
	}
	return call(v1alpha1.MethodSetLevel1Choice, &v1alpha1.SetLevel1ChoiceRequest{
		CharacterID: characterID,
		Choice:      entities.Level1Choice(choice),
		Name:        choiceName,
	})
}

func runSetMilestone(_ *cobra.Command, _ []string) error {
	parsed := make([]entities.AbilityIncrease, 0, len(increases))
	for _, raw := range increases {
		inc, err := parseIncrease(raw)
		if err != nil {
			return err
		}
		parsed = append(parsed, inc)
	}

	return call(v1alpha1.MethodSetMilestone, &v1alpha1.SetMilestoneRequest{
		CharacterID: characterID,
		Level:       milestone,
		Type:        entities.ASIType(asiType),
		Increases:   parsed,
		Feat:        feat,
		FeatChoices: featChoices,
	})
}

// parseIncrease reads "strength+2" style flags
func parseIncrease(raw string) (entities.AbilityIncrease, error) {
	name, amount, ok := strings.Cut(raw, "+")
	if !ok {
		return entities.AbilityIncrease{}, fmt.Errorf("increase %q must look like ability+N", raw)
	}
	n, err := strconv.Atoi(amount)
	if err != nil {
		return entities.AbilityIncrease{}, fmt.Errorf("increase %q: %w", raw, err)
	}
	ability := entities.Ability(strings.ToLower(strings.TrimSpace(name)))
	if !ability.IsValid() {
		return entities.AbilityIncrease{}, fmt.Errorf("unknown ability %q", name)
	}
	return entities.AbilityIncrease{Ability: ability, Increase: n}, nil
}
