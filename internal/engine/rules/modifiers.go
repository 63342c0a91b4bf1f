package rules

import (
	"github.com/KirkDiggler/grimoire-api/internal/entities"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// ModifierSource is the layer an ability bonus comes from
type ModifierSource string

// Modifier layers
const (
	ModifierFeat       ModifierSource = "feat"
	ModifierBackground ModifierSource = "background"
	ModifierHouse      ModifierSource = "house"
	ModifierHeritage   ModifierSource = "heritage"
)

// ModifierDetail is one entry of the ability bonus audit trail.
// Slot identifies the feat selection for feat bonuses and is zero otherwise.
type ModifierDetail struct {
	Source     ModifierSource   `json:"source"`
	SourceName string           `json:"source_name"`
	Ability    entities.Ability `json:"ability"`
	Amount     int              `json:"amount"`
	Slot       int              `json:"slot,omitempty"`
}

// ModifierResolution is the per-layer and total ability bonus breakdown
type ModifierResolution struct {
	TotalModifiers      map[entities.Ability]int `json:"total_modifiers"`
	AllDetails          []ModifierDetail         `json:"all_details"`
	FeatModifiers       map[entities.Ability]int `json:"feat_modifiers"`
	BackgroundModifiers map[entities.Ability]int `json:"background_modifiers"`
	HouseModifiers      map[entities.Ability]int `json:"house_modifiers"`
	HeritageModifiers   map[entities.Ability]int `json:"heritage_modifiers"`
	Warnings            []Issue                  `json:"warnings,omitempty"`
}

// ModifierChoices carries in-progress choices that override the character's stored ones.
// A nil field falls back to the character's own value.
type ModifierChoices struct {
	FeatChoices     map[string]string
	HouseChoices    entities.ChoiceMap
	HeritageChoices entities.ChoiceMap
}

// selectionBonuses accumulates one selection's bonuses, applying each ability at most once
type selectionBonuses struct {
	source ModifierSource
	name   string
	slot   int
	seen   map[entities.Ability]bool
	res    *ModifierResolution
	layer  map[entities.Ability]int
}

func (s *selectionBonuses) add(a entities.Ability, amount int) {
	switch {
	case !a.IsValid():
		s.res.Warnings = append(s.res.Warnings, warning(IssueInvalidChoice, s.name,
			"%s %s grants a bonus to unknown ability %q", s.source, s.name, a))
		return
	case amount <= 0:
		return
	case s.seen[a]:
		s.res.Warnings = append(s.res.Warnings, warning(IssueInvalidChoice, s.name,
			"%s %s applies more than one bonus to %s; only the first counts", s.source, s.name, a))
		return
	}
	s.seen[a] = true
	s.layer[a] += amount
	s.res.AllDetails = append(s.res.AllDetails, ModifierDetail{
		Source:     s.source,
		SourceName: s.name,
		Ability:    a,
		Amount:     amount,
		Slot:       s.slot,
	})
}

func (r *ModifierResolution) selection(source ModifierSource, name string, slot int) *selectionBonuses {
	var layer map[entities.Ability]int
	switch source {
	case ModifierFeat:
		layer = r.FeatModifiers
	case ModifierBackground:
		layer = r.BackgroundModifiers
	case ModifierHouse:
		layer = r.HouseModifiers
	case ModifierHeritage:
		layer = r.HeritageModifiers
	}
	return &selectionBonuses{
		source: source,
		name:   name,
		slot:   slot,
		seen:   make(map[entities.Ability]bool),
		res:    r,
		layer:  layer,
	}
}

// ResolveAbilityModifiers sums ability bonuses from the feat, background, house and heritage layers.
// No ceiling is applied; see EffectiveScores.
func ResolveAbilityModifiers(c *entities.Character, ref *reference.Data, choices ModifierChoices) *ModifierResolution {
	if c == nil {
		c = &entities.Character{}
	}
	featChoices := choices.FeatChoices
	if featChoices == nil {
		featChoices = c.FeatChoices
	}
	houseChoices := choices.HouseChoices
	if houseChoices == nil {
		houseChoices = c.HouseChoices
	}
	heritageChoices := choices.HeritageChoices
	if heritageChoices == nil {
		heritageChoices = c.HeritageChoices
	}

	r := &ModifierResolution{
		TotalModifiers:      zeroScores(),
		AllDetails:          []ModifierDetail{},
		FeatModifiers:       zeroScores(),
		BackgroundModifiers: zeroScores(),
		HouseModifiers:      zeroScores(),
		HeritageModifiers:   zeroScores(),
	}

	r.resolveFeats(c, ref, featChoices)
	r.resolveBackground(c, ref)
	r.resolveHouse(c, ref, houseChoices)
	r.resolveHeritage(c, ref, heritageChoices)

	for _, a := range entities.Abilities {
		r.TotalModifiers[a] = r.FeatModifiers[a] + r.BackgroundModifiers[a] + r.HouseModifiers[a] + r.HeritageModifiers[a]
	}
	return r
}

func (r *ModifierResolution) resolveFeats(c *entities.Character, ref *reference.Data, featChoices map[string]string) {
	for _, sel := range CollectAllFeats(c) {
		def, ok := ref.Feat(sel.Name)
		if !ok {
			continue
		}
		bonuses := r.selection(ModifierFeat, sel.Name, sel.Slot)
		for i, b := range def.Benefits.AbilityBonuses {
			if !b.IsChoice() {
				bonuses.add(b.Ability, b.Amount)
				continue
			}
			picked := entities.Ability(lookupFeatChoice(sel, featChoices, FeatChoiceKey(sel.Name, "ability", i)))
			if picked == "" {
				continue
			}
			if !b.Allows(picked) {
				r.Warnings = append(r.Warnings, warning(IssueInvalidChoice, sel.Name,
					"%s is not a valid ability choice for %s", picked, sel.Name))
				continue
			}
			bonuses.add(picked, b.Amount)
		}
	}
}

func (r *ModifierResolution) resolveBackground(c *entities.Character, ref *reference.Data) {
	bg, ok := ref.Background(c.Background)
	if !ok {
		return
	}
	bonuses := r.selection(ModifierBackground, bg.Name, 0)
	for _, b := range bg.AbilityBonuses {
		if b.IsChoice() {
			// backgrounds carry no choice map; choice bonuses are a catalog error
			r.Warnings = append(r.Warnings, warning(IssueInvalidChoice, bg.Name,
				"background %s declares a choice ability bonus, which backgrounds cannot resolve", bg.Name))
			continue
		}
		bonuses.add(b.Ability, b.Amount)
	}
}

func (r *ModifierResolution) resolveHouse(c *entities.Character, ref *reference.Data, houseChoices entities.ChoiceMap) {
	if c.House == "" {
		return
	}
	if _, ok := ref.House(c.House); !ok {
		r.Warnings = append(r.Warnings, unknownReference(ref, reference.KindHouse, c.House))
		return
	}

	for _, featureName := range houseChoices.Keys() {
		feature, ok := ref.HouseFeature(c.House, featureName)
		if !ok {
			r.Warnings = append(r.Warnings, warning(IssueUnknownReference, featureName,
				"house %s has no feature %q", c.House, featureName))
			continue
		}

		choice := houseChoices[featureName]
		option, ok := feature.Option(choice.Main())
		if !ok {
			r.Warnings = append(r.Warnings, warning(IssueInvalidChoice, featureName,
				"%q is not an option of %s", choice.Main(), featureName))
			continue
		}

		var sub entities.Ability
		switch ch := choice.(type) {
		case entities.SimpleChoice:
		case entities.CompoundChoice:
			sub = entities.Ability(ch.SubChoice)
		}

		bonuses := r.selection(ModifierHouse, featureName+": "+option.Name, 0)
		for _, b := range option.AbilityBonuses {
			if !b.IsChoice() {
				bonuses.add(b.Ability, b.Amount)
				continue
			}
			if sub == "" {
				continue
			}
			if !b.Allows(sub) {
				r.Warnings = append(r.Warnings, warning(IssueInvalidChoice, featureName,
					"%s is not a valid ability choice for %s", sub, option.Name))
				continue
			}
			bonuses.add(sub, b.Amount)
		}
	}
}

func (r *ModifierResolution) resolveHeritage(c *entities.Character, ref *reference.Data, heritageChoices entities.ChoiceMap) {
	h, ok := ref.Heritage(c.InnateHeritage)
	if !ok {
		return
	}

	// a simple choice picks one ability; a compound choice picks two, main then sub
	var picks []entities.Ability
	key := h.Feature
	if key == "" {
		key = h.Name
	}
	switch ch := heritageChoices[key].(type) {
	case entities.SimpleChoice:
		picks = []entities.Ability{entities.Ability(ch.Name)}
	case entities.CompoundChoice:
		picks = []entities.Ability{entities.Ability(ch.MainChoice), entities.Ability(ch.SubChoice)}
	}

	bonuses := r.selection(ModifierHeritage, h.Name, 0)
	next := 0
	for _, b := range h.AbilityBonuses {
		if !b.IsChoice() {
			bonuses.add(b.Ability, b.Amount)
			continue
		}
		if next >= len(picks) {
			continue
		}
		picked := picks[next]
		next++
		if !b.Allows(picked) {
			r.Warnings = append(r.Warnings, warning(IssueInvalidChoice, h.Name,
				"%s is not a valid ability choice for %s", picked, h.Name))
			continue
		}
		bonuses.add(picked, b.Amount)
	}
}

func zeroScores() map[entities.Ability]int {
	out := make(map[entities.Ability]int, len(entities.Abilities))
	for _, a := range entities.Abilities {
		out[a] = 0
	}
	return out
}

// EffectiveScores combines base scores, layered bonuses and ASI increases, capped at MaxAbilityScore
func EffectiveScores(c *entities.Character, mods *ModifierResolution, asi map[entities.Ability]int) map[entities.Ability]int {
	out := make(map[entities.Ability]int, len(entities.Abilities))
	var base entities.AbilityScores
	if c != nil {
		base = c.AbilityScores
	}
	for _, a := range entities.Abilities {
		score := base.Get(a) + asi[a]
		if mods != nil {
			score += mods.TotalModifiers[a]
		}
		if score > entities.MaxAbilityScore {
			score = entities.MaxAbilityScore
		}
		out[a] = score
	}
	return out
}

// EffectiveModifiers converts effective scores into modifiers
func EffectiveModifiers(scores map[entities.Ability]int) map[entities.Ability]int {
	out := make(map[entities.Ability]int, len(scores))
	for a, score := range scores {
		out[a] = entities.Modifier(score)
	}
	return out
}

// ResolveEffectiveScores is the common path: stored choices, all layers and reached ASI milestones
func ResolveEffectiveScores(c *entities.Character, ref *reference.Data) map[entities.Ability]int {
	mods := ResolveAbilityModifiers(c, ref, ModifierChoices{})
	return EffectiveScores(c, mods, ASIIncreases(c))
}
