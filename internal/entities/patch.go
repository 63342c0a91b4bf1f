package entities

// Patch is a partial update to a character. Nil fields are left untouched.
// Map and slice fields replace the stored value wholesale when non-nil.
type Patch struct {
	Name              *string            `json:"name,omitempty"`
	Level             *int               `json:"level,omitempty"`
	CastingStyle      *string            `json:"casting_style,omitempty"`
	House             *string            `json:"house,omitempty"`
	Background        *string            `json:"background,omitempty"`
	InnateHeritage    *string            `json:"innate_heritage,omitempty"`
	Subclass          *string            `json:"subclass,omitempty"`
	SubclassChoices   ChoiceMap          `json:"subclass_choices,omitempty"`
	HouseChoices      ChoiceMap          `json:"house_choices,omitempty"`
	HeritageChoices   ChoiceMap          `json:"heritage_choices,omitempty"`
	Level1Choice      *Level1Choice      `json:"level1_choice,omitempty"`
	StandardFeats     []string           `json:"standard_feats,omitempty"`
	FeatChoices       map[string]string  `json:"feat_choices,omitempty"`
	ASIChoices        map[int]*ASIChoice `json:"asi_choices,omitempty"`
	AbilityScores     AbilityScores      `json:"ability_scores,omitempty"`
	BackgroundSkills  []string           `json:"background_skills,omitempty"`
	HeritageSkills    []string           `json:"innate_heritage_skills,omitempty"`
	InitiativeAbility *Ability           `json:"initiative_ability,omitempty"`
	HitPoints         *int               `json:"hit_points,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p *Patch) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Name == nil && p.Level == nil && p.CastingStyle == nil && p.House == nil &&
		p.Background == nil && p.InnateHeritage == nil && p.Subclass == nil &&
		p.SubclassChoices == nil && p.HouseChoices == nil && p.HeritageChoices == nil &&
		p.Level1Choice == nil && p.StandardFeats == nil && p.FeatChoices == nil &&
		p.ASIChoices == nil && p.AbilityScores == nil && p.BackgroundSkills == nil &&
		p.HeritageSkills == nil && p.InitiativeAbility == nil && p.HitPoints == nil
}

// Apply returns a copy of c with the patch applied; c itself is not modified
func (p *Patch) Apply(c *Character) *Character {
	out := c.Clone()
	if out == nil {
		out = &Character{Level: MinLevel}
	}
	if p == nil {
		return out
	}

	setString(&out.Name, p.Name)
	setString(&out.CastingStyle, p.CastingStyle)
	setString(&out.House, p.House)
	setString(&out.Background, p.Background)
	setString(&out.InnateHeritage, p.InnateHeritage)
	setString(&out.Subclass, p.Subclass)

	if p.Level != nil {
		out.Level = *p.Level
	}
	if p.Level1Choice != nil {
		out.Level1Choice = *p.Level1Choice
	}
	if p.InitiativeAbility != nil {
		out.InitiativeAbility = *p.InitiativeAbility
	}
	if p.HitPoints != nil {
		out.HitPoints = *p.HitPoints
	}
	if p.SubclassChoices != nil {
		out.SubclassChoices = p.SubclassChoices.Clone()
	}
	if p.HouseChoices != nil {
		out.HouseChoices = p.HouseChoices.Clone()
	}
	if p.HeritageChoices != nil {
		out.HeritageChoices = p.HeritageChoices.Clone()
	}
	if p.StandardFeats != nil {
		out.StandardFeats = cloneSlice(p.StandardFeats)
	}
	if p.FeatChoices != nil {
		out.FeatChoices = cloneStrings(p.FeatChoices)
	}
	if p.ASIChoices != nil {
		out.ASIChoices = make(map[int]*ASIChoice, len(p.ASIChoices))
		for lvl, choice := range p.ASIChoices {
			out.ASIChoices[lvl] = choice.Clone()
		}
	}
	if p.AbilityScores != nil {
		out.AbilityScores = p.AbilityScores.Clone()
	}
	if p.BackgroundSkills != nil {
		out.BackgroundSkills = cloneSlice(p.BackgroundSkills)
	}
	if p.HeritageSkills != nil {
		out.InnateHeritageSkills = cloneSlice(p.HeritageSkills)
	}

	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
