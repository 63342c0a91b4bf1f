package reference

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/grimoire-api/internal/entities"
)

// Catalog is the serialisable form of the reference data, one list per kind
type Catalog struct {
	Version           string             `yaml:"version,omitempty" json:"version,omitempty"`
	CastingStyles     []CastingStyle     `yaml:"casting_styles,omitempty" json:"casting_styles,omitempty"`
	Feats             []Feat             `yaml:"feats,omitempty" json:"feats,omitempty"`
	Backgrounds       []Background       `yaml:"backgrounds,omitempty" json:"backgrounds,omitempty"`
	Heritages         []Heritage         `yaml:"heritages,omitempty" json:"heritages,omitempty"`
	Houses            []House            `yaml:"houses,omitempty" json:"houses,omitempty"`
	Subclasses        []Subclass         `yaml:"subclasses,omitempty" json:"subclasses,omitempty"`
	Skills            []Skill            `yaml:"skills,omitempty" json:"skills,omitempty"`
	ExpertiseGranters []ExpertiseGranter `yaml:"expertise_granters,omitempty" json:"expertise_granters,omitempty"`
}

// Kind names a catalog for lookups and suggestions
type Kind string

// Catalog kinds
const (
	KindCastingStyle Kind = "casting_style"
	KindFeat         Kind = "feat"
	KindBackground   Kind = "background"
	KindHeritage     Kind = "heritage"
	KindHouse        Kind = "house"
	KindSubclass     Kind = "subclass"
	KindSkill        Kind = "skill"
)

// Data is an indexed, read-only view over a Catalog.
// Lookups of unknown names return (nil, false) rather than failing.
type Data struct {
	catalog       *Catalog
	castingStyles map[string]*CastingStyle
	feats         map[string]*Feat
	backgrounds   map[string]*Background
	heritages     map[string]*Heritage
	houses        map[string]*House
	subclasses    map[string]*Subclass
	skills        map[string]*Skill
	granters      map[string]*ExpertiseGranter
}

// NewData indexes a catalog. A nil catalog yields empty data.
// Later entries with a duplicate name shadow earlier ones.
func NewData(c *Catalog) *Data {
	if c == nil {
		c = &Catalog{}
	}
	d := &Data{
		catalog:       c,
		castingStyles: make(map[string]*CastingStyle, len(c.CastingStyles)),
		feats:         make(map[string]*Feat, len(c.Feats)),
		backgrounds:   make(map[string]*Background, len(c.Backgrounds)),
		heritages:     make(map[string]*Heritage, len(c.Heritages)),
		houses:        make(map[string]*House, len(c.Houses)),
		subclasses:    make(map[string]*Subclass, len(c.Subclasses)),
		skills:        make(map[string]*Skill, len(c.Skills)),
		granters:      make(map[string]*ExpertiseGranter, len(c.ExpertiseGranters)),
	}
	for i := range c.CastingStyles {
		d.castingStyles[c.CastingStyles[i].Name] = &c.CastingStyles[i]
	}
	for i := range c.Feats {
		d.feats[c.Feats[i].Name] = &c.Feats[i]
	}
	for i := range c.Backgrounds {
		d.backgrounds[c.Backgrounds[i].Name] = &c.Backgrounds[i]
	}
	for i := range c.Heritages {
		d.heritages[c.Heritages[i].Name] = &c.Heritages[i]
	}
	for i := range c.Houses {
		d.houses[c.Houses[i].Name] = &c.Houses[i]
	}
	for i := range c.Subclasses {
		d.subclasses[c.Subclasses[i].Name] = &c.Subclasses[i]
	}
	for i := range c.Skills {
		d.skills[c.Skills[i].Name] = &c.Skills[i]
	}
	for i := range c.ExpertiseGranters {
		d.granters[c.ExpertiseGranters[i].Name] = &c.ExpertiseGranters[i]
	}
	return d
}

// Catalog returns the underlying catalog
func (d *Data) Catalog() *Catalog {
	if d == nil {
		return &Catalog{}
	}
	return d.catalog
}

// CastingStyle looks up a casting style by name
func (d *Data) CastingStyle(name string) (*CastingStyle, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.castingStyles[name]
	return v, ok
}

// Feat looks up a feat definition by name
func (d *Data) Feat(name string) (*Feat, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.feats[name]
	return v, ok
}

// Background looks up a background by name
func (d *Data) Background(name string) (*Background, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.backgrounds[name]
	return v, ok
}

// Heritage looks up an innate heritage by name
func (d *Data) Heritage(name string) (*Heritage, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.heritages[name]
	return v, ok
}

// House looks up a house by name
func (d *Data) House(name string) (*House, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.houses[name]
	return v, ok
}

// Subclass looks up a subclass by name
func (d *Data) Subclass(name string) (*Subclass, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.subclasses[name]
	return v, ok
}

// Skill looks up a skill by name
func (d *Data) Skill(name string) (*Skill, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.skills[name]
	return v, ok
}

// IsSkill reports whether name is a known skill
func (d *Data) IsSkill(name string) bool {
	_, ok := d.Skill(name)
	return ok
}

// ExpertiseGranter looks up an expertise-granting option by name
func (d *Data) ExpertiseGranter(name string) (*ExpertiseGranter, bool) {
	if d == nil || name == "" {
		return nil, false
	}
	v, ok := d.granters[name]
	return v, ok
}

// HouseFeature finds a feature within a house
func (d *Data) HouseFeature(house, feature string) (*Feature, bool) {
	h, ok := d.House(house)
	if !ok {
		return nil, false
	}
	return findFeature(h.Features, feature)
}

// SubclassFeature finds a feature within a subclass
func (d *Data) SubclassFeature(subclass, feature string) (*Feature, bool) {
	s, ok := d.Subclass(subclass)
	if !ok {
		return nil, false
	}
	return findFeature(s.Features, feature)
}

func findFeature(features []Feature, name string) (*Feature, bool) {
	for i := range features {
		if features[i].Name == name {
			return &features[i], true
		}
	}
	return nil, false
}

// Names returns the sorted names known for a kind
func (d *Data) Names(kind Kind) []string {
	if d == nil {
		return nil
	}
	var names []string
	switch kind {
	case KindCastingStyle:
		names = keys(d.castingStyles)
	case KindFeat:
		names = keys(d.feats)
	case KindBackground:
		names = keys(d.backgrounds)
	case KindHeritage:
		names = keys(d.heritages)
	case KindHouse:
		names = keys(d.houses)
	case KindSubclass:
		names = keys(d.subclasses)
	case KindSkill:
		names = keys(d.skills)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the closest known name of the given kind, or "" when nothing is close enough
func (d *Data) Suggest(kind Kind, name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	best := ""
	bestDist := -1
	for _, candidate := range d.Names(kind) {
		lower := strings.ToLower(candidate)
		dist := levenshtein.ComputeDistance(name, lower)
		if dist > suggestionLimit(len(lower)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// SkillAbility returns the ability a skill keys off, defaulting to Intelligence for unknown skills
func (d *Data) SkillAbility(skill string) entities.Ability {
	if s, ok := d.Skill(skill); ok && s.Ability.IsValid() {
		return s.Ability
	}
	return entities.AbilityIntelligence
}

func keys[T any](m map[string]*T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
