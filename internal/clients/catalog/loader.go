package catalog

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/reference"
)

// DefaultFiles are the catalog files read from a catalog directory, in merge order
var DefaultFiles = []string{
	"casting_styles.yaml",
	"feats.yaml",
	"backgrounds.yaml",
	"heritages.yaml",
	"houses.yaml",
	"subclasses.yaml",
	"skills.yaml",
}

// FileLoaderConfig configures a FileLoader
type FileLoaderConfig struct {
	// FS holds the catalog files, e.g. os.DirFS(dir) or the embedded defaults
	FS fs.FS
	// Files overrides DefaultFiles
	Files []string
}

// Validate checks the loader configuration
func (c *FileLoaderConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.FS == nil {
		return errors.InvalidArgument("catalog filesystem is required")
	}
	return nil
}

// FileLoader reads YAML catalog files concurrently and merges them
type FileLoader struct {
	fsys  fs.FS
	files []string
}

// NewFileLoader creates a loader over a catalog filesystem
func NewFileLoader(cfg *FileLoaderConfig) (*FileLoader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files := cfg.Files
	if len(files) == 0 {
		files = DefaultFiles
	}

	return &FileLoader{fsys: cfg.FS, files: files}, nil
}

var _ Client = (*FileLoader)(nil)

// GetReference loads and indexes the catalogs
func (l *FileLoader) GetReference(ctx context.Context) (*reference.Data, error) {
	c, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return reference.NewData(c), nil
}

// Load reads every catalog file and merges them in file order.
// Missing files are skipped; any file that fails to parse fails the load.
func (l *FileLoader) Load(ctx context.Context) (*reference.Catalog, error) {
	parts := make([]*reference.Catalog, len(l.files))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range l.files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := fs.ReadFile(l.fsys, name)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					slog.DebugContext(gctx, "catalog file not present", "file", name)
					return nil
				}
				return errors.Wrapf(err, "failed to read catalog file %s", name)
			}

			part, err := Decode(bytes.NewReader(data))
			if err != nil {
				return errors.Wrapf(err, "catalog file %s", name)
			}
			parts[i] = part
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Merge(parts...)
	if err := CheckCatalog(merged); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "loaded reference catalog",
		"version", merged.Version,
		"casting_styles", len(merged.CastingStyles),
		"feats", len(merged.Feats),
		"houses", len(merged.Houses),
		"skills", len(merged.Skills))

	return merged, nil
}

// Decode parses one YAML catalog document. Unknown keys are rejected.
// An empty document decodes to an empty catalog.
func Decode(r io.Reader) (*reference.Catalog, error) {
	var c reference.Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return &c, nil
		}
		return nil, errors.InvalidArgumentf("malformed catalog: %v", err)
	}
	return &c, nil
}

// Merge concatenates catalogs; nil parts are ignored and the first non-empty version wins
func Merge(parts ...*reference.Catalog) *reference.Catalog {
	out := &reference.Catalog{}
	for _, p := range parts {
		if p == nil {
			continue
		}
		if out.Version == "" {
			out.Version = p.Version
		}
		out.CastingStyles = append(out.CastingStyles, p.CastingStyles...)
		out.Feats = append(out.Feats, p.Feats...)
		out.Backgrounds = append(out.Backgrounds, p.Backgrounds...)
		out.Heritages = append(out.Heritages, p.Heritages...)
		out.Houses = append(out.Houses, p.Houses...)
		out.Subclasses = append(out.Subclasses, p.Subclasses...)
		out.Skills = append(out.Skills, p.Skills...)
		out.ExpertiseGranters = append(out.ExpertiseGranters, p.ExpertiseGranters...)
	}
	return out
}

// CheckCatalog rejects structurally broken entries.
// Dangling references between catalogs are left to the engine, which reports them as warnings.
func CheckCatalog(c *reference.Catalog) error {
	vb := errors.NewValidationBuilder()

	for i, s := range c.CastingStyles {
		if s.Name == "" {
			vb.Fieldf("casting_styles", "entry %d has no name", i)
		}
		if s.HitDie < 0 || s.BaseHP < 0 || s.HPPerLevel < 0 {
			vb.Fieldf("casting_styles", "%s has negative hit point values", s.Name)
		}
		for _, a := range s.InitiativeAbilities {
			if !a.IsValid() {
				vb.Fieldf("casting_styles", "%s has unknown initiative ability %q", s.Name, a)
			}
		}
	}

	for i, f := range c.Feats {
		if f.Name == "" {
			vb.Fieldf("feats", "entry %d has no name", i)
		}
		for _, p := range f.Prerequisites {
			checkPrerequisite(vb, f.Name, p)
		}
		checkBonuses(vb, "feats", f.Name, f.Benefits.AbilityBonuses)
	}

	for _, b := range c.Backgrounds {
		checkBonuses(vb, "backgrounds", b.Name, b.AbilityBonuses)
	}
	for _, h := range c.Heritages {
		checkBonuses(vb, "heritages", h.Name, h.AbilityBonuses)
	}
	for _, h := range c.Houses {
		for _, f := range h.Features {
			for _, o := range f.Options {
				checkBonuses(vb, "houses", h.Name+"/"+o.Name, o.AbilityBonuses)
			}
		}
	}

	for _, s := range c.Skills {
		if s.Name == "" {
			vb.Field("skills", "entry has no name")
		}
		if !s.Ability.IsValid() {
			vb.Fieldf("skills", "%s has unknown ability %q", s.Name, s.Ability)
		}
	}

	for _, g := range c.ExpertiseGranters {
		if g.Picks < 0 {
			vb.Fieldf("expertise_granters", "%s has negative picks", g.Name)
		}
	}

	return vb.Build()
}

func checkPrerequisite(vb *errors.ValidationBuilder, feat string, p reference.Prerequisite) {
	switch p.Type {
	case reference.PrereqAbilityScore:
		if !p.Ability.IsValid() {
			vb.Fieldf("feats", "%s prerequisite has unknown ability %q", feat, p.Ability)
		}
	case reference.PrereqAnyOf:
		for _, alt := range p.AnyOf {
			checkPrerequisite(vb, feat, alt)
		}
	case reference.PrereqLevel, reference.PrereqFeat, reference.PrereqCastingStyle,
		reference.PrereqSkill, reference.PrereqHouse:
	default:
		// Unknown types are tolerated and reported by the validator at evaluation time
	}
}

func checkBonuses(vb *errors.ValidationBuilder, field, owner string, bonuses []reference.AbilityBonus) {
	for _, b := range bonuses {
		if b.Ability != "" && !b.Ability.IsValid() {
			vb.Fieldf(field, "%s grants unknown ability %q", owner, b.Ability)
		}
		for _, a := range b.From {
			if !a.IsValid() {
				vb.Fieldf(field, "%s offers unknown ability %q", owner, a)
			}
		}
	}
}
