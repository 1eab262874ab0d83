package data

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var embedded embed.FS

const defaultCatalog = "catalog/manifestations.yaml"

// Loader reads manifestation catalogs from the embedded defaults and a
// hierarchy of data directories. Files in later directories override records
// with the same ID.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a loader with the given data directory hierarchy.
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// LoadCatalog merges the embedded catalog with every
// <dir>/manifestations/*.yaml file. Missing directories are skipped.
func (l *Loader) LoadCatalog() (*Catalog, error) {
	c, err := embeddedCatalog()
	if err != nil {
		return nil, err
	}
	for _, dir := range l.dataDirs {
		files, err := filepath.Glob(filepath.Join(dir, "manifestations", "*.yaml"))
		if err != nil {
			return nil, fmt.Errorf("failed to scan data directory %s: %w", dir, err)
		}
		sort.Strings(files)
		for _, path := range files {
			other, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			c.merge(*other)
		}
	}
	return c, nil
}

// LoadFactory loads the merged catalog and builds a factory from it.
func (l *Loader) LoadFactory() (*engine.Factory, error) {
	c, err := l.LoadCatalog()
	if err != nil {
		return nil, err
	}
	f, _, err := Build(c)
	return f, err
}

// DefaultFactory builds a factory over the embedded catalog only.
func DefaultFactory() (*engine.Factory, error) {
	c, err := embeddedCatalog()
	if err != nil {
		return nil, err
	}
	f, _, err := Build(c)
	return f, err
}

// Build validates a catalog and turns it into an ability registry and a
// manifestation factory. Manifestations reference abilities by ID.
func Build(c *Catalog) (*engine.Factory, *engine.AbilityRegistry, error) {
	reg := engine.NewAbilityRegistry()
	for _, a := range c.Abilities {
		if err := reg.Register(a.ToAbility()); err != nil {
			return nil, nil, err
		}
	}

	f := engine.NewFactory()
	for _, def := range c.Manifestations {
		if ParseCategory(def.Category) == CategoryUnknown {
			return nil, nil, fmt.Errorf("manifestation %q: unknown category %q", def.ID, def.Category)
		}
		m := engine.Manifestation{
			ID:               def.ID,
			Name:             def.Name,
			Category:         ParseCategory(def.Category).String(),
			Description:      def.Description,
			MaxHP:            def.MaxHP,
			SignatureAbility: def.SignatureAbility,
			NarrativeInsight: def.NarrativeInsight,
			VictoryReward: engine.VictoryReward{
				LP:    def.VictoryReward.LP,
				SP:    def.VictoryReward.SP,
				Title: def.VictoryReward.Title,
			},
		}
		for _, id := range def.Abilities {
			a, ok := reg.Lookup(id)
			if !ok {
				return nil, nil, fmt.Errorf("manifestation %q: unknown ability %q", def.ID, id)
			}
			m.Abilities = append(m.Abilities, a)
		}
		if err := f.Register(m); err != nil {
			return nil, nil, err
		}
	}
	return f, reg, nil
}

func embeddedCatalog() (*Catalog, error) {
	raw, err := embedded.ReadFile(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return decode(bytes.NewReader(raw), defaultCatalog)
}

func loadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()
	return decode(f, path)
}

func decode(r io.Reader, name string) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", name, err)
	}
	return &c, nil
}
