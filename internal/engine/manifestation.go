package engine

import (
	"fmt"
	"sort"
)

// Factory produces independent manifestation instances from templates.
type Factory struct {
	templates map[string]Manifestation
}

// NewFactory creates a factory seeded with the given templates. Later
// templates replace earlier ones with the same ID.
func NewFactory(templates ...Manifestation) *Factory {
	f := &Factory{templates: make(map[string]Manifestation, len(templates))}
	for _, t := range templates {
		f.templates[t.ID] = *t.Clone()
	}
	return f
}

// Register validates and adds a template.
func (f *Factory) Register(t Manifestation) error {
	if t.ID == "" {
		return fmt.Errorf("manifestation missing id")
	}
	if t.MaxHP <= 0 {
		return fmt.Errorf("manifestation %q: max_hp must be positive", t.ID)
	}
	seen := make(map[string]bool, len(t.Abilities))
	for _, a := range t.Abilities {
		if seen[a.ID] {
			return fmt.Errorf("manifestation %q: duplicate ability %q", t.ID, a.ID)
		}
		seen[a.ID] = true
	}
	if t.SignatureAbility != "" && !seen[t.SignatureAbility] {
		return fmt.Errorf("manifestation %q: signature ability %q is not one of its abilities", t.ID, t.SignatureAbility)
	}
	f.templates[t.ID] = *t.Clone()
	return nil
}

// CreateManifestation returns a fresh instance of the template with full HP
// and every cooldown reset, or nil when the ID is unknown.
func (f *Factory) CreateManifestation(templateID string) *Manifestation {
	t, ok := f.templates[templateID]
	if !ok {
		return nil
	}
	m := t.Clone()
	m.CurrentHP = m.MaxHP
	for i := range m.Abilities {
		m.Abilities[i].CurrentCooldown = 0
	}
	return m
}

// Templates returns copies of all templates sorted by ID.
func (f *Factory) Templates() []Manifestation {
	out := make([]Manifestation, 0, len(f.templates))
	for _, t := range f.templates {
		out = append(out, *t.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of templates.
func (f *Factory) Len() int {
	return len(f.templates)
}
