package data

import "github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"

// Catalog is one YAML document of abilities and the manifestations that use them.
type Catalog struct {
	Abilities      []AbilityDef       `yaml:"abilities"`
	Manifestations []ManifestationDef `yaml:"manifestations"`
}

// EffectDef mirrors engine.Effect in the data layer.
type EffectDef struct {
	Kind       string  `yaml:"kind"`
	Amount     int     `yaml:"amount"`
	Duration   int     `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"`
}

// AbilityDef is an ability record referenced by manifestations by ID.
type AbilityDef struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Cooldown    int       `yaml:"cooldown"`
	Effect      EffectDef `yaml:"effect"`
	Description string    `yaml:"description"`
	Message     string    `yaml:"message"`
}

// Reward is granted on victory.
type Reward struct {
	LP    int    `yaml:"lp"`
	SP    int    `yaml:"sp"`
	Title string `yaml:"title"`
}

// ManifestationDef is a manifestation template.
type ManifestationDef struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Category         string   `yaml:"category"`
	Description      string   `yaml:"description"`
	MaxHP            int      `yaml:"max_hp"`
	Abilities        []string `yaml:"abilities"`
	SignatureAbility string   `yaml:"signature_ability"`
	NarrativeInsight string   `yaml:"narrative_insight"`
	VictoryReward    Reward   `yaml:"victory_reward"`
}

// ToAbility converts the record into its engine form.
func (a AbilityDef) ToAbility() engine.Ability {
	return engine.Ability{
		ID:       a.ID,
		Name:     a.Name,
		Cooldown: a.Cooldown,
		Effect: engine.Effect{
			Kind:       engine.EffectKind(a.Effect.Kind),
			Amount:     a.Effect.Amount,
			Duration:   a.Effect.Duration,
			Multiplier: a.Effect.Multiplier,
		},
		Description: a.Description,
		Message:     a.Message,
	}
}

// merge overlays other onto c. Records with an existing ID replace it in place.
func (c *Catalog) merge(other Catalog) {
	for _, a := range other.Abilities {
		if i := indexAbility(c.Abilities, a.ID); i >= 0 {
			c.Abilities[i] = a
		} else {
			c.Abilities = append(c.Abilities, a)
		}
	}
	for _, m := range other.Manifestations {
		if i := indexManifestation(c.Manifestations, m.ID); i >= 0 {
			c.Manifestations[i] = m
		} else {
			c.Manifestations = append(c.Manifestations, m)
		}
	}
}

func indexAbility(defs []AbilityDef, id string) int {
	for i, d := range defs {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func indexManifestation(defs []ManifestationDef, id string) int {
	for i, d := range defs {
		if d.ID == id {
			return i
		}
	}
	return -1
}
