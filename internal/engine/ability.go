package engine

import (
	"fmt"
	"sort"
)

// EffectKind tags the transform an ability applies to the session.
type EffectKind string

const (
	// EffectDrainBlock drains LP and blocks LP generation for Duration turns.
	EffectDrainBlock EffectKind = "drain_block"
	// EffectDrain drains LP.
	EffectDrain EffectKind = "drain"
	// EffectVulnerability sets the damage multiplier for the current round.
	EffectVulnerability EffectKind = "vulnerability"
	// EffectHealingBlock blocks healing for Duration turns.
	EffectHealingBlock EffectKind = "healing_block"
	// EffectSkipTurn forces the player to skip their next turn.
	EffectSkipTurn EffectKind = "skip_turn"
	// EffectConvert converts up to Amount LP into SP.
	EffectConvert EffectKind = "convert"
	// EffectGuardBreak scales the player's defense for the round and grants Amount SP.
	EffectGuardBreak EffectKind = "guard_break"
)

var effectKinds = map[EffectKind]bool{
	EffectDrainBlock:    true,
	EffectDrain:         true,
	EffectVulnerability: true,
	EffectHealingBlock:  true,
	EffectSkipTurn:      true,
	EffectConvert:       true,
	EffectGuardBreak:    true,
}

// Valid reports whether k is a known effect kind.
func (k EffectKind) Valid() bool {
	return effectKinds[k]
}

// Effect is the serialisable description of what an ability does.
type Effect struct {
	Kind       EffectKind `json:"kind" yaml:"kind"`
	Amount     int        `json:"amount,omitempty" yaml:"amount"`
	Duration   int        `json:"duration,omitempty" yaml:"duration"`
	Multiplier float64    `json:"multiplier,omitempty" yaml:"multiplier"`
}

// Validate checks the parameters an effect kind depends on.
func (e Effect) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
	if e.Amount < 0 || e.Duration < 0 || e.Multiplier < 0 {
		return fmt.Errorf("effect %s: amount, duration and multiplier must be non-negative", e.Kind)
	}
	switch e.Kind {
	case EffectDrainBlock:
		if e.Amount == 0 || e.Duration == 0 {
			return fmt.Errorf("effect %s: requires amount and duration", e.Kind)
		}
	case EffectDrain, EffectConvert:
		if e.Amount == 0 {
			return fmt.Errorf("effect %s: requires amount", e.Kind)
		}
	case EffectHealingBlock:
		if e.Duration == 0 {
			return fmt.Errorf("effect %s: requires duration", e.Kind)
		}
	case EffectVulnerability, EffectGuardBreak:
		if e.Multiplier == 0 {
			return fmt.Errorf("effect %s: requires multiplier", e.Kind)
		}
	}
	return nil
}

// Apply returns a copy of s with the effect applied.
func (e Effect) Apply(s Session) Session {
	next := s.Clone()
	e.applyTo(&next)
	return next
}

// applyTo mutates s in place. Only Resources and StatusEffects are touched.
func (e Effect) applyTo(s *Session) {
	st := &s.StatusEffects
	switch e.Kind {
	case EffectDrainBlock:
		s.Resources.LP -= e.Amount
		st.LPGenerationBlocked = max(st.LPGenerationBlocked, e.Duration)
	case EffectDrain:
		s.Resources.LP -= e.Amount
	case EffectVulnerability:
		st.DamageMultiplier = e.Multiplier
	case EffectHealingBlock:
		st.HealingBlocked = max(st.HealingBlocked, e.Duration)
	case EffectSkipTurn:
		st.SkipNextTurn = true
	case EffectConvert:
		moved := min(max(0, s.Resources.LP), e.Amount)
		s.Resources.LP -= moved
		s.Resources.SP += moved
	case EffectGuardBreak:
		st.DamageReduction = e.Multiplier
		s.Resources.SP += e.Amount
	}
	clampSession(s)
}

// Summary renders the numeric effect for a log entry.
func (e Effect) Summary() string {
	switch e.Kind {
	case EffectDrainBlock:
		return fmt.Sprintf("-%d LP, LP generation blocked %d turns", e.Amount, e.Duration)
	case EffectDrain:
		return fmt.Sprintf("-%d LP", e.Amount)
	case EffectVulnerability:
		return fmt.Sprintf("damage taken x%.2g this round", e.Multiplier)
	case EffectHealingBlock:
		return fmt.Sprintf("healing blocked %d turns", e.Duration)
	case EffectSkipTurn:
		return "next turn skipped"
	case EffectConvert:
		return fmt.Sprintf("up to %d LP converted to SP", e.Amount)
	case EffectGuardBreak:
		return fmt.Sprintf("defense x%.2g this round, +%d SP", e.Multiplier, e.Amount)
	}
	return ""
}

// Ability is a cooldown-gated special action of a manifestation.
// 0 <= CurrentCooldown <= Cooldown.
type Ability struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Cooldown        int    `json:"cooldown" yaml:"cooldown"`
	CurrentCooldown int    `json:"current_cooldown" yaml:"-"`
	Effect          Effect `json:"effect" yaml:"effect"`
	Description     string `json:"description" yaml:"description"`
	Message         string `json:"message,omitempty" yaml:"message"`
}

// Ready reports whether the ability is off cooldown.
func (a Ability) Ready() bool {
	return a.CurrentCooldown == 0
}

// AbilityRegistry is the catalog of abilities manifestations can reference.
type AbilityRegistry struct {
	abilities map[string]Ability
}

// NewAbilityRegistry creates an empty registry.
func NewAbilityRegistry() *AbilityRegistry {
	return &AbilityRegistry{abilities: make(map[string]Ability)}
}

// Register validates and adds an ability. IDs must be unique.
func (r *AbilityRegistry) Register(a Ability) error {
	if a.ID == "" {
		return fmt.Errorf("ability missing id")
	}
	if _, exists := r.abilities[a.ID]; exists {
		return fmt.Errorf("duplicate ability id %q", a.ID)
	}
	if a.Cooldown < 0 {
		return fmt.Errorf("ability %q: cooldown must be non-negative", a.ID)
	}
	if err := a.Effect.Validate(); err != nil {
		return fmt.Errorf("ability %q: %w", a.ID, err)
	}
	a.CurrentCooldown = 0
	r.abilities[a.ID] = a
	return nil
}

// Lookup returns a fresh, off-cooldown copy of the ability.
func (r *AbilityRegistry) Lookup(id string) (Ability, bool) {
	a, ok := r.abilities[id]
	return a, ok
}

// IDs returns the registered ability IDs in sorted order.
func (r *AbilityRegistry) IDs() []string {
	ids := make([]string, 0, len(r.abilities))
	for id := range r.abilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered abilities.
func (r *AbilityRegistry) Len() int {
	return len(r.abilities)
}
