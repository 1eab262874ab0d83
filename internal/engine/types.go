// Package engine implements the shadow encounter combat core.
// It provides a deterministic, value-oriented resolution pipeline where every
// operation takes a Session and returns a fresh one, so callers can diff,
// journal or roll back any step.
package engine

import "strings"

// --- Actions and actors ---

// Action identifies a player action. The four combat actions are validated by
// CanPerformAction; Skip and Surrender are turn-order entries only.
type Action string

const (
	ActionIlluminate Action = "ILLUMINATE"
	ActionReflect    Action = "REFLECT"
	ActionEndure     Action = "ENDURE"
	ActionEmbrace    Action = "EMBRACE"

	ActionSkip      Action = "SKIP"
	ActionSurrender Action = "SURRENDER"
)

// Actions returns the four combat actions in display order.
func Actions() []Action {
	return []Action{ActionIlluminate, ActionReflect, ActionEndure, ActionEmbrace}
}

// ParseAction maps a case-insensitive name onto one of the four combat actions.
func ParseAction(name string) (Action, bool) {
	a := Action(strings.ToUpper(strings.TrimSpace(name)))
	switch a {
	case ActionIlluminate, ActionReflect, ActionEndure, ActionEmbrace:
		return a, true
	}
	return "", false
}

// Actor identifies who produced a log entry.
type Actor string

const (
	ActorPlayer Actor = "PLAYER"
	ActorShadow Actor = "SHADOW"
)

// --- Resources and status effects ---

// Resources is the player's pair of combat pools. Both are kept >= 0.
type Resources struct {
	LP int `json:"lp" yaml:"lp"`
	SP int `json:"sp" yaml:"sp"`
}

// StatusEffects holds the time-limited modifiers applied by shadow abilities.
// HealingBlocked and LPGenerationBlocked count turns remaining; the two
// multipliers last for a single round and default to 1.
type StatusEffects struct {
	DamageMultiplier    float64 `json:"damage_multiplier"`
	DamageReduction     float64 `json:"damage_reduction"`
	HealingBlocked      int     `json:"healing_blocked"`
	LPGenerationBlocked int     `json:"lp_generation_blocked"`
	SkipNextTurn        bool    `json:"skip_next_turn"`
	ConsecutiveEndures  int     `json:"consecutive_endures"`
}

// DefaultStatusEffects returns the neutral status block.
func DefaultStatusEffects() StatusEffects {
	return StatusEffects{DamageMultiplier: 1, DamageReduction: 1}
}

// --- Log ---

// LogEntry is one line of the append-only combat log.
type LogEntry struct {
	Turn    int    `json:"turn"`
	Actor   Actor  `json:"actor"`
	Action  string `json:"action"`
	Effect  string `json:"effect"`
	Message string `json:"message"`
}

// IsZero reports whether the entry is the empty no-op entry.
func (e LogEntry) IsZero() bool {
	return e == LogEntry{}
}

// --- Manifestations ---

// VictoryReward is granted by the host when the manifestation is overcome.
type VictoryReward struct {
	LP    int    `json:"lp" yaml:"lp"`
	SP    int    `json:"sp" yaml:"sp"`
	Title string `json:"title" yaml:"title"`
}

// Manifestation is an antagonist instance. 0 <= CurrentHP <= MaxHP.
type Manifestation struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Category         string        `json:"category"`
	Description      string        `json:"description"`
	CurrentHP        int           `json:"current_hp"`
	MaxHP            int           `json:"max_hp"`
	Abilities        []Ability     `json:"abilities"`
	SignatureAbility string        `json:"signature_ability"`
	NarrativeInsight string        `json:"narrative_insight"`
	VictoryReward    VictoryReward `json:"victory_reward"`
}

// Clone returns a deep copy; the ability slice is never shared.
func (m *Manifestation) Clone() *Manifestation {
	if m == nil {
		return nil
	}
	c := *m
	c.Abilities = make([]Ability, len(m.Abilities))
	copy(c.Abilities, m.Abilities)
	return &c
}

// Ability returns the ability with the given ID, or nil.
func (m *Manifestation) Ability(id string) *Ability {
	for i := range m.Abilities {
		if m.Abilities[i].ID == id {
			return &m.Abilities[i]
		}
	}
	return nil
}

// HPPercent returns current HP as a whole percentage of MaxHP.
func (m *Manifestation) HPPercent() int {
	if m.MaxHP <= 0 {
		return 0
	}
	return m.CurrentHP * 100 / m.MaxHP
}

// --- Session ---

// Player carries the values the persistent profile hands to a new encounter.
type Player struct {
	Level     int
	MaxHealth int
	MaxEnergy int
	Health    int
	Energy    int
	Resources Resources
}

// Session is the mutable root of an encounter. It is always handled by value;
// Clone must be used before changing any reference-typed field.
type Session struct {
	Enemy            *Manifestation `json:"enemy"`
	Resources        Resources      `json:"resources"`
	PlayerHealth     int            `json:"player_health"`
	MaxPlayerHealth  int            `json:"max_player_health"`
	PlayerEnergy     int            `json:"player_energy"`
	MaxPlayerEnergy  int            `json:"max_player_energy"`
	ShadowSP         int            `json:"shadow_sp"`
	Turn             int            `json:"turn"`
	IsPlayerTurn     bool           `json:"is_player_turn"`
	StatusEffects    StatusEffects  `json:"status_effects"`
	PreferredActions map[Action]int `json:"preferred_actions"`
	Surrendered      bool           `json:"surrendered"`
	Log              []LogEntry     `json:"log"`
}

// NewSession starts an encounter against enemy on the player's first turn.
// Out-of-range player values are clamped.
func NewSession(enemy *Manifestation, p Player) Session {
	s := Session{
		Enemy:            enemy,
		Resources:        p.Resources,
		PlayerHealth:     p.Health,
		MaxPlayerHealth:  p.MaxHealth,
		PlayerEnergy:     p.Energy,
		MaxPlayerEnergy:  p.MaxEnergy,
		Turn:             1,
		IsPlayerTurn:     true,
		StatusEffects:    DefaultStatusEffects(),
		PreferredActions: make(map[Action]int),
		Log:              make([]LogEntry, 0, 16),
	}
	clampSession(&s)
	return s
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	c := s
	c.Enemy = s.Enemy.Clone()
	c.PreferredActions = make(map[Action]int, len(s.PreferredActions))
	for k, v := range s.PreferredActions {
		c.PreferredActions[k] = v
	}
	c.Log = make([]LogEntry, len(s.Log), len(s.Log)+2)
	copy(c.Log, s.Log)
	return c
}

// appendLog records an entry on the session's log.
func (s *Session) appendLog(e LogEntry) {
	s.Log = append(s.Log, e)
}

// clampSession enforces the numeric invariants on every field a mutator touches.
func clampSession(s *Session) {
	s.Resources.LP = max(0, s.Resources.LP)
	s.Resources.SP = max(0, s.Resources.SP)
	s.MaxPlayerHealth = max(0, s.MaxPlayerHealth)
	s.MaxPlayerEnergy = max(0, s.MaxPlayerEnergy)
	s.PlayerHealth = clampInt(s.PlayerHealth, 0, s.MaxPlayerHealth)
	s.PlayerEnergy = clampInt(s.PlayerEnergy, 0, s.MaxPlayerEnergy)
	s.ShadowSP = clampInt(s.ShadowSP, 0, MaxShadowSP)
	s.StatusEffects.HealingBlocked = max(0, s.StatusEffects.HealingBlocked)
	s.StatusEffects.LPGenerationBlocked = max(0, s.StatusEffects.LPGenerationBlocked)
	if s.Enemy != nil {
		s.Enemy.MaxHP = max(0, s.Enemy.MaxHP)
		s.Enemy.CurrentHP = clampInt(s.Enemy.CurrentHP, 0, s.Enemy.MaxHP)
		for i := range s.Enemy.Abilities {
			a := &s.Enemy.Abilities[i]
			a.CurrentCooldown = clampInt(a.CurrentCooldown, 0, max(0, a.Cooldown))
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
