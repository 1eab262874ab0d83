package engine

import (
	"fmt"
	"strings"
)

// Summary is the advisory projection of a combat log.
type Summary struct {
	Turns         int            `json:"turns"`
	PlayerActions map[string]int `json:"player_actions"`
	AbilitiesUsed map[string]int `json:"abilities_used"`
	DamageDealt   int            `json:"damage_dealt"`
	DamageTaken   int            `json:"damage_taken"`
	Healing       int            `json:"healing"`
	SkippedTurns  int            `json:"skipped_turns"`
	Surrendered   bool           `json:"surrendered"`
}

// Projector folds log entries into a Summary.
type Projector struct{}

// NewProjector creates a standard projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Build folds the entries in order. Entries it cannot read numbers from are
// counted but contribute no amounts.
func (p *Projector) Build(entries []LogEntry) Summary {
	sum := Summary{
		PlayerActions: make(map[string]int),
		AbilitiesUsed: make(map[string]int),
	}
	for _, e := range entries {
		sum.Turns = max(sum.Turns, e.Turn)
		switch e.Actor {
		case ActorPlayer:
			switch Action(e.Action) {
			case ActionSkip:
				sum.SkippedTurns++
				continue
			case ActionSurrender:
				sum.Surrendered = true
				continue
			}
			sum.PlayerActions[e.Action]++
			sum.DamageDealt += effectAmount(e.Effect, "damage")
			sum.Healing += effectAmount(e.Effect, "health")
		case ActorShadow:
			if e.Action == LabelShadowStrike || e.Action == LabelDesperateStrike {
				sum.DamageTaken += effectAmount(e.Effect, "damage")
				continue
			}
			sum.AbilitiesUsed[e.Action]++
		}
	}
	return sum
}

// effectAmount extracts the number preceding unit in an effect summary such
// as "-2 LP, 10 damage".
func effectAmount(effect, unit string) int {
	for _, part := range strings.Split(effect, ",") {
		part = strings.TrimSpace(part)
		if !strings.HasSuffix(part, " "+unit) {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(strings.TrimPrefix(part, "+"), "%d", &n); err == nil {
			return n
		}
	}
	return 0
}
