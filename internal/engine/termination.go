package engine

import "fmt"

// TerminationResult reports whether, and how, an encounter ended.
type TerminationResult struct {
	IsEnded bool   `json:"is_ended"`
	Victory bool   `json:"victory"`
	Reason  string `json:"reason,omitempty"`
}

// CheckCombatEnd evaluates the end conditions in a fixed order: the enemy's
// defeat wins over the player's, and both win over a surrender.
func CheckCombatEnd(s Session) TerminationResult {
	if s.Enemy == nil {
		return TerminationResult{}
	}
	if s.Enemy.CurrentHP <= 0 {
		return TerminationResult{
			IsEnded: true,
			Victory: true,
			Reason:  fmt.Sprintf("You have overcome %s.", s.Enemy.Name),
		}
	}
	if s.PlayerHealth <= 0 {
		return TerminationResult{
			IsEnded: true,
			Reason:  "You need to retreat and regroup before facing this shadow again.",
		}
	}
	if s.Surrendered {
		return TerminationResult{
			IsEnded: true,
			Reason:  "You chose to step back from the encounter.",
		}
	}
	return TerminationResult{}
}
