package engine

import "fmt"

// Rejection reasons returned by CanPerformAction.
const (
	ReasonNotEnoughLP     = "Not enough Light Points"
	ReasonNotEnoughSP     = "Not enough Shadow Points"
	ReasonNotEnoughEnergy = "Not enough Energy"
	ReasonUnknownAction   = "Unknown action"
)

// ActionContext carries the external configuration validation depends on.
type ActionContext struct {
	EndureCost int
}

// ValidationResult is the structured outcome of CanPerformAction.
type ValidationResult struct {
	CanPerform bool   `json:"can_perform"`
	Reason     string `json:"reason,omitempty"`
}

// ActionOptions are the external inputs ExecuteAction consumes.
// Rand is required; Reflect rolls with it.
type ActionOptions struct {
	PlayerLevel int
	EndureCost  int
	Rand        Rand
}

// ExecutionResult is what a resolved action or ability hands back.
type ExecutionResult struct {
	Session    Session
	LogEntry   LogEntry
	Damage     int
	HealthHeal int
	EnergyCost int
}

// CanPerformAction checks the resource requirement of an action. It never
// mutates the session.
func CanPerformAction(action Action, s Session, ctx ActionContext) ValidationResult {
	switch action {
	case ActionIlluminate:
		if s.Resources.LP < IlluminateLPCost {
			return ValidationResult{Reason: ReasonNotEnoughLP}
		}
	case ActionReflect:
		if s.Resources.SP < ReflectSPCost {
			return ValidationResult{Reason: ReasonNotEnoughSP}
		}
	case ActionEndure:
		if s.PlayerEnergy < max(0, ctx.EndureCost) {
			return ValidationResult{Reason: ReasonNotEnoughEnergy}
		}
	case ActionEmbrace:
		if s.Resources.SP < EmbraceSPCost {
			return ValidationResult{Reason: ReasonNotEnoughSP}
		}
	default:
		return ValidationResult{Reason: ReasonUnknownAction}
	}
	return ValidationResult{CanPerform: true}
}

// ExecuteAction resolves a player action on a copy of s. Callers are expected
// to have validated the action first; every mutation still clamps so an
// unvalidated call cannot push a pool below zero. Unknown actions return an
// unchanged copy and an empty log entry.
func ExecuteAction(action Action, s Session, opts ActionOptions) ExecutionResult {
	next := s.Clone()
	res := ExecutionResult{}
	level := effectiveLevel(opts.PlayerLevel)
	st := &next.StatusEffects

	var entry LogEntry
	switch action {
	case ActionIlluminate:
		next.Resources.LP -= IlluminateLPCost
		res.Damage = IlluminateDamage(level)
		damageEnemy(&next, res.Damage)
		entry = playerEntry(next.Turn, action,
			fmt.Sprintf("-%d LP, %d damage", IlluminateLPCost, res.Damage),
			"Your light pierces the shadow, revealing what it hides.")

	case ActionReflect:
		next.Resources.SP -= ReflectSPCost
		gained := lpGain(st, ReflectLPGain)
		next.Resources.LP += gained
		heal := rollReflectHeal(opts.Rand, level)
		if st.HealingBlocked > 0 {
			heal = 0
		}
		before := next.PlayerHealth
		next.PlayerHealth = min(next.MaxPlayerHealth, next.PlayerHealth+heal)
		res.HealthHeal = next.PlayerHealth - before
		entry = playerEntry(next.Turn, action,
			fmt.Sprintf("-%d SP, +%d LP, +%d health", ReflectSPCost, gained, res.HealthHeal),
			reflectMessage(st.HealingBlocked > 0))

	case ActionEndure:
		cost := max(0, opts.EndureCost)
		gained := lpGain(st, EndureLPGain)
		next.Resources.LP += gained
		before := next.PlayerEnergy
		next.PlayerEnergy = max(0, next.PlayerEnergy-cost)
		res.EnergyCost = before - next.PlayerEnergy
		entry = playerEntry(next.Turn, action,
			fmt.Sprintf("+%d LP, -%d energy", gained, res.EnergyCost),
			"You stay with the discomfort and let it pass through you.")

	case ActionEmbrace:
		spent := next.Resources.SP
		res.Damage = EmbraceDamage(spent)
		next.Resources.SP = 0
		damageEnemy(&next, res.Damage)
		entry = playerEntry(next.Turn, action,
			fmt.Sprintf("-%d SP, %d damage", spent, res.Damage),
			"You open your arms to the shadow and it loses its grip.")

	default:
		res.Session = next
		return res
	}

	if action == ActionEndure {
		st.ConsecutiveEndures++
	} else {
		st.ConsecutiveEndures = 0
	}
	next.PreferredActions[action]++
	clampSession(&next)
	next.appendLog(entry)

	res.Session = next
	res.LogEntry = entry
	return res
}

// ConsumeSkippedTurn clears a pending forced skip. It reports false, with an
// unchanged copy, when no skip is pending.
func ConsumeSkippedTurn(s Session) (ExecutionResult, bool) {
	next := s.Clone()
	if !next.StatusEffects.SkipNextTurn {
		return ExecutionResult{Session: next}, false
	}
	next.StatusEffects.SkipNextTurn = false
	next.StatusEffects.ConsecutiveEndures = 0
	entry := playerEntry(next.Turn, ActionSkip, "turn skipped",
		"The weight is too much this turn. You can only breathe.")
	next.appendLog(entry)
	return ExecutionResult{Session: next, LogEntry: entry}, true
}

// Surrender ends the encounter on the player's terms.
func Surrender(s Session) ExecutionResult {
	next := s.Clone()
	next.Surrendered = true
	next.IsPlayerTurn = false
	entry := playerEntry(next.Turn, ActionSurrender, "encounter abandoned",
		"You step back. The shadow will still be here when you are ready.")
	next.appendLog(entry)
	return ExecutionResult{Session: next, LogEntry: entry}
}

func playerEntry(turn int, action Action, effect, message string) LogEntry {
	return LogEntry{Turn: turn, Actor: ActorPlayer, Action: string(action), Effect: effect, Message: message}
}

// lpGain returns amount, or 0 while LP generation is blocked.
func lpGain(st *StatusEffects, amount int) int {
	if st.LPGenerationBlocked > 0 {
		return 0
	}
	return amount
}

func damageEnemy(s *Session, damage int) {
	if s.Enemy == nil {
		return
	}
	s.Enemy.CurrentHP = max(0, s.Enemy.CurrentHP-damage)
}

func reflectMessage(blocked bool) string {
	if blocked {
		return "You look inward, but the wound will not close yet."
	}
	return "You look inward and find a little strength."
}
