package engine

import "fmt"

// Basic attack labels.
const (
	LabelShadowStrike    = "Shadow Strike"
	LabelDesperateStrike = "Desperate Strike"
)

// VulnerabilityFunc reports whether the player is vulnerable enough for the
// antagonist to prefer its signature ability.
type VulnerabilityFunc func(s Session) bool

// Thresholds is the default vulnerability rule: the player is vulnerable when
// LP drops below LowLP or health drops below LowHealthPercent of max.
type Thresholds struct {
	LowLP            int
	LowHealthPercent int
}

// DefaultThresholds returns the stock vulnerability thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{LowLP: 3, LowHealthPercent: 30}
}

// Vulnerable implements VulnerabilityFunc.
func (t Thresholds) Vulnerable(s Session) bool {
	if s.Resources.LP < t.LowLP {
		return true
	}
	return s.PlayerHealth*100 < s.MaxPlayerHealth*t.LowHealthPercent
}

// DecisionPolicy configures DecideAction. A nil Vulnerable uses DefaultThresholds.
type DecisionPolicy struct {
	Vulnerable VulnerabilityFunc
}

func (p DecisionPolicy) vulnerable(s Session) bool {
	if p.Vulnerable == nil {
		return DefaultThresholds().Vulnerable(s)
	}
	return p.Vulnerable(s)
}

// DecideAction picks the ability the antagonist uses this turn, or nil when
// every ability is cooling down. Selection is deterministic: the signature
// ability when the player is vulnerable and it is ready, otherwise the first
// ready ability in declaration order.
func DecideAction(m *Manifestation, s Session, policy DecisionPolicy) *Ability {
	if m == nil {
		return nil
	}
	var available []Ability
	for _, a := range m.Abilities {
		if a.Ready() {
			available = append(available, a)
		}
	}
	if len(available) == 0 {
		return nil
	}
	if m.SignatureAbility != "" && policy.vulnerable(s) {
		for i := range available {
			if available[i].ID == m.SignatureAbility {
				return &available[i]
			}
		}
	}
	return &available[0]
}

// ExecuteAbility applies an ability's effect to a copy of s and puts that
// ability on cooldown on the copy's enemy.
func ExecuteAbility(a Ability, s Session) ExecutionResult {
	next := s.Clone()
	a.Effect.applyTo(&next)
	if next.Enemy != nil {
		if own := next.Enemy.Ability(a.ID); own != nil {
			own.CurrentCooldown = own.Cooldown
		}
	}
	msg := a.Message
	if msg == "" {
		msg = a.Description
	}
	entry := LogEntry{
		Turn:    next.Turn,
		Actor:   ActorShadow,
		Action:  a.Name,
		Effect:  a.Effect.Summary(),
		Message: msg,
	}
	next.appendLog(entry)
	return ExecutionResult{Session: next, LogEntry: entry}
}

// AntagonistOptions configures RunAntagonistTurn.
type AntagonistOptions struct {
	Policy DecisionPolicy
}

// AntagonistResult is the outcome of a full antagonist turn.
type AntagonistResult struct {
	Session  Session
	Damage   int
	Label    string
	LogEntry LogEntry
	// Ability is the special ability used before the attack, if any.
	Ability *Ability
}

// RunAntagonistTurn resolves the antagonist's turn: an optional ready ability
// chosen by DecideAction, then the basic attack. The attack's intensity only
// depends on the antagonist's HP. When the attack drops the player to 0
// health control stays with the antagonist and the turn does not advance.
// A missing or defeated enemy passes without acting.
func RunAntagonistTurn(s Session, opts AntagonistOptions) AntagonistResult {
	next := s.Clone()
	if next.Enemy == nil || next.Enemy.CurrentHP <= 0 {
		return AntagonistResult{Session: next}
	}
	next.IsPlayerTurn = false

	res := AntagonistResult{}
	if a := DecideAction(next.Enemy, next, opts.Policy); a != nil {
		used := *a
		next = ExecuteAbility(used, next).Session
		res.Ability = &used
	}

	base, label := BaseShadowDamage, LabelShadowStrike
	if next.Enemy.HPPercent() <= DesperateHPPercent {
		base, label = BaseShadowDamage+DesperateBonusDamage, LabelDesperateStrike
	}
	st := next.StatusEffects
	damage := shadowAttackDamage(base, next.Resources.LP, st.DamageReduction, st.DamageMultiplier)
	next.PlayerHealth = max(0, next.PlayerHealth-damage)
	next.ShadowSP = min(MaxShadowSP, next.ShadowSP+ShadowSPGain)

	entry := LogEntry{
		Turn:    next.Turn,
		Actor:   ActorShadow,
		Action:  label,
		Effect:  fmt.Sprintf("%d damage", damage),
		Message: attackMessage(next.Enemy, label),
	}
	next.appendLog(entry)

	if next.PlayerHealth > 0 {
		next.Turn++
		next.IsPlayerTurn = true
	}
	clampSession(&next)

	res.Session = next
	res.Damage = damage
	res.Label = label
	res.LogEntry = entry
	return res
}

func attackMessage(m *Manifestation, label string) string {
	if label == LabelDesperateStrike {
		return fmt.Sprintf("%s lashes out desperately as it begins to fade.", m.Name)
	}
	return fmt.Sprintf("%s presses in on you.", m.Name)
}
