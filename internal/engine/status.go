package engine

// ProcessStatusEffects advances per-round timers on a copy of s: the two
// blocking countdowns and every ability cooldown tick down (floored at 0) and
// the single-round multipliers reset to 1. SkipNextTurn and
// ConsecutiveEndures belong to the action resolver and are left alone.
func ProcessStatusEffects(s Session) Session {
	next := s.Clone()
	st := &next.StatusEffects
	st.HealingBlocked = max(0, st.HealingBlocked-1)
	st.LPGenerationBlocked = max(0, st.LPGenerationBlocked-1)
	st.DamageMultiplier = 1
	st.DamageReduction = 1
	if next.Enemy != nil {
		for i := range next.Enemy.Abilities {
			a := &next.Enemy.Abilities[i]
			a.CurrentCooldown = max(0, a.CurrentCooldown-1)
		}
	}
	return next
}
