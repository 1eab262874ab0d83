package rules

import (
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
)

var intVariables = []string{
	"lp",
	"sp",
	"health",
	"max_health",
	"energy",
	"max_energy",
	"turn",
	"shadow_sp",
	"enemy_hp",
	"enemy_max_hp",
	"enemy_hp_percent",
	"healing_blocked",
	"lp_generation_blocked",
	"consecutive_endures",
}

// ContextFromSession flattens a session into the CEL activation. Every
// declared variable is always present so rules never hit a missing key.
func ContextFromSession(s engine.Session) map[string]any {
	st := s.StatusEffects
	ctx := map[string]any{
		"lp":                    int64(s.Resources.LP),
		"sp":                    int64(s.Resources.SP),
		"health":                int64(s.PlayerHealth),
		"max_health":            int64(s.MaxPlayerHealth),
		"energy":                int64(s.PlayerEnergy),
		"max_energy":            int64(s.MaxPlayerEnergy),
		"turn":                  int64(s.Turn),
		"shadow_sp":             int64(s.ShadowSP),
		"enemy_hp":              int64(0),
		"enemy_max_hp":          int64(0),
		"enemy_hp_percent":      int64(0),
		"healing_blocked":       int64(st.HealingBlocked),
		"lp_generation_blocked": int64(st.LPGenerationBlocked),
		"consecutive_endures":   int64(st.ConsecutiveEndures),
		"skip_next_turn":        st.SkipNextTurn,
		"enemy_id":              "",
		"enemy_category":        "",
	}
	if e := s.Enemy; e != nil {
		ctx["enemy_hp"] = int64(e.CurrentHP)
		ctx["enemy_max_hp"] = int64(e.MaxHP)
		ctx["enemy_hp_percent"] = int64(e.HPPercent())
		ctx["enemy_id"] = e.ID
		ctx["enemy_category"] = e.Category
	}
	return ctx
}
