package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/parser"
)

const defaultLogCount = 5

// Execute takes a raw command string from a UI client, resolves it and
// returns the text to show the player.
func (e *Encounter) Execute(ctx context.Context, input string) (string, error) {
	cmd, err := parser.Parse(input)
	if err != nil {
		return "", err
	}

	switch {
	case cmd.Action != nil:
		out, err := e.Act(ctx, cmd.Action.Action())
		if err != nil {
			return "", err
		}
		return FormatOutcome(out), nil

	case cmd.Surrender != nil:
		out, err := e.Surrender(ctx)
		if err != nil {
			return "", err
		}
		return FormatOutcome(out), nil

	case cmd.Status != nil:
		return FormatStatus(e.state, e.EndureCost()), nil

	case cmd.Log != nil:
		n := defaultLogCount
		if cmd.Log.Count != nil {
			n = *cmd.Log.Count
		}
		return FormatLog(e.state.Log, n), nil

	case cmd.Help != nil:
		return Help(cmd.Help.Topic), nil
	}
	return "", parser.MapError(input, nil)
}

// FormatEntry renders one log entry as a single line.
func FormatEntry(le engine.LogEntry) string {
	line := fmt.Sprintf("[T%d] %s %s: %s", le.Turn, le.Actor, le.Action, le.Effect)
	if le.Message != "" {
		line += " - " + le.Message
	}
	return line
}

// FormatOutcome renders the entries and result of a command.
func FormatOutcome(out Outcome) string {
	if out.Rejected != "" {
		return fmt.Sprintf("You cannot %s: %s.", strings.ToLower(string(out.Action)), out.Rejected)
	}
	lines := make([]string, 0, len(out.Entries)+1)
	for _, le := range out.Entries {
		lines = append(lines, FormatEntry(le))
	}
	if out.Termination.IsEnded {
		lines = append(lines, out.Termination.Reason)
	}
	return strings.Join(lines, "\n")
}

// FormatLog renders the last n entries of a log.
func FormatLog(log []engine.LogEntry, n int) string {
	if len(log) == 0 {
		return "Nothing has happened yet."
	}
	if n <= 0 || n > len(log) {
		n = len(log)
	}
	lines := make([]string, 0, n)
	for _, le := range log[len(log)-n:] {
		lines = append(lines, FormatEntry(le))
	}
	return strings.Join(lines, "\n")
}

// FormatStatus renders the encounter state box.
func FormatStatus(s engine.Session, endureCost int) string {
	var b strings.Builder
	if m := s.Enemy; m != nil {
		fmt.Fprintf(&b, "%s (%s)  HP %d/%d\n", m.Name, m.Category, m.CurrentHP, m.MaxHP)
	}
	fmt.Fprintf(&b, "Health %d/%d  Energy %d/%d  LP %d  SP %d\n",
		s.PlayerHealth, s.MaxPlayerHealth, s.PlayerEnergy, s.MaxPlayerEnergy,
		s.Resources.LP, s.Resources.SP)
	fmt.Fprintf(&b, "Turn %d  Shadow SP %d/%d", s.Turn, s.ShadowSP, engine.MaxShadowSP)

	if st := statusLine(s.StatusEffects); st != "" {
		b.WriteString("\nStatus: " + st)
	}
	if s.Enemy != nil && len(s.Enemy.Abilities) > 0 {
		parts := make([]string, 0, len(s.Enemy.Abilities))
		for _, a := range s.Enemy.Abilities {
			if a.Ready() {
				parts = append(parts, a.Name+" (ready)")
			} else {
				parts = append(parts, fmt.Sprintf("%s (%d)", a.Name, a.CurrentCooldown))
			}
		}
		b.WriteString("\nShadow abilities: " + strings.Join(parts, ", "))
	}

	var avail []string
	for _, a := range engine.Actions() {
		v := engine.CanPerformAction(a, s, engine.ActionContext{EndureCost: endureCost})
		if v.CanPerform {
			avail = append(avail, strings.ToLower(string(a)))
		}
	}
	b.WriteString("\nAvailable: " + strings.Join(avail, ", "))
	return b.String()
}

func statusLine(st engine.StatusEffects) string {
	var parts []string
	if st.HealingBlocked > 0 {
		parts = append(parts, fmt.Sprintf("healing blocked %d", st.HealingBlocked))
	}
	if st.LPGenerationBlocked > 0 {
		parts = append(parts, fmt.Sprintf("light blocked %d", st.LPGenerationBlocked))
	}
	if st.SkipNextTurn {
		parts = append(parts, "next turn skipped")
	}
	if st.ConsecutiveEndures > 1 {
		parts = append(parts, fmt.Sprintf("enduring x%d", st.ConsecutiveEndures))
	}
	return strings.Join(parts, ", ")
}

// Help lists the commands, or explains one.
func Help(topic string) string {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		lines := []string{"Commands:"}
		for _, c := range parser.Commands() {
			u, _ := parser.Usage(c)
			lines = append(lines, "  "+u)
		}
		return strings.Join(lines, "\n")
	}
	u, ok := parser.Usage(topic)
	if !ok {
		return fmt.Sprintf("There is no command named %s.", topic)
	}
	if a, ok := engine.ParseAction(topic); ok {
		c := engine.ActionCost(a, 0)
		return fmt.Sprintf("%s - %s (costs %d LP, %d SP)", u, engine.ActionDescription(a), c.LP, c.SP)
	}
	return u
}
