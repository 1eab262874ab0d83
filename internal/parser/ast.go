package parser

import (
	"strings"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
)

// Command represents one line of encounter input
type Command struct {
	Action    *ActionCmd    `parser:"( @@"`
	Surrender *SurrenderCmd `parser:"| @@"`
	Status    *StatusCmd    `parser:"| @@"`
	Log       *LogCmd       `parser:"| @@"`
	Help      *HelpCmd      `parser:"| @@ )"`
}

// ActionCmd is one of the four combat actions
type ActionCmd struct {
	Name string `parser:"@(\"illuminate\"|\"reflect\"|\"endure\"|\"embrace\")"`
}

// Action resolves the parsed keyword to the engine action.
func (a *ActionCmd) Action() engine.Action {
	act, _ := engine.ParseAction(a.Name)
	return act
}

// SurrenderCmd ends the encounter on the player's terms
type SurrenderCmd struct {
	Keyword string `parser:"@\"surrender\""`
}

// StatusCmd prints the current encounter state
type StatusCmd struct {
	Keyword string `parser:"@\"status\""`
}

// LogCmd prints the most recent log entries
type LogCmd struct {
	Keyword string `parser:"@\"log\""`
	Count   *int   `parser:"@Int?"`
}

// HelpCmd provides guidance, optionally for a single command
type HelpCmd struct {
	Keyword string `parser:"@\"help\""`
	Topic   string `parser:"(@Keyword|@Ident)?"`
}

// Name returns the lower-cased verb of the parsed command.
func (c *Command) Name() string {
	switch {
	case c.Action != nil:
		return strings.ToLower(c.Action.Name)
	case c.Surrender != nil:
		return "surrender"
	case c.Status != nil:
		return "status"
	case c.Log != nil:
		return "log"
	case c.Help != nil:
		return "help"
	}
	return ""
}
