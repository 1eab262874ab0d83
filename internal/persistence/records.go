package persistence

import (
	"time"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
)

// Record type discriminators.
const (
	TypeEncounterStarted = "EncounterStarted"
	TypeLogEntry         = "LogEntry"
	TypeEncounterEnded   = "EncounterEnded"
)

// Record is any line of an encounter journal.
type Record interface {
	Type() string
}

// EncounterStartedRecord opens a journal.
type EncounterStartedRecord struct {
	EncounterID     string        `json:"encounter_id"`
	ManifestationID string        `json:"manifestation_id"`
	Name            string        `json:"name"`
	Seed            int64         `json:"seed"`
	Player          engine.Player `json:"player"`
	StartedAt       time.Time     `json:"started_at"`
}

func (*EncounterStartedRecord) Type() string { return TypeEncounterStarted }

// LogEntryRecord journals one combat log entry.
type LogEntryRecord struct {
	engine.LogEntry
}

func (*LogEntryRecord) Type() string { return TypeLogEntry }

// EncounterEndedRecord closes a journal.
type EncounterEndedRecord struct {
	Victory bool                  `json:"victory"`
	Reason  string                `json:"reason"`
	Turns   int                   `json:"turns"`
	Reward  *engine.VictoryReward `json:"reward,omitempty"`
	EndedAt time.Time             `json:"ended_at"`
}

func (*EncounterEndedRecord) Type() string { return TypeEncounterEnded }

// Entries extracts the combat log from a journal in order.
func Entries(records []Record) []engine.LogEntry {
	var out []engine.LogEntry
	for _, r := range records {
		if e, ok := r.(*LogEntryRecord); ok {
			out = append(out, e.LogEntry)
		}
	}
	return out
}
