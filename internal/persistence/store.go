package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// RecordWrapper facilitates serialization of polymorphic journal records
type RecordWrapper struct {
	Type   string          `json:"type"`
	Record json.RawMessage `json:"data"`
}

// Store handles append-only storing of an encounter journal.
type Store struct {
	file *os.File
	path string
}

// NewStore opens or creates the file at path for appending lines
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	return &Store{file: file, path: path}, nil
}

// Path returns the journal file location.
func (s *Store) Path() string {
	return s.path
}

// Append marshals a record to the jsonl log and syncs it to disk.
func (s *Store) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", rec.Type(), err)
	}

	wrapperData, err := json.Marshal(RecordWrapper{
		Type:   rec.Type(),
		Record: data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal wrapper: %w", err)
	}

	if _, err := s.file.Write(append(wrapperData, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

// Load replays all jsonl lines and unpacks them to records.
func (s *Store) Load() ([]Record, error) {
	var records []Record

	// Reset file pointer to beginning
	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(s.file)
	line := 0
	for scanner.Scan() {
		line++
		var wrapper RecordWrapper
		if err := json.Unmarshal(scanner.Bytes(), &wrapper); err != nil {
			return nil, fmt.Errorf("line %d: failed to decode wrapper: %w", line, err)
		}

		var rec Record
		switch wrapper.Type {
		case TypeEncounterStarted:
			rec = &EncounterStartedRecord{}
		case TypeLogEntry:
			rec = &LogEntryRecord{}
		case TypeEncounterEnded:
			rec = &EncounterEndedRecord{}
		default:
			return nil, fmt.Errorf("line %d: unknown record type in journal: %s", line, wrapper.Type)
		}

		if err := json.Unmarshal(wrapper.Record, rec); err != nil {
			return nil, fmt.Errorf("line %d: failed to parse %s: %w", line, wrapper.Type, err)
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Close handles safe shutdown.
func (s *Store) Close() error {
	return s.file.Close()
}
