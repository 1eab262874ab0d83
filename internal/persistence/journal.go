package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const journalExt = ".jsonl"

// JournalManager organizes encounter journals, one file per encounter, in a
// single directory.
type JournalManager struct {
	Dir string
}

// NewJournalManager returns a manager rooted at dir.
func NewJournalManager(dir string) *JournalManager {
	return &JournalManager{Dir: dir}
}

// Path returns the journal location for an encounter ID.
func (j *JournalManager) Path(encounterID string) string {
	return filepath.Join(j.Dir, encounterID+journalExt)
}

// Create makes the journal directory if needed and opens a new journal.
func (j *JournalManager) Create(encounterID string) (*Store, error) {
	if encounterID == "" || strings.ContainsAny(encounterID, `/\`) {
		return nil, fmt.Errorf("invalid encounter id %q", encounterID)
	}
	if err := os.MkdirAll(j.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", j.Dir, err)
	}
	path := j.Path(encounterID)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("journal already exists: %s", path)
	}
	return NewStore(path)
}

// Open verifies a journal exists and opens it. ref is either a path or an
// encounter ID inside Dir.
func (j *JournalManager) Open(ref string) (*Store, error) {
	path := ref
	if !strings.HasSuffix(ref, journalExt) {
		path = j.Path(ref)
	}
	if stat, err := os.Stat(path); err != nil || stat.IsDir() {
		return nil, fmt.Errorf("journal not found: %s", path)
	}
	return NewStore(path)
}

// List returns the encounter IDs with a journal in Dir, sorted.
func (j *JournalManager) List() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(j.Dir, "*"+journalExt))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, strings.TrimSuffix(filepath.Base(f), journalExt))
	}
	sort.Strings(ids)
	return ids, nil
}
