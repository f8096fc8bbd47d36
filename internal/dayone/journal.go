package dayone

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// JournalSuffix is the extension of journal documents inside an export.
const JournalSuffix = ".json"

// Journal is a named collection of entries, one export document.
type Journal struct {
	Name    string
	Entries []*Entry
}

// ParseJournal decodes a journal document of the form {"entries": [...]}.
// Parsing stops at the first malformed record; the returned error wraps
// its *ParseError and names the record index.
func ParseJournal(name string, data []byte) (*Journal, error) {
	if len(data) == 0 {
		return nil, errors.New("empty journal document")
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("decoding journal %q: %v", name, err)}
	}

	value, ok := doc["entries"]
	if !ok {
		return nil, &ParseError{Field: "entries", Reason: "missing required field"}
	}
	records, ok := value.([]any)
	if !ok {
		return nil, &ParseError{Field: "entries", Reason: fmt.Sprintf("expected array, got %T", value)}
	}

	journal := &Journal{Name: name, Entries: make([]*Entry, 0, len(records))}
	for i, record := range records {
		raw, ok := record.(map[string]any)
		if !ok {
			return nil, &ParseError{Field: fmt.Sprintf("entries[%d]", i), Reason: fmt.Sprintf("expected object, got %T", record)}
		}
		entry, err := ParseEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		journal.Entries = append(journal.Entries, entry)
	}

	return journal, nil
}

// SortEntries orders entries by creation date, oldest first.
// Entries created at the same instant keep their input order.
func SortEntries(entries []*Entry) {
	slices.SortStableFunc(entries, Compare)
}
