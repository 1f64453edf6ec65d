package models

import (
	"encoding/json"
	"sort"
	"time"

	"gorm.io/datatypes"
)

// StatusHistoryEntry is one logged status transition.
type StatusHistoryEntry struct {
	Status    ValidationStatus `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Notes     string           `json:"notes,omitempty"`
}

// ParseStatusHistory deserializes a stored history column and returns the
// entries sorted newest first. Detail pages rely on that ordering.
//
// Malformed entries are dropped silently: the column may hold structured
// objects or, from older records, JSON-encoded strings, and either form may
// be partially corrupt. Parsing never fails.
func ParseStatusHistory(raw datatypes.JSON) []StatusHistoryEntry {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	entries := make([]StatusHistoryEntry, 0, len(items))
	for _, item := range items {
		if e, ok := decodeHistoryEntry(item); ok {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

// decodeHistoryEntry accepts either an entry object or a string containing
// the JSON of one (the legacy serialized-string-in-list representation).
func decodeHistoryEntry(item json.RawMessage) (StatusHistoryEntry, bool) {
	var e StatusHistoryEntry
	if err := json.Unmarshal(item, &e); err == nil && !e.Timestamp.IsZero() {
		return e, true
	}
	var s string
	if err := json.Unmarshal(item, &s); err != nil {
		return StatusHistoryEntry{}, false
	}
	if err := json.Unmarshal([]byte(s), &e); err != nil || e.Timestamp.IsZero() {
		return StatusHistoryEntry{}, false
	}
	return e, true
}

// AppendStatusHistory returns raw with one more entry. The stored order is
// append-only; readers re-sort via ParseStatusHistory.
func AppendStatusHistory(raw datatypes.JSON, entry StatusHistoryEntry) datatypes.JSON {
	var items []json.RawMessage
	if len(raw) > 0 {
		// A corrupt column starts over rather than failing the write.
		_ = json.Unmarshal(raw, &items)
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return raw
	}
	items = append(items, b)
	out, err := json.Marshal(items)
	if err != nil {
		return raw
	}
	return out
}
