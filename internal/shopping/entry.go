package shopping

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sehrimilan/internal/planparser"
)

// Categorize assigns a category by keyword, checked in order: produce, then meat.
func Categorize(label string) Category {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "fruit"), strings.Contains(lower, "veg"):
		return CategoryProduce
	case strings.Contains(lower, "meat"), strings.Contains(lower, "chicken"):
		return CategoryMeat
	default:
		return CategoryGrocery
	}
}

// normalize is the dedupe key of an entry name.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Dedupe keeps the first entry of every case-insensitive trimmed name. It
// reports whether anything was removed. The input slice is not modified.
func Dedupe(entries []Entry) ([]Entry, bool) {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		key := normalize(e.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out, len(out) != len(entries)
}

// FromExtracted turns parser candidates into deduplicated entries stamped with now.
func FromExtracted(items []planparser.ExtractedItem, now time.Time) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, Entry{
			ID:       fmt.Sprintf("item-%d-%d", it.Line, now.UnixMilli()),
			Name:     it.Label,
			Day:      it.Day,
			Category: Categorize(it.Label),
		})
	}
	deduped, _ := Dedupe(entries)
	return deduped
}

// NewManual builds a hand-added entry. Manual entries are never filtered or deduplicated.
func NewManual(name string) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, ErrEmptyName
	}
	return Entry{
		ID:       "manual-" + uuid.NewString(),
		Name:     name,
		Day:      ManualDay,
		Category: CategoryPersonal,
	}, nil
}

// Prepend returns a new list with e placed first.
func Prepend(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}

// Toggle returns a copy of entries with only the entry id flipped.
func Toggle(entries []Entry, id string) ([]Entry, error) {
	idx := indexOf(entries, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	out := Clone(entries)
	out[idx].Completed = !out[idx].Completed
	return out, nil
}

// Remove returns a copy of entries without the entry id.
func Remove(entries []Entry, id string) ([]Entry, error) {
	idx := indexOf(entries, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	out := make([]Entry, 0, len(entries)-1)
	out = append(out, entries[:idx]...)
	return append(out, entries[idx+1:]...), nil
}

// Clone copies entries so callers never share backing arrays with the cache.
func Clone(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func indexOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
