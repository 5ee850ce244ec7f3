package words

import (
	"strings"
)

// Entry is a single word/translation pair. Key is the source-language word
// in normalized form; entries are compared and deduplicated by Key.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Translation string `json:"translation" yaml:"translation"`
}

// NewEntry builds an Entry with a normalized key and a trimmed translation.
func NewEntry(key, translation string) Entry {
	return Entry{
		Key:         Normalize(key),
		Translation: strings.TrimSpace(translation),
	}
}

// Normalize returns the matching form of a key: trimmed and lower-cased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Valid reports whether both sides of the entry are non-empty.
func (e Entry) Valid() bool {
	return e.Key != "" && e.Translation != ""
}

// Dedup returns entries with repeated keys removed. The first occurrence of
// each key wins and the order of the survivors is preserved.
func Dedup(entries []Entry) []Entry {
	seen := make(map[string]bool, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		out = append(out, e)
	}
	return out
}

// Normalized rebuilds every entry through NewEntry and drops invalid ones.
func Normalized(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		n := NewEntry(e.Key, e.Translation)
		if n.Valid() {
			out = append(out, n)
		}
	}
	return out
}
