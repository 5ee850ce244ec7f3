package words

import (
	"strings"
)

// DefaultDelimiter separates the word from its translation on a bulk line.
const DefaultDelimiter = "-"

// ParseBulk turns multi-line text into entries. Each line must split on
// delimiter into exactly two parts, a non-empty key and a non-empty
// translation; any other line is skipped. Duplicates are kept, callers dedup
// when merging.
func ParseBulk(text, delimiter string) []Entry {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []Entry
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(line, delimiter)
		if len(parts) != 2 {
			continue
		}
		e := NewEntry(parts[0], parts[1])
		if !e.Valid() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FormatBulk is the inverse of ParseBulk for a list of entries. Entries whose
// key or translation contains the delimiter cannot be parsed back, so they
// are left out of the text and returned as skipped.
func FormatBulk(entries []Entry, delimiter string) (string, []Entry) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	var (
		b       strings.Builder
		skipped []Entry
	)
	for _, e := range entries {
		if strings.Contains(e.Key, delimiter) || strings.Contains(e.Translation, delimiter) {
			skipped = append(skipped, e)
			continue
		}
		b.WriteString(e.Key)
		b.WriteString(" ")
		b.WriteString(delimiter)
		b.WriteString(" ")
		b.WriteString(e.Translation)
		b.WriteString("\n")
	}
	return b.String(), skipped
}
