package core

import (
	"fmt"
	"strings"
)

// Sanitize converts an arbitrary title into a filesystem-safe base name.
// Spaces become underscores, then every character outside [A-Za-z0-9_] is
// dropped. The operation is idempotent.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ReplaceAll(name, " ", "_") {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Filename derives the output filename for the record at 1-based position.
// The record's title field is used when present; records without one (or
// whose title sanitizes to nothing) fall back to entry_<position>.
func Filename(r Record, position int) string {
	if title, ok := r.Title(); ok {
		if base := Sanitize(title); base != "" {
			return base + ".md"
		}
	}
	return fmt.Sprintf("entry_%d.md", position)
}
