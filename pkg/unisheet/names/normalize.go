// Package names normalizes spreadsheet column headers into unique,
// accent-free snake_case identifiers and derives safe filenames from them.
package names

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackName substitutes for headers that normalize to nothing.
const FallbackName = "columna"

// accentStripper decomposes accented characters and drops the combining
// marks, so "Número" becomes "Numero".
var accentStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func removeAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize converts a raw header into its canonical form: accent-free,
// lowercase, with runs of separators collapsed to a single underscore.
// Empty results become FallbackName. Normalize is idempotent.
func Normalize(raw string) string {
	s := removeAccents(raw)

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		// whitespace, hyphens and anything else all separate
		pendingSep = true
	}

	out := strings.Trim(b.String(), "_")
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	if out == "" {
		return FallbackName
	}
	return out
}

// Deduper resolves duplicate normalized names within one scope (a single
// sheet's header row). The first occurrence of a name is kept as-is; later
// occurrences get _1, _2, ... suffixes.
type Deduper struct {
	seen map[string]int
}

// NewDeduper returns a resolver with an empty scope.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]int)}
}

// Claim registers name and returns the unique form to use for it.
func (d *Deduper) Claim(name string) string {
	n, ok := d.seen[name]
	if !ok {
		d.seen[name] = 0
		return name
	}
	d.seen[name] = n + 1
	return fmt.Sprintf("%s_%d", name, n+1)
}

// NormalizeAll normalizes a header row in order, resolving duplicates
// within the row.
func NormalizeAll(headers []string) []string {
	d := NewDeduper()
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = d.Claim(Normalize(h))
	}
	return out
}
