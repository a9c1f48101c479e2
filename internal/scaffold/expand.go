// Package scaffold expands feature templates into an output directory tree.
// Expansion is literal token substitution, not a template language: no
// conditionals, no loops, no evaluation. A token the engine does not know
// passes through untouched so future placeholders never vanish silently.
package scaffold

import (
	"sort"
	"strings"

	"github.com/gorewood/mason/internal/casing"
)

// Token marker delimiters. A registered token NAME is matched as {{NAME}}.
const (
	markerOpen  = "{{"
	markerClose = "}}"
)

// Tokens builds the substitution table for a feature.
// PACKAGE_PATH is the dotted package with dots replaced by slashes, for
// use inside output path patterns.
func Tokens(ctx casing.Context, pkg string) map[string]string {
	return map[string]string{
		"FEATURE_NAME":  ctx.Pascal,
		"FEATURE_LOWER": ctx.Lower,
		"FEATURE_UPPER": ctx.Upper,
		"FEATURE_SNAKE": ctx.Snake,
		"PACKAGE":       pkg,
		"PACKAGE_PATH":  strings.ReplaceAll(pkg, ".", "/"),
	}
}

// Expand replaces every occurrence of each registered token in s with its
// mapped value. Matching is left to right, longest registered token first
// at each position, so a token that is a prefix of another never clips it.
// Replacement values are emitted verbatim and never rescanned, which keeps
// Expand idempotent for inputs whose tokens do not appear in the values.
func Expand(s string, tokens map[string]string) string {
	if len(tokens) == 0 || !strings.Contains(s, markerOpen) {
		return s
	}

	markers := sortedMarkers(tokens)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '{' {
			j := strings.IndexByte(s[i:], '{')
			if j < 0 {
				b.WriteString(s[i:])
				break
			}
			b.WriteString(s[i : i+j])
			i += j
			continue
		}

		matched := false
		for _, m := range markers {
			if strings.HasPrefix(s[i:], m.marker) {
				b.WriteString(m.value)
				i += len(m.marker)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// tokenMarker is a registered token in delimited form with its value.
type tokenMarker struct {
	marker string
	value  string
}

// sortedMarkers returns the delimited tokens longest first, with a name
// tiebreak so expansion order is deterministic.
func sortedMarkers(tokens map[string]string) []tokenMarker {
	markers := make([]tokenMarker, 0, len(tokens))
	for name, value := range tokens {
		markers = append(markers, tokenMarker{
			marker: markerOpen + name + markerClose,
			value:  value,
		})
	}
	sort.Slice(markers, func(i, j int) bool {
		if len(markers[i].marker) != len(markers[j].marker) {
			return len(markers[i].marker) > len(markers[j].marker)
		}
		return markers[i].marker < markers[j].marker
	})
	return markers
}
