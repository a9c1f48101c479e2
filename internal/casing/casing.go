// Package casing derives the casing variants of a feature name.
// Derivation is pure: the same input always produces the same Context,
// since the variants are embedded into every generated file of a run.
package casing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName reports a feature name that cannot produce a Context.
// Callers distinguish it from I/O failures further down the pipeline.
var ErrInvalidName = errors.New("invalid feature name")

// Context holds every casing variant of a single feature name.
// All fields are derived from Original and never mutated after Derive.
type Context struct {
	Original string // as given: "UserProfile"
	Pascal   string // "UserProfile"
	Lower    string // "userprofile"
	Upper    string // "USER_PROFILE"
	Snake    string // "user_profile"
}

// Derive splits name into words and builds the casing variants.
// Word boundaries are underscores and lower-to-upper transitions; any
// other convention mix is resolved by that rule alone. The Pascal variant
// keeps only the first letter of each word upper, so acronyms flatten:
// "OAuth2Login" derives "Oauth2Login".
// Returns ErrInvalidName for an empty name or characters outside
// [A-Za-z0-9_].
func Derive(name string) (Context, error) {
	if name == "" {
		return Context{}, fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return Context{}, fmt.Errorf("%w: %q contains invalid character %q; only letters, digits, and underscores are allowed", ErrInvalidName, name, r)
		}
	}

	words := splitWords(name)
	if len(words) == 0 {
		return Context{}, fmt.Errorf("%w: %q contains no letters or digits", ErrInvalidName, name)
	}

	pascal := make([]string, len(words))
	upper := make([]string, len(words))
	snake := make([]string, len(words))
	for i, w := range words {
		pascal[i] = capitalize(strings.ToLower(w))
		upper[i] = strings.ToUpper(w)
		snake[i] = strings.ToLower(w)
	}

	return Context{
		Original: name,
		Pascal:   strings.Join(pascal, ""),
		Lower:    strings.ToLower(strings.Join(words, "")),
		Upper:    strings.Join(upper, "_"),
		Snake:    strings.Join(snake, "_"),
	}, nil
}

// splitWords breaks a name at underscores and lower-to-upper transitions.
// "MyFeature2Name" -> ["My", "Feature2", "Name"]
// "my_feature"     -> ["my", "feature"]
func splitWords(name string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		if r == '_' {
			flush()
			continue
		}
		if i > 0 && isUpper(r) && isLowerOrDigit(runes[i-1]) {
			flush()
		}
		current.WriteRune(r)
	}
	flush()

	return words
}

func isNameRune(r rune) bool {
	return r == '_' || isUpper(r) || isLowerOrDigit(r)
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLowerOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// capitalize uppercases the first byte of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
