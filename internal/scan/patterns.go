package scan

import "regexp"

// Pattern is one forbidden content pattern.
type Pattern struct {
	Name string
	Re   *regexp.Regexp
	Hint string
}

// DefaultPatterns is the fixed forbidden-pattern table for the commit
// gate. The table is data, not state: callers receive a fresh slice and
// the compiled regexps are immutable.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name: "debug-log",
			Re:   regexp.MustCompile(`\bLog\.[dv]\(`),
			Hint: "remove debug logging before committing (use Timber or strip the call)",
		},
		{
			Name: "println",
			Re:   regexp.MustCompile(`\bprintln\(`),
			Hint: "remove println before committing",
		},
		{
			Name: "print-stack-trace",
			Re:   regexp.MustCompile(`\.printStackTrace\(\)`),
			Hint: "propagate or log the exception instead of printing the stack trace",
		},
		{
			Name: "hardcoded-secret",
			Re:   regexp.MustCompile(`(?i)\b(api[_-]?key|secret|password)\s*=\s*"[^"]+"`),
			Hint: "move the credential to local configuration, never commit it",
		},
	}
}

// DefaultAllowlist is the fixed set of path substrings exempt from the
// gate. Matching is deliberately coarse substring containment; test trees
// are allowed to log and print.
func DefaultAllowlist() []string {
	return []string{
		"/test/",
		"/androidTest/",
		"/testFixtures/",
		"Test.kt",
	}
}
