// Package scan is the pre-commit content gate: it checks staged file
// contents line by line against a fixed forbidden-pattern table. The
// outcome is binary, Clean or Blocked; the gate is a hard stop for the
// calling workflow, never advisory.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Match is one forbidden-pattern hit.
type Match struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Pattern string `json:"pattern"`
	Text    string `json:"text"`
	Hint    string `json:"hint,omitempty"`
}

// Result is the ordered list of matches across all scanned files.
type Result struct {
	Matches []Match  `json:"matches"`
	Scanned int      `json:"scanned"`
	Skipped []string `json:"skipped,omitempty"` // allow-listed paths
}

// Blocked reports the gate verdict. There is no partial state.
func (r Result) Blocked() bool {
	return len(r.Matches) > 0
}

// Scanner checks file contents against its pattern and allow-list tables.
// Both tables are fixed at construction; a Scanner has no other state.
type Scanner struct {
	patterns  []Pattern
	allowlist []string
}

// New creates a Scanner with explicit tables. Tests inject small ones.
func New(patterns []Pattern, allowlist []string) *Scanner {
	return &Scanner{patterns: patterns, allowlist: allowlist}
}

// NewDefault creates a Scanner with the shipped tables plus any extra
// allow-list entries (from project configuration).
func NewDefault(extraAllowlist ...string) *Scanner {
	return New(DefaultPatterns(), append(DefaultAllowlist(), extraAllowlist...))
}

// Allowed reports whether a path is exempt from scanning. An allow-listed
// path never contributes a match, even when its content would.
func (s *Scanner) Allowed(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, entry := range s.allowlist {
		if strings.Contains(normalized, entry) {
			return true
		}
	}
	return false
}

// Content scans one file's content and returns its matches in line order.
// The allow-list is checked first; exempt paths are not read at all.
func (s *Scanner) Content(path, content string) []Match {
	if s.Allowed(path) {
		return nil
	}

	var matches []Match
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		for _, p := range s.patterns {
			if p.Re.MatchString(text) {
				matches = append(matches, Match{
					Path:    path,
					Line:    line,
					Pattern: p.Name,
					Text:    strings.TrimSpace(text),
					Hint:    p.Hint,
				})
			}
		}
	}
	return matches
}

// Paths scans the given files from disk in order. The caller supplies the
// list (conventionally the staged files); the scanner discovers nothing
// on its own. A file that cannot be read fails the scan with its path.
func (s *Scanner) Paths(paths []string) (Result, error) {
	var result Result
	for _, path := range paths {
		if s.Allowed(path) {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		data, err := os.ReadFile(path) // #nosec G304 -- paths are supplied by the invoking workflow
		if err != nil {
			return Result{}, fmt.Errorf("reading %s: %w", path, err)
		}
		result.Scanned++
		result.Matches = append(result.Matches, s.Content(path, string(data))...)
	}
	return result, nil
}
