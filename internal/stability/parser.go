package stability

import (
	"bufio"
	"regexp"
	"strings"
)

// Line grammar. Anything that matches neither family is skipped; upstream
// report formats grow new line kinds and the parser must survive them.
var (
	classLine  = regexp.MustCompile(`^(stable|unstable)\s+class\s+([A-Za-z0-9_]+)`)
	memberLine = regexp.MustCompile(`^(stable|unstable)\s+(val|var)\s+([A-Za-z0-9_]+)\s*:\s*(.+)$`)
	funLine    = regexp.MustCompile(`fun\s+([A-Za-z0-9_]+)\s*\(`)
)

// parser is the two-state machine over report lines: outside any record,
// or inside the most recently opened class record. Indentation is the only
// structural signal; a line at the class's own indent (or less) that is
// not a member closes the record.
type parser struct {
	records     []Record
	current     *ClassRecord
	classIndent int

	// A composable modifier line may precede its `fun Name(` line; the
	// classification waits here for the name.
	pending *ComposableRecord
}

// Parse extracts records from report text. An empty report yields an
// empty slice, not an error; Parse never fails.
func Parse(text string) []Record {
	p := &parser{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	p.closeClass()
	return p.records
}

func (p *parser) line(raw string) {
	trimmed := strings.TrimSpace(raw)
	indent := indentOf(raw)

	if p.current != nil {
		if indent > p.classIndent {
			if m := memberLine.FindStringSubmatch(trimmed); m != nil {
				p.current.Members = append(p.current.Members, Member{
					Name:    m[3],
					Type:    strings.TrimSpace(m[4]),
					Stable:  m[1] == "stable",
					Mutable: m[2] == "var",
				})
				return
			}
			// Indented but not a member (runtime stability notes, braces):
			// skip without closing the record.
			return
		}
		p.closeClass()
	}

	if m := classLine.FindStringSubmatch(trimmed); m != nil {
		p.pending = nil
		p.current = &ClassRecord{Name: m[2], Stable: m[1] == "stable"}
		p.classIndent = indent
		return
	}

	if rec, named := parseComposable(trimmed); rec != nil {
		if named {
			p.records = append(p.records, *rec)
			p.pending = nil
		} else {
			p.pending = rec
		}
		return
	}

	if p.pending != nil {
		if m := funLine.FindStringSubmatch(trimmed); m != nil {
			p.pending.Name = m[1]
			p.records = append(p.records, *p.pending)
			p.pending = nil
		}
	}
}

// closeClass appends the open class record, if any.
func (p *parser) closeClass() {
	if p.current != nil {
		p.records = append(p.records, *p.current)
		p.current = nil
	}
}

// parseComposable classifies a restartable/skippable line. Returns nil if
// the line carries no composable markers; named reports whether the
// `fun Name(` was found on the same line.
func parseComposable(line string) (rec *ComposableRecord, named bool) {
	restartable := containsWord(line, "restartable")
	skippable := containsWord(line, "skippable") && !strings.Contains(line, "not skippable")
	hasMarker := restartable || containsWord(line, "skippable")
	if !hasMarker {
		return nil, false
	}

	rec = &ComposableRecord{Restartable: restartable, Skippable: skippable}
	if m := funLine.FindStringSubmatch(line); m != nil {
		rec.Name = m[1]
		return rec, true
	}
	return rec, false
}

// containsWord reports whether line contains word as a whole token.
func containsWord(line, word string) bool {
	for rest := line; ; {
		i := strings.Index(rest, word)
		if i < 0 {
			return false
		}
		beforeOK := i == 0 || !isWordRune(rest[i-1])
		end := i + len(word)
		afterOK := end == len(rest) || !isWordRune(rest[end])
		if beforeOK && afterOK {
			return true
		}
		rest = rest[end:]
	}
}

func isWordRune(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// indentOf counts leading spaces and tabs (a tab counts as one level).
func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}
