package stability

import (
	"fmt"
	"sort"
	"strings"
)

// IssueKind classifies a ranked issue.
type IssueKind string

const (
	IssueUnstableClass IssueKind = "unstable-class"
	IssueNonSkippable  IssueKind = "non-skippable"
)

// Issue is one entry in the ranked recommendation list.
type Issue struct {
	Kind            IssueKind
	Name            string
	UnstableMembers []Member
	Hint            string
}

// Summary is the derived aggregate over one batch of records. It is
// computed fresh on every run and never persisted.
type Summary struct {
	StableClasses   int
	UnstableClasses int
	Skippable       int
	NonSkippable    int
	Issues          []Issue
}

// StabilityRate is the fraction of classes reported stable. Defined as 0
// when no classes were reported: an empty report is a legitimate
// "nothing to report" state, not a division error.
func (s Summary) StabilityRate() float64 {
	total := s.StableClasses + s.UnstableClasses
	if total == 0 {
		return 0
	}
	return float64(s.StableClasses) / float64(total)
}

// SkippableRate is the fraction of restartable composables that can skip.
func (s Summary) SkippableRate() float64 {
	total := s.Skippable + s.NonSkippable
	if total == 0 {
		return 0
	}
	return float64(s.Skippable) / float64(total)
}

// Aggregate computes counts and the ranked issue list from records.
// Unstable classes rank first, ordered by unstable member count descending
// with a name tiebreak for determinism; non-skippable composables follow,
// ordered by name.
func Aggregate(records []Record) Summary {
	var s Summary
	var classIssues, funIssues []Issue

	for _, rec := range records {
		switch r := rec.(type) {
		case ClassRecord:
			if r.Stable {
				s.StableClasses++
				continue
			}
			s.UnstableClasses++
			classIssues = append(classIssues, Issue{
				Kind:            IssueUnstableClass,
				Name:            r.Name,
				UnstableMembers: r.UnstableMembers(),
				Hint:            classHint(r),
			})
		case ComposableRecord:
			if r.Skippable {
				s.Skippable++
				continue
			}
			s.NonSkippable++
			funIssues = append(funIssues, Issue{
				Kind: IssueNonSkippable,
				Name: r.Name,
				Hint: "stabilize parameter types or memoize lambda parameters with remember",
			})
		}
	}

	sort.SliceStable(classIssues, func(i, j int) bool {
		if len(classIssues[i].UnstableMembers) != len(classIssues[j].UnstableMembers) {
			return len(classIssues[i].UnstableMembers) > len(classIssues[j].UnstableMembers)
		}
		return classIssues[i].Name < classIssues[j].Name
	})
	sort.SliceStable(funIssues, func(i, j int) bool {
		return funIssues[i].Name < funIssues[j].Name
	})

	s.Issues = append(classIssues, funIssues...)
	return s
}

// classHint selects a remediation hint for an unstable class from a fixed
// rule table, keyed on the first unstable member that triggers a rule.
func classHint(c ClassRecord) string {
	for _, m := range c.UnstableMembers() {
		if collectionLike(m.Type) {
			return fmt.Sprintf("member %q has collection type %s; use an immutable collection (kotlinx.collections.immutable)", m.Name, m.Type)
		}
	}
	for _, m := range c.Members {
		if m.Mutable {
			return fmt.Sprintf("member %q is declared var; declare it val", m.Name)
		}
	}
	if unstable := c.UnstableMembers(); len(unstable) > 0 {
		return fmt.Sprintf("member %q has unstable type %s; stabilize the type or annotate it @Immutable", unstable[0].Name, unstable[0].Type)
	}
	return "annotate the class @Immutable if its instances never change after construction"
}

// collectionLike reports whether a member type is a mutable-by-contract
// collection. Immutable/persistent variants are already stable.
func collectionLike(typ string) bool {
	if strings.HasPrefix(typ, "Immutable") || strings.HasPrefix(typ, "Persistent") {
		return false
	}
	prefixes := []string{
		"List<", "MutableList<", "Set<", "MutableSet<",
		"Map<", "MutableMap<", "Collection<", "Array<", "ArrayList<",
	}
	for _, p := range prefixes {
		if strings.HasPrefix(typ, p) {
			return true
		}
	}
	return false
}
