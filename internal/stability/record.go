// Package stability parses compiler-emitted stability reports and computes
// quality metrics from them. The report dialect is line oriented and
// evolves upstream, so the parser recognizes the two line families it
// cares about and skips everything else.
package stability

// Record is one parsed unit from a stability report, either a ClassRecord
// or a ComposableRecord, in file order.
type Record interface {
	recordName() string
}

// Member is one property line attached to a class record.
type Member struct {
	Name    string
	Type    string
	Stable  bool
	Mutable bool // declared var rather than val
}

// ClassRecord is a report-declared class with its stability verdict and
// any member lines that followed it.
type ClassRecord struct {
	Name    string
	Stable  bool
	Members []Member
}

func (c ClassRecord) recordName() string { return c.Name }

// UnstableMembers returns the members flagged unstable, in report order.
func (c ClassRecord) UnstableMembers() []Member {
	var out []Member
	for _, m := range c.Members {
		if !m.Stable {
			out = append(out, m)
		}
	}
	return out
}

// ComposableRecord is a report-declared composable function with its
// restart/skip classification.
type ComposableRecord struct {
	Name        string
	Restartable bool
	Skippable   bool
}

func (c ComposableRecord) recordName() string { return c.Name }
