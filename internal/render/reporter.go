package render

import (
	"fmt"
	"go/token"
	"sync"
)

// Severity distinguishes primary verdict reports from secondary evidence
// provenance notes.
type Severity int

const (
	severityInvalid Severity = iota

	// SeverityReport is a primary "would mark ... here" verdict line.
	SeverityReport

	// SeverityNote is a secondary "<evidence kind> here" line attached to
	// the preceding report.
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityReport:
		return "report"
	case SeverityNote:
		return "note"
	default:
		return fmt.Sprintf("unknown-severity(%d)", s)
	}
}

// Diag is a single rendered diagnostic entry.
type Diag struct {
	Severity Severity
	Message  string
	Pos      token.Pos
}

// Reporter collects diagnostics in declaration-visitation order.
type Reporter struct {
	mu    sync.Mutex
	diags []Diag
}

// Report adds a new entry to the reporter.
func (r *Reporter) Report(d Diag) {
	r.mu.Lock()
	r.diags = append(r.diags, d)
	r.mu.Unlock()
}

// Diags returns a snapshot of all collected entries.
func (r *Reporter) Diags() []Diag {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diag, len(r.diags))
	copy(out, r.diags)
	return out
}
