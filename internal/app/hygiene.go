package app

import (
	"time"

	"github.com/alexanderramin/pursuit/internal/hygiene"
)

type HygieneRequest struct {
	Now *time.Time
	// IncludeClosed also checks outcome and withdrawn records.
	IncludeClosed bool
}

type HygieneFinding struct {
	OpportunitySummary
	Issues []hygiene.Issue
}

type HygieneResponse struct {
	GeneratedAt time.Time
	Checked     int
	Findings    []HygieneFinding
	// KindCounts tallies issues per kind across all findings.
	KindCounts map[hygiene.IssueKind]int
	Warnings   []string
}

// IssueCount is the number of issues across every finding.
func (r *HygieneResponse) IssueCount() int {
	n := 0
	for _, f := range r.Findings {
		n += len(f.Issues)
	}
	return n
}
