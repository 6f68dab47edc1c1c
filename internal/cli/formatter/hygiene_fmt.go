package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/hygiene"
)

// Hygiene builds the data-quality report.
func Hygiene(resp *app.HygieneResponse) Report {
	r := Report{
		Title: "Hygiene",
		Summary: []string{
			fmt.Sprintf("%s records checked  %s issues in %s records",
				Bold(Count(resp.Checked)), issueCount(resp.IssueCount()), Count(len(resp.Findings))),
		},
		Warnings: resp.Warnings,
	}
	if kinds := kindSummary(resp.KindCounts); kinds != "" {
		r.Summary = append(r.Summary, Dim(kinds))
	}

	sec := Section{
		Headers: []string{"ID", "STATUS", "KIND", "ISSUE"},
		Empty:   "All records clean.",
	}
	for _, f := range resp.Findings {
		for i, is := range f.Issues {
			id, status := "", ""
			if i == 0 {
				id, status = f.ID, string(f.Status)
			}
			sec.Rows = append(sec.Rows, []string{id, status, kindLabel(is.Kind), is.Message})
		}
	}
	r.Sections = append(r.Sections, sec)
	return r
}

func issueCount(n int) string {
	if n > 0 {
		return StyleRed.Render(Count(n))
	}
	return StyleGreen.Render("0")
}

func kindLabel(k hygiene.IssueKind) string {
	switch k {
	case hygiene.IssueGate, hygiene.IssueBucketDrift:
		return StyleRed.Render(string(k))
	case hygiene.IssueStale, hygiene.IssuePendingOutcome:
		return StyleYellow.Render(string(k))
	default:
		return StylePurple.Render(string(k))
	}
}

func kindSummary(counts map[hygiene.IssueKind]int) string {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[hygiene.IssueKind(k)]))
	}
	return strings.Join(parts, " · ")
}
