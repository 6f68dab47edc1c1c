package formatter

import (
	"fmt"

	"github.com/alexanderramin/pursuit/internal/analytics"
	"github.com/alexanderramin/pursuit/internal/app"
)

var breakdownHeaders = []string{"KEY", "TOTAL", "SUBMITTED", "SUB RATE", "OUTCOMES", "ACCEPTED", "REJECTED", "PENDING", "ACC RATE"}

// Funnel builds the conversion funnel and its dimension breakdowns.
func Funnel(resp *app.FunnelResponse) Report {
	r := Report{
		Title:    "Conversion",
		Summary:  []string{fmt.Sprintf("%s records", Bold(Count(resp.Total)))},
		Warnings: resp.Warnings,
	}
	r.Sections = append(r.Sections, stageSection(resp.Stages))

	for _, bd := range resp.Breakdowns {
		sec := Section{
			Heading: Label(string(bd.Dimension)),
			Headers: breakdownHeaders,
			Empty:   "No records carry this dimension.",
		}
		for _, g := range bd.Groups {
			sec.Rows = append(sec.Rows, groupRow(g.Key, g))
		}
		if len(bd.Groups) > 0 {
			sec.Rows = append(sec.Rows, groupRow(Bold("total"), bd.Totals))
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

func stageSection(stages []analytics.StageCount) Section {
	sec := Section{
		Heading: "Funnel",
		Headers: []string{"STAGE", "REACHED", "CONVERSION"},
		Empty:   "No records.",
	}
	for _, st := range stages {
		sec.Rows = append(sec.Rows, []string{string(st.Stage), Count(st.Reached), Percent(st.Conversion)})
	}
	return sec
}

func groupRow(key string, g analytics.GroupCounts) []string {
	return []string{
		key,
		Count(g.Total),
		Count(g.Submitted),
		Percent(g.SubmissionRate()),
		Count(g.Outcomes),
		Count(g.Accepted),
		Count(g.Rejected),
		Count(g.Pending),
		Percent(g.AcceptanceRate()),
	}
}
