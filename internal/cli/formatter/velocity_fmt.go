package formatter

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/pursuit/internal/analytics"
	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
)

var (
	statusReportOrder = []domain.Status{
		domain.StatusResearch, domain.StatusQualified, domain.StatusDrafting,
		domain.StatusStaged, domain.StatusSubmitted, domain.StatusAcknowledged,
		domain.StatusInterview, domain.StatusOutcome, domain.StatusWithdrawn,
	}
	effortReportOrder  = []domain.EffortLevel{domain.EffortQuick, domain.EffortStandard, domain.EffortDeep, domain.EffortComplex}
	outcomeReportOrder = []domain.Outcome{domain.OutcomeAccepted, domain.OutcomeRejected, domain.OutcomeWithdrawn, domain.OutcomeExpired}
)

// Velocity builds the throughput and pressure report.
func Velocity(resp *app.VelocityResponse) Report {
	m := resp.Metrics
	last := Dim("never")
	if m.LastSubmission != nil {
		last = m.LastSubmission.String()
	}

	r := Report{
		Title: "Velocity",
		Summary: []string{
			fmt.Sprintf("%s records  %s submitted", Bold(Count(m.Total)), Count(m.SubmittedCount)),
			fmt.Sprintf("%s  %s", Dim("last submission"), last),
			fmt.Sprintf("%s  %d in 7d  %d in 30d", Dim("submitted"), m.SubmittedLast7, m.SubmittedLast30),
			fmt.Sprintf("%s  %s this week  %s this month", Dim("hard deadlines"),
				pressure(m.DeadlinesThisWeek), Count(m.DeadlinesThisMonth)),
		},
		Warnings: resp.Warnings,
	}

	status := Section{Heading: "Status", Headers: []string{"STATUS", "COUNT"}}
	for _, s := range statusReportOrder {
		if n := m.StatusCounts[s]; n > 0 {
			status.Rows = append(status.Rows, []string{StatusPill(s), Count(n)})
		}
	}
	status.Empty = "No records."

	effort := Section{Heading: "Effort (actionable)", Headers: []string{"LEVEL", "COUNT"}, Empty: "Nothing actionable."}
	for _, e := range effortReportOrder {
		if n := m.EffortCounts[e]; n > 0 {
			effort.Rows = append(effort.Rows, []string{string(e), Count(n)})
		}
	}

	touch := Section{Heading: "Last touched", Headers: []string{"BAND", "COUNT"}}
	for _, band := range analytics.TouchBands {
		touch.Rows = append(touch.Rows, []string{band, Count(m.TouchBands[band])})
	}

	outcomes := Section{Heading: "Outcomes", Headers: []string{"OUTCOME", "COUNT"}, Empty: "No outcomes yet."}
	for _, o := range outcomeReportOrder {
		if n := m.OutcomeCounts[o]; n > 0 {
			outcomes.Rows = append(outcomes.Rows, []string{string(o), Count(n)})
		}
	}

	tracks := Section{Heading: "Tracks", Headers: []string{"TRACK", "COUNT"}, Empty: "No records."}
	keys := make([]string, 0, len(m.TrackCounts))
	for t := range m.TrackCounts {
		keys = append(keys, string(t))
	}
	sort.Strings(keys)
	for _, k := range keys {
		tracks.Rows = append(tracks.Rows, []string{k, Count(m.TrackCounts[domain.Track(k)])})
	}

	r.Sections = append(r.Sections, status, effort, touch, stageSection(m.Funnel), outcomes, tracks)
	return r
}

func pressure(n int) string {
	if n > 0 {
		return StyleRed.Render(Count(n))
	}
	return Count(n)
}
