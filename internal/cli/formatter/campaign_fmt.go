package formatter

import (
	"fmt"

	"github.com/alexanderramin/pursuit/internal/app"
)

var campaignHeaders = []string{"ID", "NAME", "TRACK", "DEADLINE", "WHEN", "EFFORT", "FIT", "FEASIBLE"}

// Campaign builds the campaign view: one section per urgency tier.
func Campaign(resp *app.CampaignResponse) Report {
	s := resp.Summary
	r := Report{
		Title: "Campaign",
		Summary: []string{
			fmt.Sprintf("%s  %s", Dim("as of"), s.GeneratedAt.Format("2006-01-02")),
			fmt.Sprintf("%s  %dd", Dim("horizon"), s.HorizonDays),
			fmt.Sprintf("%s opportunities  %s infeasible  %s expired",
				Bold(Count(s.CountsTotal)), feasibleCount(s.CountsInfeasible), Count(s.CountsExpired)),
			fmt.Sprintf("%s  %s", Dim("effort"), FormatMinutes(s.TotalRequiredMin)),
		},
		Warnings: resp.Warnings,
	}

	if len(resp.Groups) == 0 {
		r.Sections = append(r.Sections, Section{Empty: "Nothing actionable inside the horizon."})
		return r
	}

	for _, g := range resp.Groups {
		sec := Section{
			Heading: fmt.Sprintf("%s (%d)", g.Urgency, len(g.Items)),
			Headers: campaignHeaders,
		}
		for _, it := range g.Items {
			feasible := StyleGreen.Render("yes")
			switch {
			case it.Expired:
				feasible = StyleRed.Render("expired")
			case !it.Feasible:
				feasible = StyleRed.Render(fmt.Sprintf("no (%s > %s)", FormatMinutes(it.RequiredMin), FormatMinutes(it.AvailableMin)))
			}
			sec.Rows = append(sec.Rows, []string{
				UrgencyColor(g.Urgency).Render(it.ID),
				Truncate(it.Name, 40),
				string(it.Track),
				Deadline(it.DeadlineDate, it.DeadlineType),
				Days(it.DaysLeft),
				string(it.Effort),
				Score(it.FitScore),
				feasible,
			})
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

func feasibleCount(n int) string {
	if n > 0 {
		return StyleRed.Render(Count(n))
	}
	return Count(n)
}
