package formatter

import (
	"fmt"

	"github.com/alexanderramin/pursuit/internal/app"
)

var followUpHeaders = []string{"ID", "ORGANIZATION", "ACTION", "DUE", "WHEN", "CONTACT"}

// FollowUps builds the due / upcoming follow-up schedule.
func FollowUps(resp *app.FollowUpResponse) Report {
	r := Report{
		Title: "Follow-ups",
		Summary: []string{
			fmt.Sprintf("%s  %s", Dim("as of"), resp.GeneratedAt.Format("2006-01-02")),
			fmt.Sprintf("%s due  %s upcoming", dueCount(len(resp.Due)), Count(len(resp.Upcoming))),
		},
		Warnings: resp.Warnings,
	}

	r.Sections = append(r.Sections,
		followUpSection("Due", resp.Due, "Nothing due."),
		followUpSection("Upcoming", resp.Upcoming, "Nothing scheduled."),
	)
	if len(resp.Untracked) > 0 {
		sec := Section{Heading: "Untracked"}
		sec.Lines = append(sec.Lines, Dim("submitted without a submission date; follow-ups cannot be scheduled"))
		for _, id := range resp.Untracked {
			sec.Lines = append(sec.Lines, "· "+id)
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

func followUpSection(heading string, items []app.FollowUpItem, empty string) Section {
	sec := Section{Heading: heading, Headers: followUpHeaders, Empty: empty}
	for _, it := range items {
		contact := it.Contact
		if contact == "" {
			contact = Dim("--")
		}
		sec.Rows = append(sec.Rows, []string{
			it.ID,
			Truncate(it.Organization, 28),
			it.Label,
			it.DueDate,
			DaysStyled(it.DaysUntil),
			contact,
		})
	}
	return sec
}

func dueCount(n int) string {
	if n > 0 {
		return StyleYellow.Render(Count(n))
	}
	return Count(n)
}
