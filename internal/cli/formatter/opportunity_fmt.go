package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/scheduler"
)

// Show renders a single record with its derived state.
func Show(resp *app.ShowResponse) string {
	op := resp.Opportunity
	s := resp.Summary
	var b strings.Builder

	kv := func(k, v string) {
		if v == "" {
			v = Dim("--")
		}
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-13s", k)), v)
	}

	kv("id", op.ID)
	kv("organization", op.Target.Organization)
	kv("track", string(op.Track))
	status := StatusPill(op.Status)
	if op.Outcome != "" {
		status += Dim(" (" + string(op.Outcome) + ")")
	}
	kv("status", status)
	kv("bucket", string(op.Bucket))
	deadline := Deadline(s.DeadlineDate, s.DeadlineType)
	if s.DaysLeft != nil {
		deadline += "  " + DaysStyled(*s.DaysLeft)
	}
	kv("deadline", deadline)
	kv("urgency", UrgencyIndicator(resp.Urgency))
	kv("effort", fmt.Sprintf("%s %s", op.Effort(), feasibility(resp.Feasibility)))
	kv("fit", Score(op.Fit.Score))
	kv("identity", op.Fit.IdentityPosition)
	if s.Tier > 0 {
		kv("tier", fmt.Sprintf("%d", s.Tier))
	}
	kv("apply at", op.Target.ApplicationURL)
	if op.LastTouched != nil {
		kv("last touched", op.LastTouched.String())
	}
	if len(op.Tags) > 0 {
		kv("tags", strings.Join(op.Tags, ", "))
	}
	campaign := Dim("no")
	if resp.InCampaign {
		campaign = StyleGreen.Render("yes")
	}
	kv("in campaign", campaign)

	next := make([]string, 0, len(resp.NextStatus))
	for _, st := range resp.NextStatus {
		next = append(next, string(st))
	}
	kv("next", strings.Join(next, " | "))

	out := RenderBox(op.Name, strings.TrimRight(b.String(), "\n")) + "\n"

	if len(op.Timeline) > 0 {
		out += "\n" + Header("Timeline") + "\n" + timelineTable(op.Timeline)
	}
	if len(resp.FollowUps) > 0 {
		rows := make([][]string, 0, len(resp.FollowUps))
		for _, f := range resp.FollowUps {
			rows = append(rows, []string{followUpState(f.State), f.Label, f.DueDate, DaysLabel(f.DaysUntil)})
		}
		out += "\n" + Header("Follow-ups") + "\n" + RenderTable([]string{"STATE", "ACTION", "DUE", "WHEN"}, rows)
	}
	if len(resp.Issues) > 0 {
		out += "\n" + Header("Issues") + "\n"
		for _, is := range resp.Issues {
			out += fmt.Sprintf("  %s %s\n", kindLabel(is.Kind), is.Message)
		}
	}
	if op.Notes != "" {
		out += "\n" + Header("Notes") + "\n" + op.Notes + "\n"
	}
	return out
}

func feasibility(f scheduler.FeasibilityResult) string {
	switch {
	case f.Expired:
		return StyleRed.Render("(deadline passed)")
	case f.DaysLeft == nil:
		return Dim(fmt.Sprintf("(%s, no dated deadline)", FormatMinutes(f.RequiredMin)))
	case !f.Feasible:
		return StyleRed.Render(fmt.Sprintf("(needs %s, %s available)", FormatMinutes(f.RequiredMin), FormatMinutes(f.AvailableMin)))
	default:
		return StyleGreen.Render(fmt.Sprintf("(needs %s, %s available)", FormatMinutes(f.RequiredMin), FormatMinutes(f.AvailableMin)))
	}
}

func followUpState(s scheduler.FollowUpState) string {
	switch s {
	case scheduler.FollowUpDue:
		return StyleYellow.Render(string(s))
	case scheduler.FollowUpDone:
		return StyleDim.Render(string(s))
	default:
		return StyleBlue.Render(string(s))
	}
}

func timelineTable(tl map[domain.Status]domain.Date) string {
	type entry struct {
		status domain.Status
		date   domain.Date
	}
	entries := make([]entry, 0, len(tl))
	for s, d := range tl {
		entries = append(entries, entry{s, d})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].date.Equal(entries[j].date.Time) {
			return entries[i].date.Before(entries[j].date.Time)
		}
		return entries[i].status < entries[j].status
	})
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{string(e.status), e.date.String()})
	}
	return RenderTable([]string{"STATUS", "REACHED"}, rows)
}

// Advance renders the result of a status change.
func Advance(resp *app.AdvanceResponse) string {
	var b strings.Builder
	verb := "Moved"
	if resp.DryRun {
		verb = "Would move"
	}
	arrow := StyleGreen.Render("→")
	if !resp.Forward {
		arrow = StyleYellow.Render("←")
	}
	fmt.Fprintf(&b, "%s %s: %s %s %s", verb, Bold(resp.ID), StatusPill(resp.From), arrow, StatusPill(resp.To))
	if resp.Outcome != "" {
		b.WriteString(Dim(" (" + string(resp.Outcome) + ")"))
	}
	b.WriteString("\n")
	if resp.Relocated {
		fmt.Fprintf(&b, "  %s %s/ → %s/\n", Dim("relocated"), resp.FromBucket, resp.ToBucket)
	}
	for _, g := range resp.GateIssues {
		b.WriteString(Warn(g) + "\n")
	}
	return b.String()
}

// Reconcile renders bucket moves.
func Reconcile(resp *app.ReconcileResponse) string {
	var b strings.Builder
	if len(resp.Moves) == 0 {
		b.WriteString(StyleGreen.Render("Every record is in its bucket.") + "\n")
	} else {
		title := "Relocated"
		if resp.DryRun {
			title = "Would relocate"
		}
		rows := make([][]string, 0, len(resp.Moves))
		for _, m := range resp.Moves {
			rows = append(rows, []string{m.ID, string(m.From), string(m.To), Dim(m.Reason)})
		}
		b.WriteString(Header(fmt.Sprintf("%s (%d)", title, len(resp.Moves))) + "\n")
		b.WriteString(RenderTable([]string{"ID", "FROM", "TO", "REASON"}, rows))
	}
	for _, w := range resp.Warnings {
		b.WriteString(Warn(w) + "\n")
	}
	return b.String()
}

// Import renders the outcome of a lead import.
func Import(res *app.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported %s leads into research_pool/", Bold(Count(len(res.Created))))
	if len(res.Skipped) > 0 {
		fmt.Fprintf(&b, ", skipped %s existing", Count(len(res.Skipped)))
	}
	b.WriteString("\n")
	for _, id := range res.Created {
		b.WriteString("  " + StyleGreen.Render("+") + " " + id + "\n")
	}
	for _, id := range res.Skipped {
		b.WriteString("  " + Dim("= "+id+" (exists)") + "\n")
	}
	return b.String()
}

// Created renders the confirmation for a new record.
func Created(op *domain.Opportunity) string {
	return fmt.Sprintf("Created %s in %s/ %s\n", Bold(op.ID), op.Bucket, StatusPill(op.Status))
}

// ComposeFooter summarizes an assembled document. It is written to stderr
// so the document itself can be piped.
func ComposeFooter(resp *app.ComposeResponse) string {
	return Dim(fmt.Sprintf("%s: %s words in %d sections", resp.ID, Count(resp.Words), resp.Sections)) + "\n"
}
