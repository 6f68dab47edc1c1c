package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pursuit/internal/analytics"
	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/hygiene"
	"github.com/alexanderramin/pursuit/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func intPtr(n int) *int           { return &n }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestDaysLabel(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "Today"},
		{1, "Tomorrow"},
		{-1, "Yesterday"},
		{5, "In 5d"},
		{21, "In 3w"},
		{90, "In 3mo"},
		{-3, "3d ago"},
		{-28, "4w ago"},
		{-120, "4mo ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DaysLabel(tc.days), "days=%d", tc.days)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "30m", FormatMinutes(30))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "12h", FormatMinutes(720))
}

func TestLabelCountPercent(t *testing.T) {
	assert.Equal(t, "Identity Position", Label("identity_position"))
	assert.Equal(t, "12,345", Count(12345))
	assert.Equal(t, "67%", Percent(2.0/3.0))
	assert.Equal(t, "--", Score(nil))
	assert.Equal(t, "7.5", Score(floatPtr(7.5)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Resid…", Truncate("Residency", 6))
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "red", StripANSI("\x1b[38;2;251;73;52mred\x1b[0m"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := StripANSI(RenderTable([]string{"A", "B"}, [][]string{{"long-cell", "x"}, {"y", "z"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "z"))
}

func TestMarkdownTable(t *testing.T) {
	out := MarkdownTable([]string{"ID", "COUNT"}, [][]string{{StyleRed.Render("a"), "1"}})
	assert.Contains(t, out, "| ID | COUNT |")
	assert.Contains(t, out, "| a | 1 |")
	assert.NotContains(t, out, "\x1b[")
}

func campaignFixture() *app.CampaignResponse {
	return &app.CampaignResponse{
		Summary: app.CampaignSummary{
			GeneratedAt: refNow, HorizonDays: 14,
			CountsTotal: 2, CountsInfeasible: 1, TotalRequiredMin: 810,
		},
		Groups: []app.CampaignGroup{
			{Urgency: domain.UrgencyCritical, Items: []app.CampaignItem{{
				OpportunitySummary: app.OpportunitySummary{
					ID: "arts-council", Name: "Arts Council Grant", Track: domain.TrackGrant,
					DeadlineDate: strPtr("2026-10-20"), DeadlineType: domain.DeadlineHard,
					DaysLeft: intPtr(1), FitScore: floatPtr(8),
				},
				Urgency: domain.UrgencyCritical, Effort: domain.EffortComplex,
				RequiredMin: 720, AvailableMin: 360,
			}}},
			{Urgency: domain.UrgencyReady, Items: []app.CampaignItem{{
				OpportunitySummary: app.OpportunitySummary{
					ID: "acme-dev", Name: "Acme Developer", Track: domain.TrackJob,
					DeadlineType: domain.DeadlineRolling,
				},
				Urgency: domain.UrgencyReady, Effort: domain.EffortQuick,
				Feasible: true, RequiredMin: 30,
			}}},
		},
		Warnings: []string{"skipped active/broken.yaml: bad yaml"},
	}
}

func TestCampaign_Terminal(t *testing.T) {
	out := StripANSI(Campaign(campaignFixture()).Terminal())
	assert.Contains(t, out, "CAMPAIGN")
	assert.Contains(t, out, "CRITICAL (1)")
	assert.Contains(t, out, "READY (1)")
	assert.Contains(t, out, "arts-council")
	assert.Contains(t, out, "no (12h > 6h)")
	assert.Contains(t, out, "rolling")
	assert.Contains(t, out, "13h 30m")
	assert.Contains(t, out, "WARNING: skipped active/broken.yaml")
	assert.Less(t, strings.Index(out, "arts-council"), strings.Index(out, "acme-dev"))
}

func TestCampaign_Markdown(t *testing.T) {
	out := Campaign(campaignFixture()).Markdown()
	assert.True(t, strings.HasPrefix(out, "# Campaign\n"))
	assert.Contains(t, out, "## critical (1)")
	assert.Contains(t, out, "| arts-council |")
	assert.Contains(t, out, "## Warnings")
	assert.NotContains(t, out, "\x1b[")
}

func TestCampaign_Empty(t *testing.T) {
	out := StripANSI(Campaign(&app.CampaignResponse{Summary: app.CampaignSummary{GeneratedAt: refNow, HorizonDays: 14}}).Terminal())
	assert.Contains(t, out, "Nothing actionable inside the horizon.")
}

func TestHygiene(t *testing.T) {
	resp := &app.HygieneResponse{
		Checked: 3,
		Findings: []app.HygieneFinding{{
			OpportunitySummary: app.OpportunitySummary{ID: "acme-dev", Status: domain.StatusStaged},
			Issues: []hygiene.Issue{
				{Kind: hygiene.IssueGate, Message: "missing application_url"},
				{Kind: hygiene.IssueMaterial, Message: "missing material cv.pdf"},
			},
		}},
		KindCounts: map[hygiene.IssueKind]int{hygiene.IssueGate: 1, hygiene.IssueMaterial: 1},
	}
	out := StripANSI(Hygiene(resp).Terminal())
	assert.Contains(t, out, "3 records checked  2 issues in 1 records")
	assert.Contains(t, out, "gate 1 · material 1")
	assert.Contains(t, out, "missing application_url")
	assert.Equal(t, 1, strings.Count(out, "acme-dev"), "id printed once per finding")

	clean := StripANSI(Hygiene(&app.HygieneResponse{Checked: 2}).Terminal())
	assert.Contains(t, clean, "All records clean.")
}

func TestFunnel(t *testing.T) {
	resp := &app.FunnelResponse{
		Total: 4,
		Stages: []analytics.StageCount{
			{Stage: domain.StatusResearch, Reached: 4, Conversion: 1},
			{Stage: domain.StatusQualified, Reached: 2, Conversion: 0.5},
		},
		Breakdowns: []app.DimensionBreakdown{
			{
				Dimension: analytics.DimTrack,
				Groups:    []analytics.GroupCounts{{Key: "grant", Total: 4, Submitted: 2, Outcomes: 2, Accepted: 1, Rejected: 1}},
				Totals:    analytics.GroupCounts{Total: 4, Submitted: 2, Outcomes: 2, Accepted: 1, Rejected: 1},
			},
			{Dimension: analytics.DimChannel},
		},
	}
	out := StripANSI(Funnel(resp).Terminal())
	assert.Contains(t, out, "FUNNEL")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "TRACK")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "No records carry this dimension.")

	md := Funnel(resp).Markdown()
	assert.Contains(t, md, "## Outreach Channel")
	assert.Contains(t, md, "| grant | 4 | 2 | 50% | 2 | 1 | 1 | 0 | 50% |")
}

func TestVelocity(t *testing.T) {
	last := domain.NewDate(refNow.AddDate(0, 0, -2))
	resp := &app.VelocityResponse{Metrics: analytics.VelocityMetrics{
		Total: 5, SubmittedCount: 2, LastSubmission: &last,
		SubmittedLast7: 1, SubmittedLast30: 2,
		StatusCounts:      map[domain.Status]int{domain.StatusDrafting: 3, domain.StatusSubmitted: 2},
		EffortCounts:      map[domain.EffortLevel]int{domain.EffortDeep: 3},
		TouchBands:        map[string]int{analytics.TouchBand0to7: 4, analytics.TouchBandNever: 1},
		TrackCounts:       map[domain.Track]int{domain.TrackJob: 2, domain.TrackGrant: 3},
		DeadlinesThisWeek: 1, DeadlinesThisMonth: 2,
	}}
	out := StripANSI(Velocity(resp).Terminal())
	assert.Contains(t, out, "2026-10-17")
	assert.Contains(t, out, "1 in 7d  2 in 30d")
	assert.Contains(t, out, "1 this week  2 this month")
	assert.Contains(t, out, "Drafting")
	assert.Contains(t, out, "15d+")
	assert.Contains(t, out, "No outcomes yet.")
	assert.Less(t, strings.Index(out, "grant"), strings.Index(out, "job"))
}

func TestFollowUps(t *testing.T) {
	resp := &app.FollowUpResponse{
		GeneratedAt: refNow,
		Due: []app.FollowUpItem{{
			ID: "acme-dev", Organization: "Acme", Label: "Send first follow-up note",
			DueDate: "2026-10-17", DaysUntil: -2, State: scheduler.FollowUpDue,
		}},
		Untracked: []string{"mystery"},
	}
	out := StripANSI(FollowUps(resp).Terminal())
	assert.Contains(t, out, "1 due  0 upcoming")
	assert.Contains(t, out, "2d ago")
	assert.Contains(t, out, "Nothing scheduled.")
	assert.Contains(t, out, "· mystery")
}

func TestShow(t *testing.T) {
	d := domain.NewDate(refNow.AddDate(0, 0, 5))
	op := &domain.Opportunity{
		ID: "arts-council", Name: "Arts Council Grant", Track: domain.TrackGrant,
		Status: domain.StatusDrafting, Bucket: domain.BucketActive,
		Deadline: domain.Deadline{Date: &d, Type: domain.DeadlineHard},
		Timeline: map[domain.Status]domain.Date{
			domain.StatusResearch:  domain.NewDate(refNow.AddDate(0, 0, -10)),
			domain.StatusQualified: domain.NewDate(refNow.AddDate(0, 0, -4)),
		},
		Notes: "ask about match funding",
	}
	resp := &app.ShowResponse{
		Opportunity: op,
		Summary:     app.Summarize(op, refNow),
		Urgency:     domain.UrgencyUrgent,
		Feasibility: scheduler.FeasibilityResult{Feasible: true, DaysLeft: intPtr(5), RequiredMin: 90, AvailableMin: 1800},
		InCampaign:  true,
		NextStatus:  []domain.Status{domain.StatusQualified, domain.StatusStaged, domain.StatusWithdrawn},
		Issues:      []hygiene.Issue{{Kind: hygiene.IssueGate, Message: "missing fit score"}},
	}
	out := StripANSI(Show(resp))
	assert.Contains(t, out, "ARTS COUNCIL GRANT")
	assert.Contains(t, out, "● URGENT")
	assert.Contains(t, out, "(needs 1h 30m, 30h available)")
	assert.Contains(t, out, "qualified | staged | withdrawn")
	assert.Contains(t, out, "missing fit score")
	assert.Contains(t, out, "ask about match funding")
	timeline := out[strings.Index(out, "TIMELINE"):]
	assert.Less(t, strings.Index(timeline, "research"), strings.Index(timeline, "qualified"))
}

func TestAdvance(t *testing.T) {
	out := StripANSI(Advance(&app.AdvanceResponse{
		ID: "acme-dev", From: domain.StatusStaged, To: domain.StatusSubmitted,
		Forward: true, Relocated: true, FromBucket: domain.BucketActive, ToBucket: domain.BucketSubmitted,
	}))
	assert.Contains(t, out, "Moved acme-dev: ◑ Staged → ● Submitted")
	assert.Contains(t, out, "active/ → submitted/")

	dry := StripANSI(Advance(&app.AdvanceResponse{
		ID: "acme-dev", From: domain.StatusQualified, To: domain.StatusDrafting,
		Forward: true, DryRun: true, GateIssues: []string{"missing application_url"},
	}))
	assert.Contains(t, dry, "Would move")
	assert.Contains(t, dry, "WARNING: missing application_url")
}

func TestReconcileAndImport(t *testing.T) {
	out := StripANSI(Reconcile(&app.ReconcileResponse{DryRun: true, Moves: []app.ReconcileMove{
		{ID: "drifted", From: domain.BucketActive, To: domain.BucketSubmitted, Reason: "status interview"},
	}}))
	assert.Contains(t, out, "WOULD RELOCATE (1)")
	assert.Contains(t, out, "status interview")
	assert.Contains(t, StripANSI(Reconcile(&app.ReconcileResponse{})), "Every record is in its bucket.")

	imp := StripANSI(Import(&app.ImportResult{Created: []string{"a", "b"}, Skipped: []string{"c"}}))
	assert.Contains(t, imp, "Imported 2 leads into research_pool/, skipped 1 existing")
	assert.Contains(t, imp, "= c (exists)")
}
