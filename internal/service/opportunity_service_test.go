package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/hygiene"
	"github.com/alexanderramin/pursuit/internal/lifecycle"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpportunitySvc(repo repository.OpportunityRepo) OpportunityService {
	return NewOpportunityService(repo, domain.DefaultPolicy(), nil, nil)
}

func TestAdvance_SubmitRelocatesThenRollsBackOneStep(t *testing.T) {
	ctx := context.Background()
	staged := testutil.NewTestOpportunity("Residency",
		testutil.WithID("residency"),
		testutil.WithStatus(domain.StatusStaged),
		testutil.WithDeadlineIn(testNow, 5),
	)
	repo := setupStore(t, staged)
	svc := newOpportunitySvc(repo)

	resp, err := svc.Advance(ctx, app.AdvanceRequest{ID: "residency", To: domain.StatusSubmitted, Now: nowPtr()})
	require.NoError(t, err)
	assert.True(t, resp.Forward)
	assert.True(t, resp.Relocated)
	assert.Equal(t, domain.BucketActive, resp.FromBucket)
	assert.Equal(t, domain.BucketSubmitted, resp.ToBucket)

	assert.False(t, fileExists(repo.Root(), domain.BucketActive, "residency"))
	assert.True(t, fileExists(repo.Root(), domain.BucketSubmitted, "residency"))

	got, err := repo.GetByID(ctx, "residency")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, got.Status)
	assert.Equal(t, "2026-10-19", got.Timeline[domain.StatusSubmitted].String())

	// Two steps back is illegal and leaves the record alone.
	_, err = svc.Advance(ctx, app.AdvanceRequest{ID: "residency", To: domain.StatusDrafting, Now: nowPtr()})
	require.ErrorIs(t, err, lifecycle.ErrIllegalTransition)
	assert.True(t, fileExists(repo.Root(), domain.BucketSubmitted, "residency"))

	back, err := svc.Advance(ctx, app.AdvanceRequest{ID: "residency", To: domain.StatusStaged, Now: nowPtr()})
	require.NoError(t, err)
	assert.False(t, back.Forward)
	assert.True(t, back.Relocated)
	assert.True(t, fileExists(repo.Root(), domain.BucketActive, "residency"))
	assert.False(t, fileExists(repo.Root(), domain.BucketSubmitted, "residency"))

	got, err = repo.GetByID(ctx, "residency")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStaged, got.Status)
	_, kept := got.Timeline[domain.StatusSubmitted]
	assert.True(t, kept, "timeline is append-only")
}

func TestAdvance_DryRunLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	op := testutil.NewTestOpportunity("Dry", testutil.WithID("dry"), testutil.WithStatus(domain.StatusStaged))
	repo := setupStore(t, op)

	resp, err := newOpportunitySvc(repo).Advance(ctx, app.AdvanceRequest{ID: "dry", To: domain.StatusSubmitted, DryRun: true, Now: nowPtr()})
	require.NoError(t, err)
	assert.True(t, resp.DryRun)
	assert.True(t, resp.Relocated)

	got, err := repo.GetByID(ctx, "dry")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStaged, got.Status)
	assert.True(t, fileExists(repo.Root(), domain.BucketActive, "dry"))
}

func TestAdvance_Errors(t *testing.T) {
	ctx := context.Background()
	repo := setupStore(t, testutil.NewTestOpportunity("Closed", testutil.WithID("closed"),
		testutil.WithStatus(domain.StatusOutcome), testutil.WithOutcome(domain.OutcomeRejected)))
	svc := newOpportunitySvc(repo)

	_, err := svc.Advance(ctx, app.AdvanceRequest{ID: "missing", To: domain.StatusQualified})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Advance(ctx, app.AdvanceRequest{ID: "closed", To: "shortlisted"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)

	_, err = svc.Advance(ctx, app.AdvanceRequest{ID: "closed", To: domain.StatusInterview})
	assert.ErrorIs(t, err, lifecycle.ErrIllegalTransition)
}

func TestAdvance_WarnsOnGateGaps(t *testing.T) {
	op := testutil.NewTestOpportunity("Job", testutil.WithID("job"), testutil.WithTrack(domain.TrackJob))
	repo := setupStore(t, op)

	resp, err := newOpportunitySvc(repo).Advance(context.Background(), app.AdvanceRequest{ID: "job", To: domain.StatusQualified, Now: nowPtr()})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing target.application_url (required for job track)"}, resp.GateIssues)
}

func TestAdvance_ResearchPoolLeadMovesToActive(t *testing.T) {
	op := testutil.NewTestOpportunity("Lead", testutil.WithID("lead"), testutil.WithBucket(domain.BucketResearchPool))
	repo := setupStore(t, op)

	_, err := newOpportunitySvc(repo).Advance(context.Background(), app.AdvanceRequest{ID: "lead", To: domain.StatusQualified, Now: nowPtr()})
	require.NoError(t, err)
	assert.False(t, fileExists(repo.Root(), domain.BucketResearchPool, "lead"))
	assert.True(t, fileExists(repo.Root(), domain.BucketActive, "lead"))
}

func TestShow(t *testing.T) {
	op := testutil.NewTestOpportunity("Show Me",
		testutil.WithID("show-me"),
		testutil.WithStatus(domain.StatusSubmitted),
		testutil.WithReached(testNow, 8, domain.StatusSubmitted),
		testutil.WithFollowUp(testNow, 6, "connect"),
	)
	repo := setupStore(t, op)

	resp, err := newOpportunitySvc(repo).Show(context.Background(), app.ShowRequest{ID: "show-me", Now: nowPtr()})
	require.NoError(t, err)
	assert.Equal(t, domain.UrgencyReady, resp.Urgency)
	assert.False(t, resp.InCampaign)
	assert.Equal(t, 4, resp.StageIndex)
	assert.Equal(t, []domain.Status{domain.StatusStaged, domain.StatusAcknowledged, domain.StatusWithdrawn}, resp.NextStatus)

	require.Len(t, resp.FollowUps, 3)
	assert.Equal(t, "connect", resp.FollowUps[0].Action)
	assert.Equal(t, "done", string(resp.FollowUps[0].State))
	assert.Equal(t, "due", string(resp.FollowUps[1].State))
	assert.Equal(t, "upcoming", string(resp.FollowUps[2].State))
}

func TestShow_IncludesHygieneIssues(t *testing.T) {
	op := testutil.NewTestOpportunity("Gappy", testutil.WithID("gappy"), testutil.WithStatus(domain.StatusDrafting),
		testutil.WithTrack(domain.TrackGrant))
	op.Fit = domain.Fit{}
	op.Deadline = domain.Deadline{Type: domain.DeadlineHard}
	repo := setupStore(t, op)

	resp, err := newOpportunitySvc(repo).Show(context.Background(), app.ShowRequest{ID: "gappy", Now: nowPtr()})
	require.NoError(t, err)
	var kinds []hygiene.IssueKind
	for _, is := range resp.Issues {
		kinds = append(kinds, is.Kind)
	}
	assert.Equal(t, []hygiene.IssueKind{hygiene.IssueGate, hygiene.IssueGate, hygiene.IssueGate}, kinds)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := setupStore(t)
	svc := newOpportunitySvc(repo)
	score := 8.0

	op, err := svc.Create(ctx, app.CreateRequest{
		Name:         "Headlands Center AIR",
		Track:        "residency",
		DeadlineDate: "2026-12-01",
		FitScore:     &score,
		EffortLevel:  "deep",
		Now:          nowPtr(),
	})
	require.NoError(t, err)
	assert.Equal(t, "headlands-center-air", op.ID)
	assert.Equal(t, domain.DeadlineHard, op.Deadline.Type)
	assert.True(t, fileExists(repo.Root(), domain.BucketActive, "headlands-center-air"))

	_, err = svc.Create(ctx, app.CreateRequest{Name: "Headlands Center AIR", Track: "residency"})
	assert.Error(t, err, "duplicate id")

	_, err = svc.Create(ctx, app.CreateRequest{Name: "X", Track: "hobby"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "track", ve.Field)

	_, err = svc.Create(ctx, app.CreateRequest{Name: "Y", Track: "grant", DeadlineDate: "soon"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "deadline.date", ve.Field)

	_, err = svc.Create(ctx, app.CreateRequest{Track: "grant"})
	var appErr *app.Error
	assert.ErrorAs(t, err, &appErr)
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	repo := setupStore(t)
	writeRawRecord(t, repo.Root(), domain.BucketActive, "late.yaml", "id: late\nname: Late\ntrack: grant\nstatus: acknowledged\n")

	svc := newOpportunitySvc(repo)
	resp, err := svc.Reconcile(ctx, app.ReconcileRequest{DryRun: true})
	require.NoError(t, err)
	require.Len(t, resp.Moves, 1)
	assert.True(t, fileExists(repo.Root(), domain.BucketActive, "late"))

	resp, err = svc.Reconcile(ctx, app.ReconcileRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Moves, 1)
	assert.Equal(t, domain.BucketSubmitted, resp.Moves[0].To)
	assert.True(t, fileExists(repo.Root(), domain.BucketSubmitted, "late"))
	assert.Empty(t, resp.Warnings)
}
