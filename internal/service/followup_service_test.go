package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUpSchedule_PartitionsDueAndUpcoming(t *testing.T) {
	fresh := testutil.NewTestOpportunity("Fresh", testutil.WithID("fresh"), testutil.WithStatus(domain.StatusSubmitted),
		testutil.WithReached(testNow, 0, domain.StatusSubmitted))
	week := testutil.NewTestOpportunity("Week", testutil.WithID("week"), testutil.WithStatus(domain.StatusAcknowledged),
		testutil.WithReached(testNow, 9, domain.StatusSubmitted), testutil.WithFollowUp(testNow, 8, "connect"))
	undated := testutil.NewTestOpportunity("Undated", testutil.WithID("undated"), testutil.WithStatus(domain.StatusSubmitted))
	interview := testutil.NewTestOpportunity("Interview", testutil.WithID("interview"), testutil.WithStatus(domain.StatusInterview),
		testutil.WithReached(testNow, 30, domain.StatusSubmitted))

	svc := NewFollowUpService(setupStore(t, fresh, week, undated, interview), domain.DefaultPolicy())
	resp, err := svc.Schedule(context.Background(), app.FollowUpRequest{Now: nowPtr()})
	require.NoError(t, err)

	require.Len(t, resp.Due, 1)
	assert.Equal(t, "week", resp.Due[0].ID)
	assert.Equal(t, "first_followup", resp.Due[0].Action)
	assert.Equal(t, -2, resp.Due[0].DaysUntil)

	var upcoming []string
	for _, it := range resp.Upcoming {
		upcoming = append(upcoming, it.ID+":"+it.Action)
	}
	assert.Equal(t, []string{"fresh:connect", "week:final_followup", "fresh:first_followup", "fresh:final_followup"}, upcoming)
	assert.Equal(t, []string{"undated"}, resp.Untracked)
}

func TestFollowUpLog(t *testing.T) {
	ctx := context.Background()
	op := testutil.NewTestOpportunity("Sent", testutil.WithID("sent"), testutil.WithStatus(domain.StatusSubmitted),
		testutil.WithReached(testNow, 3, domain.StatusSubmitted), testutil.WithLastTouched(testNow, 3))
	repo := setupStore(t, op)
	svc := NewFollowUpService(repo, domain.DefaultPolicy())

	_, err := svc.Log(ctx, app.FollowUpLogRequest{ID: "sent", Action: "connect", Channel: "linkedin", Note: "Reached the program officer", Now: nowPtr()})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "sent")
	require.NoError(t, err)
	require.Len(t, got.FollowUps, 1)
	assert.Equal(t, "connect", got.FollowUps[0].Action)
	assert.Equal(t, "linkedin", got.FollowUps[0].Channel)
	assert.Equal(t, "2026-10-19", got.LastTouched.String())

	resp, err := svc.Schedule(ctx, app.FollowUpRequest{Now: nowPtr()})
	require.NoError(t, err)
	assert.Empty(t, resp.Due)

	_, err = svc.Log(ctx, app.FollowUpLogRequest{ID: "sent"})
	var appErr *app.Error
	assert.ErrorAs(t, err, &appErr)

	_, err = svc.Log(ctx, app.FollowUpLogRequest{ID: "ghost", Action: "connect"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
