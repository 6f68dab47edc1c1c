package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pursuit/internal/analytics"
	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixtures() []*domain.Opportunity {
	return []*domain.Opportunity{
		testutil.NewTestOpportunity("A", testutil.WithID("a"), testutil.WithStatus(domain.StatusDrafting)),
		testutil.NewTestOpportunity("B", testutil.WithID("b"), testutil.WithStatus(domain.StatusSubmitted),
			testutil.WithReached(testNow, 2, domain.StatusSubmitted), testutil.WithChannel("referral")),
		testutil.NewTestOpportunity("C", testutil.WithID("c"), testutil.WithTrack(domain.TrackJob),
			testutil.WithStatus(domain.StatusOutcome), testutil.WithOutcome(domain.OutcomeAccepted),
			testutil.WithReached(testNow, 20, domain.StatusSubmitted)),
	}
}

func TestFunnel_AllDimensions(t *testing.T) {
	svc := NewReportService(setupStore(t, reportFixtures()...), domain.DefaultPolicy())
	resp, err := svc.Funnel(context.Background(), app.FunnelRequest{Now: nowPtr()})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Stages, 8)
	assert.Equal(t, 3, resp.Stages[0].Reached)
	assert.Len(t, resp.Breakdowns, len(analytics.AllDimensions))

	track := resp.Breakdowns[0]
	assert.Equal(t, analytics.DimTrack, track.Dimension)
	assert.Equal(t, 3, track.Totals.Total)
	assert.Equal(t, 2, track.Totals.Submitted)
	assert.Equal(t, 1, track.Totals.Accepted)
}

func TestFunnel_DimensionFilter(t *testing.T) {
	svc := NewReportService(setupStore(t, reportFixtures()...), domain.DefaultPolicy())

	resp, err := svc.Funnel(context.Background(), app.FunnelRequest{Dimensions: []analytics.Dimension{analytics.DimChannel}})
	require.NoError(t, err)
	require.Len(t, resp.Breakdowns, 1)
	require.Len(t, resp.Breakdowns[0].Groups, 1, "records without a channel are left out")
	assert.Equal(t, "referral", resp.Breakdowns[0].Groups[0].Key)

	_, err = svc.Funnel(context.Background(), app.FunnelRequest{Dimensions: []analytics.Dimension{"zodiac"}})
	var appErr *app.Error
	assert.ErrorAs(t, err, &appErr)
}

func TestVelocity(t *testing.T) {
	svc := NewReportService(setupStore(t, reportFixtures()...), domain.DefaultPolicy())
	resp, err := svc.Velocity(context.Background(), app.VelocityRequest{Now: nowPtr()})
	require.NoError(t, err)

	m := resp.Metrics
	assert.Equal(t, 3, m.Total)
	assert.Equal(t, 2, m.SubmittedCount)
	assert.Equal(t, 1, m.SubmittedLast7)
	assert.Equal(t, 2, m.SubmittedLast30)
	assert.Equal(t, 1, m.OutcomeCounts[domain.OutcomeAccepted])
	assert.Equal(t, 2, m.TrackCounts[domain.TrackGrant])
}
