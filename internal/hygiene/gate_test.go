package hygiene

import (
	"testing"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = testutil.RefNow

func TestGate_CompleteGrantPasses(t *testing.T) {
	op := testutil.NewTestOpportunity("Complete",
		testutil.WithStatus(domain.StatusDrafting),
		testutil.WithDeadlineIn(testNow, 20),
	)
	assert.Empty(t, Gate(domain.DefaultPolicy(), op))
}

func TestGate_JobRequiresApplicationURL(t *testing.T) {
	policy := domain.DefaultPolicy()
	op := testutil.NewTestOpportunity("Engineer", testutil.WithTrack(domain.TrackJob))

	issues := Gate(policy, op)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "application_url")

	testutil.WithApplicationURL("https://jobs.example.com/42")(op)
	assert.Empty(t, Gate(policy, op))
}

func TestGate_NonRollingTrackRequiresDeadlineDate(t *testing.T) {
	policy := domain.DefaultPolicy()
	op := testutil.NewTestOpportunity("No Date", testutil.WithTrack(domain.TrackResidency))
	op.Deadline = domain.Deadline{Type: domain.DeadlineHard}

	issues := Gate(policy, op)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "deadline.date")

	// Explicitly rolling is a valid answer.
	op.Deadline = domain.Deadline{Type: domain.DeadlineRolling}
	assert.Empty(t, Gate(policy, op))
}

func TestGate_RollingTrackNeedsNoDeadline(t *testing.T) {
	op := testutil.NewTestOpportunity("Consulting Gig",
		testutil.WithTrack(domain.TrackConsulting),
	)
	op.Deadline = domain.Deadline{}
	assert.Empty(t, Gate(domain.DefaultPolicy(), op))
}

func TestGate_FitRequiredForAllTracks(t *testing.T) {
	policy := domain.DefaultPolicy()
	for track := range domain.ValidTracks {
		op := testutil.NewTestOpportunity("Unscored",
			testutil.WithTrack(track),
			testutil.WithApplicationURL("https://example.com"),
			testutil.WithDeadlineIn(testNow, 30),
		)
		op.Fit = domain.Fit{}

		issues := Gate(policy, op)
		assert.Equal(t, []string{"missing fit.score", "missing fit.identity_position"}, issues, "track=%s", track)
	}
}

func TestGate_ScoreOutOfRange(t *testing.T) {
	op := testutil.NewTestOpportunity("Overfit", testutil.WithFit(11, "x"))
	issues := Gate(domain.DefaultPolicy(), op)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "outside 0-10")
}

func TestIsStale(t *testing.T) {
	policy := domain.DefaultPolicy()

	fresh := testutil.NewTestOpportunity("Fresh", testutil.WithLastTouched(testNow, 14))
	assert.False(t, IsStale(policy, fresh, testNow))

	old := testutil.NewTestOpportunity("Old", testutil.WithLastTouched(testNow, 15))
	assert.True(t, IsStale(policy, old, testNow))

	never := testutil.NewTestOpportunity("Never", testutil.WithoutLastTouched())
	assert.True(t, IsStale(policy, never, testNow))

	dated := testutil.NewTestOpportunity("Dated", testutil.WithDeadlineIn(testNow, 30), testutil.WithLastTouched(testNow, 90))
	assert.False(t, IsStale(policy, dated, testNow), "dated deadlines are tracked by urgency instead")
}

func TestIsStale_RegardlessOfStatus(t *testing.T) {
	op := testutil.NewTestOpportunity("Waiting",
		testutil.WithStatus(domain.StatusAcknowledged),
		testutil.WithLastTouched(testNow, 40),
	)
	assert.True(t, IsStale(domain.DefaultPolicy(), op, testNow))
}

func TestPendingTooLong(t *testing.T) {
	policy := domain.DefaultPolicy()

	waiting := testutil.NewTestOpportunity("Waiting",
		testutil.WithStatus(domain.StatusSubmitted),
		testutil.WithReached(testNow, 45, domain.StatusSubmitted),
	)
	days, stale := PendingTooLong(policy, waiting, testNow)
	assert.True(t, stale)
	assert.Equal(t, 45, days)

	recent := testutil.NewTestOpportunity("Recent",
		testutil.WithStatus(domain.StatusSubmitted),
		testutil.WithReached(testNow, 5, domain.StatusSubmitted),
	)
	_, stale = PendingTooLong(policy, recent, testNow)
	assert.False(t, stale)

	closed := testutil.NewTestOpportunity("Closed",
		testutil.WithStatus(domain.StatusOutcome),
		testutil.WithOutcome(domain.OutcomeRejected),
		testutil.WithReached(testNow, 90, domain.StatusSubmitted),
	)
	_, stale = PendingTooLong(policy, closed, testNow)
	assert.False(t, stale)
}

func TestBucketDrift(t *testing.T) {
	ok := testutil.NewTestOpportunity("OK", testutil.WithStatus(domain.StatusSubmitted))
	assert.False(t, BucketDrift(ok))

	drifted := testutil.NewTestOpportunity("Drifted", testutil.WithStatus(domain.StatusSubmitted), testutil.WithBucket(domain.BucketActive))
	assert.True(t, BucketDrift(drifted))
}
