package scheduler

import (
	"testing"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = testutil.RefNow

func deadlineIn(days int) domain.Deadline {
	d := domain.NewDate(testNow.AddDate(0, 0, days))
	return domain.Deadline{Date: &d, Type: domain.DeadlineHard}
}

func TestClassifyUrgency_Boundaries(t *testing.T) {
	tests := []struct {
		days int
		want domain.Urgency
	}{
		{-10, domain.UrgencyCritical},
		{-1, domain.UrgencyCritical},
		{0, domain.UrgencyCritical},
		{3, domain.UrgencyCritical},
		{4, domain.UrgencyUrgent},
		{7, domain.UrgencyUrgent},
		{8, domain.UrgencyUpcoming},
		{14, domain.UrgencyUpcoming},
		{15, domain.UrgencyReady},
		{90, domain.UrgencyReady},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyUrgency(deadlineIn(tt.days), testNow), "days=%d", tt.days)
	}
}

func TestClassifyUrgency_UndatedAlwaysReady(t *testing.T) {
	assert.Equal(t, domain.UrgencyReady, ClassifyUrgency(domain.Deadline{Type: domain.DeadlineRolling}, testNow))
	assert.Equal(t, domain.UrgencyReady, ClassifyUrgency(domain.Deadline{Type: domain.DeadlineTBA}, testNow))

	// A rolling deadline that still carries a stale date is not counted.
	d := domain.NewDate(testNow.AddDate(0, 0, 1))
	assert.Equal(t, domain.UrgencyReady, ClassifyUrgency(domain.Deadline{Date: &d, Type: domain.DeadlineRolling}, testNow))
}

func TestCheckFeasibility(t *testing.T) {
	policy := domain.DefaultPolicy()

	quick := CheckFeasibility(policy, domain.EffortQuick, deadlineIn(3), testNow)
	assert.True(t, quick.Feasible)
	assert.Equal(t, 30, quick.RequiredMin)
	assert.Equal(t, 1080, quick.AvailableMin)

	tight := CheckFeasibility(policy, domain.EffortComplex, deadlineIn(1), testNow)
	assert.False(t, tight.Feasible)
	assert.Equal(t, 720, tight.RequiredMin)
	assert.Equal(t, 360, tight.AvailableMin)

	week := CheckFeasibility(policy, domain.EffortComplex, deadlineIn(7), testNow)
	assert.True(t, week.Feasible)
	assert.Equal(t, 2520, week.AvailableMin)
	require.NotNil(t, week.DaysLeft)
	assert.Equal(t, 7, *week.DaysLeft)
}

func TestCheckFeasibility_PastDeadlineInfeasible(t *testing.T) {
	policy := domain.DefaultPolicy()
	for _, effort := range []domain.EffortLevel{domain.EffortQuick, domain.EffortStandard, domain.EffortDeep, domain.EffortComplex} {
		res := CheckFeasibility(policy, effort, deadlineIn(-1), testNow)
		assert.False(t, res.Feasible, "effort=%s", effort)
		assert.True(t, res.Expired)
	}
}

func TestCheckFeasibility_RollingAlwaysFeasible(t *testing.T) {
	policy := domain.DefaultPolicy()
	res := CheckFeasibility(policy, domain.EffortComplex, domain.Deadline{Type: domain.DeadlineRolling}, testNow)
	assert.True(t, res.Feasible)
	assert.Nil(t, res.DaysLeft)
}

func TestCheckFeasibility_UsesInjectedPolicy(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.DailyAvailableMin = 60

	res := CheckFeasibility(policy, domain.EffortDeep, deadlineIn(3), testNow)
	assert.False(t, res.Feasible, "270 minutes needed, 180 available")
}

func TestCheckFeasibility_UnknownEffortFallsBackToStandard(t *testing.T) {
	res := CheckFeasibility(domain.DefaultPolicy(), "heroic", deadlineIn(3), testNow)
	assert.Equal(t, 90, res.RequiredMin)
}
