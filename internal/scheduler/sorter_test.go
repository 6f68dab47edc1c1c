package scheduler

import (
	"testing"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func makeEntry(id string, urgency domain.Urgency, daysLeft *int, opts ...testutil.OpportunityOption) CampaignEntry {
	opts = append([]testutil.OpportunityOption{testutil.WithID(id)}, opts...)
	return CampaignEntry{
		Opportunity: testutil.NewTestOpportunity(id, opts...),
		Urgency:     urgency,
		DaysLeft:    daysLeft,
	}
}

func intPtr(n int) *int { return &n }

func TestCanonicalSort_UrgencyPriority(t *testing.T) {
	entries := []CampaignEntry{
		makeEntry("ready", domain.UrgencyReady, nil),
		makeEntry("critical", domain.UrgencyCritical, intPtr(1)),
		makeEntry("upcoming", domain.UrgencyUpcoming, intPtr(9)),
		makeEntry("urgent", domain.UrgencyUrgent, intPtr(5)),
	}

	CanonicalSort(entries)

	ids := []string{entries[0].Opportunity.ID, entries[1].Opportunity.ID, entries[2].Opportunity.ID, entries[3].Opportunity.ID}
	assert.Equal(t, []string{"critical", "urgent", "upcoming", "ready"}, ids)
}

func TestCanonicalSort_DeadlineTiebreak(t *testing.T) {
	entries := []CampaignEntry{
		makeEntry("later", domain.UrgencyCritical, intPtr(3)),
		makeEntry("sooner", domain.UrgencyCritical, intPtr(-1)),
	}

	CanonicalSort(entries)

	assert.Equal(t, "sooner", entries[0].Opportunity.ID, "earlier deadline should sort first")
}

func TestCanonicalSort_UndatedLast(t *testing.T) {
	entries := []CampaignEntry{
		makeEntry("rolling", domain.UrgencyReady, nil),
		makeEntry("far", domain.UrgencyReady, intPtr(40)),
	}

	CanonicalSort(entries)

	assert.Equal(t, "far", entries[0].Opportunity.ID)
}

func TestCanonicalSort_FitScoreThenTierThenID(t *testing.T) {
	entries := []CampaignEntry{
		makeEntry("low-fit", domain.UrgencyReady, nil, testutil.WithFit(5, "x")),
		makeEntry("b-tier2", domain.UrgencyReady, nil, testutil.WithFit(9, "x"), testutil.WithTags("job-tier-2")),
		makeEntry("a-tier2", domain.UrgencyReady, nil, testutil.WithFit(9, "x"), testutil.WithTags("job-tier-2")),
		makeEntry("tier1", domain.UrgencyReady, nil, testutil.WithFit(9, "x"), testutil.WithTags("job-tier-1")),
	}

	CanonicalSort(entries)

	assert.Equal(t, "tier1", entries[0].Opportunity.ID)
	assert.Equal(t, "a-tier2", entries[1].Opportunity.ID)
	assert.Equal(t, "b-tier2", entries[2].Opportunity.ID)
	assert.Equal(t, "low-fit", entries[3].Opportunity.ID)
}
