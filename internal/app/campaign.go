package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

type CampaignRequest struct {
	Now *time.Time
	// HorizonDays overrides the policy horizon when positive.
	HorizonDays int
}

func (r CampaignRequest) Validate() error {
	if r.HorizonDays < 0 {
		return invalid(fmt.Sprintf("horizon must be positive, got %d", r.HorizonDays))
	}
	return nil
}

type CampaignItem struct {
	OpportunitySummary
	Urgency      domain.Urgency
	Effort       domain.EffortLevel
	Feasible     bool
	Expired      bool
	RequiredMin  int
	AvailableMin int
}

type CampaignGroup struct {
	Urgency domain.Urgency
	Items   []CampaignItem
}

type CampaignSummary struct {
	GeneratedAt      time.Time
	HorizonDays      int
	CountsTotal      int
	CountsInfeasible int
	CountsExpired    int
	TotalRequiredMin int
}

type CampaignResponse struct {
	Summary CampaignSummary
	// Groups holds non-empty urgency tiers, most urgent first.
	Groups   []CampaignGroup
	Warnings []string
}
