package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pursuit/internal/analytics"
)

type FunnelRequest struct {
	Now *time.Time
	// Dimensions restricts the breakdowns; empty means all.
	Dimensions []analytics.Dimension
}

func (r FunnelRequest) Validate() error {
	for _, d := range r.Dimensions {
		known := false
		for _, k := range analytics.AllDimensions {
			known = known || d == k
		}
		if !known {
			return invalid(fmt.Sprintf("unknown dimension %q", d))
		}
	}
	return nil
}

type DimensionBreakdown struct {
	Dimension analytics.Dimension
	Groups    []analytics.GroupCounts
	Totals    analytics.GroupCounts
}

type FunnelResponse struct {
	GeneratedAt time.Time
	Total       int
	Stages      []analytics.StageCount
	Breakdowns  []DimensionBreakdown
	Warnings    []string
}

type VelocityRequest struct {
	Now *time.Time
}

type VelocityResponse struct {
	GeneratedAt time.Time
	Metrics     analytics.VelocityMetrics
	Warnings    []string
}
