package analytics

import (
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// Last-touch bands.
const (
	TouchBand0to7   = "0-7d"
	TouchBand8to14  = "8-14d"
	TouchBand15Plus = "15d+"
	TouchBandNever  = "never"
)

// TouchBands lists bands in report order.
var TouchBands = []string{TouchBand0to7, TouchBand8to14, TouchBand15Plus, TouchBandNever}

// Deadline pressure windows, in days from today.
const (
	pressureWeekDays  = 7
	pressureMonthDays = 30
)

type VelocityMetrics struct {
	Total              int
	SubmittedCount     int
	LastSubmission     *domain.Date
	SubmittedLast7     int
	SubmittedLast30    int
	StatusCounts       map[domain.Status]int
	EffortCounts       map[domain.EffortLevel]int
	TouchBands         map[string]int
	Funnel             []StageCount
	OutcomeCounts      map[domain.Outcome]int
	TrackCounts        map[domain.Track]int
	DeadlinesThisWeek  int
	DeadlinesThisMonth int
}

// Velocity computes throughput and pressure metrics over ops as of now.
func Velocity(policy domain.Policy, ops []*domain.Opportunity, now time.Time) VelocityMetrics {
	m := VelocityMetrics{
		Total:         len(ops),
		StatusCounts:  make(map[domain.Status]int),
		EffortCounts:  make(map[domain.EffortLevel]int),
		TouchBands:    make(map[string]int),
		OutcomeCounts: make(map[domain.Outcome]int),
		TrackCounts:   make(map[domain.Track]int),
	}

	for _, op := range ops {
		m.StatusCounts[op.Status]++
		m.TrackCounts[op.Track]++
		if op.Outcome != "" {
			m.OutcomeCounts[op.Outcome]++
		}
		m.TouchBands[TouchBand(op, now)]++

		if sub, ok := op.SubmittedOn(); ok {
			m.SubmittedCount++
			if m.LastSubmission == nil || sub.After(m.LastSubmission.Time) {
				d := sub
				m.LastSubmission = &d
			}
			since := sub.DaysSince(now)
			if since >= 0 && since <= 7 {
				m.SubmittedLast7++
			}
			if since >= 0 && since <= 30 {
				m.SubmittedLast30++
			}
		}

		if !op.Status.Actionable() {
			continue
		}
		m.EffortCounts[op.Effort()]++

		if op.Deadline.Type != domain.DeadlineHard || op.Deadline.Date == nil {
			continue
		}
		days := op.Deadline.Date.DaysUntil(now)
		if days >= 0 && days <= pressureWeekDays {
			m.DeadlinesThisWeek++
		}
		if days >= 0 && days <= pressureMonthDays {
			m.DeadlinesThisMonth++
		}
	}

	m.Funnel = Funnel(policy, ops)
	return m
}

// TouchBand buckets days since op was last edited.
func TouchBand(op *domain.Opportunity, now time.Time) string {
	if op.LastTouched == nil {
		return TouchBandNever
	}
	days := op.LastTouched.DaysSince(now)
	switch {
	case days <= 7:
		return TouchBand0to7
	case days <= 14:
		return TouchBand8to14
	default:
		return TouchBand15Plus
	}
}
