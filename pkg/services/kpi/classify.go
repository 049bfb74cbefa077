package kpi

import (
	"math"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
)

// Threshold table per KPI. total_documents uses HigherIsBetter with Warning 0
// so an empty tenant lands on warning, never critical.
var (
	totalDocumentsThresholds     = domain.Thresholds{Good: 1, Warning: 0}
	documentsAttentionThresholds = domain.Thresholds{Good: 0, Warning: 3}
	tasksOverdueThresholds       = domain.Thresholds{Good: 0, Warning: 2}
	tasksUpcomingThresholds      = domain.Thresholds{Good: 2, Warning: 5}
	missingItemsThresholds       = domain.Thresholds{Good: 0, Warning: 3}
)

func Classify(value int64, t domain.Thresholds, dir domain.Direction) domain.Status {
	if dir == domain.HigherIsBetter {
		switch {
		case value >= t.Good:
			return domain.StatusGood
		case value >= t.Warning:
			return domain.StatusWarning
		default:
			return domain.StatusCritical
		}
	}

	switch {
	case value <= t.Good:
		return domain.StatusGood
	case value <= t.Warning:
		return domain.StatusWarning
	default:
		return domain.StatusCritical
	}
}

// Trend returns the percentage change of current against baseline. Growth from
// a zero baseline is reported as 100, not as an infinite or undefined change.
// Halves round towards positive infinity.
func Trend(current, baseline int64) int {
	if baseline == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	pct := float64(current-baseline) / float64(baseline) * 100
	return int(math.Floor(pct + 0.5))
}
