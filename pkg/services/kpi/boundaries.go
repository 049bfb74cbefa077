package kpi

import (
	"time"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
)

const (
	upcomingWindowDays = 7
	dateLayout         = "2006-01-02"
)

// endOfDay is the last millisecond of a day, matching the precision the
// stored timestamps are compared at.
const endOfDay = 24*time.Hour - time.Millisecond

// ComputeBoundaries derives every window from the single instant now,
// converted to UTC.
func ComputeBoundaries(now time.Time) domain.DateBoundaries {
	now = now.UTC()
	y, m, d := now.Date()

	todayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	// time.Date normalises month 0 to December of the previous year.
	prevMonthStart := time.Date(y, m-1, 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)

	return domain.DateBoundaries{
		Now:            now,
		TodayStart:     todayStart,
		TodayEnd:       todayStart.Add(endOfDay),
		SevenDaysEnd:   todayStart.AddDate(0, 0, upcomingWindowDays).Add(endOfDay),
		MonthStart:     monthStart,
		MonthEnd:       nextMonthStart.Add(-time.Millisecond),
		PrevMonthStart: prevMonthStart,
		PrevMonthEnd:   monthStart.Add(-time.Millisecond),
		TodayDate:      todayStart.Format(dateLayout),
	}
}
