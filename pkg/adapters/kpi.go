package adapters

import (
	"time"

	"github.com/boerenkompas/dashboard/pkg/models/api"
	"github.com/boerenkompas/dashboard/pkg/models/domain"
)

func MapStatusDomainToApi(s domain.Status) api.Status {
	switch s {
	case domain.StatusGood:
		return api.StatusGood
	case domain.StatusWarning:
		return api.StatusWarning
	case domain.StatusCritical:
		return api.StatusCritical
	default:
		return api.StatusWarning
	}
}

func MapKPIDomainToApi(k domain.KPI) api.KPI {
	res := api.KPI{
		ID:     string(k.ID),
		Label:  k.Label,
		Value:  k.Value,
		Unit:   k.Unit,
		Status: MapStatusDomainToApi(k.Status),
	}
	if k.Trend != nil {
		trend := *k.Trend
		res.Trend = &trend
	}
	return res
}

// MapKPIsDomainToApi keeps the input order; it never returns nil so an empty
// list encodes as [] instead of null.
func MapKPIsDomainToApi(kpis []domain.KPI) []api.KPI {
	res := make([]api.KPI, 0, len(kpis))
	for _, k := range kpis {
		res = append(res, MapKPIDomainToApi(k))
	}
	return res
}

func MapKPIResultDomainToApi(r domain.KPIResult, apiTime time.Duration) api.FullResponse {
	return api.FullResponse{
		Data: MapKPIsDomainToApi(r.KPIs),
		Meta: api.Meta{
			TenantID:    r.TenantID,
			GeneratedAt: r.GeneratedAt,
			QueryTimeMs: r.QueryTime.Milliseconds(),
			APITimeMs:   apiTime.Milliseconds(),
		},
	}
}

func MapRawCountsDomainToApi(c domain.RawCounts) api.RawCounts {
	return api.RawCounts{
		TotalDocuments:         c.TotalDocuments,
		DocumentsAttention:     c.DocumentsAttention,
		DocumentsExpiredByDate: c.DocumentsExpiredByDate,
		TasksOverdue:           c.TasksOverdue,
		TasksUpcoming7d:        c.TasksUpcoming7d,
		MissingItemsOpen:       c.MissingItemsOpen,
		ExportsThisMonth:       c.ExportsThisMonth,
		ExportsPrevMonth:       c.ExportsPrevMonth,
		DocumentsAtMonthStart:  c.DocumentsAtMonthStart,
	}
}

func MapDateBoundariesDomainToApi(b domain.DateBoundaries) api.DateBoundaries {
	return api.DateBoundaries{
		Now:            b.Now,
		TodayStart:     b.TodayStart,
		TodayEnd:       b.TodayEnd,
		SevenDaysEnd:   b.SevenDaysEnd,
		MonthStart:     b.MonthStart,
		MonthEnd:       b.MonthEnd,
		PrevMonthStart: b.PrevMonthStart,
		PrevMonthEnd:   b.PrevMonthEnd,
		TodayDate:      b.TodayDate,
	}
}

func MapSnapshotDomainToApi(s domain.Snapshot) api.Snapshot {
	return api.Snapshot{
		KPIs:       MapKPIsDomainToApi(s.KPIs),
		RawCounts:  MapRawCountsDomainToApi(s.RawCounts),
		Boundaries: MapDateBoundariesDomainToApi(s.Boundaries),
		Meta: api.SnapshotMeta{
			TenantID:    s.TenantID,
			GeneratedAt: s.GeneratedAt,
			QueryTimeMs: s.QueryTime.Milliseconds(),
			Environment: s.Environment,
		},
	}
}
