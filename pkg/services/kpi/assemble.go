package kpi

import "github.com/boerenkompas/dashboard/pkg/models/domain"

// AssembleKPIs turns raw counts into the dashboard list. The order of the
// returned slice is part of the contract with the presentation layer.
func AssembleKPIs(raw domain.RawCounts) []domain.KPI {
	totalDocsTrend := Trend(raw.TotalDocuments, raw.DocumentsAtMonthStart)
	exportsTrend := Trend(raw.ExportsThisMonth, raw.ExportsPrevMonth)

	return []domain.KPI{
		{
			ID:     domain.KPITotalDocuments,
			Label:  "Totaal documenten",
			Value:  raw.TotalDocuments,
			Unit:   "documenten",
			Status: Classify(raw.TotalDocuments, totalDocumentsThresholds, domain.HigherIsBetter),
			Trend:  &totalDocsTrend,
		},
		{
			ID:     domain.KPIDocumentsAttention,
			Label:  "Documenten met aandacht",
			Value:  raw.DocumentsAttention,
			Unit:   "documenten",
			Status: Classify(raw.DocumentsAttention, documentsAttentionThresholds, domain.LowerIsBetter),
		},
		{
			ID:     domain.KPITasksOverdue,
			Label:  "Achterstallige taken",
			Value:  raw.TasksOverdue,
			Unit:   "taken",
			Status: Classify(raw.TasksOverdue, tasksOverdueThresholds, domain.LowerIsBetter),
		},
		{
			ID:     domain.KPITasksUpcoming7d,
			Label:  "Taken komende 7 dagen",
			Value:  raw.TasksUpcoming7d,
			Unit:   "taken",
			Status: Classify(raw.TasksUpcoming7d, tasksUpcomingThresholds, domain.LowerIsBetter),
		},
		{
			ID:     domain.KPIMissingItemsOpen,
			Label:  "Open ontbrekende items",
			Value:  raw.MissingItemsOpen,
			Unit:   "items",
			Status: Classify(raw.MissingItemsOpen, missingItemsThresholds, domain.LowerIsBetter),
		},
		{
			// Informational only.
			ID:     domain.KPIExportsThisMonth,
			Label:  "Exports deze maand",
			Value:  raw.ExportsThisMonth,
			Unit:   "exports",
			Status: domain.StatusGood,
			Trend:  &exportsTrend,
		},
	}
}
