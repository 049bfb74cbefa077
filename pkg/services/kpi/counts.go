package kpi

import (
	"context"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
	"github.com/boerenkompas/dashboard/pkg/store/count"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	queryTotalDocuments         = "total_documents"
	queryDocumentsAttention     = "documents_attention"
	queryDocumentsExpiredByDate = "documents_expired_by_date"
	queryTasksOverdue           = "tasks_overdue"
	queryTasksUpcoming7d        = "tasks_upcoming_7d"
	queryMissingItemsOpen       = "missing_items_open"
	queryExportsThisMonth       = "exports_this_month"
	queryExportsPrevMonth       = "exports_prev_month"
	queryDocumentsAtMonthStart  = "documents_at_month_start"
)

var activeTaskStatuses = []string{
	string(domain.TaskStatusOpen),
	string(domain.TaskStatusSnoozed),
}

type countTarget struct {
	query count.Query
	dst   *int64
}

func countTargets(tenantID string, b domain.DateBoundaries, raw *domain.RawCounts) []countTarget {
	q := func(name string, table count.Table, filters ...count.Filter) count.Query {
		return count.Query{Name: name, Table: table, TenantID: tenantID, Filters: filters}
	}

	return []countTarget{
		{
			query: q(queryTotalDocuments, count.TableDocuments),
			dst:   &raw.TotalDocuments,
		},
		{
			// Status only. Expired-by-date documents are counted separately.
			query: q(queryDocumentsAttention, count.TableDocuments,
				count.In(count.ColumnStatus,
					string(domain.DocumentStatusNeedsReview),
					string(domain.DocumentStatusExpired),
				),
			),
			dst: &raw.DocumentsAttention,
		},
		{
			query: q(queryDocumentsExpiredByDate, count.TableDocuments,
				count.NotNull(count.ColumnExpiresAt),
				count.Lt(count.ColumnExpiresAt, b.TodayStart),
			),
			dst: &raw.DocumentsExpiredByDate,
		},
		{
			query: q(queryTasksOverdue, count.TableTasks,
				count.In(count.ColumnStatus, activeTaskStatuses...),
				count.NotNull(count.ColumnDueAt),
				count.Lt(count.ColumnDueAt, b.Now),
			),
			dst: &raw.TasksOverdue,
		},
		{
			query: q(queryTasksUpcoming7d, count.TableTasks,
				append([]count.Filter{
					count.In(count.ColumnStatus, activeTaskStatuses...),
					count.NotNull(count.ColumnDueAt),
				}, count.Between(count.ColumnDueAt, b.TodayStart, b.SevenDaysEnd)...)...,
			),
			dst: &raw.TasksUpcoming7d,
		},
		{
			query: q(queryMissingItemsOpen, count.TableTasks,
				count.Eq(count.ColumnSource, string(domain.TaskSourceMissingItem)),
				count.In(count.ColumnStatus, activeTaskStatuses...),
			),
			dst: &raw.MissingItemsOpen,
		},
		{
			query: q(queryExportsThisMonth, count.TableExports,
				count.Between(count.ColumnCreatedAt, b.MonthStart, b.MonthEnd)...,
			),
			dst: &raw.ExportsThisMonth,
		},
		{
			query: q(queryExportsPrevMonth, count.TableExports,
				count.Between(count.ColumnCreatedAt, b.PrevMonthStart, b.PrevMonthEnd)...,
			),
			dst: &raw.ExportsPrevMonth,
		},
		{
			query: q(queryDocumentsAtMonthStart, count.TableDocuments,
				count.Lt(count.ColumnCreatedAt, b.MonthStart),
			),
			dst: &raw.DocumentsAtMonthStart,
		},
	}
}

// collectCounts runs all count queries concurrently and waits for every one of
// them. A failing query is logged and left at zero; it never aborts the others.
func (s *service) collectCounts(ctx context.Context, tenantID string, b domain.DateBoundaries) domain.RawCounts {
	logger := zerolog.Ctx(ctx)

	var raw domain.RawCounts
	var g errgroup.Group
	for _, target := range countTargets(tenantID, b, &raw) {
		g.Go(func() error {
			n, err := s.store.Count(ctx, target.query)
			if err != nil {
				logger.Error().
					Err(err).
					Str("query", target.query.Name).
					Str("tenant_id", tenantID).
					Msg("kpi count query failed, using 0")
				n = 0
			}
			// Each target writes a distinct field of raw.
			*target.dst = n
			return nil
		})
	}
	_ = g.Wait()

	return raw
}
