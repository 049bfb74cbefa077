package kpi

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
	"github.com/boerenkompas/dashboard/pkg/models/store"
	"github.com/boerenkompas/dashboard/pkg/store/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tenantA = "7b0e5f7e-7c1a-4c3b-9d1e-0a4f2c9b1a01"
	tenantB = "c2f1a8d4-5e6b-4f7a-8b9c-0d1e2f3a4b02"
)

type fixture struct {
	store   *memory.Store
	service Service
	logs    *bytes.Buffer
	ctx     context.Context
}

func setupFixture(t *testing.T, now string) *fixture {
	t.Helper()
	clock := mustParse(t, now)
	logs := &bytes.Buffer{}
	logger := zerolog.New(zerolog.SyncWriter(logs))
	s := memory.NewStore()

	return &fixture{
		store: s,
		service: NewService(s, Options{
			Clock:       func() time.Time { return clock },
			Environment: "test",
		}),
		logs: logs,
		ctx:  logger.WithContext(context.Background()),
	}
}

func at(t *testing.T, s string) *time.Time {
	v := mustParse(t, s)
	return &v
}

func kpiByID(t *testing.T, kpis []domain.KPI, id domain.KPIID) domain.KPI {
	t.Helper()
	for _, k := range kpis {
		if k.ID == id {
			return k
		}
	}
	t.Fatalf("kpi %s not found", id)
	return domain.KPI{}
}

func seedScenario(t *testing.T, s *memory.Store) {
	s.AddDocuments(
		store.Document{ID: "d1", TenantID: tenantA, Status: "ok", CreatedAt: *at(t, "2023-12-01T09:00:00Z")},
		store.Document{ID: "d2", TenantID: tenantA, Status: "needs_review", CreatedAt: *at(t, "2024-01-05T09:00:00Z")},
		store.Document{ID: "d3", TenantID: tenantA, Status: "expired", ExpiresAt: at(t, "2024-01-10T00:00:00Z"), CreatedAt: *at(t, "2023-11-01T09:00:00Z")},
		store.Document{ID: "d4", TenantID: tenantA, Status: "ok", ExpiresAt: at(t, "2024-01-14T00:00:00Z"), CreatedAt: *at(t, "2024-01-02T09:00:00Z")},
		store.Document{ID: "d5", TenantID: tenantA, Status: "ok", ExpiresAt: at(t, "2024-01-15T00:00:00Z"), CreatedAt: *at(t, "2024-01-03T09:00:00Z")},
		store.Document{ID: "x1", TenantID: tenantB, Status: "expired", CreatedAt: *at(t, "2023-10-01T09:00:00Z")},
	)
	s.AddTasks(
		store.Task{ID: "k1", TenantID: tenantA, Status: "open", Source: "manual", DueAt: at(t, "2024-01-14T09:00:00Z")},
		store.Task{ID: "k2", TenantID: tenantA, Status: "snoozed", Source: "manual", DueAt: at(t, "2024-01-15T08:00:00Z")},
		store.Task{ID: "k3", TenantID: tenantA, Status: "done", Source: "manual", DueAt: at(t, "2024-01-10T09:00:00Z")},
		store.Task{ID: "k4", TenantID: tenantA, Status: "open", Source: "missing_item"},
		store.Task{ID: "k5", TenantID: tenantA, Status: "open", Source: "missing_item", DueAt: at(t, "2024-01-22T23:59:59.999Z")},
		store.Task{ID: "k6", TenantID: tenantA, Status: "open", Source: "manual", DueAt: at(t, "2024-01-23T00:00:00Z")},
		store.Task{ID: "k7", TenantID: tenantA, Status: "done", Source: "missing_item"},
		store.Task{ID: "x2", TenantID: tenantB, Status: "open", Source: "missing_item", DueAt: at(t, "2024-01-01T00:00:00Z")},
	)
	s.AddExports(
		store.Export{ID: "e1", TenantID: tenantA, CreatedAt: *at(t, "2024-01-01T00:00:00Z")},
		store.Export{ID: "e2", TenantID: tenantA, CreatedAt: *at(t, "2024-01-31T23:59:59.999Z")},
		store.Export{ID: "e3", TenantID: tenantA, CreatedAt: *at(t, "2024-02-01T00:00:00Z")},
		store.Export{ID: "e4", TenantID: tenantA, CreatedAt: *at(t, "2023-12-31T23:59:59.999Z")},
		store.Export{ID: "e5", TenantID: tenantA, CreatedAt: *at(t, "2023-12-01T00:00:00Z")},
		store.Export{ID: "e6", TenantID: tenantA, CreatedAt: *at(t, "2023-11-30T23:59:59.999Z")},
		store.Export{ID: "x3", TenantID: tenantB, CreatedAt: *at(t, "2024-01-10T00:00:00Z")},
	)
}

func TestService_GetDashboardKpis_FixedOrder(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")

	res, err := f.service.GetDashboardKpis(f.ctx, tenantA)
	require.NoError(t, err)

	ids := make([]domain.KPIID, 0, len(res.KPIs))
	for _, k := range res.KPIs {
		ids = append(ids, k.ID)
	}
	assert.Equal(t, []domain.KPIID{
		domain.KPITotalDocuments,
		domain.KPIDocumentsAttention,
		domain.KPITasksOverdue,
		domain.KPITasksUpcoming7d,
		domain.KPIMissingItemsOpen,
		domain.KPIExportsThisMonth,
	}, ids)
	assert.Equal(t, tenantA, res.TenantID)
	assert.Equal(t, mustParse(t, "2024-01-15T10:00:00Z"), res.GeneratedAt)
}

func TestService_GetDashboardKpis_EmptyTenant(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")

	res, err := f.service.GetDashboardKpis(f.ctx, tenantA)
	require.NoError(t, err)
	require.Len(t, res.KPIs, 6)

	for _, k := range res.KPIs {
		assert.Equal(t, int64(0), k.Value, k.ID)
	}
	total := kpiByID(t, res.KPIs, domain.KPITotalDocuments)
	assert.Equal(t, domain.StatusWarning, total.Status)
	require.NotNil(t, total.Trend)
	assert.Equal(t, 0, *total.Trend)

	for _, id := range []domain.KPIID{
		domain.KPIDocumentsAttention,
		domain.KPITasksOverdue,
		domain.KPITasksUpcoming7d,
		domain.KPIMissingItemsOpen,
		domain.KPIExportsThisMonth,
	} {
		assert.Equal(t, domain.StatusGood, kpiByID(t, res.KPIs, id).Status, id)
	}
	assert.NotContains(t, f.logs.String(), `"level":"error"`)
}

func TestService_GetDashboardKpis_Scenario(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")
	seedScenario(t, f.store)

	res, err := f.service.GetDashboardKpis(f.ctx, tenantA)
	require.NoError(t, err)

	tests := []struct {
		id     domain.KPIID
		value  int64
		status domain.Status
		trend  *int
	}{
		{id: domain.KPITotalDocuments, value: 5, status: domain.StatusGood, trend: intPtr(150)},
		{id: domain.KPIDocumentsAttention, value: 2, status: domain.StatusWarning},
		{id: domain.KPITasksOverdue, value: 2, status: domain.StatusWarning},
		{id: domain.KPITasksUpcoming7d, value: 2, status: domain.StatusGood},
		{id: domain.KPIMissingItemsOpen, value: 2, status: domain.StatusWarning},
		{id: domain.KPIExportsThisMonth, value: 2, status: domain.StatusGood, trend: intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			k := kpiByID(t, res.KPIs, tt.id)
			assert.Equal(t, tt.value, k.Value)
			assert.Equal(t, tt.status, k.Status)
			assert.Equal(t, tt.trend, k.Trend)
			assert.NotEmpty(t, k.Label)
			assert.NotEmpty(t, k.Unit)
		})
	}
}

func TestService_GetDashboardKpis_TenantIsolation(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")
	seedScenario(t, f.store)

	snap, err := f.service.GetDebugSnapshot(f.ctx, tenantB)
	require.NoError(t, err)

	assert.Equal(t, domain.RawCounts{
		TotalDocuments:        1,
		DocumentsAttention:    1,
		TasksOverdue:          1,
		MissingItemsOpen:      1,
		ExportsThisMonth:      1,
		DocumentsAtMonthStart: 1,
	}, snap.RawCounts)
}

func TestService_GetDashboardKpis_FailedQueryDegradesToZero(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")
	seedScenario(t, f.store)
	f.store.FailQuery(queryTasksOverdue, errors.New("connection reset"))

	res, err := f.service.GetDashboardKpis(f.ctx, tenantA)
	require.NoError(t, err)
	require.Len(t, res.KPIs, 6)

	overdue := kpiByID(t, res.KPIs, domain.KPITasksOverdue)
	assert.Equal(t, int64(0), overdue.Value)
	assert.Equal(t, domain.StatusGood, overdue.Status)
	assert.Equal(t, int64(5), kpiByID(t, res.KPIs, domain.KPITotalDocuments).Value)
	assert.Equal(t, int64(2), kpiByID(t, res.KPIs, domain.KPITasksUpcoming7d).Value)

	logs := f.logs.String()
	assert.Equal(t, 1, strings.Count(logs, `"query":"tasks_overdue"`))
	assert.Equal(t, 1, strings.Count(logs, `"level":"error"`))
	assert.Contains(t, logs, "connection reset")
}

func TestService_GetDashboardKpis_AllQueriesFail(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")
	seedScenario(t, f.store)
	for _, name := range []string{
		queryTotalDocuments, queryDocumentsAttention, queryDocumentsExpiredByDate,
		queryTasksOverdue, queryTasksUpcoming7d, queryMissingItemsOpen,
		queryExportsThisMonth, queryExportsPrevMonth, queryDocumentsAtMonthStart,
	} {
		f.store.FailQuery(name, errors.New("down"))
	}

	snap, err := f.service.GetDebugSnapshot(f.ctx, tenantA)
	require.NoError(t, err)

	assert.Equal(t, domain.RawCounts{}, snap.RawCounts)
	assert.Len(t, snap.KPIs, 6)
	assert.Equal(t, 9, strings.Count(f.logs.String(), `"level":"error"`))
}

func TestService_GetDashboardKpis_NullDueDateExcluded(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")
	for _, status := range []string{"open", "snoozed", "done"} {
		f.store.AddTasks(store.Task{ID: "t-" + status, TenantID: tenantA, Status: status, Source: "manual"})
	}

	res, err := f.service.GetDashboardKpis(f.ctx, tenantA)
	require.NoError(t, err)

	assert.Equal(t, int64(0), kpiByID(t, res.KPIs, domain.KPITasksOverdue).Value)
	assert.Equal(t, int64(0), kpiByID(t, res.KPIs, domain.KPITasksUpcoming7d).Value)
}

func TestService_GetDashboardKpis_ExportAtMonthEnd(t *testing.T) {
	lastMillisecond := store.Export{ID: "e", TenantID: tenantA, CreatedAt: *at(t, "2024-01-31T23:59:59.999Z")}

	t.Run("counts in its own month", func(t *testing.T) {
		f := setupFixture(t, "2024-01-31T12:00:00Z")
		f.store.AddExports(lastMillisecond)

		snap, err := f.service.GetDebugSnapshot(f.ctx, tenantA)
		require.NoError(t, err)
		assert.Equal(t, int64(1), snap.RawCounts.ExportsThisMonth)
		assert.Equal(t, int64(0), snap.RawCounts.ExportsPrevMonth)
	})

	t.Run("is the previous month a millisecond later", func(t *testing.T) {
		f := setupFixture(t, "2024-02-01T00:00:00Z")
		f.store.AddExports(lastMillisecond)

		snap, err := f.service.GetDebugSnapshot(f.ctx, tenantA)
		require.NoError(t, err)
		assert.Equal(t, int64(0), snap.RawCounts.ExportsThisMonth)
		assert.Equal(t, int64(1), snap.RawCounts.ExportsPrevMonth)

		exports := kpiByID(t, snap.KPIs, domain.KPIExportsThisMonth)
		require.NotNil(t, exports.Trend)
		assert.Equal(t, -100, *exports.Trend)
	})
}

func TestService_GetDebugSnapshot(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")
	seedScenario(t, f.store)

	snap, err := f.service.GetDebugSnapshot(f.ctx, tenantA)
	require.NoError(t, err)

	assert.Equal(t, tenantA, snap.TenantID)
	assert.Equal(t, "test", snap.Environment)
	assert.Equal(t, mustParse(t, "2024-01-15T10:00:00Z"), snap.GeneratedAt)
	assert.Equal(t, ComputeBoundaries(mustParse(t, "2024-01-15T10:00:00Z")), snap.Boundaries)
	assert.Equal(t, domain.RawCounts{
		TotalDocuments:         5,
		DocumentsAttention:     2,
		DocumentsExpiredByDate: 2,
		TasksOverdue:           2,
		TasksUpcoming7d:        2,
		MissingItemsOpen:       2,
		ExportsThisMonth:       2,
		ExportsPrevMonth:       2,
		DocumentsAtMonthStart:  2,
	}, snap.RawCounts)
	assert.Equal(t, AssembleKPIs(snap.RawCounts), snap.KPIs)
}

func TestService_MissingTenant(t *testing.T) {
	f := setupFixture(t, "2024-01-15T10:00:00Z")

	_, err := f.service.GetDashboardKpis(f.ctx, "")
	assert.ErrorIs(t, err, ErrMissingTenant)

	_, err = f.service.GetDebugSnapshot(f.ctx, "")
	assert.ErrorIs(t, err, ErrMissingTenant)
}

func intPtr(v int) *int { return &v }
