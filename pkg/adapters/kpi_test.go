package adapters

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKPIDomainToApi_TrendOmittedWhenNil(t *testing.T) {
	k := MapKPIDomainToApi(domain.KPI{
		ID:     domain.KPITasksOverdue,
		Label:  "Achterstallige taken",
		Value:  2,
		Unit:   "taken",
		Status: domain.StatusWarning,
	})

	data, err := json.Marshal(k)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"tasks_overdue","label":"Achterstallige taken","value":2,"unit":"taken","status":"warning"}`,
		string(data))
}

func TestMapKPIDomainToApi_TrendCopied(t *testing.T) {
	trend := -50
	in := domain.KPI{ID: domain.KPIExportsThisMonth, Status: domain.StatusGood, Trend: &trend}

	out := MapKPIDomainToApi(in)

	require.NotNil(t, out.Trend)
	assert.Equal(t, -50, *out.Trend)
	*in.Trend = 10
	assert.Equal(t, -50, *out.Trend)
}

func TestMapKPIsDomainToApi_EmptyIsNotNull(t *testing.T) {
	data, err := json.Marshal(MapKPIsDomainToApi(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMapKPIResultDomainToApi_Meta(t *testing.T) {
	generated := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	res := MapKPIResultDomainToApi(domain.KPIResult{
		TenantID:    "tenant-1",
		GeneratedAt: generated,
		QueryTime:   42 * time.Millisecond,
	}, 57*time.Millisecond)

	assert.Equal(t, "tenant-1", res.Meta.TenantID)
	assert.Equal(t, generated, res.Meta.GeneratedAt)
	assert.Equal(t, int64(42), res.Meta.QueryTimeMs)
	assert.Equal(t, int64(57), res.Meta.APITimeMs)
	assert.NotNil(t, res.Data)
}
