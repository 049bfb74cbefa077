package commands

import (
	"context"
	"fmt"

	"github.com/boerenkompas/dashboard/pkg/services/kpi"
	"github.com/boerenkompas/dashboard/pkg/store/duckdb/records"
	"github.com/google/uuid"
)

// Session is an open connection to the configured store. Records is nil for
// drivers other than duckdb.
type Session struct {
	KPI     kpi.Service
	Records records.Store
	Close   func() error
}

type Connector func(ctx context.Context) (*Session, error)

func parseTenant(tenantID string) (string, error) {
	id, err := uuid.Parse(tenantID)
	if err != nil {
		return "", fmt.Errorf("invalid tenant id %q: %w", tenantID, err)
	}
	return id.String(), nil
}
