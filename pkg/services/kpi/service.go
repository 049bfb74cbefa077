package kpi

import (
	"context"
	"errors"
	"time"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
	"github.com/boerenkompas/dashboard/pkg/store/count"
	"github.com/rs/zerolog"
)

var ErrMissingTenant = errors.New("kpi computation requires a tenant id")

type Service interface {
	// GetDashboardKpis returns the six dashboard KPIs in presentation order.
	GetDashboardKpis(ctx context.Context, tenantID string) (domain.KPIResult, error)
	// GetDebugSnapshot returns the KPIs together with the raw counts and
	// boundaries they were derived from.
	GetDebugSnapshot(ctx context.Context, tenantID string) (domain.Snapshot, error)
}

type Options struct {
	Clock       func() time.Time
	Environment string
}

type service struct {
	store       count.Store
	clock       func() time.Time
	environment string
}

func NewService(store count.Store, opts Options) Service {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		store:       store,
		clock:       clock,
		environment: opts.Environment,
	}
}

type computation struct {
	boundaries domain.DateBoundaries
	raw        domain.RawCounts
	kpis       []domain.KPI
	duration   time.Duration
}

func (s *service) compute(ctx context.Context, tenantID string) (computation, error) {
	if tenantID == "" {
		return computation{}, ErrMissingTenant
	}

	b := ComputeBoundaries(s.clock())

	started := time.Now()
	raw := s.collectCounts(ctx, tenantID, b)
	duration := time.Since(started)

	zerolog.Ctx(ctx).Debug().
		Str("tenant_id", tenantID).
		Dur("query_time", duration).
		Msg("kpi counts collected")

	return computation{
		boundaries: b,
		raw:        raw,
		kpis:       AssembleKPIs(raw),
		duration:   duration,
	}, nil
}

func (s *service) GetDashboardKpis(ctx context.Context, tenantID string) (domain.KPIResult, error) {
	c, err := s.compute(ctx, tenantID)
	if err != nil {
		return domain.KPIResult{}, err
	}
	return domain.KPIResult{
		TenantID:    tenantID,
		KPIs:        c.kpis,
		GeneratedAt: c.boundaries.Now,
		QueryTime:   c.duration,
	}, nil
}

func (s *service) GetDebugSnapshot(ctx context.Context, tenantID string) (domain.Snapshot, error) {
	c, err := s.compute(ctx, tenantID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{
		TenantID:    tenantID,
		KPIs:        c.kpis,
		RawCounts:   c.raw,
		Boundaries:  c.boundaries,
		GeneratedAt: c.boundaries.Now,
		QueryTime:   c.duration,
		Environment: s.environment,
	}, nil
}
