package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
	sqlstore "github.com/boerenkompas/dashboard/pkg/store/sql"
	"github.com/rs/zerolog"
)

var (
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrNoActiveTenant  = errors.New("no active tenant for user")
)

type MembershipStore interface {
	ActiveTenantID(ctx context.Context, userID string) (string, error)
}

// Resolver maps an authenticated user to the tenant every query of the request
// is scoped to. It never falls back to a default tenant.
type Resolver interface {
	ResolveTenant(ctx context.Context, userID string) (domain.Tenant, error)
}

type resolver struct {
	memberships MembershipStore
}

func NewResolver(memberships MembershipStore) Resolver {
	return &resolver{memberships: memberships}
}

func (r *resolver) ResolveTenant(ctx context.Context, userID string) (domain.Tenant, error) {
	if userID == "" {
		return domain.Tenant{}, ErrUnauthenticated
	}

	tenantID, err := r.memberships.ActiveTenantID(ctx, userID)
	if errors.Is(err, sqlstore.ErrNoMembership) {
		return domain.Tenant{}, ErrNoActiveTenant
	}
	if err != nil {
		return domain.Tenant{}, fmt.Errorf("resolve tenant: %w", err)
	}
	if tenantID == "" {
		return domain.Tenant{}, ErrNoActiveTenant
	}

	zerolog.Ctx(ctx).Debug().
		Str("user_id", userID).
		Str("tenant_id", tenantID).
		Msg("tenant resolved")

	return domain.Tenant{ID: tenantID, UserID: userID}, nil
}
