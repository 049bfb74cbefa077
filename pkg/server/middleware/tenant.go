package middleware

import (
	"errors"
	"net/http"

	"github.com/boerenkompas/dashboard/pkg/handlers/response"
	"github.com/boerenkompas/dashboard/pkg/models/domain"
	"github.com/boerenkompas/dashboard/pkg/services/tenant"
	"github.com/rs/zerolog"
)

// Tenant resolves the tenant of the user named in userHeader and stores it in
// the request context. The header is expected to be set by the auth gateway
// in front of this service. Requests without a resolvable tenant are rejected.
func Tenant(resolver tenant.Resolver, userHeader string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			logger := zerolog.Ctx(ctx)

			t, err := resolver.ResolveTenant(ctx, req.Header.Get(userHeader))
			switch {
			case errors.Is(err, tenant.ErrUnauthenticated):
				response.WriteError(w, req, http.StatusUnauthorized, response.CodeUnauthenticated, "authentication required")
				return
			case errors.Is(err, tenant.ErrNoActiveTenant):
				response.WriteError(w, req, http.StatusUnauthorized, response.CodeNoActiveTenant, "no active tenant")
				return
			case err != nil:
				logger.Error().Err(err).Msg("tenant resolution failed")
				response.WriteError(w, req, http.StatusInternalServerError, response.CodeTenantLookupFailed, "tenant lookup failed")
				return
			}

			reqLogger := logger.With().Str("tenant_id", t.ID).Logger()
			ctx = reqLogger.WithContext(domain.WithTenant(ctx, t))

			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
