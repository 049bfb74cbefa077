package response

import (
	"encoding/json"
	"net/http"

	"github.com/boerenkompas/dashboard/pkg/models/api"
	"github.com/rs/zerolog"
)

const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeNoActiveTenant     = "NO_ACTIVE_TENANT"
	CodeTenantLookupFailed = "TENANT_LOOKUP_FAILED"
	CodeInternal           = "INTERNAL_ERROR"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
)

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Int("status", status).
			Msg("failed to encode response")
	}
}

// WriteError writes the shared error body. message must be safe to show to
// clients; internal details belong in the log.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteJSON(w, r, status, api.Error{Error: message, Code: code})
}
