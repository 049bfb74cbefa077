package health

import (
	"context"
	"net/http"
	"time"

	"github.com/boerenkompas/dashboard/pkg/handlers/response"
	"github.com/rs/zerolog"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store Pinger
}

func NewHandler(store Pinger) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
		response.WriteError(w, r, http.StatusServiceUnavailable, response.CodeStoreUnavailable, "store unavailable")
		return
	}
	response.WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
