package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/fasthttpx"
	"github.com/fastygo/respond/internal/store"
)

// HealthHandler reports service liveness and storage health.
type HealthHandler struct {
	store   *store.Store
	started time.Time
	logger  *zap.Logger
}

// NewHealthHandler wires the handler to the note store it probes.
func NewHealthHandler(st *store.Store, log *zap.Logger) *HealthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthHandler{store: st, started: time.Now(), logger: log}
}

// @Summary Health check
// @Tags system
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	f := fasthttpx.From(ctx)

	count, err := h.store.Count()
	if err != nil {
		h.logger.Error("storage probe failed", zap.Error(err))
		_ = f.Error("storage unavailable",
			respond.WithCode("STORE_DOWN"),
			respond.WithStatusCode(http.StatusServiceUnavailable),
			respond.WithDetails(map[string]any{"component": "boltdb"}),
		)
		return
	}

	_ = f.Success(map[string]any{
		"status": "up",
		"uptime": time.Since(h.started).Round(time.Second).String(),
		"notes":  count,
	})
}
