package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/fasthttpx"
	"github.com/fastygo/respond/internal/middleware"
)

// OutageHandler simulates an upstream failure so integrators can inspect the
// full error envelope, extension fields included.
type OutageHandler struct {
	logger *zap.Logger
}

// NewOutageHandler builds the outage simulator.
func NewOutageHandler(log *zap.Logger) *OutageHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OutageHandler{logger: log}
}

// @Summary Simulate an upstream outage
// @Tags system
// @Router /api/v1/outage [get]
func (h *OutageHandler) Report(ctx *fasthttp.RequestCtx) {
	f := fasthttpx.From(ctx)

	retryAfter := parseInt(string(ctx.QueryArgs().Peek("retryAfter")), 60)
	_ = f.Error("DB down",
		respond.WithCode("DB_ERR"),
		respond.WithDetails(map[string]any{"retryAfter": retryAfter}),
		respond.WithExtra(map[string]any{"traceId": middleware.RequestIDFrom(ctx)}),
		respond.WithStatusCode(http.StatusServiceUnavailable),
	)
}
