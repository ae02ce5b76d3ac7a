package middleware

import (
	"time"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/respond/internal/metrics"
)

// Metrics records the response counter and latency histogram after the
// wrapped handler runs.
func Metrics() func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			next(ctx)
			metrics.RecordResponse(
				string(ctx.Method()),
				string(ctx.Path()),
				ctx.Response.StatusCode(),
				time.Since(start),
			)
		}
	}
}
