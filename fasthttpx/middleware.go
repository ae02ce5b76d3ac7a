package fasthttpx

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
)

// formatterKey is the user-value key the installer binds the Formatter
// under.
const formatterKey = "respond.formatter"

// Install returns middleware that binds a pre-configured Formatter onto
// every request context before the wrapped handler runs. Handlers retrieve
// it with From. The configuration is resolved once at install time, so label
// overrides apply uniformly to the whole wrapped handler tree.
func Install(cfg respond.Config, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	resolved := cfg.WithDefaults()

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			f, err := NewFormatter(ctx, resolved)
			if err != nil {
				logger.Error("failed to bind response formatter", zap.Error(err))
				return
			}
			ctx.SetUserValue(formatterKey, f)
			next(ctx)
		}
	}
}

// From returns the Formatter installed on ctx. When no installer ran it
// binds a fresh Formatter with default labels, so handlers always get a
// usable value.
func From(ctx *fasthttp.RequestCtx) *respond.Formatter {
	if f, ok := ctx.UserValue(formatterKey).(*respond.Formatter); ok {
		return f
	}
	f, _ := NewFormatter(ctx, respond.Config{})
	return f
}
