package httpx

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/fastygo/respond"
)

type ctxKey struct{}

// Install returns middleware that binds a pre-configured Formatter into each
// request's context before the wrapped handler runs. Handlers retrieve it
// with From or FromContext. The configuration is resolved once at install
// time.
func Install(cfg respond.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	resolved := cfg.WithDefaults()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f, err := NewFormatter(w, resolved)
			if err != nil {
				logger.Error("failed to bind response formatter", zap.Error(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWith(r.Context(), f)))
		})
	}
}

// ContextWith returns a copy of ctx carrying f.
func ContextWith(ctx context.Context, f *respond.Formatter) context.Context {
	return context.WithValue(ctx, ctxKey{}, f)
}

// FromContext returns the Formatter carried by ctx, or nil when none was
// installed.
func FromContext(ctx context.Context) *respond.Formatter {
	f, _ := ctx.Value(ctxKey{}).(*respond.Formatter)
	return f
}

// From returns the Formatter installed for r. When no installer ran it binds
// a fresh Formatter with default labels over w, so handlers always get a
// usable value.
func From(w http.ResponseWriter, r *http.Request) *respond.Formatter {
	if f := FromContext(r.Context()); f != nil {
		return f
	}
	f, _ := NewFormatter(w, respond.Config{})
	return f
}
