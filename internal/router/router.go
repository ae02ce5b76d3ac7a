package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/fasthttpx"
	"github.com/fastygo/respond/internal/handler"
	"github.com/fastygo/respond/internal/metrics"
	"github.com/fastygo/respond/internal/middleware"
)

// Handlers groups the request handlers mounted by New.
type Handlers struct {
	Health *handler.HealthHandler
	Notes  *handler.NotesHandler
	Token  *handler.TokenHandler
	Outage *handler.OutageHandler
}

// Options carries the cross-cutting wiring for the route table.
type Options struct {
	Respond        respond.Config
	TokenSecret    string
	MetricsEnabled bool
	Logger         *zap.Logger
}

// New builds the route table with the shared middleware chain applied to
// every endpoint. The formatter installer runs innermost so the auth
// middleware and the handlers see the same per-request Formatter.
func New(handlers Handlers, opts Options) *router.Router {
	r := router.New()

	wrappers := []func(fasthttp.RequestHandler) fasthttp.RequestHandler{
		middleware.RequestID(),
		middleware.AccessLog(opts.Logger),
	}
	if opts.MetricsEnabled {
		wrappers = append(wrappers, middleware.Metrics())
	}
	wrappers = append(wrappers, fasthttpx.Install(opts.Respond, opts.Logger))

	chain := newChain(wrappers...)
	auth := middleware.BearerAuth(opts.TokenSecret, opts.Logger)

	r.GET("/health", chain(handlers.Health.Check))

	r.POST("/api/v1/token", chain(handlers.Token.Issue))

	r.GET("/api/v1/notes", chain(handlers.Notes.List))
	r.POST("/api/v1/notes", chain(handlers.Notes.Create))
	r.GET("/api/v1/notes/{id}", chain(handlers.Notes.Get))
	r.DELETE("/api/v1/notes/{id}", chain(auth(handlers.Notes.Delete)))

	r.GET("/api/v1/outage", chain(handlers.Outage.Report))

	if opts.MetricsEnabled {
		r.GET("/metrics", metrics.Handler())
	}

	return r
}

// newChain composes middleware so the first wrapper is the outermost.
func newChain(wrappers ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		for i := len(wrappers) - 1; i >= 0; i-- {
			h = wrappers[i](h)
		}
		return h
	}
}
