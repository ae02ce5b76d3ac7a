// Command demo-chi runs a minimal net/http variant of the demo service to
// show the httpx binding under a chi router.
package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/httpx"
	"github.com/fastygo/respond/pkg/logger"
)

func main() {
	zlog := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_ENCODING"))
	defer zlog.Sync()

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(httpx.Install(respond.Config{
		SuccessLabel: os.Getenv("RESPOND_SUCCESS_LABEL"),
		FailLabel:    os.Getenv("RESPOND_FAIL_LABEL"),
		ErrorLabel:   os.Getenv("RESPOND_ERROR_LABEL"),
	}, zlog))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_ = httpx.From(w, r).Success(map[string]any{"pong": true})
	})
	r.Get("/reject", func(w http.ResponseWriter, r *http.Request) {
		_ = httpx.From(w, r).Fail(map[string]any{"reason": "not a teapot"}, respond.WithStatusCode(http.StatusTeapot))
	})
	r.Get("/oops", func(w http.ResponseWriter, r *http.Request) {
		_ = httpx.From(w, r).Error("simulated failure",
			respond.WithCode("DEMO_ERR"),
			respond.WithDetails(map[string]any{"retryAfter": 30}),
		)
	})

	addr := os.Getenv("DEMO_CHI_ADDR")
	if addr == "" {
		addr = ":8081"
	}
	zlog.Info("server started", zap.String("address", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		zlog.Fatal("server crashed", zap.Error(err))
	}
}
