// Command demo runs the fasthttp demo service showcasing the respond
// toolkit end to end.
package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond/internal/config"
	"github.com/fastygo/respond/internal/handler"
	"github.com/fastygo/respond/internal/lifecycle"
	"github.com/fastygo/respond/internal/router"
	"github.com/fastygo/respond/internal/store"
	"github.com/fastygo/respond/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zlog := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	defer zlog.Sync()

	manager := lifecycle.New(cfg.HTTP.ShutdownTimeout, zlog)

	st, err := store.Open(cfg.Store.Path, cfg.Store.Bucket)
	if err != nil {
		zlog.Fatal("failed to open note store", zap.Error(err))
	}
	manager.Register("store", func(ctx context.Context) error {
		return st.Close()
	})

	handlers := router.Handlers{
		Health: handler.NewHealthHandler(st, zlog),
		Notes:  handler.NewNotesHandler(st, zlog),
		Token:  handler.NewTokenHandler(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.TTL, zlog),
		Outage: handler.NewOutageHandler(zlog),
	}

	r := router.New(handlers, router.Options{
		Respond:        cfg.RespondConfig(),
		TokenSecret:    cfg.Token.Secret,
		MetricsEnabled: cfg.Metrics.Enabled,
		Logger:         zlog,
	})

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}
	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	go func() {
		zlog.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zlog.Fatal("server crashed", zap.Error(err))
		}
	}()

	if err := manager.Wait(); err != nil {
		zlog.Error("graceful shutdown error", zap.Error(err))
	}
}
