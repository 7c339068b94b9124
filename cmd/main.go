// Package main wires the HTTP server for the GitHub→Telegram notifier.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/troublescope/github2gram/config"
	"github.com/troublescope/github2gram/internal/notifier"
	"github.com/troublescope/github2gram/internal/transport/http/middleware"
	handlers_fiber "github.com/troublescope/github2gram/internal/transport/http/server/handlers-fiber"
	"github.com/troublescope/github2gram/internal/usecase"
	"github.com/troublescope/github2gram/pkg/logger"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	sink, err := notifier.New("telegram", log, cfg)
	if err != nil {
		log.Errorw("notifier initialization error", "error", err)
		return
	}

	uc := usecase.New(log, sink, cfg, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()
	log.Infow("server starting", "addr", cfg.ServerAddr(), "routes", len(cfg.Routing.Overrides))

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
