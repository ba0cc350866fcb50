package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-api/config"
	internalmiddleware "github.com/fleetdesk/fleet-api/internal/middleware"
	l "github.com/fleetdesk/fleet-api/logger"
	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/metrics"
	"github.com/fleetdesk/fleet-api/pkg/routes"
)

func main() {
	config.Init()
	l.InitLogger()
	db.InitDB()
	defer l.FlushLogger()

	cfg := config.Get()
	log.WithFields(log.Fields{
		"Hostname":    cfg.Hostname,
		"Auth":        cfg.Auth,
		"WebPort":     cfg.WebPort,
		"MetricsPort": cfg.MetricsPort,
		"LogLevel":    cfg.LogLevel,
		"Debug":       cfg.Debug,
		"BucketName":  cfg.BucketName,
	}).Info("Configuration Values:")

	metrics.RegisterAPIMetrics()

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		internalmiddleware.NewPatternMiddleware(),
		dependencies.Middleware,
	)

	r.Get("/", routes.StatusOK)

	r.Route("/api/fleet/v1", func(s chi.Router) {
		s.Route("/devices", routes.MakeDevicesRouter)
		s.Route("/enrollment-tokens", routes.MakeEnrollmentTokensRouter)
		s.Route("/releases", routes.MakeClientReleasesRouter)
		s.Route("/device-groups", routes.MakeDeviceGroupsRouter)
		s.Route("/agent", routes.MakeAgentRouter)
	})

	mr := chi.NewRouter()
	mr.Get("/", routes.StatusOK)
	mr.Handle("/metrics", promhttp.Handler())

	srv := http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.WebPort),
		Handler: r,
	}

	msrv := http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler: mr,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint
		if err := srv.Shutdown(context.Background()); err != nil {
			log.WithFields(log.Fields{"error": err}).Fatal("HTTP Server Shutdown failed")
		}
		if err := msrv.Shutdown(context.Background()); err != nil {
			log.WithFields(log.Fields{"error": err}).Fatal("HTTP Server Shutdown failed")
		}
		close(idleConnsClosed)
	}()

	go func() {
		if err := msrv.ListenAndServe(); err != http.ErrServerClosed {
			log.WithFields(log.Fields{"error": err}).Fatal("Metrics Service Stopped")
		}
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.WithFields(log.Fields{"error": err}).Fatal("Service Stopped")
	}

	<-idleConnsClosed
	log.Info("Everything has shut down, goodbye")
}
