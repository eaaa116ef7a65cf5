package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AMESmith/customer-dashboard/docs"
	"github.com/AMESmith/customer-dashboard/internal/config"
	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/http/handler"
	"github.com/AMESmith/customer-dashboard/internal/http/middleware"
	"github.com/AMESmith/customer-dashboard/internal/http/router"
	"github.com/AMESmith/customer-dashboard/internal/jobs"
	"github.com/AMESmith/customer-dashboard/internal/logger"
	"github.com/AMESmith/customer-dashboard/internal/service"
	"github.com/AMESmith/customer-dashboard/internal/source"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// @title Customer Engagement Dashboard API
// @version 1.0
// @description Filter-and-aggregate API over customer engagement records: KPIs, time series, product breakdown and pipeline overview

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := config.Flags("api")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
		zap.String("dataset_source", cfg.Dataset.Source),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	src, err := source.FromConfig(&cfg.Dataset)
	if err != nil {
		return fmt.Errorf("failed to configure record source: %w", err)
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Server.RequestTimeoutDuration())
	dashboardService, err := service.NewDashboardService(loadCtx, src, domain.StageOrder(cfg.Dataset.StageOrder), log)
	cancelLoad()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	rt := router.NewRouter(cfg, log, dashboardService, rateLimiter, dashboardHandler)

	var scheduler *jobs.Scheduler
	if cfg.Report.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterSummaryJob(
			scheduler,
			dashboardService,
			log,
			cfg.Report.Cron,
			cfg.Report.TimeoutDuration(),
			cfg.Report.RunOnStartup,
		); err != nil {
			return fmt.Errorf("failed to register summary job: %w", err)
		}
		scheduler.Start()
		log.Info("Scheduler started with summary job",
			zap.String("cron_expr", cfg.Report.Cron),
			zap.Duration("timeout", cfg.Report.TimeoutDuration()),
		)
	} else {
		log.Info("Summary report disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      http.TimeoutHandler(rt.Setup(), cfg.Server.RequestTimeoutDuration(), "request timed out"),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
