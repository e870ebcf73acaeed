package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/wealthpath/finance-tracker/docs"
	"github.com/wealthpath/finance-tracker/internal/config"
	"github.com/wealthpath/finance-tracker/internal/handler"
	"github.com/wealthpath/finance-tracker/internal/logger"
	"github.com/wealthpath/finance-tracker/internal/repository"
	"github.com/wealthpath/finance-tracker/internal/scheduler"
	"github.com/wealthpath/finance-tracker/internal/service"
	"github.com/wealthpath/finance-tracker/internal/store"
)

// @title Finance Tracker API
// @version 1.0
// @description Personal finance tracker for debts, fixed bills, incomes and projects.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.Env, os.Stdout)
	log := logger.Logger()
	logger.Debug("Configuration loaded",
		"env", cfg.Env,
		"store", cfg.Store.Backend,
		"rollover", cfg.RolloverEnabled,
		"currency", cfg.Currency,
	)
	if cfg.Store.Backend == config.BackendFile && cfg.Store.Passphrase == "" {
		logger.Warn("File store is not encrypted, set STORE_PASSPHRASE to encrypt it", "dir", cfg.Store.DataDir)
	}

	ctx := context.Background()
	st, closeStore, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Error("Failed to open store", slog.String("backend", cfg.Store.Backend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = closeStore() }()

	// Initialize repositories
	debtRepo := repository.NewDebtRepository(st)
	fixedBillRepo := repository.NewFixedBillRepository(st)
	incomeRepo := repository.NewIncomeRepository(st)
	projectRepo := repository.NewProjectRepository(st)

	// Initialize services
	debtService := service.NewDebtService(debtRepo, time.Now)
	fixedBillService := service.NewFixedBillService(fixedBillRepo, time.Now)
	incomeService := service.NewIncomeService(incomeRepo, time.Now)
	projectService := service.NewProjectService(projectRepo)
	dashboardService := service.NewDashboardService(debtRepo, fixedBillRepo, incomeRepo, projectRepo, time.Now)
	backupService := service.NewBackupService(debtRepo, fixedBillRepo, incomeRepo, time.Now)
	chartService := service.NewChartService(dashboardService)
	reportService := service.NewReportService(dashboardService, cfg.Currency, time.Now)

	// Monthly reset of paid recurring bills
	var rollover *scheduler.Scheduler
	var rolloverStatus handler.RolloverStatus
	if cfg.RolloverEnabled {
		rollover = scheduler.New(scheduler.Config{
			Schedule:   cfg.RolloverSchedule,
			Timeout:    cfg.RolloverTimeout,
			Enabled:    cfg.RolloverEnabled,
			RunOnStart: cfg.RolloverOnStart,
		}, fixedBillService, log)
		if err := rollover.Start(); err != nil {
			log.Error("Failed to start rollover scheduler", slog.String("error", err.Error()))
			rollover = nil
		} else {
			rolloverStatus = rollover
			log.Info("Rollover scheduler started",
				slog.String("schedule", cfg.RolloverSchedule),
				slog.Duration("timeout", cfg.RolloverTimeout),
				slog.Bool("runOnStart", cfg.RolloverOnStart),
			)
		}
	}

	r := handler.NewRouter(handler.Handlers{
		Debts:      handler.NewDebtHandler(debtService),
		FixedBills: handler.NewFixedBillHandler(fixedBillService),
		Incomes:    handler.NewIncomeHandler(incomeService),
		Projects:   handler.NewProjectHandler(projectService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Backup:     handler.NewBackupHandler(backupService, time.Now),
		Reports:    handler.NewReportHandler(chartService, reportService, time.Now),
		Rollover:   rolloverStatus,
	}, cfg.AllowedOrigins)

	// Create server
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down server...")

		// Stop scheduler first
		if rollover != nil {
			<-rollover.Stop().Done()
			log.Info("Scheduler stopped")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	log.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.Store.Backend))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed", slog.String("error", err.Error()))
		return
	}
	<-done
}
