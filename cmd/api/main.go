package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daynix/config"
	_ "daynix/docs" // Swagger docs
	"daynix/internal/httpserver"
	"daynix/internal/planner/repository/sqlite"
	"daynix/internal/planner/usecase"
	"daynix/internal/scheduler"
	"daynix/pkg/clock"
	"daynix/pkg/log"
)

// @title       Daynix Planner API
// @description Personal day planner: task categorization, recurrence instantiation, and conflict detection.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daynix...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Storage
	repo, closeRepo, err := sqlite.New(cfg.Storage.Path, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer func() {
		if cerr := closeRepo(); cerr != nil {
			logger.Errorf(ctx, "Failed to close storage: %v", cerr)
		}
	}()

	// 4. Planner domain
	clk := clock.RealClock{}
	plannerUC := usecase.New(logger, repo, clk)

	// 5. Scheduler
	sched := scheduler.New(logger, plannerUC, clk, scheduler.Config{
		TickInterval: cfg.Scheduler.TickInterval,
		UndoDelay:    cfg.Scheduler.UndoDelay,
	})
	sched.Start(ctx)
	defer sched.Stop()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PlannerUseCase:  plannerUC,
		Clock:           clk,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
