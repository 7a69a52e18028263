package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hiko_buyforme/internal/app"
	"hiko_buyforme/internal/config"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/scheduler"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.AppEnv)
	log.Info("starting worker", "env", cfg.AppEnv, "schedule", cfg.PriceRefreshSchedule)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := app.NewContainer(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialise worker", "error", err)
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error("failed to close resources", "error", err)
		}
	}()

	jobs := scheduler.NewJobs(container.UseCase, cfg.PriceCheckStaleAfter, log)
	s := scheduler.NewScheduler(jobs, cfg.PriceRefreshSchedule, log)
	if err := s.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		return err
	}

	<-ctx.Done()
	log.Info("shutting down worker")
	<-s.Stop().Done()
	return nil
}
