package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "hiko_buyforme/docs"
	"hiko_buyforme/internal/adapter/http/handlers"
	"hiko_buyforme/internal/adapter/http/routes"
	"hiko_buyforme/internal/app"
	"hiko_buyforme/internal/config"
	"hiko_buyforme/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           HiKo Buy-For-Me API
// @version         1.0
// @description     Proxy purchasing requests, quotes and fulfilment for HiKo hot deals.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

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
	log.Info("starting api", "env", cfg.AppEnv, "addr", cfg.HTTPAddr, "store", cfg.RequestStore)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := app.NewContainer(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialise service", "error", err)
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error("failed to close resources", "error", err)
		}
	}()

	router := routes.NewRouter(cfg, routes.Handlers{
		BuyForMe: handlers.NewBuyForMeHandler(container.UseCase),
		Pricing:  handlers.NewPricingHandler(),
	}, log)

	if err := routes.Run(ctx, cfg, router, log); err != nil {
		log.Error("http server stopped", "error", err)
		return err
	}
	return nil
}
