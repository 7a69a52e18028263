package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "hiko_buyforme/docs"
	"hiko_buyforme/internal/adapter/http/dto/request"
	"hiko_buyforme/internal/adapter/http/handlers"
	"hiko_buyforme/internal/config"
	"hiko_buyforme/internal/infrastructure/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	BuyForMe *handlers.BuyForMeHandler
	Pricing  *handlers.PricingHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(cfg *config.Config, h Handlers, log *logger.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	request.RegisterValidators()

	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, h.Pricing)
	addBuyForMeRoutes(v1, h.BuyForMe)

	return router
}

// Run serves router on cfg.HTTPAddr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, cfg *config.Config, router http.Handler, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *logger.Logger) {
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(log))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	if cfg.RateLimitPerSecond > 0 {
		router.Use(NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst, log).RateLimit())
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
