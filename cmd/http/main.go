package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/catalog/internal/adapters/config"
	adapthttp "github.com/rafaelleal24/catalog/internal/adapters/http"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	"github.com/rafaelleal24/catalog/internal/adapters/http/middleware"
	"github.com/rafaelleal24/catalog/internal/adapters/jsonstore"
	"github.com/rafaelleal24/catalog/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/catalog/internal/adapters/redis"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/service"
)

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// storage
	store := jsonstore.NewFileStore(cfg.Store.DataDir)
	productRepository := jsonstore.NewProductRepository(store, cfg.Store.ProductsFile)
	logger.Info(ctx, "Product store ready", map[string]any{
		"dir":  cfg.Store.DataDir,
		"file": cfg.Store.ProductsFile,
	})

	checkers := []controllers.HealthChecker{
		{Name: "store", Check: func(ctx context.Context) error {
			_, err := store.Read(ctx, cfg.Store.ProductsFile)
			return err
		}},
	}

	// event broker, a no-op unless enabled
	var broker port.Broker = rabbitmq.NoopBroker{}
	if cfg.RabbitMQ.Enabled {
		rabbitBroker, err := rabbitmq.NewBroker(cfg.RabbitMQ)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
		}
		broker = rabbitBroker
		checkers = append(checkers, controllers.HealthChecker{
			Name:  "rabbitmq",
			Check: func(context.Context) error { return rabbitBroker.HealthCheck() },
		})
		logger.Info(ctx, "Connected to RabbitMQ", nil)
	}
	defer broker.Close()

	// rate limiter, only with redis available
	var rateLimiter middleware.RateLimiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg.Redis)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
		}
		defer redisClient.Close()
		rateLimiter = redis.NewRateLimiter(redisClient)
		checkers = append(checkers, controllers.HealthChecker{
			Name:  "redis",
			Check: redisClient.Ping,
		})
		logger.Info(ctx, "Connected to Redis", nil)
	}

	// services
	searchService := service.NewSearchService(productRepository)
	productService := service.NewProductService(productRepository, searchService, broker)

	// controllers
	productController := controllers.NewProductController(productService, searchService)
	healthController := controllers.NewHealthController(checkers)

	// router
	router := adapthttp.NewRouter(healthController, productController, rateLimiter, cfg.RateLimit)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
