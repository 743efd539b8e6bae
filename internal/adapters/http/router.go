package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	"github.com/rafaelleal24/catalog/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	rateLimiter       middleware.RateLimiter
	rateLimit         config.RateLimitConfig
}

// NewRouter wires the controllers. rateLimiter may be nil, in which case no
// throttling middleware is installed.
func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	rateLimiter middleware.RateLimiter,
	rateLimit config.RateLimitConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		rateLimiter:       rateLimiter,
		rateLimit:         rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		if r.rateLimiter != nil {
			v1Group.Use(middleware.RateLimit(r.rateLimiter, r.rateLimit.RequestsPerWindow, r.rateLimit.Window))
		}

		v1Group.GET("/health", r.healthController.Health)

		v1Group.GET("/products", r.productController.SearchProducts)
		v1Group.POST("/products", r.productController.SaveProduct)
		v1Group.GET("/products/:id", r.productController.GetProduct)
		v1Group.DELETE("/products/:id", r.productController.DeleteProduct)
		v1Group.GET("/products/:id/related", r.productController.GetRelated)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
