// internal/router/router.go
package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/handlers"
	"github.com/javajoker/storefront-backend/internal/metrics"
	"github.com/javajoker/storefront-backend/internal/middleware"
	"github.com/javajoker/storefront-backend/internal/services"
)

// Initialize wires services and handlers onto a gin engine. Background work
// started here stops when ctx is done.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config, m *metrics.Metrics) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	sessionService := services.NewSessionService(db, cfg.Session)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db, sessionService, m)
	resourceService := services.NewResourceService(db, sessionService, storageService)
	seedService := services.NewSeedService(db, m)
	authService := services.NewAuthService(db, sessionService)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService, resourceService)
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.Session.CookieName, cfg.IsProduction())
	seedHandler := handlers.NewSeedHandler(seedService)
	authHandler := handlers.NewAuthHandler(authService, cfg.Session.CookieName, cfg.Session.TTL, cfg.IsProduction())

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	go limiter.Run(ctx.Done())

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	v1.Use(limiter.Middleware())
	v1.Use(middleware.SessionCredential(cfg.Session.CookieName))
	{
		v1.GET("/categories", catalogHandler.ListCategories)
		v1.GET("/categories/:slug/products", catalogHandler.ListCategoryProducts)

		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.GET("/featured", catalogHandler.ListFeaturedProducts)
			products.GET("/:slug", catalogHandler.GetProduct)
			products.GET("/:slug/resources", orderHandler.ListProductResources)
		}

		v1.GET("/orders", orderHandler.ListOrders)

		auth := v1.Group("/auth")
		{
			auth.POST("/sign-up", authHandler.SignUp)
			auth.POST("/sign-in", authHandler.SignIn)
			auth.GET("/session", sessionHandler.GetSession)
			auth.POST("/sign-out", sessionHandler.SignOut)
		}

		if cfg.SeedEndpointEnabled() {
			v1.POST("/seed", seedHandler.Seed)
		} else {
			logrus.Info("Seed endpoint disabled")
		}
	}

	return r, nil
}
