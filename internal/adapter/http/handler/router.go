package handler

import (
	"rewards-banner-service/internal/adapter/http/middleware"
	"rewards-banner-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	BannerSvc      ports.BannerService
	HealthCheckers []ports.HealthChecker
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20 // 1 MB
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Return rate limiter middleware if store and rule are available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := deps.RateLimitRules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	bannerHandler := NewBannerHandler(deps.BannerSvc)

	v1 := r.Group("/api/v1")
	banners := v1.Group("/banners")
	{
		banners.POST("", rl("banners_publish"), bannerHandler.Publish)
		banners.POST("/parcel", rl("banners_parcel"), bannerHandler.DecodeParcel)
		banners.GET("/:publisher_key", bannerHandler.Get)
		banners.DELETE("/:publisher_key", rl("banners_publish"), bannerHandler.Delete)
		banners.GET("/:publisher_key/parcel", rl("banners_parcel"), bannerHandler.GetParcel)
	}

	return r
}
