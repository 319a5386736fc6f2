package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"connection-broker/internal/adapter/http/middleware"
	"connection-broker/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Pools          map[string]ports.Pool
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, borrows a connection from each pool)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	poolHandler := NewPoolHandler(deps.Pools)

	v1 := r.Group("/api/v1")
	pools := v1.Group("/pools")
	{
		pools.GET("", poolHandler.ListPools)
		pools.GET("/:name/stats", poolHandler.GetPoolStats)
	}

	return r
}
