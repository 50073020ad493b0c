package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Veerenstael/QuickScan/internal/report"
	"github.com/Veerenstael/QuickScan/internal/shared/config"
	"github.com/Veerenstael/QuickScan/internal/shared/metrics"
	"github.com/Veerenstael/QuickScan/internal/shared/server/middleware"
	"github.com/Veerenstael/QuickScan/internal/shared/server/respond"
	"github.com/Veerenstael/QuickScan/internal/submissions"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, submissionHandler *submissions.Handler) *gin.Engine {
	if cfg.Env != "dev" && cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Veerenstael Quick Scan backend is live")
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok"})
	})
	r.GET("/version", func(c *gin.Context) {
		respond.OK(c, gin.H{"version": report.Version})
	})
	r.GET("/metrics", metrics.Handler())

	limiter := middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, nil)
	limited := r.Group("", middleware.RateLimit(limiter))
	submissionHandler.RegisterRoutes(limited)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
