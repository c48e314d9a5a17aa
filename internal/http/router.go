package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rain-scent/internal/metrics"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	collector *metrics.Collector,
	catalogH *CatalogHandler,
	recommendH *RecommendHandler,
) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), metricsMiddleware(collector), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	r.GET("/questions", catalogH.ListQuestions)
	r.GET("/perfumes", catalogH.ListPerfumes)

	r.POST("/recommend", recommendH.Recommend)
	r.POST("/recommend/local", recommendH.RecommendLocal)
	r.GET("/results/:id", recommendH.GetResult)

	return r
}

// zapLoggerMiddleware loguea cada request con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// metricsMiddleware usa la ruta registrada (no el path crudo) como label.
func metricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
