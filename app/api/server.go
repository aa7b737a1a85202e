package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucasmn/newsdesk/app/cfg"
)

// NewServer creates the HTTP engine with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	api := r.Group("/api")
	{
		api.GET("/topics", handler.GetTopics)
		api.GET("/news/:topic", handler.GetNews)
		api.POST("/news", handler.PostNews)
		api.POST("/batch", handler.PostBatch)
		api.GET("/status/:id", handler.GetStatus)
		api.GET("/audio/:topic", handler.GetAudio)
		api.GET("/search", handler.GetSearch)
		api.GET("/history", handler.GetHistory)
		api.POST("/cache/clear", handler.PostCacheClear)
		api.GET("/cache/status", handler.GetCacheStatus)
	}

	r.GET("/health", handler.GetHealth)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "NewsDesk",
			"version":     cfg.GetVersion(),
			"description": "Automated news production pipeline with trending topic discovery and cached articles",
			"endpoints": map[string]string{
				"topics":       "/api/topics?limit=<n>",
				"news":         "/api/news/<topic>?categoria=<categoria>",
				"generate":     "/api/news (POST)",
				"batch":        "/api/batch (POST)",
				"status":       "/api/status/<job_id>",
				"audio":        "/api/audio/<topic>?categoria=<categoria>",
				"search":       "/api/search?q=<texto>",
				"history":      "/api/history?limit=<n>",
				"cache_clear":  "/api/cache/clear (POST)",
				"cache_status": "/api/cache/status",
				"health":       "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
