// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/eoq-calculator/internal/api/handlers"
	"github.com/andresuchdata/eoq-calculator/internal/api/middleware"
	"github.com/andresuchdata/eoq-calculator/internal/service"
	"github.com/andresuchdata/eoq-calculator/internal/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	EOQService *service.EOQService
	Renderer   *web.Renderer
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
			corsConfig.AllowCredentials = false
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if services == nil || services.EOQService == nil {
		return router
	}

	if services.Renderer != nil {
		pageHandler := handlers.NewPageHandler(services.EOQService, services.Renderer)
		router.GET("/", pageHandler.Index)
		router.POST("/", pageHandler.Submit)
	}

	eoqHandler := handlers.NewEOQHandler(services.EOQService)
	eoqGroup := router.Group("/api/v1/eoq")
	{
		eoqGroup.POST("/calculate", eoqHandler.Calculate)
		eoqGroup.GET("/chart.svg", eoqHandler.GetChart)
		eoqGroup.GET("/export.xlsx", eoqHandler.ExportXLSX)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
