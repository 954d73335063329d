package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/analysis"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/http/middleware"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/websocket"
)

// NewRouter wires the analysis endpoints.
func NewRouter(cfg *config.Config, svc *analysis.Service) *gin.Engine {
	analysisHandler := NewAnalysisHandler(svc)
	wsHandler := websocket.NewHandler(svc, cfg.AllowedOrigins)

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/api/health", Health)

	// Protected Routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/api/analyze", analysisHandler.Analyze)
		protected.GET("/ws/analyze", gin.WrapF(wsHandler.HandleWebSocket))
	}

	return router
}
