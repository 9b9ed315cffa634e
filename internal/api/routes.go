package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/insightlabs/insighttrader-go/internal/api/handlers"
	"github.com/insightlabs/insighttrader-go/internal/config"
	"github.com/insightlabs/insighttrader-go/internal/middleware"
	"github.com/insightlabs/insighttrader-go/internal/services"
	"github.com/insightlabs/insighttrader-go/internal/simulator"
	"github.com/sirupsen/logrus"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Services  Services  `json:"services"`
}

type Services struct {
	Simulator string `json:"simulator"`
}

// SetupRoutes wires the middleware, health check and v1 API groups.
func SetupRoutes(router *gin.Engine, cfg *config.Config, sim *simulator.Simulator, marketService *services.MarketService, logger *logrus.Logger) {
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	marketHandler := handlers.NewMarketHandler(marketService, logger)
	alertHandler := handlers.NewAlertHandler(marketService, logger)

	// Health check endpoint
	router.GET("/health", healthCheck(sim))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Market data routes
		market := v1.Group("/market")
		{
			market.GET("/data", marketHandler.GetMarketData)
			market.GET("/trade-idea", marketHandler.GetTradeIdea)
		}

		// Alerts management
		alerts := v1.Group("/alerts")
		{
			alerts.GET("", alertHandler.GetActiveAlerts)
			alerts.POST("", alertHandler.CreateAlert)
			alerts.GET("/check", alertHandler.CheckAlerts)
			alerts.DELETE("/:id", alertHandler.DeleteAlert)
		}
	}
}

func healthCheck(sim *simulator.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Services: Services{
				Simulator: "ok",
			},
		}

		// An empty history means the simulator was never initialized.
		if len(sim.History()) == 0 {
			response.Services.Simulator = "error"
			response.Status = "degraded"
		}

		statusCode := http.StatusOK
		if response.Status == "degraded" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, response)
	}
}
