package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insightlabs/insighttrader-go/internal/services"
	"github.com/sirupsen/logrus"
)

// MarketHandler serves the market snapshot and trade idea endpoints.
type MarketHandler struct {
	marketService *services.MarketService
	logger        *logrus.Logger
}

// NewMarketHandler creates a new instance of MarketHandler.
func NewMarketHandler(marketService *services.MarketService, logger *logrus.Logger) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
		logger:        logger,
	}
}

// GetMarketData returns the current price, history, trend, indicators and a
// sentiment sample.
func (h *MarketHandler) GetMarketData(c *gin.Context) {
	snapshot := h.marketService.Snapshot()
	if len(snapshot.PriceHistory) == 0 {
		// Should not happen once the simulator is initialized; serve the
		// degraded snapshot anyway.
		h.logger.Warn("Price history is empty")
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetTradeIdea returns a freshly derived rule-based trade suggestion.
func (h *MarketHandler) GetTradeIdea(c *gin.Context) {
	idea := h.marketService.TradeIdea()
	c.JSON(http.StatusOK, idea)
}
