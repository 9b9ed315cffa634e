package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insightlabs/insighttrader-go/internal/alerts"
	"github.com/insightlabs/insighttrader-go/internal/models"
	"github.com/insightlabs/insighttrader-go/internal/services"
	"github.com/sirupsen/logrus"
)

// AlertHandler manages price alert endpoints.
type AlertHandler struct {
	marketService *services.MarketService
	logger        *logrus.Logger
}

// NewAlertHandler creates a new instance of AlertHandler.
func NewAlertHandler(marketService *services.MarketService, logger *logrus.Logger) *AlertHandler {
	return &AlertHandler{
		marketService: marketService,
		logger:        logger,
	}
}

// CreateAlert registers a new price alert.
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req models.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.marketService.CreateAlert(req.PriceLevel, req.Direction)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("Failed to create alert")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error creating alert"})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// GetActiveAlerts returns every alert that has not triggered yet.
func (h *AlertHandler) GetActiveAlerts(c *gin.Context) {
	active := h.marketService.ActiveAlerts()
	c.JSON(http.StatusOK, active)
}

// CheckAlerts evaluates the active alerts against the current price and
// returns the ones that just triggered. Triggered alerts are removed from
// the active set, so each fires at most once.
func (h *AlertHandler) CheckAlerts(c *gin.Context) {
	triggered := h.marketService.CheckAlerts()
	if triggered == nil {
		triggered = []models.Alert{}
	}
	c.JSON(http.StatusOK, triggered)
}

// DeleteAlert removes an alert by id.
func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	id := c.Param("id")
	if err := h.marketService.DeleteAlert(id); err != nil {
		if errors.Is(err, alerts.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to delete alert")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error deleting alert"})
		return
	}

	c.Status(http.StatusNoContent)
}
