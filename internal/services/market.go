package services

import (
	"errors"
	"fmt"

	"github.com/insightlabs/insighttrader-go/internal/alerts"
	"github.com/insightlabs/insighttrader-go/internal/analysis"
	"github.com/insightlabs/insighttrader-go/internal/models"
	"github.com/insightlabs/insighttrader-go/internal/simulator"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrInvalidInput marks malformed alert parameters so the boundary can map
// them to a client error instead of a generic failure.
var ErrInvalidInput = errors.New("invalid input")

// MarketService is the façade the request layer talks to. It composes the
// simulator, the indicator pipeline and the alert store.
type MarketService struct {
	sim    *simulator.Simulator
	alerts *alerts.Store
	logger *logrus.Logger
}

// NewMarketService creates the service over an initialized simulator.
func NewMarketService(sim *simulator.Simulator, store *alerts.Store, logger *logrus.Logger) *MarketService {
	return &MarketService{
		sim:    sim,
		alerts: store,
		logger: logger,
	}
}

// Snapshot assembles the full market view: price history, indicators, trend
// and a sentiment sample. The previous SMA pair comes from recomputing the
// indicator pipeline on the history minus its trailing point, which keeps
// crossover detection bit-identical with a from-scratch computation.
func (m *MarketService) Snapshot() models.MarketSnapshot {
	history := m.sim.History()

	current := analysis.Compute(history)

	var prevSMAShort, prevSMALong *float64
	if len(history) > 1 {
		previous := analysis.Compute(history[:len(history)-1])
		prevSMAShort = previous.SMAShort
		prevSMALong = previous.SMALong
	}

	trend := analysis.DetermineTrend(current.SMAShort, current.SMALong, prevSMAShort, prevSMALong)

	return models.MarketSnapshot{
		Asset:        m.sim.Asset(),
		CurrentPrice: round2(m.sim.CurrentPrice()),
		PriceHistory: history,
		Trend:        trend,
		Indicators:   current,
		Sentiment:    m.sim.SampleSentiment(),
	}
}

// TradeIdea derives a fresh suggestion from the current snapshot.
func (m *MarketService) TradeIdea() models.TradeIdea {
	snapshot := m.Snapshot()
	return analysis.GenerateTradeIdea(
		snapshot.Asset,
		snapshot.CurrentPrice,
		snapshot.Trend,
		snapshot.Indicators.RSI,
		snapshot.Sentiment.SentimentLabel,
	)
}

// CreateAlert validates the parameters and registers a new alert.
func (m *MarketService) CreateAlert(priceLevel float64, direction string) (models.Alert, error) {
	if priceLevel <= 0 {
		return models.Alert{}, fmt.Errorf("%w: price level must be positive, got %v", ErrInvalidInput, priceLevel)
	}
	if direction != models.DirectionAbove && direction != models.DirectionBelow {
		return models.Alert{}, fmt.Errorf("%w: direction must be %q or %q, got %q",
			ErrInvalidInput, models.DirectionAbove, models.DirectionBelow, direction)
	}

	alert := m.alerts.Create(priceLevel, direction)
	m.logger.WithFields(logrus.Fields{
		"alert_id":    alert.ID,
		"price_level": alert.PriceLevel,
		"direction":   alert.Direction,
	}).Info("Alert created")
	return alert, nil
}

// ActiveAlerts lists all non-triggered alerts.
func (m *MarketService) ActiveAlerts() []models.Alert {
	return m.alerts.ListActive()
}

// CheckAlerts evaluates the active alerts against the current price and
// returns the newly triggered ones. Triggered alerts leave the active set.
func (m *MarketService) CheckAlerts() []models.Alert {
	triggered := m.alerts.Check(m.sim.CurrentPrice())
	for _, alert := range triggered {
		m.logger.WithField("alert_id", alert.ID).Info("Alert triggered and removed")
	}
	return triggered
}

// DeleteAlert removes an alert by id, returning alerts.ErrNotFound for an
// unknown id.
func (m *MarketService) DeleteAlert(id string) error {
	return m.alerts.Delete(id)
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
