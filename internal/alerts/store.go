package alerts

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/insightlabs/insighttrader-go/internal/models"
)

// ErrNotFound is returned when an alert id is not in the active set.
var ErrNotFound = errors.New("alert not found")

// Store is the in-memory collection of active price alerts. Triggered
// alerts are handed back to the caller and dropped; the store keeps no
// history.
type Store struct {
	mu     sync.RWMutex
	asset  string
	alerts map[string]models.Alert
}

// NewStore creates an empty alert store for the tracked instrument.
func NewStore(asset string) *Store {
	return &Store{
		asset:  asset,
		alerts: make(map[string]models.Alert),
	}
}

// Create registers a new alert and returns it with a generated id.
func (s *Store) Create(priceLevel float64, direction string) models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	for _, exists := s.alerts[id]; exists; _, exists = s.alerts[id] {
		id = uuid.New().String()
	}

	alert := models.Alert{
		ID:         id,
		Asset:      s.asset,
		PriceLevel: priceLevel,
		Direction:  direction,
		Triggered:  false,
		CreatedAt:  time.Now(),
	}
	s.alerts[id] = alert
	return alert
}

// ListActive returns all non-triggered alerts.
func (s *Store) ListActive() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]models.Alert, 0, len(s.alerts))
	for _, alert := range s.alerts {
		if !alert.Triggered {
			active = append(active, alert)
		}
	}
	return active
}

// Check evaluates every active alert against the current price, using
// strict inequality so a price exactly at the level does not fire. Matches
// are marked triggered, removed from the store and returned, all in one
// locked pass so a concurrent create or delete cannot interleave.
func (s *Store) Check(currentPrice float64) []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	var triggered []models.Alert
	for id, alert := range s.alerts {
		if alert.Triggered {
			continue
		}
		fire := (alert.Direction == models.DirectionAbove && currentPrice > alert.PriceLevel) ||
			(alert.Direction == models.DirectionBelow && currentPrice < alert.PriceLevel)
		if fire {
			alert.Triggered = true
			triggered = append(triggered, alert)
			delete(s.alerts, id)
		}
	}
	return triggered
}

// Delete removes an alert by id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.alerts[id]; !ok {
		return ErrNotFound
	}
	delete(s.alerts, id)
	return nil
}
