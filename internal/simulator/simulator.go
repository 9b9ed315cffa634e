package simulator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/insightlabs/insighttrader-go/internal/config"
	"github.com/insightlabs/insighttrader-go/internal/models"
	"github.com/shopspring/decimal"
)

// seedSpacing is the gap between backfilled history points.
const seedSpacing = 60 * time.Second

// driftFactors bias the short-run direction of the walk. Slightly
// positive-weighted so trends stay visible over a few minutes.
var driftFactors = []float64{-0.0002, -0.0001, 0, 0.0001, 0.0002, 0.0003}

// mockSentimentPool is static configuration data, not user input.
var mockSentimentPool = []models.SentimentSample{
	{Text: "BTC soaring! To the moon we go! 🚀 #Bitcoin", SentimentScore: 0.9, SentimentLabel: models.SentimentPositive},
	{Text: "Looks like BTC is consolidating around its current price. Neutral for now.", SentimentScore: 0.1, SentimentLabel: models.SentimentNeutral},
	{Text: "Big drop in BTC, a bit worried. Holding off for now. #CryptoCrash", SentimentScore: -0.8, SentimentLabel: models.SentimentNegative},
	{Text: "Analyst predicts BTC will hit 70k soon. Very bullish!", SentimentScore: 0.75, SentimentLabel: models.SentimentPositive},
	{Text: "Not sure about BTC at these levels, might see a correction.", SentimentScore: -0.4, SentimentLabel: models.SentimentNegative},
}

// Simulator owns the only cross-request mutable market state: the bounded
// price history and the current price. All access goes through the mutex so
// the periodic tick and request-driven reads can interleave safely.
type Simulator struct {
	mu sync.RWMutex

	asset        string
	priceFloor   float64
	maxHistory   int
	currentPrice float64
	history      []models.PricePoint

	rng *rand.Rand
}

// New creates a simulator from config with a time-seeded random source.
func New(cfg config.SimulatorConfig) *Simulator {
	return NewWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a simulator with an injected random source so tests
// can run deterministically.
func NewWithRand(cfg config.SimulatorConfig, rng *rand.Rand) *Simulator {
	return &Simulator{
		asset:        cfg.Asset,
		priceFloor:   cfg.PriceFloor,
		maxHistory:   cfg.MaxHistory,
		currentPrice: cfg.InitialPrice,
		rng:          rng,
	}
}

// Asset returns the tracked instrument symbol.
func (s *Simulator) Asset() string {
	return s.asset
}

// Initialize seeds the history with maxHistory synthetic points walking
// backward from now at 60-second spacing. Perturbation grows with the point
// index, so older points sit closer to the base price. Calling it on a
// non-empty history is a no-op.
func (s *Simulator) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) > 0 {
		return
	}

	now := time.Now()
	base := s.currentPrice
	for i := 0; i < s.maxHistory; i++ {
		ts := now.Add(-time.Duration(s.maxHistory-i) * seedSpacing)
		noise := (s.rng.Float64()*100 - 50) * float64(i) / 10
		price := base + noise
		if price < s.priceFloor {
			price = s.priceFloor
		}
		s.history = append(s.history, models.PricePoint{
			Timestamp: float64(ts.UnixNano()) / float64(time.Second),
			Price:     round2(price),
		})
	}
	s.currentPrice = s.history[len(s.history)-1].Price
}

// Tick advances the walk by one step: a small multiplicative drift drawn
// from driftFactors plus additive noise, clamped to the price floor. The new
// point is appended and the oldest evicted once the history is full.
func (s *Simulator) Tick() models.PricePoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	drift := driftFactors[s.rng.Intn(len(driftFactors))]
	noise := s.rng.Float64()*300 - 150

	price := s.currentPrice*(1+drift) + noise
	if price < s.priceFloor {
		price = s.priceFloor
	}
	s.currentPrice = round2(price)

	point := models.PricePoint{
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
		Price:     s.currentPrice,
	}
	s.history = append(s.history, point)
	if len(s.history) > s.maxHistory {
		// FIFO eviction, oldest first
		s.history = s.history[1:]
	}

	return point
}

// CurrentPrice returns the latest simulated price.
func (s *Simulator) CurrentPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPrice
}

// History returns a copy of the price history so callers cannot mutate the
// simulator's state.
func (s *Simulator) History() []models.PricePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.PricePoint, len(s.history))
	copy(snapshot, s.history)
	return snapshot
}

// SampleSentiment picks one entry from the mock pool uniformly at random.
func (s *Simulator) SampleSentiment() models.SentimentSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mockSentimentPool[s.rng.Intn(len(mockSentimentPool))]
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
