package analysis

import (
	"math"
	"testing"

	"github.com/insightlabs/insighttrader-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFromPrices(prices []float64) []models.PricePoint {
	history := make([]models.PricePoint, len(prices))
	for i, p := range prices {
		history[i] = models.PricePoint{Timestamp: float64(1700000000 + i*60), Price: p}
	}
	return history
}

func flatPrices(n int, price float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return prices
}

func risingPrices(n int, start, step float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = start + float64(i)*step
	}
	return prices
}

func TestCompute_TooShortHistoryIsAllAbsent(t *testing.T) {
	for _, history := range [][]models.PricePoint{
		nil,
		historyFromPrices([]float64{100}),
	} {
		snapshot := Compute(history)
		assert.Equal(t, models.IndicatorSnapshot{}, snapshot)
	}
}

func TestCompute_NonFinitePriceDegradesToAllAbsent(t *testing.T) {
	tests := []struct {
		name string
		bad  float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prices := risingPrices(40, 50000, 10)
			prices[len(prices)-1] = tt.bad

			// The internal failure must not escape; the snapshot
			// degrades to all-absent instead.
			var snapshot models.IndicatorSnapshot
			assert.NotPanics(t, func() {
				snapshot = Compute(historyFromPrices(prices))
			})
			assert.Equal(t, models.IndicatorSnapshot{}, snapshot)
		})
	}
}

func TestCompute_PresenceWindows(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		smaShort bool
		smaLong  bool
		rsi      bool
		macd     bool
	}{
		{"two points", 2, false, false, false, false},
		{"nine points", 9, false, false, false, false},
		{"exactly ten", 10, true, false, false, false},
		{"fourteen", 14, true, false, false, false},
		{"exactly fifteen", 15, true, false, true, false},
		{"twenty five", 25, true, false, true, false},
		{"exactly twenty six", 26, true, false, true, true},
		{"exactly thirty", 30, true, true, true, true},
		{"two hundred", 200, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := Compute(historyFromPrices(risingPrices(tt.points, 50000, 10)))
			assert.Equal(t, tt.smaShort, snapshot.SMAShort != nil, "sma_short")
			assert.Equal(t, tt.smaLong, snapshot.SMALong != nil, "sma_long")
			assert.Equal(t, tt.rsi, snapshot.RSI != nil, "rsi")
			assert.Equal(t, tt.macd, snapshot.MACDLine != nil, "macd_line")
			assert.Equal(t, tt.macd, snapshot.MACDSignal != nil, "macd_signal")
			assert.Equal(t, tt.macd, snapshot.MACDHist != nil, "macd_hist")
		})
	}
}

func TestCompute_SMAValues(t *testing.T) {
	// 30 flat points at 100 except the last 10 at 110.
	prices := flatPrices(20, 100)
	prices = append(prices, flatPrices(10, 110)...)

	snapshot := Compute(historyFromPrices(prices))

	require.NotNil(t, snapshot.SMAShort)
	require.NotNil(t, snapshot.SMALong)
	assert.Equal(t, 110.0, *snapshot.SMAShort)
	// (20*100 + 10*110) / 30
	assert.InDelta(t, 103.33, *snapshot.SMALong, 0.001)
}

func TestCompute_RSIBounds(t *testing.T) {
	histories := [][]float64{
		risingPrices(40, 50000, 25),
		risingPrices(40, 50000, -25),
		{100, 101, 99, 102, 98, 103, 97, 104, 96, 105, 95, 106, 94, 107, 93, 108, 92},
	}

	for _, prices := range histories {
		snapshot := Compute(historyFromPrices(prices))
		require.NotNil(t, snapshot.RSI)
		assert.GreaterOrEqual(t, *snapshot.RSI, 0.0)
		assert.LessOrEqual(t, *snapshot.RSI, 100.0)
	}
}

func TestCompute_RSIAllGainsIsHundred(t *testing.T) {
	snapshot := Compute(historyFromPrices(risingPrices(20, 100, 5)))
	require.NotNil(t, snapshot.RSI)
	assert.Equal(t, 100.0, *snapshot.RSI)
}

func TestCompute_RSIAllLossesIsZero(t *testing.T) {
	snapshot := Compute(historyFromPrices(risingPrices(20, 1000, -5)))
	require.NotNil(t, snapshot.RSI)
	assert.Equal(t, 0.0, *snapshot.RSI)
}

func TestCompute_FlatSeriesIsNeutralMACD(t *testing.T) {
	snapshot := Compute(historyFromPrices(flatPrices(40, 250.0)))

	require.NotNil(t, snapshot.MACDLine)
	require.NotNil(t, snapshot.MACDSignal)
	require.NotNil(t, snapshot.MACDHist)
	assert.Equal(t, 0.0, *snapshot.MACDLine)
	assert.Equal(t, 0.0, *snapshot.MACDSignal)
	assert.Equal(t, 0.0, *snapshot.MACDHist)

	require.NotNil(t, snapshot.SMAShort)
	assert.Equal(t, 250.0, *snapshot.SMAShort)
}

func TestCompute_MACDHistogramConsistent(t *testing.T) {
	snapshot := Compute(historyFromPrices(risingPrices(60, 40000, 35)))

	require.NotNil(t, snapshot.MACDLine)
	require.NotNil(t, snapshot.MACDSignal)
	require.NotNil(t, snapshot.MACDHist)

	// Histogram is rounded after subtraction, so allow rounding slack.
	assert.InDelta(t, *snapshot.MACDLine-*snapshot.MACDSignal, *snapshot.MACDHist, 0.011)

	// A steadily rising series keeps the fast EMA above the slow one.
	assert.Positive(t, *snapshot.MACDLine)
}

func TestCompute_ValuesRoundedToTwoDecimals(t *testing.T) {
	prices := risingPrices(35, 100.123456, 1.654321)
	snapshot := Compute(historyFromPrices(prices))

	for name, v := range map[string]*float64{
		"sma_short":   snapshot.SMAShort,
		"sma_long":    snapshot.SMALong,
		"rsi":         snapshot.RSI,
		"macd_line":   snapshot.MACDLine,
		"macd_signal": snapshot.MACDSignal,
		"macd_hist":   snapshot.MACDHist,
	} {
		require.NotNil(t, v, name)
		assert.InDelta(t, *v, float64(int64(*v*100+0.5))/100, 1e-9, name)
	}
}
