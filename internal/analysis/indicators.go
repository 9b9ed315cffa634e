package analysis

import (
	"github.com/insightlabs/insighttrader-go/internal/models"
	"github.com/shopspring/decimal"
)

// Indicator lookback windows.
const (
	smaShortPeriod = 10
	smaLongPeriod  = 30
	rsiPeriod      = 14
	macdFast       = 12
	macdSlow       = 26
	macdSignal     = 9
)

// Compute derives the indicator snapshot from a price history. Each field is
// set only when the history covers that indicator's lookback window; values
// are rounded to 2 decimal places. The function never panics outward: any
// internal failure degrades to an all-absent snapshot.
func Compute(history []models.PricePoint) (snapshot models.IndicatorSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			snapshot = models.IndicatorSnapshot{}
		}
	}()

	if len(history) < 2 {
		return models.IndicatorSnapshot{}
	}

	prices := make([]float64, len(history))
	for i, p := range history {
		prices[i] = p.Price
	}

	if len(prices) >= smaShortPeriod {
		snapshot.SMAShort = round2p(sma(prices, smaShortPeriod))
	}
	if len(prices) >= smaLongPeriod {
		snapshot.SMALong = round2p(sma(prices, smaLongPeriod))
	}
	if len(prices) >= rsiPeriod+1 {
		snapshot.RSI = round2p(rsi(prices, rsiPeriod))
	}
	if len(prices) >= macdSlow {
		line, signal, hist := macd(prices)
		snapshot.MACDLine = round2p(line)
		snapshot.MACDSignal = round2p(signal)
		snapshot.MACDHist = round2p(hist)
	}

	return snapshot
}

// sma is the arithmetic mean of the last period prices.
func sma(prices []float64, period int) float64 {
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period)
}

// rsi computes the Relative Strength Index with Wilder smoothing: the
// average gain and loss are seeded with the simple mean of the first period
// diffs, then smoothed over the rest of the series.
func rsi(prices []float64, period int) float64 {
	var avgGain, avgLoss float64

	for i := 1; i <= period; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	p := float64(period)
	for i := period + 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
	}

	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}

// macd returns the MACD line (EMA12 - EMA26), the signal line (EMA9 of the
// MACD series) and the histogram. Callers guarantee len(prices) >= macdSlow.
func macd(prices []float64) (line, signal, hist float64) {
	fast := emaSeries(prices, macdFast)
	slow := emaSeries(prices, macdSlow)

	// The MACD series starts where the slow EMA becomes defined.
	macdSeries := make([]float64, 0, len(prices)-macdSlow+1)
	for i := macdSlow - 1; i < len(prices); i++ {
		macdSeries = append(macdSeries, fast[i]-slow[i])
	}

	line = macdSeries[len(macdSeries)-1]
	signal = emaLast(macdSeries, macdSignal)
	hist = line - signal
	return line, signal, hist
}

// emaSeries computes the exponential moving average aligned with the input:
// index period-1 holds the seed (simple mean of the first period values) and
// later indexes apply the standard k = 2/(period+1) smoothing. Indexes below
// period-1 are zero and must not be read.
func emaSeries(values []float64, period int) []float64 {
	ema := make([]float64, len(values))

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	ema[period-1] = sum / float64(period)

	k := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(values); i++ {
		ema[i] = values[i]*k + ema[i-1]*(1-k)
	}
	return ema
}

// emaLast returns the final EMA value of the series. A series shorter than
// the period yields the plain mean, which keeps the MACD signal line defined
// as soon as the MACD line is.
func emaLast(values []float64, period int) float64 {
	if len(values) < period {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}
	ema := emaSeries(values, period)
	return ema[len(ema)-1]
}

func round2p(v float64) *float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return &f
}
