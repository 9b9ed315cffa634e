package models

// PricePoint is a single observation of the simulated feed. Timestamp is
// epoch seconds so charting clients can consume the history directly.
type PricePoint struct {
	Timestamp float64 `json:"timestamp"`
	Price     float64 `json:"price"`
}

// IndicatorSnapshot holds the derived indicator values for one point in
// time. Every field is independently optional: a nil pointer means the
// history is still shorter than that indicator's lookback window.
type IndicatorSnapshot struct {
	RSI        *float64 `json:"rsi"`
	MACDLine   *float64 `json:"macd_line"`
	MACDSignal *float64 `json:"macd_signal"`
	MACDHist   *float64 `json:"macd_hist"`
	SMAShort   *float64 `json:"sma_short"`
	SMALong    *float64 `json:"sma_long"`
}

// Sentiment labels drawn from the mock pool.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// SentimentSample is one entry from the simulated sentiment pool.
type SentimentSample struct {
	Text           string  `json:"text"`
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
}

// MarketSnapshot is the response shape for the market data endpoint.
type MarketSnapshot struct {
	Asset        string            `json:"asset"`
	CurrentPrice float64           `json:"current_price"`
	PriceHistory []PricePoint      `json:"price_history"`
	Trend        string            `json:"trend"`
	Indicators   IndicatorSnapshot `json:"indicators"`
	Sentiment    SentimentSample   `json:"sentiment"`
}
