package models

// Trade actions.
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionHold = "HOLD"
)

// Confidence grades for a trade idea.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
	ConfidenceNone   = "None"
)

// TradeIdea is a rule-derived suggestion. It is computed fresh on every
// request and never stored. Entry, stop and target are nil for HOLD.
type TradeIdea struct {
	Asset      string   `json:"asset"`
	Action     string   `json:"action"`
	EntryPrice *float64 `json:"entry_price"`
	StopLoss   *float64 `json:"stop_loss"`
	TakeProfit *float64 `json:"take_profit"`
	Confidence string   `json:"confidence"`
	Reason     string   `json:"reason"`
}
