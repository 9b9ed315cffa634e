package analysis

import (
	"fmt"
	"strings"

	"github.com/insightlabs/insighttrader-go/internal/models"
	"github.com/shopspring/decimal"
)

// RSI thresholds and stop/target multipliers for the rule set. Stops risk
// 1.5% against a 3% target, a 2:1 reward-to-risk.
const (
	rsiBuyThreshold  = 45.0
	rsiSellThreshold = 55.0

	buyStopLoss    = 0.985
	buyTakeProfit  = 1.03
	sellStopLoss   = 1.015
	sellTakeProfit = 0.97
)

// GenerateTradeIdea derives a rule-based suggestion from the trend label,
// RSI and sentiment. An absent RSI is treated as neutral (50) for the
// threshold comparisons only. The BUY and SELL rules are mutually exclusive;
// when neither matches the idea stays HOLD with no price levels.
func GenerateTradeIdea(asset string, currentPrice float64, trend string, rsiValue *float64, sentimentLabel string) models.TradeIdea {
	idea := models.TradeIdea{
		Asset:      asset,
		Action:     models.ActionHold,
		Confidence: models.ConfidenceNone,
	}

	rsi := 50.0
	if rsiValue != nil {
		rsi = *rsiValue
	}

	var reasonParts []string

	switch {
	case (strings.Contains(trend, "Uptrend") || strings.Contains(trend, "Bullish")) &&
		rsi < rsiBuyThreshold &&
		(sentimentLabel == models.SentimentPositive || sentimentLabel == models.SentimentNeutral):

		idea.Action = models.ActionBuy
		idea.Confidence = models.ConfidenceMedium
		reasonParts = append(reasonParts, fmt.Sprintf("Trend: %s", trend))
		reasonParts = append(reasonParts, fmt.Sprintf("RSI (%.2f) suggests potential upward momentum.", rsi))
		if sentimentLabel == models.SentimentPositive {
			reasonParts = append(reasonParts, "Positive sentiment.")
		}

	case (strings.Contains(trend, "Downtrend") || strings.Contains(trend, "Bearish")) &&
		rsi > rsiSellThreshold &&
		(sentimentLabel == models.SentimentNegative || sentimentLabel == models.SentimentNeutral):

		idea.Action = models.ActionSell
		idea.Confidence = models.ConfidenceMedium
		reasonParts = append(reasonParts, fmt.Sprintf("Trend: %s", trend))
		reasonParts = append(reasonParts, fmt.Sprintf("RSI (%.2f) suggests potential downward momentum.", rsi))
		if sentimentLabel == models.SentimentNegative {
			reasonParts = append(reasonParts, "Negative sentiment.")
		}
	}

	if idea.Action != models.ActionHold {
		entry := currentPrice
		idea.EntryPrice = &entry
		if idea.Action == models.ActionBuy {
			idea.StopLoss = roundLevel(entry * buyStopLoss)
			idea.TakeProfit = roundLevel(entry * buyTakeProfit)
		} else {
			idea.StopLoss = roundLevel(entry * sellStopLoss)
			idea.TakeProfit = roundLevel(entry * sellTakeProfit)
		}
	}

	if len(reasonParts) == 0 {
		reasonParts = append(reasonParts, "No strong signal based on current rules.")
	}
	idea.Reason = strings.Join(reasonParts, " ")

	return idea
}

func roundLevel(v float64) *float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return &f
}
