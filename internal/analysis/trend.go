package analysis

// Trend labels.
const (
	TrendCalculating      = "Calculating..."
	TrendUptrend          = "Uptrend"
	TrendDowntrend        = "Downtrend"
	TrendBullishCrossover = "Bullish Crossover"
	TrendBearishCrossover = "Bearish Crossover"
)

// DetermineTrend labels the market from the current and previous SMA pair.
// A crossover is reported only when both previous SMAs are available and the
// short/long ordering flipped between the two observations.
func DetermineTrend(smaShort, smaLong, prevSMAShort, prevSMALong *float64) string {
	if smaShort == nil || smaLong == nil {
		return TrendCalculating
	}

	aboveNow := *smaShort > *smaLong

	if prevSMAShort != nil && prevSMALong != nil {
		abovePrev := *prevSMAShort > *prevSMALong
		if aboveNow && !abovePrev {
			return TrendBullishCrossover
		}
		if !aboveNow && abovePrev {
			return TrendBearishCrossover
		}
	}

	if aboveNow {
		return TrendUptrend
	}
	return TrendDowntrend
}
