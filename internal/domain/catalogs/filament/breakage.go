package filament

import (
	"math"
	"time"

	"printdesk/internal/core/types"
)

// BreakagePrediction estimates when a spool runs out given its recent
// consumption rate.
type BreakagePrediction struct {
	// WillRunOut is set when the stock is projected to hit zero within the
	// horizon.
	WillRunOut bool

	// DaysRemaining is the whole days of stock left at the current rate.
	// Zero when the spool is already empty.
	DaysRemaining int

	// RunOutDate is the projected stock-out date. Zero value when the spool
	// never runs out at the current rate (no usage).
	RunOutDate time.Time

	// RecommendedGrams is the purchase needed to cover the horizon, rounded
	// up to a whole gram.
	RecommendedGrams types.Grams
}

// PredictBreakage projects stock-out from the average daily usage over a
// horizon of days. A zero usage rate never runs out; the reference time is
// injected so predictions are reproducible.
func PredictBreakage(currentStock, avgDailyUsage types.Grams, horizonDays int, now time.Time) BreakagePrediction {
	if !avgDailyUsage.IsPositive() {
		return BreakagePrediction{}
	}

	days := int(math.Floor(currentStock.Float64() / avgDailyUsage.Float64()))
	if days < 0 {
		days = 0
	}

	prediction := BreakagePrediction{
		DaysRemaining: days,
		RunOutDate:    now.UTC().AddDate(0, 0, days),
	}

	// Stock that exactly covers the projected usage is not a breakage.
	projected := avgDailyUsage.MulInt(int64(horizonDays))
	if currentStock < projected {
		prediction.WillRunOut = true
		prediction.RecommendedGrams = projected.Sub(currentStock).CeilToGram()
	}
	return prediction
}
