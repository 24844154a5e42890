// Package tariff defines the rate model applied to priced calls.
package tariff

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lubomirsilny/arbes-assignment/internal/errors"
)

// Tariff holds the per-minute rates and the windows they apply to.
// The zero value is unusable; start from Default or LoadFile.
type Tariff struct {
	// StandardRate is charged per started minute inside the peak window,
	// for minute indexes before the long-call threshold.
	StandardRate decimal.Decimal

	// ReducedRate is charged per started minute outside the peak window,
	// for minute indexes before the long-call threshold.
	ReducedRate decimal.Decimal

	// LongCallRate is charged per started minute from the threshold minute
	// onward, regardless of time of day.
	LongCallRate decimal.Decimal

	// PeakStartHour and PeakEndHour bound the standard-rate window
	// [PeakStartHour, PeakEndHour) in wall-clock hours of day.
	PeakStartHour int
	PeakEndHour   int

	// LongCallAfterMinutes is how many leading minutes of a call are priced
	// by time of day before LongCallRate takes over.
	LongCallAfterMinutes int
}

// Default returns the built-in tariff: 1.00 per started minute inside
// 08:00-16:00, 0.50 outside it, and 0.20 from the sixth minute of a call
// onward.
func Default() Tariff {
	return Tariff{
		StandardRate:         decimal.RequireFromString("1.00"),
		ReducedRate:          decimal.RequireFromString("0.50"),
		LongCallRate:         decimal.RequireFromString("0.20"),
		PeakStartHour:        8,
		PeakEndHour:          16,
		LongCallAfterMinutes: 5,
	}
}

// MinuteRate returns the rate billed for the zero-based minute index i of a
// call starting at start. The rate is re-evaluated for every minute, so a
// call crossing a peak boundary is billed at mixed rates.
func (t Tariff) MinuteRate(start time.Time, i int64) decimal.Decimal {
	if i >= int64(t.LongCallAfterMinutes) {
		return t.LongCallRate
	}
	hour := start.Add(time.Duration(i) * time.Minute).Hour()
	if hour >= t.PeakStartHour && hour < t.PeakEndHour {
		return t.StandardRate
	}
	return t.ReducedRate
}

// Validate checks the tariff for values the engine cannot price with.
func (t Tariff) Validate() error {
	if t.StandardRate.IsNegative() || t.ReducedRate.IsNegative() || t.LongCallRate.IsNegative() {
		return errors.New(errors.TypeTariff, "rates must not be negative")
	}
	if t.PeakStartHour < 0 || t.PeakStartHour > 23 {
		return errors.Newf(errors.TypeTariff, "peak_start_hour %d outside 0-23", t.PeakStartHour)
	}
	if t.PeakEndHour < 1 || t.PeakEndHour > 24 {
		return errors.Newf(errors.TypeTariff, "peak_end_hour %d outside 1-24", t.PeakEndHour)
	}
	if t.PeakEndHour <= t.PeakStartHour {
		return errors.Newf(errors.TypeTariff, "peak window [%d, %d) is empty", t.PeakStartHour, t.PeakEndHour)
	}
	if t.LongCallAfterMinutes <= 0 {
		return errors.Newf(errors.TypeTariff, "long_call_after must be positive, got %d", t.LongCallAfterMinutes)
	}
	return nil
}
