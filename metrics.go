package holding

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidAmount reports a negative or non-finite amount held.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidPrice reports a negative current price or a start
	// price from which no return can be derived.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidPeriod reports a period that does not end strictly
	// after it starts.
	ErrInvalidPeriod = errors.New("invalid period")
)

// yearDays is the average-year convention used for all annualization:
// every "year" is exactly 365.25 days.
const yearDays = 365.25

// displayCAGRYears is the minimum period, in years on the same
// convention, below which CAGR is suppressed for display. Thirty days.
const displayCAGRYears = 30 / yearDays

// Metrics is the performance of a holding over one period. It is a
// plain value computed fresh per request, never cached or persisted.
type Metrics struct {
	TotalValue     float64 // amount held times current price
	InitialValue   float64 // amount held times start price
	AbsoluteGain   float64
	PercentageGain float64 // fraction: 0.02 is a 2% gain
	Years          float64 // period length, in 365.25-day years
	CAGR           float64 // annualized geometric growth rate
}

// ComputeMetrics derives the metrics of holding `amount` units from
// `from` to `now`, bought at startPrice and quoted at currentPrice.
//
// CAGR is computed unconditionally. For periods under a year it is an
// extrapolation and its magnitude can be enormous (a 2% gain over a
// day and a half annualizes to a nine-digit percentage); that is the
// correct value, and whether to show it is DisplayCAGR's concern.
func ComputeMetrics(amount, currentPrice, startPrice float64, from, now time.Time) (Metrics, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Metrics{}, fmt.Errorf("%w: amount held %v", ErrInvalidAmount, amount)
	}
	if currentPrice < 0 || math.IsNaN(currentPrice) || math.IsInf(currentPrice, 0) {
		return Metrics{}, fmt.Errorf("%w: current price %v", ErrInvalidPrice, currentPrice)
	}
	// A zero or negative start price makes percentage and CAGR
	// undefined; reject rather than divide by zero.
	if startPrice <= 0 || math.IsNaN(startPrice) || math.IsInf(startPrice, 0) {
		return Metrics{}, fmt.Errorf("%w: start price %v", ErrInvalidPrice, startPrice)
	}
	if !now.After(from) {
		return Metrics{}, fmt.Errorf("%w: %s is not after %s", ErrInvalidPeriod, now.Format(time.RFC3339), from.Format(time.RFC3339))
	}

	years := now.Sub(from).Hours() / (24 * yearDays)
	m := Metrics{
		TotalValue:     amount * currentPrice,
		InitialValue:   amount * startPrice,
		PercentageGain: (currentPrice - startPrice) / startPrice,
		Years:          years,
		CAGR:           math.Pow(currentPrice/startPrice, 1/years) - 1,
	}
	m.AbsoluteGain = m.TotalValue - m.InitialValue
	return m, nil
}

// DisplayCAGR returns the CAGR fit for display, and false when the
// period is under thirty days. Below that threshold the annualized
// figure, while mathematically valid, is too extreme to be meaningful
// to a reader; the raw CAGR field remains available regardless.
func (m Metrics) DisplayCAGR() (float64, bool) {
	if m.Years < displayCAGRYears {
		return 0, false
	}
	return m.CAGR, true
}
