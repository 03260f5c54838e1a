package holding

import (
	"time"

	"github.com/etnz/holding/date"
)

// Source tags where a current price came from.
type Source int

const (
	// Fresh marks a price obtained from a live quote.
	Fresh Source = iota
	// FallbackHistorical marks a price that is really the series'
	// own latest close, used because no live quote was available.
	FallbackHistorical
)

func (s Source) String() string {
	if s == FallbackHistorical {
		return "historical"
	}
	return "fresh"
}

// Quote is a current price tagged with its origin, so that downstream
// staleness checks do not have to infer it from equality alone.
type Quote struct {
	Price  float64
	Source Source
}

// FreshQuote wraps a live price.
func FreshQuote(price float64) Quote { return Quote{Price: price, Source: Fresh} }

// FallbackQuote builds the quote used when no live price source is
// available: the series' latest close, tagged as such.
func (s *Series) FallbackQuote() Quote {
	return Quote{Price: s.Latest().Price, Source: FallbackHistorical}
}

// WindowReport is the performance of the holding over one resolved
// window.
type WindowReport struct {
	Window     Window
	Start      time.Time // resolved window start instant
	From       date.Date // calendar day the start price was read on
	StartPrice float64
	// Metrics is nil when the series has no close on From. The gap is
	// reported as-is; no value is ever substituted.
	Metrics *Metrics
	// Stale is set when the window start coincides with the series'
	// last close and the "current" price is that same point again, so
	// a flat result means "no new data", not a flat market.
	Stale bool
}

// Review resolves the window against now, reads the start price from
// the series, and computes the metrics against the quoted current
// price.
//
// When the resolved start day is outside the series, the report
// carries a nil Metrics: the caller decides whether that means
// "disable this window" or "insufficient data". Errors are reserved
// for invalid inputs (bad amount, bad prices, inverted period).
func Review(s *Series, w Window, q Quote, amount float64, now time.Time) (*WindowReport, error) {
	start := w.Resolve(s, now)
	from := date.At(start)
	report := &WindowReport{Window: w, Start: start, From: from}

	latest := s.Latest()
	// Tagged fallback is the primary signal; price equality is the
	// secondary guard, since a genuinely fresh quote can still carry
	// no information beyond the last close.
	if from == latest.On && (q.Source == FallbackHistorical || q.Price == latest.Price) {
		report.Stale = true
	}

	point, ok := s.PriceAt(from)
	if !ok {
		return report, nil
	}
	report.StartPrice = point.Price

	m, err := ComputeMetrics(amount, q.Price, point.Price, start, now)
	if err != nil {
		return nil, err
	}
	report.Metrics = &m
	return report, nil
}

// ReviewAll runs Review over the canonical window set.
func ReviewAll(s *Series, q Quote, amount float64, now time.Time) ([]*WindowReport, error) {
	windows := Windows()
	reports := make([]*WindowReport, 0, len(windows))
	for _, w := range windows {
		r, err := Review(s, w, q, amount, now)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
