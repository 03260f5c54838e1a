package holding

import (
	"testing"
	"time"

	"github.com/etnz/holding/date"
)

func TestReviewSinceYesterday(t *testing.T) {
	s := mustSeries(t, "2024-12-14", 52000, 50000, 45000)
	now := time.Date(2024, 12, 16, 12, 0, 0, 0, time.UTC)

	r, err := Review(s, MustParseWindow("1d"), FreshQuote(45000), 1, now)
	if err != nil {
		t.Fatal(err)
	}
	if want := date.MustParse("2024-12-15"); r.From != want {
		t.Errorf("From = %v, want %v", r.From, want)
	}
	if r.StartPrice != 50000 {
		t.Errorf("StartPrice = %v, want 50000", r.StartPrice)
	}
	if r.Metrics == nil {
		t.Fatal("Metrics absent, want present")
	}
	if r.Metrics.AbsoluteGain != -5000 {
		t.Errorf("AbsoluteGain = %v, want -5000", r.Metrics.AbsoluteGain)
	}
	if !Percent(r.Metrics.PercentageGain).Equal(Percent(-0.10)) {
		t.Errorf("PercentageGain = %v, want -0.10", r.Metrics.PercentageGain)
	}
	if r.Stale {
		t.Error("Stale set, want unset")
	}
}

func TestReviewGapYieldsNoMetrics(t *testing.T) {
	// The series ends 2024-12-14; "1d" at 2024-12-16 resolves to
	// 2024-12-15, a day the series does not cover. The gap must reach
	// the caller as-is, never a synthesized value.
	s := mustSeries(t, "2024-12-12", 52000, 50000, 45000)
	now := time.Date(2024, 12, 16, 12, 0, 0, 0, time.UTC)

	r, err := Review(s, MustParseWindow("1d"), FreshQuote(46000), 1, now)
	if err != nil {
		t.Fatal(err)
	}
	if want := date.MustParse("2024-12-15"); r.From != want {
		t.Errorf("From = %v, want %v", r.From, want)
	}
	if r.Metrics != nil {
		t.Errorf("Metrics = %+v, want absent", r.Metrics)
	}
}

func TestReviewStaleFlag(t *testing.T) {
	// Series ending 2024-12-16; at 2024-12-17 the "1d" window starts
	// exactly on the series' last close.
	s := mustSeries(t, "2024-12-14", 52000, 50000, 45000)
	now := time.Date(2024, 12, 17, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		window    string
		quote     Quote
		wantStale bool
	}{
		{"Fallback quote on latest day", "1d", s.FallbackQuote(), true},
		{"Fresh quote equal to last close", "1d", FreshQuote(45000), true},
		{"Fresh quote with new information", "1d", FreshQuote(46000), false},
		{"Fallback quote on an older window", "all", s.FallbackQuote(), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Review(s, MustParseWindow(tc.window), tc.quote, 1, now)
			if err != nil {
				t.Fatal(err)
			}
			if r.Stale != tc.wantStale {
				t.Errorf("Stale = %v, want %v", r.Stale, tc.wantStale)
			}
			if r.Metrics == nil {
				t.Fatal("Metrics absent, want present")
			}
			// A stale window shows a flat result; the flag is what
			// distinguishes it from a genuinely flat market.
			if tc.wantStale && tc.quote.Price == 45000 && r.Metrics.AbsoluteGain != 0 {
				t.Errorf("AbsoluteGain = %v, want 0 on a stale window", r.Metrics.AbsoluteGain)
			}
		})
	}
}

func TestReviewAll(t *testing.T) {
	series := mustSeries(t, "2024-01-01", seedPrices(366)...)
	now := time.Date(2024, 12, 16, 12, 0, 0, 0, time.UTC)

	reports, err := ReviewAll(series, FreshQuote(120), 1, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != len(Windows()) {
		t.Fatalf("got %d reports, want %d", len(reports), len(Windows()))
	}
	for _, r := range reports {
		if r.Metrics == nil {
			t.Errorf("window %s: Metrics absent, want present", r.Window)
		}
	}
	// The year window starts on Jan 1, the series start.
	for _, r := range reports {
		if r.Window.String() == "year" && r.From != date.MustParse("2024-01-01") {
			t.Errorf("year window From = %v, want 2024-01-01", r.From)
		}
	}
}

// seedPrices returns a gently rising price curve for test series.
func seedPrices(n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = 100 + float64(i)/10
	}
	return prices
}
