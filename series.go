package holding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/etnz/holding/date"
)

var (
	// ErrValidation reports a malformed series input.
	ErrValidation = errors.New("invalid series")
	// ErrInvalidRange reports a range whose end is before its start.
	ErrInvalidRange = errors.New("invalid range")
)

// Point is a single closing price on a given day.
type Point struct {
	On    date.Date
	Price float64
}

// Series is the gapless daily closing-price history of one asset,
// anchored at a start date: index i holds the close of start+i days.
//
// A Series is immutable after construction and safe for concurrent
// use. Extend returns a new Series rather than mutating.
type Series struct {
	start  date.Date
	prices []float64
}

// NewSeries validates and builds a series from a start date and one
// close per consecutive day. Prices must be finite and non-negative;
// zero is allowed, it represents days before the asset had a market.
func NewSeries(start date.Date, prices []float64) (*Series, error) {
	if start.IsZero() {
		return nil, fmt.Errorf("%w: missing start date", ErrValidation)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: empty price list", ErrValidation)
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, fmt.Errorf("%w: price %v on %s", ErrValidation, p, start.Add(i))
		}
	}
	s := &Series{start: start, prices: make([]float64, len(prices))}
	copy(s.prices, prices)
	return s, nil
}

// Start returns the day of the first close.
func (s *Series) Start() date.Date { return s.start }

// End returns the day of the last close.
func (s *Series) End() date.Date { return s.start.Add(len(s.prices) - 1) }

// Len returns the number of daily closes.
func (s *Series) Len() int { return len(s.prices) }

// Prices returns a copy of the daily closes, index 0 on Start.
func (s *Series) Prices() []float64 {
	prices := make([]float64, len(s.prices))
	copy(prices, s.prices)
	return prices
}

// PriceAt returns the close on the given day. The second return value
// is false when the day falls outside the series; that is a normal
// outcome for short or stale histories, not an error, and no value is
// ever substituted for it.
func (s *Series) PriceAt(on date.Date) (Point, bool) {
	offset := s.start.Days(on)
	if offset < 0 || offset >= len(s.prices) {
		return Point{}, false
	}
	return Point{On: on, Price: s.prices[offset]}, true
}

// Latest returns the last close and its day.
func (s *Series) Latest() Point {
	return Point{On: s.End(), Price: s.prices[len(s.prices)-1]}
}

// Range returns the closes between from and to, boundaries included,
// clipped to the series. It returns ErrInvalidRange when from is
// after to, and an empty result (no error) when the requested range
// does not overlap the series.
func (s *Series) Range(from, to date.Date) ([]Point, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from %s is after to %s", ErrInvalidRange, from, to)
	}
	if from.Before(s.start) {
		from = s.start
	}
	if to.After(s.End()) {
		to = s.End()
	}
	if from.After(to) {
		return nil, nil // no overlap
	}
	points := make([]Point, 0, from.Days(to)+1)
	for on := from; !on.After(to); on = on.Add(1) {
		p, _ := s.PriceAt(on)
		points = append(points, p)
	}
	return points, nil
}

// Extend returns a new series with the close on the given day set.
// A day inside the series overwrites that day's close. A day past the
// end extends the series, carrying the last close forward over any
// calendar gap so the one-price-per-day invariant holds. A day before
// the start is rejected.
func (s *Series) Extend(on date.Date, price float64) (*Series, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, fmt.Errorf("%w: price %v on %s", ErrValidation, price, on)
	}
	offset := s.start.Days(on)
	if offset < 0 {
		return nil, fmt.Errorf("%w: %s is before series start %s", ErrValidation, on, s.start)
	}
	n := len(s.prices)
	if offset+1 > n {
		n = offset + 1
	}
	prices := make([]float64, n)
	copy(prices, s.prices)
	for i := len(s.prices); i < n; i++ {
		prices[i] = s.prices[len(s.prices)-1]
	}
	prices[offset] = price
	return &Series{start: s.start, prices: prices}, nil
}

// jseries is the persisted form: {"start":"YYYY-MM-DD","prices":[...]}.
type jseries struct {
	Start  *date.Date `json:"start"`
	Prices *[]float64 `json:"prices"`
}

// UnmarshalJSON decodes and validates the persisted form.
func (s *Series) UnmarshalJSON(bytes []byte) error {
	var js jseries
	if err := json.Unmarshal(bytes, &js); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if js.Start == nil {
		return fmt.Errorf("%w: missing 'start' property", ErrValidation)
	}
	if js.Prices == nil {
		return fmt.Errorf("%w: missing 'prices' property", ErrValidation)
	}
	parsed, err := NewSeries(*js.Start, *js.Prices)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// MarshalJSON encodes the series in its persisted form, fields in
// canonical order, so that it round-trips losslessly.
func (s *Series) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("start", s.start)
	w.Append("prices", s.prices)
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Series)(nil)
var _ json.Unmarshaler = (*Series)(nil)

// ParseSeries reads and validates a series from its persisted JSON
// form.
func ParseSeries(r io.Reader) (*Series, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read series: %w", err)
	}
	s := new(Series)
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeSeries loads a series from a file.
func DecodeSeries(filename string) (*Series, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open series file: %w", err)
	}
	defer f.Close()
	s, err := ParseSeries(f)
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	return s, nil
}

// EncodeSeries writes a series to a file in its persisted form.
func EncodeSeries(filename string, s *Series) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}
