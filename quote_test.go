package holding

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchQuote(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		path      string
		want      float64
		expectErr bool
	}{
		{"Float value", `{"last": 45000.5}`, "$.last", 45000.5, false},
		{"Nested value", `{"quote":{"price": 120}}`, "$.quote.price", 120, false},
		{"List of one", `{"series":{"data":[[1,100],[2,101.5]]}}`, "$.series.data[-1:][1]", 101.5, false},
		{"Decimal comma string", `{"last": "45000,5"}`, "$.last", 45000.5, false},
		{"Missing path", `{"other": 1}`, "$.last", 0, true},
		{"Not a number", `{"last": true}`, "$.last", 0, true},
		{"Not JSON", `<html></html>`, "$.last", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			got, err := FetchQuote(srv.Client(), srv.URL, tc.path)
			if (err != nil) != tc.expectErr {
				t.Fatalf("FetchQuote() error = %v, want error %v", err, tc.expectErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("FetchQuote() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFetchQuoteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := FetchQuote(srv.Client(), srv.URL, "$.last"); err == nil {
		t.Error("FetchQuote() on a 503 succeeded, want error")
	}
}

func TestCurrentQuote(t *testing.T) {
	s := mustSeries(t, "2024-12-14", 52000, 50000, 45000)

	t.Run("Live quote", func(t *testing.T) {
		q := CurrentQuote(s, func() (float64, error) { return 46000, nil })
		if q.Source != Fresh || q.Price != 46000 {
			t.Errorf("CurrentQuote() = %+v, want fresh 46000", q)
		}
	})

	t.Run("Fallback to last close", func(t *testing.T) {
		q := CurrentQuote(s, func() (float64, error) { return 0, http.ErrHandlerTimeout })
		if q.Source != FallbackHistorical || q.Price != 45000 {
			t.Errorf("CurrentQuote() = %+v, want historical 45000", q)
		}
	})
}
