package holding

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// FetchQuote retrieves a live price from a JSON quote endpoint,
// extracting the value at the given jsonpath expression (e.g.
// "$.quote.last" or "$.series.intraday.data[-1:][1]").
//
// Quote APIs are sloppy: the value may come back as a float, a list
// of one float, or a decimal-comma string; all three are handled.
func FetchQuote(client *http.Client, addr, path string) (float64, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving quote: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error extracting quote at %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch val := jval.(type) {
	case float64:
		return val, nil
	case string:
		// sometimes, this weird kind of API returns the value as a
		// decimal-comma string
		sval := strings.ReplaceAll(val, ",", ".")
		f, err := strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("cannot read quote at %q from %q: %w", path, val, err)
		}
		return f, nil
	default:
		return math.NaN(), fmt.Errorf("cannot read quote at %q: neither a float nor a string: %v", path, jval)
	}
}

// CurrentQuote implements the fallback chain: try the live fetch, and
// on failure fall back to the series' latest close, explicitly tagged
// so downstream staleness checks do not have to guess.
func CurrentQuote(s *Series, fetch func() (float64, error)) Quote {
	price, err := fetch()
	if err != nil || math.IsNaN(price) || price < 0 {
		log.Printf("live quote unavailable, falling back to last close: %v", err)
		return s.FallbackQuote()
	}
	return FreshQuote(price)
}
