package holding

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/holding/date"
)

// ErrUnknownWindow reports a window identifier outside the known set.
var ErrUnknownWindow = errors.New("unknown window")

type windowKind int

const (
	sinceYesterday windowKind = iota // start of the previous calendar day
	periodToDate                     // start of the calendar period containing now
	fixedDays                        // now minus N wall-clock days
	allTime                          // series start
)

// Window is a named rule mapping a "now" instant to the start instant
// of a performance measurement.
type Window struct {
	id     string
	kind   windowKind
	period date.Period // for periodToDate
	days   int         // for fixedDays
}

func (w Window) String() string { return w.id }

var fixedDaysRE = regexp.MustCompile(`^(\d+)d$`)

// ParseWindow parses a window identifier: "1d", week/month/year
// (to date), a fixed wall-clock span like "7d" or "30d", or "all".
func ParseWindow(id string) (Window, error) {
	norm := strings.ToLower(strings.TrimSpace(id))
	switch norm {
	case "1d", "day", "yesterday":
		return Window{id: "1d", kind: sinceYesterday}, nil
	case "week", "wtd":
		return Window{id: "week", kind: periodToDate, period: date.Weekly}, nil
	case "month", "mtd":
		return Window{id: "month", kind: periodToDate, period: date.Monthly}, nil
	case "year", "ytd":
		return Window{id: "year", kind: periodToDate, period: date.Yearly}, nil
	case "all", "max":
		return Window{id: "all", kind: allTime}, nil
	}
	if match := fixedDaysRE.FindStringSubmatch(norm); match != nil {
		n, err := strconv.Atoi(match[1])
		if err != nil || n == 0 {
			return Window{}, fmt.Errorf("%w: %q", ErrUnknownWindow, id)
		}
		return Window{id: norm, kind: fixedDays, days: n}, nil
	}
	return Window{}, fmt.Errorf("%w: %q", ErrUnknownWindow, id)
}

// MustParseWindow is like ParseWindow but panics on error.
func MustParseWindow(id string) Window {
	w, err := ParseWindow(id)
	if err != nil {
		panic(err.Error())
	}
	return w
}

// Windows returns the canonical ordered set offered to callers.
func Windows() []Window {
	return []Window{
		MustParseWindow("1d"),
		MustParseWindow("7d"),
		MustParseWindow("30d"),
		MustParseWindow("week"),
		MustParseWindow("month"),
		MustParseWindow("year"),
		MustParseWindow("all"),
	}
}

// Resolve maps the window and a "now" instant to the window's start
// instant.
//
// The "1d" window is the start of the calendar day before now's
// calendar day, not now minus 24h and not the start of today: at
// 00:05 and at 23:55 of the same day it resolves to the same instant,
// so the measured period ranges from a few minutes to nearly 48
// hours. That approximates "since yesterday's close" and is relied on
// by callers. Calendar windows start on UTC midnights (Monday for
// weeks); fixed-day windows subtract wall-clock days from now; "all"
// starts at the series' first day.
func (w Window) Resolve(s *Series, now time.Time) time.Time {
	switch w.kind {
	case sinceYesterday:
		return date.At(now).Add(-1).Time()
	case periodToDate:
		return date.At(now).StartOf(w.period).Time()
	case fixedDays:
		return now.Add(-time.Duration(w.days) * date.Day)
	case allTime:
		return s.Start().Time()
	default:
		panic(fmt.Sprintf("unknown window kind %d", w.kind))
	}
}
