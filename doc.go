// Package holding computes time-windowed performance metrics for a
// single-asset holding: current value, absolute and percentage gain,
// and annualized growth (CAGR), over named windows such as "since
// yesterday", week-to-date, fixed 30-day spans, or the whole history.
//
// The core functionalities include:
//   - Series Store: an immutable, dense daily closing-price history
//     anchored at a start date, with day lookup, latest lookup, and
//     range extraction, all in whole UTC calendar days.
//   - Window Resolver: mapping a named window and a "now" instant to a
//     deterministic start instant.
//   - Metrics Engine: pure arithmetic from (amount, current price,
//     start price, period) to value, gains, and CAGR, with a display
//     gate that suppresses CAGR for periods shorter than thirty days.
//   - Staleness Cross-Check: a flag that distinguishes a genuinely
//     flat window from "the current price is just the last historical
//     point again".
//
// Everything here is a pure function over immutable inputs: no
// logging, no I/O, no hidden state. Fetching live quotes and loading
// the series from disk live at the edges (see FetchQuote,
// DecodeSeries) and feed the core their already-parsed results. The
// `hold` command-line tool is built on top of this package.
package holding
