// Package billing prices parsed call logs.
// The engine applies the time-of-day tariff per started minute, excludes
// every call to the most frequent number, and sums the rest into an exact
// decimal total. Pricing never touches binary floating point.
package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lubomirsilny/arbes-assignment/core/callog"
	"github.com/lubomirsilny/arbes-assignment/core/tariff"
	"github.com/lubomirsilny/arbes-assignment/core/types"
	"github.com/lubomirsilny/arbes-assignment/internal/logging"
)

// Engine prices call logs under a fixed tariff. Engines hold no state
// between calculations and are safe for concurrent use.
type Engine struct {
	tariff tariff.Tariff
}

// New creates an engine pricing with the given tariff.
func New(t tariff.Tariff) *Engine {
	return &Engine{tariff: t}
}

// Default creates an engine with the built-in tariff.
func Default() *Engine {
	return New(tariff.Default())
}

// Statement is the itemized outcome of pricing one call log.
type Statement struct {
	// FreeNumber is the number whose calls were excluded from billing,
	// chosen by call frequency with numeric-value tie-break. Empty when
	// the log had no calls.
	FreeNumber string

	// Calls holds one charge per log line, in input order.
	Calls []CallCharge

	// Total is the sum of all non-free call amounts.
	Total decimal.Decimal
}

// CallCharge is the priced outcome of a single call.
type CallCharge struct {
	Number  string
	Start   time.Time
	End     time.Time
	Minutes int64
	Amount  decimal.Decimal
	Free    bool
}

// Calculate returns the total cost of the calls described by logText.
// Empty or blank input yields a zero total without error; a malformed
// line surfaces the parser's error unchanged, with no partial total.
func (e *Engine) Calculate(logText string) (decimal.Decimal, error) {
	statement, err := e.Itemize(logText)
	if err != nil {
		return decimal.Zero, err
	}
	return statement.Total, nil
}

// Itemize runs the same pipeline as Calculate but returns the full
// per-call breakdown alongside the total. Both are pure: the same input
// always produces the same statement.
func (e *Engine) Itemize(logText string) (*Statement, error) {
	if strings.TrimSpace(logText) == "" {
		return &Statement{Total: decimal.Zero}, nil
	}

	records, err := callog.ParseLog(logText)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Statement{Total: decimal.Zero}, nil
	}

	tally := NewTally()
	for _, record := range records {
		tally.Observe(record.Number, record.Value)
	}
	freeNumber, _ := tally.MostFrequent()

	statement := &Statement{
		FreeNumber: freeNumber,
		Calls:      make([]CallCharge, 0, len(records)),
		Total:      decimal.Zero,
	}

	for _, record := range records {
		charge := CallCharge{
			Number:  record.Number,
			Start:   record.Start,
			End:     record.End,
			Minutes: StartedMinutes(record),
		}
		if record.Number == freeNumber {
			charge.Free = true
			charge.Amount = decimal.Zero
		} else {
			charge.Amount = e.Price(record)
			statement.Total = statement.Total.Add(charge.Amount)
		}
		statement.Calls = append(statement.Calls, charge)
	}

	logging.Debug("priced call log",
		zap.Int("calls", len(records)),
		zap.Int("numbers", tally.Len()),
		zap.String("free_number", freeNumber),
		zap.Int64("free_calls", tally.Count(freeNumber)))

	return statement, nil
}

// Price computes the cost of a single call: each started minute is billed
// at the tariff rate for that minute, with the time-of-day rate
// re-evaluated minute by minute so peak-boundary crossings split the price.
func (e *Engine) Price(record types.CallRecord) decimal.Decimal {
	price := decimal.Zero
	minutes := StartedMinutes(record)

	for i := int64(0); i < minutes; i++ {
		price = price.Add(e.tariff.MinuteRate(record.Start, i))
	}
	return price
}

// StartedMinutes returns the billable duration of a call: elapsed seconds
// rounded up to the next whole minute, with exact multiples of 60 not
// rounded. A zero-length call bills no minutes.
func StartedMinutes(record types.CallRecord) int64 {
	seconds := record.Seconds()
	if seconds%60 == 0 {
		return seconds / 60
	}
	return seconds/60 + 1
}
