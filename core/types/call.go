// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the fixed timestamp format of call logs, dd-MM-yyyy HH:mm:ss
// in Go reference-time notation. It is a process-wide constant; parsers and
// renderers must not build their own variants.
const TimeLayout = "02-01-2006 15:04:05"

// CallRecord is one parsed entry of a call log: a dialed number and the
// wall-clock window of the call. Records are immutable values held only for
// the duration of a single calculation.
type CallRecord struct {
	// Number is the dialed phone number exactly as it appeared in the log.
	// Calls are grouped by this textual form, so "0420" and "420" are
	// distinct numbers even though their numeric values match.
	Number string `json:"number"`

	// Value is Number interpreted as an arbitrary-precision non-negative
	// integer. Numbers may exceed the 64-bit range. Only the free-number
	// tie-break reads it; grouping stays on the textual form.
	Value decimal.Decimal `json:"-"`

	// Start is when the call began. Timestamps are naive local times with
	// second precision; no timezone is attached.
	Start time.Time `json:"start"`

	// End is when the call ended. Never before Start; the parser rejects
	// inverted windows.
	End time.Time `json:"end"`
}

// Seconds returns the elapsed call time in whole seconds.
func (c CallRecord) Seconds() int64 {
	return int64(c.End.Sub(c.Start) / time.Second)
}
