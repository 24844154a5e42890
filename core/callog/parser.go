// Package callog parses raw call logs into records.
// Parsing is a pure transformation with no I/O and no recovery: the first
// malformed line aborts the whole log.
package callog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lubomirsilny/arbes-assignment/core/types"
	"github.com/lubomirsilny/arbes-assignment/internal/errors"
	"github.com/lubomirsilny/arbes-assignment/internal/logging"
)

// ParseLog converts raw log text into call records, one per non-blank line,
// preserving input order. Lines are separated by \n or \r\n; blank and
// whitespace-only lines are skipped. Empty or blank text yields an empty
// slice and no error.
func ParseLog(text string) ([]types.CallRecord, error) {
	lines := strings.Split(text, "\n")
	records := make([]types.CallRecord, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := parseLine(i+1, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	logging.Debug("parsed call log",
		zap.Int("lines", len(lines)),
		zap.Int("records", len(records)))

	return records, nil
}

// ParseLine converts a single log line into a call record. Errors report
// the input as line 1; ParseLog supplies real line numbers for whole logs.
func ParseLine(line string) (types.CallRecord, error) {
	return parseLine(1, line)
}

func parseLine(n int, line string) (types.CallRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return types.CallRecord{}, errors.MalformedLine(n, len(fields))
	}

	number, value, err := parseNumber(n, fields[0])
	if err != nil {
		return types.CallRecord{}, err
	}

	start, err := parseTimestamp(n, "start", fields[1])
	if err != nil {
		return types.CallRecord{}, err
	}

	end, err := parseTimestamp(n, "end", fields[2])
	if err != nil {
		return types.CallRecord{}, err
	}

	if end.Before(start) {
		return types.CallRecord{}, errors.Inputf("line %d: call ends at %s before it starts at %s",
			n, end.Format(types.TimeLayout), start.Format(types.TimeLayout)).
			WithContext("line", n)
	}

	return types.CallRecord{
		Number: number,
		Value:  value,
		Start:  start,
		End:    end,
	}, nil
}

// parseNumber accepts a non-empty string of decimal digits and returns it
// together with its numeric magnitude. The magnitude is an exact decimal so
// numbers longer than 19 digits still compare correctly.
func parseNumber(n int, field string) (string, decimal.Decimal, error) {
	if field == "" {
		return "", decimal.Decimal{}, errors.MalformedNumber(n, field)
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return "", decimal.Decimal{}, errors.MalformedNumber(n, field)
		}
	}

	value, err := decimal.NewFromString(field)
	if err != nil {
		return "", decimal.Decimal{}, errors.MalformedNumber(n, field)
	}
	return field, value, nil
}

func parseTimestamp(n int, field, value string) (time.Time, error) {
	ts, err := time.Parse(types.TimeLayout, value)
	if err != nil {
		return time.Time{}, errors.MalformedTimestamp(n, field, value, err)
	}
	return ts, nil
}
