package billing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Tally counts call occurrences per distinct number. Iteration over the
// tally is always in sorted key order so the free-number scan is
// deterministic regardless of map layout.
type Tally struct {
	counts map[string]int64
	values map[string]decimal.Decimal
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{
		counts: make(map[string]int64),
		values: make(map[string]decimal.Decimal),
	}
}

// Observe records one call occurrence for number. Numbers are keyed by
// their textual form; value is the numeric magnitude used for tie-breaks.
func (t *Tally) Observe(number string, value decimal.Decimal) {
	t.counts[number]++
	t.values[number] = value
}

// Count returns how many calls were observed for number.
func (t *Tally) Count(number string) int64 {
	return t.counts[number]
}

// Len returns the number of distinct numbers observed.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Numbers returns the distinct numbers in sorted order.
func (t *Tally) Numbers() []string {
	numbers := make([]string, 0, len(t.counts))
	for number := range t.counts {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers
}

// MostFrequent returns the number with the highest call count. Frequency
// ties go to the greatest numeric value, compared as arbitrary-precision
// integers, so "100" beats "99" even though it sorts lower as a string.
// Numbers with equal value (leading-zero aliases) keep the first one seen
// in sorted order. ok is false when the tally is empty.
func (t *Tally) MostFrequent() (number string, ok bool) {
	if len(t.counts) == 0 {
		return "", false
	}

	var best string
	var bestCount int64
	var bestValue decimal.Decimal

	for _, n := range t.Numbers() {
		count := t.counts[n]
		value := t.values[n]
		switch {
		case best == "" || count > bestCount:
			best, bestCount, bestValue = n, count, value
		case count == bestCount && value.GreaterThan(bestValue):
			best, bestCount, bestValue = n, count, value
		}
	}

	return best, true
}
