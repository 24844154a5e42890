package callog

import (
	"strings"
	"testing"
	"time"

	"github.com/lubomirsilny/arbes-assignment/internal/errors"
)

// TestParseLogOrder tests that records come back in input line order
func TestParseLogOrder(t *testing.T) {
	text := "420774577453,13-01-2020 18:10:15,13-01-2020 18:12:57\n" +
		"420776562353,18-01-2020 08:59:20,18-01-2020 09:10:00"

	records, err := ParseLog(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].Number != "420774577453" {
		t.Errorf("record 0: expected number 420774577453, got %s", records[0].Number)
	}
	if records[1].Number != "420776562353" {
		t.Errorf("record 1: expected number 420776562353, got %s", records[1].Number)
	}

	wantStart := time.Date(2020, time.January, 13, 18, 10, 15, 0, time.UTC)
	if !records[0].Start.Equal(wantStart) {
		t.Errorf("record 0: expected start %v, got %v", wantStart, records[0].Start)
	}
	wantEnd := time.Date(2020, time.January, 13, 18, 12, 57, 0, time.UTC)
	if !records[0].End.Equal(wantEnd) {
		t.Errorf("record 0: expected end %v, got %v", wantEnd, records[0].End)
	}
}

// TestParseLogBlankHandling tests blank input and blank-line skipping
func TestParseLogBlankHandling(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		records int
	}{
		{
			name:    "empty text",
			text:    "",
			records: 0,
		},
		{
			name:    "whitespace only",
			text:    "   \n\t\n  ",
			records: 0,
		},
		{
			name:    "blank lines between records",
			text:    "\n111,13-01-2020 08:00:00,13-01-2020 08:01:00\n\n   \n222,13-01-2020 09:00:00,13-01-2020 09:01:00\n\n",
			records: 2,
		},
		{
			name:    "windows line endings",
			text:    "111,13-01-2020 08:00:00,13-01-2020 08:01:00\r\n222,13-01-2020 09:00:00,13-01-2020 09:01:00\r\n",
			records: 2,
		},
		{
			name:    "no trailing newline",
			text:    "111,13-01-2020 08:00:00,13-01-2020 08:01:00",
			records: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseLog(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(records) != tt.records {
				t.Errorf("expected %d records, got %d", tt.records, len(records))
			}
		})
	}
}

// TestParseLogErrors tests fail-fast rejection of malformed lines
func TestParseLogErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType errors.Type
		wantLine string
	}{
		{
			name:     "two fields",
			text:     "111,13-01-2020 08:00:00",
			wantType: errors.TypeMalformedLine,
			wantLine: "line 1",
		},
		{
			name:     "four fields",
			text:     "111,13-01-2020 08:00:00,13-01-2020 08:01:00,extra",
			wantType: errors.TypeMalformedLine,
			wantLine: "line 1",
		},
		{
			name:     "trailing comma",
			text:     "111,13-01-2020 08:00:00,13-01-2020 08:01:00,",
			wantType: errors.TypeMalformedLine,
			wantLine: "line 1",
		},
		{
			name:     "empty number",
			text:     ",13-01-2020 08:00:00,13-01-2020 08:01:00",
			wantType: errors.TypeMalformedNumber,
			wantLine: "line 1",
		},
		{
			name:     "number with letters",
			text:     "42abc,13-01-2020 08:00:00,13-01-2020 08:01:00",
			wantType: errors.TypeMalformedNumber,
			wantLine: "line 1",
		},
		{
			name:     "number with sign",
			text:     "+420774577453,13-01-2020 08:00:00,13-01-2020 08:01:00",
			wantType: errors.TypeMalformedNumber,
			wantLine: "line 1",
		},
		{
			name:     "number with spaces",
			text:     "420 774,13-01-2020 08:00:00,13-01-2020 08:01:00",
			wantType: errors.TypeMalformedNumber,
			wantLine: "line 1",
		},
		{
			name:     "bad start timestamp",
			text:     "111,2020-01-13 08:00:00,13-01-2020 08:01:00",
			wantType: errors.TypeMalformedTimestamp,
			wantLine: "line 1",
		},
		{
			name:     "bad end timestamp",
			text:     "111,13-01-2020 08:00:00,13-01-2020 08:01",
			wantType: errors.TypeMalformedTimestamp,
			wantLine: "line 1",
		},
		{
			name:     "end before start",
			text:     "111,13-01-2020 08:05:00,13-01-2020 08:00:00",
			wantType: errors.TypeInput,
			wantLine: "line 1",
		},
		{
			name:     "error on later line counts blanks",
			text:     "111,13-01-2020 08:00:00,13-01-2020 08:01:00\n\nmalformed",
			wantType: errors.TypeMalformedLine,
			wantLine: "line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseLog(tt.text)
			if err == nil {
				t.Fatalf("expected error, got %d records", len(records))
			}
			if records != nil {
				t.Errorf("expected no partial records on error, got %d", len(records))
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("expected error type %s, got %v", tt.wantType, err)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("expected error to name %q, got %q", tt.wantLine, err.Error())
			}
		})
	}
}

// TestParseLineNumberValue tests the numeric magnitude of the parsed number
func TestParseLineNumberValue(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{name: "short number", number: "99"},
		{name: "typical number", number: "420774577453"},
		{name: "leading zeros kept textually", number: "0042"},
		{name: "beyond 64-bit range", number: "123456789012345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseLine(tt.number + ",13-01-2020 08:00:00,13-01-2020 08:01:00")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if record.Number != tt.number {
				t.Errorf("expected number %q, got %q", tt.number, record.Number)
			}
			trimmed := strings.TrimLeft(tt.number, "0")
			if trimmed == "" {
				trimmed = "0"
			}
			if record.Value.String() != trimmed {
				t.Errorf("expected value %s, got %s", trimmed, record.Value.String())
			}
		})
	}
}

// TestParseLineZeroDuration tests that start == end is a valid record
func TestParseLineZeroDuration(t *testing.T) {
	record, err := ParseLine("111,13-01-2020 08:00:00,13-01-2020 08:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Seconds() != 0 {
		t.Errorf("expected 0 seconds, got %d", record.Seconds())
	}
}

// TestRecordSeconds tests elapsed-seconds computation on parsed records
func TestRecordSeconds(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		seconds int64
	}{
		{
			name:    "under a minute",
			line:    "111,13-01-2020 08:00:00,13-01-2020 08:00:59",
			seconds: 59,
		},
		{
			name:    "exactly one minute",
			line:    "111,13-01-2020 08:00:00,13-01-2020 08:01:00",
			seconds: 60,
		},
		{
			name:    "across midnight",
			line:    "111,13-01-2020 23:59:30,14-01-2020 00:00:30",
			seconds: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := record.Seconds(); got != tt.seconds {
				t.Errorf("expected %d seconds, got %d", tt.seconds, got)
			}
		})
	}
}
