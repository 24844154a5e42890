package output

import (
	"encoding/json"
	"io"

	"github.com/lubomirsilny/arbes-assignment/core/billing"
	"github.com/lubomirsilny/arbes-assignment/core/types"
)

// JSONFormatter renders statements as indented JSON.
type JSONFormatter struct {
	opts Options
}

// NewJSONFormatter creates a JSON formatter with the given options.
func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// jsonStatement is the wire shape of a statement. Amounts are fixed
// two-decimal strings and timestamps use the call-log layout, so the
// output round-trips without floating point.
type jsonStatement struct {
	FreeNumber string     `json:"free_number,omitempty"`
	Calls      []jsonCall `json:"calls,omitempty"`
	Total      string     `json:"total"`
}

type jsonCall struct {
	Number  string `json:"number"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Minutes int64  `json:"minutes"`
	Amount  string `json:"amount"`
	Free    bool   `json:"free"`
}

// Render writes the statement as JSON.
func (f *JSONFormatter) Render(w io.Writer, statement *billing.Statement) error {
	out := jsonStatement{
		FreeNumber: statement.FreeNumber,
		Total:      statement.Total.StringFixed(2),
	}

	if f.opts.ShowDetails {
		out.Calls = make([]jsonCall, 0, len(statement.Calls))
		for _, charge := range statement.Calls {
			out.Calls = append(out.Calls, jsonCall{
				Number:  charge.Number,
				Start:   charge.Start.Format(types.TimeLayout),
				End:     charge.End.Format(types.TimeLayout),
				Minutes: charge.Minutes,
				Amount:  charge.Amount.StringFixed(2),
				Free:    charge.Free,
			})
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
