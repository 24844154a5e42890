package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lubomirsilny/arbes-assignment/core/billing"
	"github.com/lubomirsilny/arbes-assignment/core/types"
)

const innerWidth = 73

// CLIFormatter renders statements as a boxed table for terminals.
type CLIFormatter struct {
	opts Options
}

// NewCLIFormatter creates a CLI formatter with the given options.
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{opts: opts}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the statement as a boxed summary table.
func (f *CLIFormatter) Render(w io.Writer, statement *billing.Statement) error {
	border := strings.Repeat("─", innerWidth)

	fmt.Fprintf(w, "┌%s┐\n", border)
	fmt.Fprintf(w, "│%s│\n", center("TELEPHONE BILL", innerWidth))
	fmt.Fprintf(w, "├%s┤\n", border)

	if len(statement.Calls) == 0 {
		row(w, "No calls in the log", "")
		fmt.Fprintf(w, "├%s┤\n", border)
		row(w, "TOTAL", statement.Total.StringFixed(2))
		fmt.Fprintf(w, "└%s┘\n", border)
		return nil
	}

	freeCalls := 0
	for _, charge := range statement.Calls {
		if charge.Free {
			freeCalls++
		}
	}
	row(w, fmt.Sprintf("Free number: %s (%d call(s))", statement.FreeNumber, freeCalls), "")
	fmt.Fprintf(w, "├%s┤\n", border)

	if f.opts.ShowDetails {
		for _, charge := range statement.Calls {
			left := fmt.Sprintf("%s  %s", charge.Number, window(charge))
			right := "FREE"
			if !charge.Free {
				right = fmt.Sprintf("%d min  %s", charge.Minutes, charge.Amount.StringFixed(2))
			}
			row(w, left, right)
		}
		fmt.Fprintf(w, "├%s┤\n", border)
	}

	row(w, "TOTAL", statement.Total.StringFixed(2))
	fmt.Fprintf(w, "└%s┘\n", border)
	return nil
}

func row(w io.Writer, left, right string) {
	fmt.Fprintf(w, "│ %-50s %20s │\n", truncate(left, 50), right)
}

// window formats a call's time span, repeating the date only when the
// call crosses midnight.
func window(charge billing.CallCharge) string {
	start := charge.Start.Format(types.TimeLayout)
	sy, sm, sd := charge.Start.Date()
	ey, em, ed := charge.End.Date()
	if sy == ey && sm == em && sd == ed {
		return start + " - " + charge.End.Format("15:04:05")
	}
	return start + " - " + charge.End.Format(types.TimeLayout)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
