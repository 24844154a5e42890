// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of billing
// statements; amounts are fixed to two decimal places only here, never
// inside the engine.
package output

import (
	"io"

	"github.com/lubomirsilny/arbes-assignment/core/billing"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Options controls formatter behavior.
type Options struct {
	// ShowDetails includes the per-call breakdown.
	ShowDetails bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the statement to w
	Render(w io.Writer, statement *billing.Statement) error
}
