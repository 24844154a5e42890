// Package tariff - HCL tariff file loading
package tariff

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"github.com/lubomirsilny/arbes-assignment/internal/errors"
)

// LoadFile reads a tariff definition from an HCL file. The file holds a
// single tariff block; attributes it leaves out keep their built-in
// values. Rates are quoted decimal strings so no precision is lost:
//
//	tariff {
//	  standard_rate   = "1.00"
//	  reduced_rate    = "0.50"
//	  long_call_rate  = "0.20"
//	  peak_start_hour = 8
//	  peak_end_hour   = 16
//	  long_call_after = 5
//	}
//
// The result is validated before it is returned, so the engine never
// prices with a malformed tariff.
func LoadFile(path string) (Tariff, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Tariff{}, errors.Tariff("reading tariff file "+path, err)
	}
	return Parse(src, path)
}

// Parse decodes tariff HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (Tariff, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Tariff{}, diagError("parsing tariff file", diags)
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "tariff"},
		},
	})
	if diags.HasErrors() {
		return Tariff{}, diagError("reading tariff file", diags)
	}
	if len(content.Blocks) == 0 {
		return Tariff{}, errors.Newf(errors.TypeTariff, "%s has no tariff block", filename)
	}
	if len(content.Blocks) > 1 {
		return Tariff{}, errors.Newf(errors.TypeTariff, "%s defines %d tariff blocks, expected one", filename, len(content.Blocks))
	}

	blockContent, _, diags := content.Blocks[0].Body.PartialContent(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "standard_rate"},
			{Name: "reduced_rate"},
			{Name: "long_call_rate"},
			{Name: "peak_start_hour"},
			{Name: "peak_end_hour"},
			{Name: "long_call_after"},
		},
	})
	if diags.HasErrors() {
		return Tariff{}, diagError("reading tariff block", diags)
	}

	tariff := Default()
	attrs := blockContent.Attributes
	if err := decimalAttr(attrs, "standard_rate", &tariff.StandardRate); err != nil {
		return Tariff{}, err
	}
	if err := decimalAttr(attrs, "reduced_rate", &tariff.ReducedRate); err != nil {
		return Tariff{}, err
	}
	if err := decimalAttr(attrs, "long_call_rate", &tariff.LongCallRate); err != nil {
		return Tariff{}, err
	}
	if err := intAttr(attrs, "peak_start_hour", &tariff.PeakStartHour); err != nil {
		return Tariff{}, err
	}
	if err := intAttr(attrs, "peak_end_hour", &tariff.PeakEndHour); err != nil {
		return Tariff{}, err
	}
	if err := intAttr(attrs, "long_call_after", &tariff.LongCallAfterMinutes); err != nil {
		return Tariff{}, err
	}

	if err := tariff.Validate(); err != nil {
		return Tariff{}, err
	}
	return tariff, nil
}

// decimalAttr reads an exact decimal rate. Rates must be quoted strings;
// a bare HCL number would round-trip through floating point.
func decimalAttr(attrs hcl.Attributes, name string, dst *decimal.Decimal) error {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diagError("evaluating "+name, diags)
	}
	if !val.IsKnown() || val.IsNull() {
		return errors.Newf(errors.TypeTariff, "%s has no usable value", name)
	}
	if val.Type() != cty.String {
		return errors.Newf(errors.TypeTariff, "%s must be a quoted decimal string, got %s", name, val.Type().FriendlyName())
	}

	rate, err := decimal.NewFromString(val.AsString())
	if err != nil {
		return errors.Wrapf(errors.TypeTariff, err, "%s is not a decimal amount", name)
	}
	*dst = rate
	return nil
}

func intAttr(attrs hcl.Attributes, name string, dst *int) error {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diagError("evaluating "+name, diags)
	}
	if !val.IsKnown() || val.IsNull() {
		return errors.Newf(errors.TypeTariff, "%s has no usable value", name)
	}
	if val.Type() != cty.Number {
		return errors.Newf(errors.TypeTariff, "%s must be a number, got %s", name, val.Type().FriendlyName())
	}

	f := val.AsBigFloat()
	if !f.IsInt() {
		return errors.Newf(errors.TypeTariff, "%s must be a whole number, got %s", name, f.Text('f', -1))
	}
	n, _ := f.Int64()
	*dst = int(n)
	return nil
}

// diagError converts the first HCL error diagnostic into a tariff error,
// keeping the file position when one is attached.
func diagError(message string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		detail := diag.Summary
		if diag.Detail != "" {
			detail += ": " + diag.Detail
		}
		if diag.Subject != nil {
			return errors.Newf(errors.TypeTariff, "%s: %s:%d: %s",
				message, diag.Subject.Filename, diag.Subject.Start.Line, detail)
		}
		return errors.Newf(errors.TypeTariff, "%s: %s", message, detail)
	}
	return errors.New(errors.TypeTariff, message)
}
