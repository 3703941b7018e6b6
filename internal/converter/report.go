// =============================================================================
// Powiaty Converter - Operator Report
// =============================================================================
//
// This module prints the summary of a successful run to the operator.
// Amounts are formatted for a locale through golang.org/x/text.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report writes the operator summary of a successful run to w. Amounts are
// formatted for the given locale (language.Polish gives "3 200,50").
func (r *Result) Report(w io.Writer, tag language.Tag) {
	p := message.NewPrinter(tag)
	na := r.Document.NationalAverage

	fmt.Fprintf(w, "Wrote %d powiaty to: %s\n", r.Stats.RecordsWritten, r.OutputFile)
	fmt.Fprintln(w, "✓ Conversion complete!")
	p.Fprintf(w, "  National average (overall): %.2f PLN\n", na.Overall)
	p.Fprintf(w, "  National average (male): %.2f PLN\n", na.Male)
	p.Fprintf(w, "  National average (female): %.2f PLN\n", na.Female)
	fmt.Fprintf(w, "  Total powiaty: %d\n", r.Stats.RecordsWritten)

	if r.Stats.SkippedRows > 0 {
		fmt.Fprintf(w, "  Skipped rows without a name: %d\n", r.Stats.SkippedRows)
	}
	if r.Validation != nil && len(r.Validation.Errors) > 0 {
		fmt.Fprintf(w, "  Validation findings: %d (see log)\n", len(r.Validation.Errors))
	}
}
