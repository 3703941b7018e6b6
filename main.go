// =============================================================================
// Powiaty Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the powiaty converter CLI. It converts
// the ZUS workbook of average pensions by powiat into the powiaty JSON
// document and answers benchmark queries against it.
//
// USAGE:
//   powiaty                 - Convert using config.yaml or the defaults
//   powiaty convert         - Same, with --input/--output overrides
//   powiaty validate        - Check an existing powiaty JSON document
//   powiaty benchmark       - Look up national/powiat average pensions
//   powiaty version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : Cobra command definitions
//   - internal/      : Conversion, validation and benchmark logic
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/powiaty-converter/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
