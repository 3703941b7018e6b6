// =============================================================================
// Powiaty Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs the conversion
// pipeline. The root command runs the same pipeline when called without a
// subcommand.
//
// COMMAND USAGE:
//   powiaty convert [flags]
//
// FLAGS:
//   --input   : Source workbook (overrides input_file)
//   --output  : Destination JSON file (overrides output_file)
//
// OUTPUT:
//   Reading Excel file: data/pkt 6_emerytury_powiaty.xlsx
//   Wrote 380 powiaty to: packages/data/src/json/powiaty.json
//   ✓ Conversion complete!
//     National average (overall): 3 455,12 PLN
//     ...
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/ginjaninja78/powiaty-converter/internal/converter"
)

// newConvertCmd builds the 'convert' command.
func newConvertCmd(a *app) *cobra.Command {
	var inputFile, outputFile string

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the ZUS powiaty workbook to JSON",
		Long: `The convert command reads the first sheet of the source workbook, skips the
title block and the column label row, and writes one record per powiat row
that has a name. The output directory is created if needed and an existing
output file is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile != "" {
				a.cfg.InputFile = inputFile
			}
			if outputFile != "" {
				a.cfg.OutputFile = outputFile
			}
			return a.runConvert(cmd)
		},
	}

	convertCmd.Flags().StringVar(&inputFile, "input", "", "Path to the source workbook")
	convertCmd.Flags().StringVar(&outputFile, "output", "", "Path to the JSON file to write")

	return convertCmd
}

// runConvert runs the conversion with the loaded configuration and prints
// the operator summary.
func (a *app) runConvert(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Reading Excel file: %s\n", a.cfg.InputFile)

	result, err := converter.New(a.cfg, a.logger).Run()
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	result.Report(out, language.Polish)
	return nil
}
