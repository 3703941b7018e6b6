// =============================================================================
// Powiaty Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks an existing powiaty
// JSON document: metadata, 7-digit TERYT codes, non-negative averages.
//
// COMMAND USAGE:
//   powiaty validate [--file PATH] [--error-log PATH]
//
// Exits non-zero when the document has errors; warnings are printed only.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/powiaty-converter/internal/benchmark"
	"github.com/ginjaninja78/powiaty-converter/internal/validation"
)

// newValidateCmd builds the 'validate' command.
func newValidateCmd(a *app) *cobra.Command {
	var file, errorLog string

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a generated powiaty JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.OutputFile
			}
			out := cmd.OutOrStdout()

			dataset, err := benchmark.Load(file)
			if err != nil {
				return err
			}

			result := validation.ValidateDocument(dataset.Document())
			a.logger.Debug("Validated document",
				zap.String("path", file),
				zap.Int("records", result.RecordsValidated),
				zap.Int("errors", result.ErrorCount),
				zap.Int("warnings", result.WarningCount))

			fmt.Fprintf(out, "Validated %d powiaty in %s\n", result.RecordsValidated, file)
			if len(result.Errors) > 0 {
				fmt.Fprint(out, validation.FormatErrors(result.Errors))
				if errorLog != "" {
					if err := validation.WriteErrorLog(result.Errors, errorLog); err != nil {
						return fmt.Errorf("failed to write error log: %w", err)
					}
					fmt.Fprintf(out, "Findings written to: %s\n", errorLog)
				}
			}

			if !result.IsValid {
				return fmt.Errorf("%s: %d validation error(s)", file, result.ErrorCount)
			}
			fmt.Fprintf(out, "✓ Document is valid (%d warning(s))\n", result.WarningCount)
			return nil
		},
	}

	validateCmd.Flags().StringVar(&file, "file", "", "Path to the powiaty JSON document (default: output_file)")

	validateCmd.Flags().StringVar(&errorLog, "error-log", "", "Also write the findings to this file")

	return validateCmd
}
