// =============================================================================
// Powiaty Converter - Benchmark Command
// =============================================================================
//
// This file defines the 'benchmark' command, which looks up the national
// average pension and, optionally, the average pension of one powiat.
//
// COMMAND USAGE:
//   powiaty benchmark [--file PATH] [--teryt CODE] [--gender M|F]
//
// OUTPUT:
//   {
//     "nationalAvgPension": 3455.12,
//     "powiatAvgPension": 4512.3,
//     "powiatResolved": { "name": "Warszawa", "teryt": "1465000" },
//     "generatedAt": "2025-01-02T03:04:05Z"
//   }
//
// =============================================================================

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/powiaty-converter/internal/benchmark"
	"github.com/ginjaninja78/powiaty-converter/pkg/utils"
)

// newBenchmarkCmd builds the 'benchmark' command.
func newBenchmarkCmd(a *app) *cobra.Command {
	var file, teryt, gender string

	benchmarkCmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Look up national and powiat average pensions",
		Long: `The benchmark command reads the powiaty JSON document and prints the
national average pension. With --teryt it also prints the average pension of
that powiat; with --gender (M or F) the gender-specific values are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.OutputFile
			}

			query := benchmark.Query{
				Teryt:  strings.TrimSpace(teryt),
				Gender: benchmark.Gender(strings.ToUpper(strings.TrimSpace(gender))),
			}
			if err := query.Validate(); err != nil {
				return err
			}

			dataset, err := benchmark.Load(file)
			if err != nil {
				return err
			}

			result, err := dataset.Calculate(query)
			if err != nil {
				return err
			}
			if query.Teryt != "" && result.PowiatResolved == nil {
				a.logger.Warn("No powiat average for TERYT code",
					zap.String("teryt", query.Teryt),
					zap.String("gender", string(query.Gender)))
			}

			data, err := utils.MarshalIndentJSON(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	benchmarkCmd.Flags().StringVar(&file, "file", "", "Path to the powiaty JSON document (default: output_file)")
	benchmarkCmd.Flags().StringVar(&teryt, "teryt", "", "7-digit TERYT code of the powiat")
	benchmarkCmd.Flags().StringVar(&gender, "gender", "", "M or F for gender-specific averages")

	return benchmarkCmd
}
