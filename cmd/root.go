// =============================================================================
// Powiaty Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command with no subcommand performs the conversion, so the tool keeps
// working as a zero-argument script.
//
// COBRA CLI STRUCTURE:
//   rootCmd (powiaty)            - convert with config/defaults
//   ├── convertCmd   (powiaty convert)
//   ├── validateCmd  (powiaty validate)
//   ├── benchmarkCmd (powiaty benchmark)
//   └── versionCmd   (powiaty version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/powiaty-converter/internal/config"
	"github.com/ginjaninja78/powiaty-converter/internal/logging"
)

// =============================================================================
// APPLICATION STATE
// =============================================================================

// app holds the state shared by all commands of one invocation.
type app struct {
	// cfgFile holds the path to the configuration file (--config).
	cfgFile string

	// verbose enables debug logging (--verbose).
	verbose bool

	// cfg is the loaded configuration, set in PersistentPreRunE.
	cfg *config.Config

	// logger is the structured logger, set in PersistentPreRunE.
	logger *zap.Logger
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "powiaty",
		Short: "Powiaty Converter - ZUS pension statistics by powiat to JSON",
		Long: `Powiaty Converter reads the ZUS workbook of average pensions by powiat
(district) and writes the powiaty JSON document used for pension benchmarks.

Each powiat row becomes a record with its name, 7-digit TERYT code and the
average pensions for men and women. National averages are computed from
the records.

Example Usage:
  powiaty                                  # Convert with config.yaml or defaults
  powiaty convert --input data/source.xlsx # Convert a specific workbook
  powiaty validate                         # Check the generated document
  powiaty benchmark --teryt 1465000        # Average pension in Warszawa`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},

		// Without a subcommand the root command converts with the
		// configured paths.
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&a.cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file (optional; defaults apply when absent)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&a.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.AddCommand(
		newConvertCmd(a),
		newValidateCmd(a),
		newBenchmarkCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// init loads the configuration and builds the logger.
// An explicitly passed --config must exist; the default one may be absent.
func (a *app) init(cmd *cobra.Command) error {
	required := cmd.Flags().Changed("config")

	cfg, err := config.Load(a.cfgFile, required)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
