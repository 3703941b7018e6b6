// =============================================================================
// Powiaty Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the application
// version and build information.
//
// COMMAND USAGE:
//   powiaty version
//
// OUTPUT:
//   Powiaty Converter
//   Version:         1.0.0
//   Document Format: 1.0.0
//   Build Date:      2024-01-01
//   Go Version:      go1.24.0
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/powiaty-converter/internal/config"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/powiaty-converter/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// newVersionCmd builds the 'version' command. It does not load the
// configuration, so it works even with a broken config file.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the application version",
		Long:  `Display the application version, document format version, build date, and Go runtime version.`,
		Args:  cobra.NoArgs,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {},

		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Powiaty Converter")
			fmt.Fprintf(out, "Version:         %s\n", Version)
			fmt.Fprintf(out, "Document Format: %s\n", config.DefaultVersion)
			fmt.Fprintf(out, "Build Date:      %s\n", BuildDate)
			fmt.Fprintf(out, "Go Version:      %s\n", runtime.Version())
		},
	}
}
