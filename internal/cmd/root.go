package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tszlabs/archlint/pkg/logging"
)

var (
	verbose  bool
	jsonLogs bool

	rootCmd = &cobra.Command{
		Use:   "archlint",
		Short: "Enforce module-boundary invariants across the compiler workspace",
		Long:  "Archlint scans the compiler sources and manifests for forbidden cross-module dependencies, oversized files and unapproved construction of quarantined types, and reports violations as a pass/fail verdict.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(jsonLogs, verbose)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewReportCmd())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit log output as JSON")
}
