package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tszlabs/archlint/pkg/report"
)

var (
	reportRoot    string
	reportVerdict string
	reportOutput  string
	reportExt     string
)

func NewReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Render a persisted verdict as a Markdown report with corpus size statistics",
		Run:   Report,
	}

	reportCmd.Flags().StringVarP(&reportRoot, "root", "r", ".", "Workspace root the verdict was produced from")
	reportCmd.Flags().StringVar(&reportVerdict, "verdict", "", "Path to the persisted verdict JSON")
	err := reportCmd.MarkFlagRequired("verdict")
	if err != nil {
		log.Error().Msg("Unable to require verdict flag: " + err.Error())
	}
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.md", "Markdown output path")
	reportCmd.Flags().StringVar(&reportExt, "ext", ".rs", "Source file extension for size statistics")

	return reportCmd
}

func Report(cmd *cobra.Command, args []string) {
	err := report.WriteMarkdown(reportRoot, reportVerdict, reportOutput, reportExt)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed writing report")
	}
	log.Info().Str("path", reportOutput).Msg("Report written")
}
