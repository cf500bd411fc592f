package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tszlabs/archlint/pkg/rules"
	"github.com/tszlabs/archlint/pkg/scanner"
	"github.com/tszlabs/archlint/pkg/scanner/types"
	"github.com/tszlabs/archlint/pkg/scanner/verdict"
)

var (
	checkRoot   string
	checkConfig string
	jsonOutput  bool
	outputPath  string
	maxWorkers  int
)

func NewCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run the boundary rules and report a verdict",
		Run:   Check,
	}

	checkCmd.Flags().StringVarP(&checkRoot, "root", "r", ".", "Workspace root to scan")
	checkCmd.Flags().StringVarP(&checkConfig, "config", "c", "", "YAML rules file replacing the built-in registry")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the verdict as JSON instead of a listing")
	checkCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also persist the verdict JSON to this path")
	checkCmd.Flags().IntVar(&maxWorkers, "workers", 4, "Number of rules evaluated concurrently")

	return checkCmd
}

func Check(cmd *cobra.Command, args []string) {
	cfg := rules.Default()
	if checkConfig != "" {
		loaded, err := rules.Load(checkConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed loading rules config")
		}
		cfg = loaded
		log.Debug().Str("config", checkConfig).Msg("Loaded rules from file")
	}

	groups, err := scanner.Run(checkRoot, cfg, maxWorkers)
	if err != nil {
		// An unexpected fault must abort: a partial verdict would be
		// indistinguishable from a clean pass.
		log.Fatal().Err(err).Msg("Scan aborted")
	}

	v := scanner.BuildVerdict(groups)

	if outputPath != "" {
		if err := scanner.WriteVerdict(v, outputPath); err != nil {
			log.Fatal().Err(err).Msg("Failed persisting verdict")
		}
		log.Debug().Str("path", outputPath).Msg("Verdict persisted")
	}

	if jsonOutput {
		data, err := verdict.Marshal(v)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed marshalling verdict")
		}
		fmt.Println(string(data))
	} else {
		scanner.RenderVerdict(v, os.Stdout)
	}

	if v.Status == types.StatusFailed {
		os.Exit(1)
	}
}
