package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themohitbharti/joblens/internal/analysis"
	"github.com/themohitbharti/joblens/internal/observability"
	"github.com/themohitbharti/joblens/internal/schemas"
	"github.com/themohitbharti/joblens/internal/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a document's benchmark results",
	Long: "Score a document (or a JSON array of documents) against the catalog of the selected domain. " +
		"The role profile adjusts benchmark weights; the report is written as JSON.",
	RunE: runScan,
}

var (
	scanInputFile  string
	scanOutputFile string
	scanVerbose    bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanInputFile, "in", "i", "", "Path to document JSON, or - for stdin (required)")
	scanCmd.Flags().StringVarP(&scanOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print a summary to stderr")
	addProfileFlags(scanCmd)
	scanCmd.Flags().Int("concurrency", 4, "Documents scored at once for array input")

	_ = scanCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(scanCmd)
}

// addProfileFlags registers the domain and role profile flags shared by scan
// and compare.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("domain", "resume", "Scoring domain: resume or profile")
	cmd.Flags().String("title", "", "Target job title")
	cmd.Flags().String("level", "", "Target experience level: entry, mid, senior or executive")
	cmd.Flags().String("industry", "", "Target industry")
}

func runScan(cmd *cobra.Command, _ []string) error {
	docs, batch, err := readDocuments(cmd, scanInputFile)
	if err != nil {
		return err
	}

	engine, err := analysis.ForDomain(cfg.Scoring.Domain,
		analysis.WithLogger(zlog),
		analysis.WithConcurrency(cfg.Scoring.BatchConcurrency),
	)
	if err != nil {
		return err
	}

	reports, err := engine.ScanBatch(cmd.Context(), docs, cfg.Profile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.ErrOrStderr())
	for i := range reports {
		checkOutput(schemas.ScanReportSchema, reports[i])
		if scanVerbose {
			printer.PrintScanReport(&reports[i])
		}
	}

	if batch {
		return writeJSON(cmd, scanOutputFile, types.BatchScanResponse{Reports: reports})
	}
	if len(reports) != 1 {
		return fmt.Errorf("expected one report, got %d", len(reports))
	}
	return writeJSON(cmd, scanOutputFile, reports[0])
}
