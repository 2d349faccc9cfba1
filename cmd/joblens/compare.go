package main

import (
	"github.com/spf13/cobra"

	"github.com/themohitbharti/joblens/internal/analysis"
	"github.com/themohitbharti/joblens/internal/observability"
	"github.com/themohitbharti/joblens/internal/schemas"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two documents side by side",
	Long: "Score two documents of the same domain under shared preferences and report the winner, " +
		"per-benchmark and per-section standings, key differences, recommendations and insights.",
	RunE: runCompare,
}

var (
	compareFileA      string
	compareFileB      string
	compareOutputFile string
	compareVerbose    bool
)

func init() {
	compareCmd.Flags().StringVarP(&compareFileA, "a", "a", "", "Path to document A JSON (required)")
	compareCmd.Flags().StringVarP(&compareFileB, "b", "b", "", "Path to document B JSON (required)")
	compareCmd.Flags().StringVarP(&compareOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print a summary to stderr")
	addProfileFlags(compareCmd)

	_ = compareCmd.MarkFlagRequired("a")
	_ = compareCmd.MarkFlagRequired("b")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	a, err := readDocument(cmd, compareFileA)
	if err != nil {
		return err
	}
	b, err := readDocument(cmd, compareFileB)
	if err != nil {
		return err
	}

	engine, err := analysis.ForDomain(cfg.Scoring.Domain, analysis.WithLogger(zlog))
	if err != nil {
		return err
	}

	result := engine.Compare(a, b, cfg.Profile)
	checkOutput(schemas.ComparisonResultSchema, result)
	if compareVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintComparison(&result)
	}
	return writeJSON(cmd, compareOutputFile, result)
}
