package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/themohitbharti/joblens/internal/catalog"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect and check the embedded benchmark catalogs",
}

var tablesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the catalog of a domain as JSON",
	RunE:  runTablesShow,
}

var tablesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every embedded catalog and fail if any is corrupt",
	RunE:  runTablesValidate,
}

func init() {
	tablesShowCmd.Flags().String("domain", "resume", "Catalog domain: resume or profile")

	tablesCmd.AddCommand(tablesShowCmd, tablesValidateCmd)
	rootCmd.AddCommand(tablesCmd)
}

func runTablesShow(cmd *cobra.Command, _ []string) error {
	c, err := catalog.Load(cfg.Scoring.Domain)
	if err != nil {
		return err
	}
	return writeJSON(cmd, "", c)
}

func runTablesValidate(cmd *cobra.Command, _ []string) error {
	var errs []error
	for _, domain := range catalog.Domains() {
		c, err := catalog.Load(domain)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: FAIL\n", domain)
			errs = append(errs, err)
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d benchmarks, %d sections)\n",
			domain, c.Version, len(c.Benchmarks), len(c.Sections))
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}
	return nil
}
