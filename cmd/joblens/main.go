// Package main provides the joblens CLI: scoring, comparison, catalog tooling
// and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/themohitbharti/joblens/internal/config"
	"github.com/themohitbharti/joblens/internal/logger"
)

var (
	configFile string
	logJSON    bool
	logDebug   bool

	// Populated by the root pre-run hook for every subcommand.
	cfg  *config.Config
	zlog *zap.Logger
)

// flagKeys maps CLI flag names to config keys. Flags are bound per invocation
// since several subcommands share a key.
var flagKeys = map[string]string{
	"log-json":    "log.json",
	"debug":       "log.debug",
	"domain":      "scoring.domain",
	"concurrency": "scoring.batch_concurrency",
	"port":        "server.port",
	"title":       "profile.job_title",
	"level":       "profile.experience_level",
	"industry":    "profile.industry",
}

var rootCmd = &cobra.Command{
	Use:   "joblens",
	Short: "Deterministic benchmark scoring for resumes and profiles",
	Long: "joblens turns per-benchmark judgments about a resume or professional profile into " +
		"role-aware section scores, an overall 0-100 score and side-by-side comparisons.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if zlog != nil {
			_ = zlog.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./joblens.yaml or $HOME/.config/joblens/joblens.yaml)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "Enable debug logging")
}

// setup loads configuration with the invoked command's flags bound and builds
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	loaded, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	l, err := logger.New(loaded.Log.JSON, loaded.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, zlog = loaded, l
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
