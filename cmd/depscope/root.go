// Package depscope provides the CLI commands for the depscope tool.
package depscope

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/depscope/depscope/pkg/cache"
	"github.com/depscope/depscope/pkg/config"
	"github.com/depscope/depscope/pkg/license"
	"github.com/depscope/depscope/pkg/ort"
)

type rootCLIFlags struct {
	configFile string
	cacheDir   string
	resultFile string
	logLevel   string
}

var rootFlags rootCLIFlags

// New creates the root depscope CLI command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depscope",
		Short: "Analyze and interpret dependency license and vulnerability data",
		Long: `depscope drives the OSS Review Toolkit analyzer and interprets its
result files: dependency trees, license risk, statistics, and an overall
compliance status.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := charmlog.ParseLevel(rootFlags.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", rootFlags.logLevel, err)
			}
			slog.SetDefault(slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				Level:           level,
			})))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&rootFlags.configFile, "config", "", "config file (default: .depscope.yaml if present)")
	flags.StringVar(&rootFlags.cacheDir, "cache-dir", "", "result cache directory (overrides config)")
	flags.StringVar(&rootFlags.resultFile, "result", "", "analysis result file to interpret (overrides cache lookup)")
	flags.StringVar(&rootFlags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		AnalyzeCmd(),
		TreeCmd(),
		StatsCmd(),
		StatusCmd(),
		ExportCmd(),
		WatchCmd(),
		HistoryCmd(),
		CleanCmd(),
		InitCmd(),
		version.WithFont("slant"),
	)
	cmd.DisableAutoGenTag = true

	return cmd
}

// loadConfig resolves the effective configuration for one invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(rootFlags.configFile)
	if err != nil {
		return nil, err
	}
	if rootFlags.cacheDir != "" {
		cfg.CacheDir = rootFlags.cacheDir
	}
	return cfg, nil
}

// resultPath picks the result file to interpret: the explicit --result flag,
// else the advisor result in the cache when present (it supersets the
// analyzer result), else the analyzer result.
func resultPath(cfg *config.Config) string {
	if rootFlags.resultFile != "" {
		return rootFlags.resultFile
	}
	c := cache.New(cfg.CacheDir)
	if _, err := os.Stat(c.AdvisorResult()); err == nil {
		return c.AdvisorResult()
	}
	return c.AnalyzerResult()
}

// loadResult loads the result file selected by resultPath.
func loadResult(cfg *config.Config) (*ort.Result, string, error) {
	path := resultPath(cfg)
	result, err := ort.Load(path)
	if err != nil {
		return nil, path, err
	}
	return result, path, nil
}

func classifier(cfg *config.Config) *license.Classifier {
	return license.NewClassifier(&cfg.Licenses)
}
