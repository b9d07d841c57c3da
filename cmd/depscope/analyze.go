package depscope

import (
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/cache"
	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/ort"
	"github.com/depscope/depscope/pkg/runner"
)

type analyzeCLIFlags struct {
	advise  bool
	noCache bool
}

var analyzeFlags analyzeCLIFlags

// AnalyzeCmd runs the ort analyzer against a project directory and prints the
// resulting compliance status.
func AnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [dir]",
		Short: "Run the ort analyzer and interpret the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := clog.FromContext(ctx)

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			c := cache.New(cfg.CacheDir)
			if analyzeFlags.noCache {
				if err := c.Clear(); err != nil {
					return err
				}
			}
			if err := c.Ensure(); err != nil {
				return err
			}

			r := runner.New(c.Dir())
			r.Binary = cfg.Ort.Binary
			r.Timeout = cfg.Ort.Timeout.Std()
			r.ConfigFile = cfg.Ort.ConfigFile
			r.Advisors = cfg.Ort.Advisors

			if installed, version, err := r.IsInstalled(ctx); err != nil || !installed {
				return err
			} else {
				log.Infof("using ort %s", version)
			}

			run, err := r.Analyze(ctx, dir)
			if err != nil {
				return err
			}
			resultFile := run.ResultFile

			if analyzeFlags.advise {
				adviseRun, err := r.Advise(ctx, resultFile)
				if err != nil {
					return err
				}
				resultFile = adviseRun.ResultFile
			}

			result, err := ort.Load(resultFile)
			if err != nil {
				return err
			}

			status := compliance.Evaluate(result, classifier(cfg))
			printStatus(os.Stdout, cfg, status)

			if cfg.History.Enabled {
				if err := recordRun(ctx, cfg, resultFile, status); err != nil {
					log.Warnf("cannot record run history: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&analyzeFlags.advise, "advise", false, "also run the vulnerability advisor")
	cmd.Flags().BoolVar(&analyzeFlags.noCache, "no-cache", false, "clear the cache before analyzing")
	return cmd
}
