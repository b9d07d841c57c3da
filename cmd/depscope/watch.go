package depscope

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/sony/gobreaker"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/depscope/depscope/pkg/cache"
	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/config"
	"github.com/depscope/depscope/pkg/metrics"
	"github.com/depscope/depscope/pkg/ort"
	"github.com/depscope/depscope/pkg/runner"
)

type watchCLIFlags struct {
	analyze bool
	dir     string
}

var watchFlags watchCLIFlags

// WatchCmd re-interprets the result file whenever it changes and serves the
// derived compliance metrics over HTTP.
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the result file and serve compliance metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return watch(cmd.Context(), cfg)
		},
	}

	cmd.Flags().BoolVar(&watchFlags.analyze, "analyze", false, "run the analyzer when the result file is missing")
	cmd.Flags().StringVar(&watchFlags.dir, "dir", ".", "project directory to analyze with --analyze")
	return cmd
}

func watch(ctx context.Context, cfg *config.Config) error {
	log := clog.FromContext(ctx)
	collector := metrics.NewCollector()

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	server := &http.Server{
		Addr:              cfg.Watch.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("serving metrics on %s", cfg.Watch.MetricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return watchLoop(ctx, cfg, collector)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func watchLoop(ctx context.Context, cfg *config.Config, collector *metrics.Collector) error {
	log := clog.FromContext(ctx)
	limiter := rate.NewLimiter(rate.Every(cfg.Watch.Interval.Std()), 1)

	// Repeated analyzer failures trip the breaker instead of hammering the
	// external tool on every tick.
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ort-analyze",
		MaxRequests: 1,
		Timeout:     5 * cfg.Watch.Interval.Std(),
	})

	var lastMod time.Time
	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		path := resultPath(cfg)
		info, err := os.Stat(path)
		if err != nil {
			if watchFlags.analyze {
				if _, err := breaker.Execute(func() (interface{}, error) {
					return nil, analyzeOnce(ctx, cfg, collector)
				}); err != nil {
					log.Warnf("analyzer run skipped or failed: %v", err)
				}
			}
			continue
		}

		if !info.ModTime().After(lastMod) {
			continue
		}
		lastMod = info.ModTime()

		result, err := ort.Load(path)
		if err != nil {
			collector.ObserveReload(false)
			log.Warnf("cannot reload %s: %v", path, err)
			continue
		}
		collector.ObserveReload(true)

		status := compliance.Evaluate(result, classifier(cfg))
		collector.ObserveStatus(status)
		log.Infof("reloaded %s: %s (%s)", path, status.State, status.Message)

		if cfg.History.Enabled {
			if err := recordRun(ctx, cfg, path, status); err != nil {
				log.Warnf("cannot record run history: %v", err)
			}
		}
	}
}

func analyzeOnce(ctx context.Context, cfg *config.Config, collector *metrics.Collector) error {
	c := cache.New(cfg.CacheDir)
	if err := c.Ensure(); err != nil {
		return err
	}

	r := runner.New(c.Dir())
	r.Binary = cfg.Ort.Binary
	r.Timeout = cfg.Ort.Timeout.Std()
	r.ConfigFile = cfg.Ort.ConfigFile
	r.Advisors = cfg.Ort.Advisors

	run, err := r.Analyze(ctx, watchFlags.dir)
	if run != nil {
		collector.ObserveAnalyzerRun(run.Duration(), err == nil)
	}
	return err
}
