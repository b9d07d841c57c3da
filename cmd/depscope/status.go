package depscope

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/config"
	"github.com/depscope/depscope/pkg/render"
)

type statusCLIFlags struct {
	strict bool
}

var statusFlags statusCLIFlags

// StatusCmd prints the compliance status of the current analysis result.
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the compliance status of the current result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			result, _, err := loadResult(cfg)
			if err != nil {
				return err
			}

			status := compliance.Evaluate(result, classifier(cfg))
			printStatus(os.Stdout, cfg, status)

			if statusFlags.strict && status.State != compliance.StateCompliant {
				return fmt.Errorf("compliance state is %s", status.State)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&statusFlags.strict, "strict", false, "exit non-zero unless the result is compliant")
	return cmd
}

func printStatus(w io.Writer, cfg *config.Config, status compliance.Status) {
	render.StatusLine(w, status)
	render.StatsTable(w, status.Stats)
	if cfg.Diagnostics && (status.IssueCount > 0 || status.VulnerabilityCount > 0) {
		fmt.Fprintf(w, "analyzer issues: %d, vulnerabilities: %d\n", status.IssueCount, status.VulnerabilityCount)
	}
}
