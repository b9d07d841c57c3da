package depscope

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/render"
)

type statsCLIFlags struct {
	byLicense bool
}

var statsFlags statsCLIFlags

// StatsCmd prints license statistics for the current analysis result.
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print license statistics for the current result",
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

			stats := compliance.Stats(result, classifier(cfg))
			render.StatsTable(os.Stdout, stats)
			if statsFlags.byLicense {
				render.LicenseTable(os.Stdout, stats)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&statsFlags.byLicense, "by-license", false, "also print per-license occurrence counts")
	return cmd
}
