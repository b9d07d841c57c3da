package depscope

import (
	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/export"
)

type exportCLIFlags struct {
	output string
}

var exportFlags exportCLIFlags

// ExportCmd writes the current result to an Excel compliance report.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current result to an Excel compliance report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			result, path, err := loadResult(cfg)
			if err != nil {
				return err
			}

			if err := export.Workbook(exportFlags.output, result, classifier(cfg)); err != nil {
				return err
			}
			clog.FromContext(cmd.Context()).Infof("exported %s to %s", path, exportFlags.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&exportFlags.output, "output", "o", "depscope-report.xlsx", "output workbook path")
	return cmd
}
