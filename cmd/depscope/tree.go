package depscope

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/render"
	"github.com/depscope/depscope/pkg/tree"
)

// TreeCmd renders the dependency tree of the current analysis result.
func TreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Render the dependency tree of the current result",
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

			items := tree.NewBuilder(classifier(cfg)).Build(result)
			render.Tree(os.Stdout, items, cfg.Diagnostics)
			return nil
		},
	}
}
