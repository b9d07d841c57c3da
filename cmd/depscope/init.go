package depscope

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/config"
)

// InitCmd interactively writes a depscope config file.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively create a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()

			questions := []*survey.Question{
				{
					Name:   "binary",
					Prompt: &survey.Input{Message: "Path to the ort binary:", Default: cfg.Ort.Binary},
				},
				{
					Name:   "cacheDir",
					Prompt: &survey.Input{Message: "Result cache directory:", Default: cfg.CacheDir},
				},
				{
					Name:   "diagnostics",
					Prompt: &survey.Confirm{Message: "Render vulnerability and issue diagnostics?", Default: cfg.Diagnostics},
				},
				{
					Name:   "historyEnabled",
					Prompt: &survey.Confirm{Message: "Record run history locally?", Default: cfg.History.Enabled},
				},
			}

			answers := struct {
				Binary         string
				CacheDir       string
				Diagnostics    bool
				HistoryEnabled bool
			}{}
			if err := survey.Ask(questions, &answers); err != nil {
				return err
			}

			cfg.Ort.Binary = answers.Binary
			cfg.CacheDir = answers.CacheDir
			cfg.Diagnostics = answers.Diagnostics
			cfg.History.Enabled = answers.HistoryEnabled

			path := rootFlags.configFile
			if path == "" {
				path = config.DefaultFileName
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			clog.FromContext(cmd.Context()).Infof("wrote %s", path)
			return nil
		},
	}
}
