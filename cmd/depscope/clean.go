package depscope

import (
	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/cache"
)

// CleanCmd deletes the result cache directory.
func CleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Delete cached analysis results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			c := cache.New(cfg.CacheDir)
			size, err := c.Size()
			if err != nil {
				return err
			}
			if err := c.Clear(); err != nil {
				return err
			}
			clog.FromContext(cmd.Context()).Infof("removed %s (%d bytes)", c.Dir(), size)
			return nil
		},
	}
}
