package depscope

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/config"
	"github.com/depscope/depscope/pkg/history"
)

type historyCLIFlags struct {
	limit int
	prune int
}

var historyFlags historyCLIFlags

// HistoryCmd lists recorded analysis runs.
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analysis runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			if historyFlags.prune > 0 {
				if err := store.Prune(ctx, historyFlags.prune); err != nil {
					return err
				}
			}

			records, err := store.List(ctx, historyFlags.limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no recorded runs")
				return nil
			}

			table := tablewriter.NewTable(os.Stdout)
			table.Header([]string{"When", "State", "Total", "Strong", "Unknown", "Issues", "Vulns", "Message"})
			for _, rec := range records {
				table.Append([]string{
					rec.CreatedAt.Local().Format("2006-01-02 15:04"),
					rec.State,
					fmt.Sprint(rec.Total),
					fmt.Sprint(rec.StrongCopyleft),
					fmt.Sprint(rec.Unknown),
					fmt.Sprint(rec.Issues),
					fmt.Sprint(rec.Vulnerabilities),
					rec.Message,
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to list")
	cmd.Flags().IntVar(&historyFlags.prune, "prune", 0, "keep only the newest N runs before listing")
	return cmd
}

// recordRun appends one interpreted run to the history store.
func recordRun(ctx context.Context, cfg *config.Config, resultFile string, status compliance.Status) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Add(ctx, history.FromStatus(resultFile, status))
	return err
}
