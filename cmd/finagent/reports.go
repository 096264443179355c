package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func reportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List persisted monthly analysis reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			reports, err := store.ListAnalysisReports(ctx)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				slog.Warn("No analysis reports found; run 'finagent flow' first")
				return nil
			}

			for _, report := range reports {
				printAnalysis(report)
			}
			return nil
		},
	}
}
