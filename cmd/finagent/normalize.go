package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SFA16SCM21C/Finagent/internal/normalize"
)

func normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize a raw transaction batch",
		Long: `Clean and deduplicate a raw transaction batch into the canonical
schema, persist it as the normalized dataset, and report every record
that was dropped along the way.`,
		RunE: runNormalize,
	}

	cmd.Flags().StringP("input", "i", "data/transactions.json", "Raw transaction batch (JSON)")
	cmd.Flags().StringP("out", "o", "", "Also write the cleaned batch to this file")
	cmd.Flags().Bool("dry-run", false, "Preview without persisting")

	return cmd
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	out, _ := cmd.Flags().GetString("out")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	raws, err := readRawBatch(input)
	if err != nil {
		return err
	}

	result := normalize.Normalize(raws)

	slog.Info("Normalized batch",
		"input", len(raws),
		"output", len(result.Transactions),
		"skipped", len(result.Skipped))

	for _, skip := range result.Skipped {
		slog.Debug("Dropped record",
			"index", skip.Index,
			"transaction_id", skip.TransactionID,
			"reason", skip.Code)
	}

	if len(result.Transactions) == 0 {
		slog.Warn("Nothing usable was found in the batch")
		return nil
	}

	if out != "" {
		if err := writeJSON(out, result.Transactions); err != nil {
			return err
		}
		slog.Info("Wrote cleaned transactions", "file", out)
	}

	if dryRun {
		slog.Info("Dry run complete - no data saved")
		return nil
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.ReplaceTransactions(ctx, result.Transactions); err != nil {
		return err
	}

	slog.Info("Persisted normalized dataset", "count", len(result.Transactions))
	return nil
}
