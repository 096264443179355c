package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SFA16SCM21C/Finagent/internal/sample"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic raw transaction batch",
		Long: `Generate provider-shaped sample transactions for trying out the
pipeline without connecting a real data source.`,
		RunE: runGenerate,
	}

	cmd.Flags().IntP("count", "n", 600, "Number of spending records to generate")
	cmd.Flags().Int64("seed", 0, "Random seed (0 means time-based)")
	cmd.Flags().StringP("out", "o", "data/transactions.json", "Output file")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")
	out, _ := cmd.Flags().GetString("out")

	cfg := sample.DefaultConfig()
	if seed != 0 {
		cfg.Seed = seed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}

	raws := sample.New(cfg).Generate(count)

	if err := writeJSON(out, raws); err != nil {
		return err
	}

	slog.Info("Generated sample transactions",
		"count", len(raws),
		"file", out)

	return nil
}
