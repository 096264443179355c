package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SFA16SCM21C/Finagent/internal/config"
	"github.com/SFA16SCM21C/Finagent/internal/engine"
	"github.com/SFA16SCM21C/Finagent/internal/model"
	"github.com/SFA16SCM21C/Finagent/internal/sample"
	"github.com/SFA16SCM21C/Finagent/internal/service"
)

func flowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Run the full pipeline",
		Long: `Run the complete pipeline over a raw batch: normalize, persist the
canonical dataset, apply the 50/30/20 rule, and analyze risks and debt
payoff for every month present.`,
		RunE: runFlowPipeline,
	}

	cmd.Flags().StringP("input", "i", "", "Raw transaction batch (JSON); omit to use generated sample data")
	cmd.Flags().IntP("count", "n", 600, "Sample size when generating data")

	return cmd
}

func runFlowPipeline(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	count, _ := cmd.Flags().GetInt("count")
	ctx := cmd.Context()

	var raws []model.RawTransaction
	var err error
	if input != "" {
		raws, err = readRawBatch(input)
		if err != nil {
			return err
		}
	} else {
		slog.Info("No input file given, generating sample data", "count", count)
		genCfg := sample.DefaultConfig()
		genCfg.Count = count
		var source service.RawSource = sample.New(genCfg)
		raws, err = source.Transactions(ctx)
		if err != nil {
			return err
		}
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	pipeline := engine.New(store, config.PipelineConfig())
	summary, err := pipeline.Run(ctx, raws)
	if err != nil {
		return err
	}

	if summary.Normalized == 0 {
		slog.Warn("Nothing usable was found in the batch",
			"raw_count", summary.RawCount,
			"skipped", len(summary.Skipped))
		return nil
	}

	fmt.Printf("Processed %d raw records: %d normalized, %d skipped, %d months\n",
		summary.RawCount, summary.Normalized, len(summary.Skipped), len(summary.Months))
	for _, month := range summary.Months {
		printAllocation(summary.Allocations[month])
		printAnalysis(summary.Analyses[month])
	}

	return nil
}
