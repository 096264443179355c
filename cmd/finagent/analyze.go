package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SFA16SCM21C/Finagent/internal/analysis"
	"github.com/SFA16SCM21C/Finagent/internal/config"
	"github.com/SFA16SCM21C/Finagent/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze spending risks and debt payoff",
		Long: `Evaluate risk flags against the persisted allocation reports and
simulate a debt payoff schedule, upserting one analysis report per
month into the report store.`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("month", "m", "", "Analyze a single month (format: 2025-06)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	monthFlag, _ := cmd.Flags().GetString("month")

	cfg := config.AnalysisConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid analysis configuration: %w", err)
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var allocations map[model.Month]model.AllocationReport
	if monthFlag != "" {
		month, err := model.ParseMonth(monthFlag)
		if err != nil {
			return err
		}
		report, err := store.GetAllocationReport(ctx, month)
		if err != nil {
			return err
		}
		allocations = map[model.Month]model.AllocationReport{month: *report}
	} else {
		allocations, err = store.ListAllocationReports(ctx)
		if err != nil {
			return err
		}
	}

	if len(allocations) == 0 {
		slog.Warn("No allocation reports to analyze; run 'finagent budget' first")
		return nil
	}

	analyses := analysis.AnalyzeAll(allocations, cfg)
	for month := range analyses {
		report := analyses[month]
		if err := store.SaveAnalysisReport(ctx, &report); err != nil {
			return err
		}
		printAnalysis(report)
	}

	return nil
}

func printAnalysis(report model.AnalysisReport) {
	fmt.Printf("Analysis for %s:\n", report.Month)
	fmt.Printf("  Income: €%.2f\n", report.Income)
	fmt.Printf("  Risks: %s\n", report.Risks)
	fmt.Printf("  Debt strategy: %s\n", report.DebtStrategy)
}
