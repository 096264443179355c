package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SFA16SCM21C/Finagent/internal/budget"
	"github.com/SFA16SCM21C/Finagent/internal/config"
	"github.com/SFA16SCM21C/Finagent/internal/model"
	"github.com/SFA16SCM21C/Finagent/internal/normalize"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Apply the 50/30/20 rule to a raw transaction batch",
		Long: `Normalize a raw batch, estimate monthly income, and produce one
50/30/20 allocation report per month present in the data.`,
		RunE: runBudget,
	}

	cmd.Flags().StringP("input", "i", "data/transactions.json", "Raw transaction batch (JSON)")
	cmd.Flags().StringP("out", "o", "", "Also write the reports to this file")

	return cmd
}

func runBudget(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	out, _ := cmd.Flags().GetString("out")

	raws, err := readRawBatch(input)
	if err != nil {
		return err
	}

	result := normalize.Normalize(raws)
	if len(result.Transactions) == 0 {
		slog.Warn("Nothing usable was found in the batch")
		return nil
	}

	cfg := config.BudgetConfig()
	reports := budget.Allocate(result.Transactions, budget.IncomeFromRaw(raws, cfg), cfg)

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for month := range reports {
		report := reports[month]
		if err := store.SaveAllocationReport(ctx, &report); err != nil {
			return err
		}
		printAllocation(report)
	}

	if out != "" {
		// Serialize keyed by month string for the presentation layer.
		keyed := make(map[string]model.AllocationReport, len(reports))
		for month, report := range reports {
			keyed[month.String()] = report
		}
		if err := writeJSON(out, keyed); err != nil {
			return err
		}
		slog.Info("Wrote budget reports", "file", out)
	}

	return nil
}

func printAllocation(report model.AllocationReport) {
	fmt.Printf("Budget Report for %s:\n", report.Month)
	fmt.Printf("  Income: €%.2f (%s)\n", report.Income, report.IncomeSource)
	fmt.Printf("  Needs: €%.2f (%.1f%%, %s 50%%)\n",
		report.Needs.Amount, report.Needs.Percentage, report.Needs.Status)
	fmt.Printf("  Wants: €%.2f (%.1f%%, %s 30%%)\n",
		report.Wants.Amount, report.Wants.Percentage, report.Wants.Status)
	fmt.Printf("  Savings/Debt: €%.2f (%.1f%%, %s 20%%)\n",
		report.SavingsDebt.Amount, report.SavingsDebt.Percentage, report.SavingsDebt.Status)
}
