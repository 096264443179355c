// Package analysis computes risk flags from budget allocations and
// simulates debt payoff schedules.
package analysis

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SFA16SCM21C/Finagent/internal/budget"
	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// NoRisks is the rendered risk field when no flag fired.
const NoRisks = "None"

// Config holds the analyzer's tunables.
type Config struct {
	// Debt is the household debt account the payoff simulation runs
	// against. Its MinimumPayment is overridden by the month's disposable
	// savings.
	Debt model.DebtAccount
	// SavingsRiskThreshold is the Savings/Debt percentage below which the
	// low-savings flag fires.
	SavingsRiskThreshold float64
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{
		SavingsRiskThreshold: 20.0,
		Debt: model.DebtAccount{
			Balance:           5000.0,
			AnnualRatePercent: 12.5,
		},
	}
}

// Validate checks the configuration for simulatable values.
func (c Config) Validate() error {
	if c.SavingsRiskThreshold < 0 {
		return fmt.Errorf("savings risk threshold must be >= 0, got %.2f", c.SavingsRiskThreshold)
	}
	if err := c.Debt.Validate(); err != nil {
		return fmt.Errorf("debt account: %w", err)
	}
	return nil
}

// RiskFlags evaluates every risk condition independently and returns the
// triggered ones in a fixed order.
func RiskFlags(report model.AllocationReport, savingsThreshold float64) []string {
	var flags []string
	if report.Needs.Percentage > budget.NeedsTarget {
		flags = append(flags, "High Needs spending")
	}
	if report.Wants.Percentage > budget.WantsTarget {
		flags = append(flags, "High Wants spending")
	}
	if report.SavingsDebt.Percentage < savingsThreshold {
		flags = append(flags, "Low Savings/Debt spending")
	}
	return flags
}

// RenderRisks joins the flags into the display string persisted with the
// report, the literal "None" when empty.
func RenderRisks(flags []string) string {
	if len(flags) == 0 {
		return NoRisks
	}
	return strings.Join(flags, "; ")
}

// Analyze derives the risk and debt analysis for one month's allocation
// report. Monthly disposable savings is the 20% income share left after
// Savings/Debt spending; when nothing is left, no payoff plan is offered
// and the simulation never runs.
func Analyze(report model.AllocationReport, cfg Config) model.AnalysisReport {
	out := model.AnalysisReport{
		Month:             report.Month,
		Income:            report.Income,
		NeedsAmount:       report.Needs.Amount,
		WantsAmount:       report.Wants.Amount,
		SavingsDebtAmount: report.SavingsDebt.Amount,
		Risks:             RenderRisks(RiskFlags(report, cfg.SavingsRiskThreshold)),
	}

	disposable := report.Income*budget.SavingsDebtTarget/100 - report.SavingsDebt.Amount
	out.DebtStrategy = debtStrategy(cfg.Debt, disposable)

	slog.Info("Analyzed month",
		"month", report.Month,
		"risks", out.Risks,
		"debt_strategy", out.DebtStrategy)

	return out
}

// AnalyzeAll analyzes every month in the allocation report set.
func AnalyzeAll(reports map[model.Month]model.AllocationReport, cfg Config) map[model.Month]model.AnalysisReport {
	out := make(map[model.Month]model.AnalysisReport, len(reports))
	for month, report := range reports {
		out[month] = Analyze(report, cfg)
	}
	return out
}

func debtStrategy(debt model.DebtAccount, disposable float64) string {
	if disposable <= 0 {
		return "No payoff plan; increase savings or reduce debt spending"
	}

	debt.MinimumPayment = disposable
	result := SimulatePayoff(debt)
	if !result.Converged {
		return fmt.Sprintf(
			"No payoff achieved within %d months at €%.2f/month; increase payments",
			PayoffCapMonths, disposable)
	}
	return fmt.Sprintf(
		"Pay off €%.2f in %d months with €%.2f/month (€%.2f interest)",
		debt.Balance, result.Months, disposable, result.TotalInterest)
}
