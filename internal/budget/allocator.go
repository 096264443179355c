package budget

import (
	"log/slog"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// Fixed 50/30/20 targets, as percentages of income.
const (
	NeedsTarget       = 50.0
	WantsTarget       = 30.0
	SavingsDebtTarget = 20.0
)

// Config holds the allocator's tunables.
type Config struct {
	// DefaultIncome is used when no confident income estimate exists.
	DefaultIncome float64
	// FoodNeedsFraction is the share of Food spending counted as Needs;
	// the remainder counts as Wants.
	FoodNeedsFraction float64
	// EstimatedIncomeFloor is the minimum estimated income considered
	// trustworthy.
	EstimatedIncomeFloor float64
}

// DefaultConfig returns the default allocator configuration.
func DefaultConfig() Config {
	return Config{
		DefaultIncome:        4000.0,
		FoodNeedsFraction:    0.5,
		EstimatedIncomeFloor: 100.0,
	}
}

// IncomeFunc supplies the income figure and its source for a month.
type IncomeFunc func(model.Month) (float64, model.IncomeSource)

// FixedIncome returns an IncomeFunc that always reports the given income
// as the default source.
func FixedIncome(income float64) IncomeFunc {
	return func(model.Month) (float64, model.IncomeSource) {
		return income, model.IncomeSourceDefault
	}
}

// Allocate partitions spending into Needs, Wants, and Savings/Debt per
// month and computes status against the 50/30/20 targets. Only expenses
// (positive amounts) are summed; refunds and credits stay out of bucket
// totals. One report is produced per distinct month present, even when a
// month holds nothing but credits.
func Allocate(txns []model.Transaction, income IncomeFunc, cfg Config) map[model.Month]model.AllocationReport {
	byMonth := make(map[model.Month]map[model.Category]float64)
	for _, txn := range txns {
		month := txn.Month()
		if byMonth[month] == nil {
			byMonth[month] = make(map[model.Category]float64)
		}
		if txn.Amount <= 0 {
			continue
		}
		byMonth[month][txn.Category] += txn.Amount
	}

	reports := make(map[model.Month]model.AllocationReport, len(byMonth))
	for month, spending := range byMonth {
		monthIncome, source := income(month)

		food := spending[model.CategoryFood]
		needs := spending[model.CategoryBills] +
			spending[model.CategoryTransportation] +
			food*cfg.FoodNeedsFraction
		wants := spending[model.CategoryShopping] +
			spending[model.CategoryEntertainment] +
			spending[model.CategoryTravel] +
			food*(1-cfg.FoodNeedsFraction)
		savingsDebt := spending[model.CategoryOther]

		report := model.AllocationReport{
			Month:        month,
			Income:       monthIncome,
			IncomeSource: source,
			Needs:        bucketReport(needs, monthIncome, NeedsTarget),
			Wants:        bucketReport(wants, monthIncome, WantsTarget),
			SavingsDebt:  bucketReport(savingsDebt, monthIncome, SavingsDebtTarget),
		}
		reports[month] = report

		slog.Info("Generated budget report",
			"month", month,
			"income", monthIncome,
			"income_source", source,
			"needs", needs,
			"wants", wants,
			"savings_debt", savingsDebt)
	}

	return reports
}

func bucketReport(amount, income, target float64) model.BucketReport {
	percentage := 0.0
	if income > 0 {
		percentage = amount / income * 100
	}
	return model.BucketReport{
		Amount:           amount,
		Percentage:       percentage,
		TargetPercentage: target,
		Status:           statusFor(percentage, target),
	}
}

// statusFor compares a bucket percentage to its target. Exact equality is
// Meets, never Over.
func statusFor(percentage, target float64) model.BucketStatus {
	switch {
	case percentage > target:
		return model.StatusOver
	case percentage < target:
		return model.StatusUnder
	default:
		return model.StatusMeets
	}
}
