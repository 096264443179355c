// Package budget estimates household income and applies the 50/30/20
// allocation rule to normalized transactions.
package budget

import (
	"strings"

	"github.com/SFA16SCM21C/Finagent/internal/common"
	"github.com/SFA16SCM21C/Finagent/internal/model"
	"github.com/SFA16SCM21C/Finagent/internal/normalize"
)

// payrollTerms is the fixed vocabulary of payroll-indicative merchant and
// description terms, matched case-insensitively as substrings.
var payrollTerms = []string{"payroll", "direct deposit"}

// EstimateIncome infers monthly income from a raw batch. A zero month means
// "the latest month present". Candidates are credits (negative amounts)
// whose structured taxonomy code is INCOME or whose merchant or display
// name matches the payroll vocabulary. Returns common.ErrUnknownIncome when
// no strictly positive total can be derived; callers decide the fallback.
func EstimateIncome(raws []model.RawTransaction, month model.Month) (float64, error) {
	if month.IsZero() {
		for _, raw := range raws {
			if raw.Amount == nil {
				continue
			}
			date, ok := normalize.ParseDate(raw.Date)
			if !ok {
				continue
			}
			if m := model.MonthOf(date); month.IsZero() || m > month {
				month = m
			}
		}
		if month.IsZero() {
			return 0, common.ErrUnknownIncome
		}
	}

	var income float64
	for _, raw := range raws {
		if raw.Amount == nil || *raw.Amount >= 0 {
			continue
		}
		date, ok := normalize.ParseDate(raw.Date)
		if !ok || model.MonthOf(date) != month {
			continue
		}
		if !isIncomeSignal(raw) {
			continue
		}
		// Credits are stored negative; income is reported positive.
		income -= *raw.Amount
	}

	if income <= 0 {
		return 0, common.ErrUnknownIncome
	}
	return income, nil
}

func isIncomeSignal(raw model.RawTransaction) bool {
	if raw.FinanceCategory != nil && raw.FinanceCategory.Primary == "INCOME" {
		return true
	}
	for _, term := range payrollTerms {
		if containsFold(raw.MerchantName, term) || containsFold(raw.Name, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// IncomeFromRaw builds an IncomeFunc over a raw batch: estimated income is
// trusted when it clears the configured floor, otherwise the default
// income applies.
func IncomeFromRaw(raws []model.RawTransaction, cfg Config) IncomeFunc {
	return func(month model.Month) (float64, model.IncomeSource) {
		estimated, err := EstimateIncome(raws, month)
		if err == nil && estimated >= cfg.EstimatedIncomeFloor {
			return estimated, model.IncomeSourceEstimated
		}
		return cfg.DefaultIncome, model.IncomeSourceDefault
	}
}
