package analysis

import (
	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// PayoffCapMonths bounds the amortization loop. Non-amortizing inputs
// (payments that never cover accruing interest) must terminate with a
// reported non-convergence, never loop forever.
const PayoffCapMonths = 1000

// SimulatePayoff runs a monthly amortization loop over the debt account.
// Each month accrues interest at the monthly rate, applies the payment
// (capped so the final payment never overshoots the remaining balance),
// and reduces the principal. Converged is false when the cap is reached
// before the balance clears.
func SimulatePayoff(acct model.DebtAccount) model.PayoffResult {
	monthlyRate := acct.AnnualRatePercent / 12 / 100
	balance := acct.Balance

	var totalInterest float64
	months := 0

	for balance > 0 && months < PayoffCapMonths {
		interest := balance * monthlyRate
		payment := acct.MinimumPayment + acct.ExtraPayment
		if payment > balance+interest {
			payment = balance + interest
		}
		principal := payment - interest
		balance -= principal
		if balance < 0 {
			balance = 0
		}
		totalInterest += interest
		months++
	}

	return model.PayoffResult{
		Months:        months,
		TotalInterest: totalInterest,
		Converged:     balance == 0,
	}
}
