package model

import "fmt"

// DebtAccount is the input to the payoff simulation. It is constructed on
// demand and never persisted on its own.
type DebtAccount struct {
	Balance           float64
	AnnualRatePercent float64
	MinimumPayment    float64
	ExtraPayment      float64
}

// Validate checks the account for simulatable values.
func (d DebtAccount) Validate() error {
	if d.Balance < 0 {
		return fmt.Errorf("balance must be >= 0, got %.2f", d.Balance)
	}
	if d.AnnualRatePercent < 0 {
		return fmt.Errorf("annual rate must be >= 0, got %.2f", d.AnnualRatePercent)
	}
	if d.MinimumPayment < 0 {
		return fmt.Errorf("minimum payment must be >= 0, got %.2f", d.MinimumPayment)
	}
	if d.ExtraPayment < 0 {
		return fmt.Errorf("extra payment must be >= 0, got %.2f", d.ExtraPayment)
	}
	return nil
}

// PayoffResult is the outcome of a payoff simulation. Converged is false
// when the safety cap was hit before the balance reached zero.
type PayoffResult struct {
	Months        int
	TotalInterest float64
	Converged     bool
}
