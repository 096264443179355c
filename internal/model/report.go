package model

// BucketStatus describes how a bucket compares to its target percentage.
type BucketStatus string

const (
	// StatusOver means the bucket percentage exceeds its target.
	StatusOver BucketStatus = "Over"
	// StatusUnder means the bucket percentage is below its target.
	StatusUnder BucketStatus = "Under"
	// StatusMeets means the bucket percentage equals its target exactly.
	StatusMeets BucketStatus = "Meets"
)

// IncomeSource records where a report's income figure came from.
type IncomeSource string

const (
	// IncomeSourceEstimated means the income was inferred from raw data.
	IncomeSourceEstimated IncomeSource = "estimated"
	// IncomeSourceDefault means the configured default income was used.
	IncomeSourceDefault IncomeSource = "default"
)

// BucketReport holds one 50/30/20 bucket's figures for a month.
type BucketReport struct {
	Status           BucketStatus `json:"status"`
	Amount           float64      `json:"amount"`
	Percentage       float64      `json:"percentage"`
	TargetPercentage float64      `json:"target_percentage"`
}

// AllocationReport is the per-month 50/30/20 budget report.
type AllocationReport struct {
	Month        Month        `json:"month"`
	IncomeSource IncomeSource `json:"income_source"`
	Needs        BucketReport `json:"needs"`
	Wants        BucketReport `json:"wants"`
	SavingsDebt  BucketReport `json:"savings_debt"`
	Income       float64      `json:"income"`
}

// AnalysisReport is the per-month risk and debt analysis record persisted
// to the report store. Risks is a rendered display string, "None" when no
// flag fired.
type AnalysisReport struct {
	Month             Month   `json:"month"`
	Risks             string  `json:"risks"`
	DebtStrategy      string  `json:"debt_strategy"`
	Income            float64 `json:"income"`
	NeedsAmount       float64 `json:"needs_amount"`
	WantsAmount       float64 `json:"wants_amount"`
	SavingsDebtAmount float64 `json:"savings_debt_amount"`
}
