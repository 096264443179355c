package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

func txn(date string, cat model.Category, amt float64) model.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		Date:         d,
		MerchantName: "store",
		Category:     cat,
		Amount:       amt,
	}
}

func TestAllocate_BucketMapping(t *testing.T) {
	txns := []model.Transaction{
		txn("2025-06-01", model.CategoryBills, 800.0),
		txn("2025-06-02", model.CategoryTransportation, 200.0),
		txn("2025-06-03", model.CategoryFood, 400.0),
		txn("2025-06-04", model.CategoryShopping, 300.0),
		txn("2025-06-05", model.CategoryEntertainment, 100.0),
		txn("2025-06-06", model.CategoryTravel, 500.0),
		txn("2025-06-07", model.CategoryOther, 600.0),
	}

	reports := Allocate(txns, FixedIncome(4000.0), DefaultConfig())
	require.Len(t, reports, 1)

	report, ok := reports["2025-06"]
	require.True(t, ok)

	// Food splits 50/50 between Needs and Wants by default.
	assert.InDelta(t, 800.0+200.0+200.0, report.Needs.Amount, 0.001)
	assert.InDelta(t, 300.0+100.0+500.0+200.0, report.Wants.Amount, 0.001)
	assert.InDelta(t, 600.0, report.SavingsDebt.Amount, 0.001)

	assert.InDelta(t, 30.0, report.Needs.Percentage, 0.001)
	assert.InDelta(t, 27.5, report.Wants.Percentage, 0.001)
	assert.InDelta(t, 15.0, report.SavingsDebt.Percentage, 0.001)

	assert.Equal(t, model.StatusUnder, report.Needs.Status)
	assert.Equal(t, model.StatusUnder, report.Wants.Status)
	assert.Equal(t, model.StatusUnder, report.SavingsDebt.Status)
}

func TestAllocate_PercentagesAddUp(t *testing.T) {
	txns := []model.Transaction{
		txn("2025-06-01", model.CategoryBills, 123.45),
		txn("2025-06-02", model.CategoryFood, 678.90),
		txn("2025-06-03", model.CategoryTravel, 55.10),
		txn("2025-06-04", model.CategoryOther, 910.11),
	}
	income := 3456.78

	reports := Allocate(txns, FixedIncome(income), DefaultConfig())
	report := reports["2025-06"]

	totalAmount := report.Needs.Amount + report.Wants.Amount + report.SavingsDebt.Amount
	totalPercentage := report.Needs.Percentage + report.Wants.Percentage + report.SavingsDebt.Percentage
	assert.InDelta(t, totalAmount/income*100, totalPercentage, 0.0001)
}

func TestAllocate_CreditOnlyMonthStillReported(t *testing.T) {
	txns := []model.Transaction{
		txn("2025-06-01", model.CategoryBills, 100.0),
		txn("2025-07-02", model.CategoryShopping, -40.0), // refund only
	}

	reports := Allocate(txns, FixedIncome(1000.0), DefaultConfig())
	require.Len(t, reports, 2)
	require.Contains(t, reports, model.Month("2025-07"))

	july := reports["2025-07"]
	assert.Zero(t, july.Needs.Amount)
	assert.Zero(t, july.Wants.Amount)
	assert.Zero(t, july.SavingsDebt.Amount)
	assert.Equal(t, model.StatusUnder, july.Needs.Status)
}

func TestAllocate_RefundsExcluded(t *testing.T) {
	txns := []model.Transaction{
		txn("2025-06-01", model.CategoryShopping, 100.0),
		txn("2025-06-02", model.CategoryShopping, -40.0), // refund
	}

	reports := Allocate(txns, FixedIncome(1000.0), DefaultConfig())
	assert.InDelta(t, 100.0, reports["2025-06"].Wants.Amount, 0.001)
}

func TestAllocate_StatusBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   model.BucketStatus
	}{
		{name: "exactly on target meets", amount: 500.0, want: model.StatusMeets},
		{name: "above target is over", amount: 500.01, want: model.StatusOver},
		{name: "below target is under", amount: 499.99, want: model.StatusUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Bills is pure Needs; income 1000 makes the 50% target 500.
			txns := []model.Transaction{txn("2025-06-01", model.CategoryBills, tt.amount)}
			reports := Allocate(txns, FixedIncome(1000.0), DefaultConfig())
			assert.Equal(t, tt.want, reports["2025-06"].Needs.Status)
		})
	}
}

func TestAllocate_ZeroIncome(t *testing.T) {
	txns := []model.Transaction{txn("2025-06-01", model.CategoryBills, 100.0)}

	reports := Allocate(txns, FixedIncome(0.0), DefaultConfig())
	report := reports["2025-06"]

	assert.Zero(t, report.Needs.Percentage)
	assert.Zero(t, report.Wants.Percentage)
	assert.Zero(t, report.SavingsDebt.Percentage)
}

func TestAllocate_OneReportPerMonth(t *testing.T) {
	txns := []model.Transaction{
		txn("2025-05-20", model.CategoryBills, 100.0),
		txn("2025-06-10", model.CategoryBills, 200.0),
		txn("2025-06-25", model.CategoryFood, 50.0),
	}

	reports := Allocate(txns, FixedIncome(2000.0), DefaultConfig())
	require.Len(t, reports, 2)
	assert.Contains(t, reports, model.Month("2025-05"))
	assert.Contains(t, reports, model.Month("2025-06"))
	assert.InDelta(t, 100.0, reports["2025-05"].Needs.Amount, 0.001)
}

func TestAllocate_FoodSplitConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FoodNeedsFraction = 1.0

	txns := []model.Transaction{txn("2025-06-01", model.CategoryFood, 300.0)}
	reports := Allocate(txns, FixedIncome(1000.0), cfg)

	assert.InDelta(t, 300.0, reports["2025-06"].Needs.Amount, 0.001)
	assert.Zero(t, reports["2025-06"].Wants.Amount)
}
