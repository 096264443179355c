package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SFA16SCM21C/Finagent/internal/common"
	"github.com/SFA16SCM21C/Finagent/internal/model"
)

func amount(v float64) *float64 {
	return &v
}

func incomeRecord(date string, amt float64) model.RawTransaction {
	return model.RawTransaction{
		TransactionID:   "inc1",
		Date:            date,
		Amount:          amount(amt),
		FinanceCategory: &model.PersonalFinanceCategory{Primary: "INCOME"},
	}
}

func TestEstimateIncome(t *testing.T) {
	tests := []struct {
		name    string
		raws    []model.RawTransaction
		month   model.Month
		want    float64
		wantErr error
	}{
		{
			name: "structured income code",
			raws: []model.RawTransaction{
				incomeRecord("2025-06-06", -923.50),
				incomeRecord("2025-06-13", -923.50),
			},
			month: "2025-06",
			want:  1847.0,
		},
		{
			name: "payroll merchant match is case-insensitive",
			raws: []model.RawTransaction{
				{Date: "2025-06-06", Amount: amount(-1500.0), MerchantName: "ACME PAYROLL SERVICES"},
			},
			month: "2025-06",
			want:  1500.0,
		},
		{
			name: "direct deposit in display name",
			raws: []model.RawTransaction{
				{Date: "2025-06-06", Amount: amount(-2000.0), Name: "Direct Deposit - Employer"},
			},
			month: "2025-06",
			want:  2000.0,
		},
		{
			name: "positive amounts are never income",
			raws: []model.RawTransaction{
				{Date: "2025-06-06", Amount: amount(1500.0), MerchantName: "Payroll"},
			},
			month:   "2025-06",
			wantErr: common.ErrUnknownIncome,
		},
		{
			name: "credits without an income signal are ignored",
			raws: []model.RawTransaction{
				{Date: "2025-06-06", Amount: amount(-55.0), MerchantName: "Refund Dept"},
			},
			month:   "2025-06",
			wantErr: common.ErrUnknownIncome,
		},
		{
			name: "other months excluded",
			raws: []model.RawTransaction{
				incomeRecord("2025-05-30", -900.0),
				incomeRecord("2025-06-06", -1000.0),
			},
			month: "2025-06",
			want:  1000.0,
		},
		{
			name:    "empty batch",
			raws:    nil,
			month:   "2025-06",
			wantErr: common.ErrUnknownIncome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateIncome(tt.raws, tt.month)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestEstimateIncome_DefaultsToLatestMonth(t *testing.T) {
	raws := []model.RawTransaction{
		incomeRecord("2025-05-30", -900.0),
		incomeRecord("2025-06-06", -1000.0),
		{Date: "2025-06-20", Amount: amount(42.0), MerchantName: "Shop"},
	}

	got, err := EstimateIncome(raws, "")
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got, 0.001)
}

func TestIncomeFromRaw_FallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("estimated income above floor is trusted", func(t *testing.T) {
		income := IncomeFromRaw([]model.RawTransaction{incomeRecord("2025-06-06", -3200.0)}, cfg)
		got, source := income("2025-06")
		assert.InDelta(t, 3200.0, got, 0.001)
		assert.Equal(t, model.IncomeSourceEstimated, source)
	})

	t.Run("estimate below floor falls back", func(t *testing.T) {
		income := IncomeFromRaw([]model.RawTransaction{incomeRecord("2025-06-06", -50.0)}, cfg)
		got, source := income("2025-06")
		assert.InDelta(t, cfg.DefaultIncome, got, 0.001)
		assert.Equal(t, model.IncomeSourceDefault, source)
	})

	t.Run("no signal falls back", func(t *testing.T) {
		income := IncomeFromRaw(nil, cfg)
		got, source := income("2025-06")
		assert.InDelta(t, cfg.DefaultIncome, got, 0.001)
		assert.Equal(t, model.IncomeSourceDefault, source)
	})
}
