package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

func allocation(needsPct, wantsPct, savingsPct float64) model.AllocationReport {
	income := 4000.0
	return model.AllocationReport{
		Month:  "2025-06",
		Income: income,
		Needs: model.BucketReport{
			Amount:     income * needsPct / 100,
			Percentage: needsPct,
		},
		Wants: model.BucketReport{
			Amount:     income * wantsPct / 100,
			Percentage: wantsPct,
		},
		SavingsDebt: model.BucketReport{
			Amount:     income * savingsPct / 100,
			Percentage: savingsPct,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	negThreshold := DefaultConfig()
	negThreshold.SavingsRiskThreshold = -1.0
	assert.Error(t, negThreshold.Validate())

	negBalance := DefaultConfig()
	negBalance.Debt.Balance = -100.0
	assert.Error(t, negBalance.Validate())

	negRate := DefaultConfig()
	negRate.Debt.AnnualRatePercent = -5.0
	assert.Error(t, negRate.Validate())
}

func TestRiskFlags(t *testing.T) {
	tests := []struct {
		name       string
		needsPct   float64
		wantsPct   float64
		savingsPct float64
		want       []string
	}{
		{
			name:     "all healthy",
			needsPct: 45, wantsPct: 25, savingsPct: 22,
			want: nil,
		},
		{
			name:     "high needs",
			needsPct: 55, wantsPct: 25, savingsPct: 22,
			want: []string{"High Needs spending"},
		},
		{
			name:     "high wants",
			needsPct: 45, wantsPct: 35, savingsPct: 22,
			want: []string{"High Wants spending"},
		},
		{
			name:     "low savings",
			needsPct: 45, wantsPct: 25, savingsPct: 10,
			want: []string{"Low Savings/Debt spending"},
		},
		{
			name:     "all flags fire independently",
			needsPct: 60, wantsPct: 40, savingsPct: 5,
			want: []string{
				"High Needs spending",
				"High Wants spending",
				"Low Savings/Debt spending",
			},
		},
		{
			name:     "exactly on threshold does not fire",
			needsPct: 50, wantsPct: 30, savingsPct: 20,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := allocation(tt.needsPct, tt.wantsPct, tt.savingsPct)
			flags := RiskFlags(report, 20.0)
			assert.Equal(t, tt.want, flags)
		})
	}
}

func TestRiskFlags_StricterProfile(t *testing.T) {
	report := allocation(45, 25, 15)

	assert.Contains(t, RiskFlags(report, 20.0), "Low Savings/Debt spending")
	assert.Empty(t, RiskFlags(report, 10.0))
}

func TestRenderRisks(t *testing.T) {
	assert.Equal(t, "None", RenderRisks(nil))
	assert.Equal(t, "High Needs spending", RenderRisks([]string{"High Needs spending"}))
	assert.Equal(t,
		"High Needs spending; Low Savings/Debt spending",
		RenderRisks([]string{"High Needs spending", "Low Savings/Debt spending"}))
}

func TestAnalyze(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("healthy month gets a payoff plan", func(t *testing.T) {
		report := Analyze(allocation(45, 25, 10), cfg)

		assert.Equal(t, model.Month("2025-06"), report.Month)
		assert.Equal(t, 4000.0, report.Income)
		assert.Equal(t, "Low Savings/Debt spending", report.Risks)
		// 20% of 4000 minus 400 spent leaves 400/month disposable.
		assert.True(t, strings.HasPrefix(report.DebtStrategy, "Pay off"),
			"unexpected strategy: %s", report.DebtStrategy)
		assert.Contains(t, report.DebtStrategy, "€400.00/month")
	})

	t.Run("no disposable savings means no plan", func(t *testing.T) {
		// Savings/Debt spending consumes the whole 20% share.
		report := Analyze(allocation(45, 25, 20), cfg)
		assert.Equal(t,
			"No payoff plan; increase savings or reduce debt spending",
			report.DebtStrategy)
	})

	t.Run("overspent savings means no plan", func(t *testing.T) {
		report := Analyze(allocation(45, 25, 35), cfg)
		assert.Equal(t,
			"No payoff plan; increase savings or reduce debt spending",
			report.DebtStrategy)
	})

	t.Run("non-amortizing payment reports the cap", func(t *testing.T) {
		tight := cfg
		tight.Debt = model.DebtAccount{Balance: 100000.0, AnnualRatePercent: 60.0}
		// Disposable is 400/month; monthly interest is 5000.
		report := Analyze(allocation(45, 25, 10), tight)
		assert.Contains(t, report.DebtStrategy, "No payoff achieved within 1000 months")
	})

	t.Run("amounts carried into the report", func(t *testing.T) {
		alloc := allocation(45, 25, 10)
		report := Analyze(alloc, cfg)
		assert.Equal(t, alloc.Needs.Amount, report.NeedsAmount)
		assert.Equal(t, alloc.Wants.Amount, report.WantsAmount)
		assert.Equal(t, alloc.SavingsDebt.Amount, report.SavingsDebtAmount)
	})
}

func TestAnalyzeAll(t *testing.T) {
	cfg := DefaultConfig()
	reports := map[model.Month]model.AllocationReport{
		"2025-05": allocation(45, 25, 22),
		"2025-06": allocation(60, 40, 5),
	}
	// AnalyzeAll keys by the allocation's own month field.
	may := reports["2025-05"]
	may.Month = "2025-05"
	reports["2025-05"] = may

	analyses := AnalyzeAll(reports, cfg)
	assert.Len(t, analyses, 2)
	assert.Equal(t, "None", analyses["2025-05"].Risks)
	assert.NotEqual(t, "None", analyses["2025-06"].Risks)
}
