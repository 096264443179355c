// Package sample generates synthetic raw transaction batches shaped like
// provider output, for demos and pipeline testing.
package sample

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// weightedCode pairs a provider taxonomy code with its draw weight.
type weightedCode struct {
	code   string
	weight float64
}

// codeWeights models a frequent-flyer household: heavy travel, regular
// food and shopping, weekly income.
var codeWeights = []weightedCode{
	{"TRAVEL", 0.30},
	{"FOOD_AND_DRINK", 0.20},
	{"SHOPPING", 0.15},
	{"TRANSFER", 0.10},
	{"LOAN_PAYMENTS", 0.10},
	{"TRANSPORTATION", 0.10},
	{"INCOME", 0.04},
	{"ENTERTAINMENT", 0.01},
}

// Generator produces synthetic raw batches. Seeded generators are
// deterministic, which the tests rely on.
type Generator struct {
	rng           *rand.Rand
	start         time.Time
	end           time.Time
	monthlyIncome float64
	count         int
}

// Config controls the generated date range, income level, and batch size.
type Config struct {
	Start         time.Time
	End           time.Time
	MonthlyIncome float64
	Seed          int64
	Count         int
}

// DefaultConfig covers two full calendar years of data.
func DefaultConfig() Config {
	return Config{
		Start:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyIncome: 4000.0,
		Seed:          time.Now().UnixNano(),
		Count:         600,
	}
}

// New creates a generator from the given configuration.
func New(cfg Config) *Generator {
	return &Generator{
		rng:           rand.New(rand.NewSource(cfg.Seed)),
		start:         cfg.Start,
		end:           cfg.End,
		monthlyIncome: cfg.MonthlyIncome,
		count:         cfg.Count,
	}
}

// Generate produces count spending records plus weekly income records,
// mimicking the provider's record structure.
func (g *Generator) Generate(count int) []model.RawTransaction {
	totalDays := int(g.end.Sub(g.start).Hours() / 24)
	raws := make([]model.RawTransaction, 0, count+count/25)

	for i := 0; i < count; i++ {
		code := g.pickCode()
		date := g.start.AddDate(0, 0, g.rng.Intn(totalDays+1))

		amount := g.amountFor(code)
		// Occasional partial refund on travel and shopping.
		if (code == "TRAVEL" || code == "SHOPPING") && g.rng.Float64() < 0.05 {
			amount = -amount * (0.1 + g.rng.Float64()*0.4)
		}
		amount = round2(amount)

		raws = append(raws, model.RawTransaction{
			TransactionID:  "tx" + uuid.NewString(),
			AccountID:      fmt.Sprintf("acc%d", 1+g.rng.Intn(3)),
			Date:           date.Format("2006-01-02"),
			AuthorizedDate: date.Format("2006-01-02"),
			MerchantName:   g.merchantFor(code),
			Name:           fmt.Sprintf("Transaction_%d", 1+g.rng.Intn(10)),
			Amount:         &amount,
			FinanceCategory: &model.PersonalFinanceCategory{
				ConfidenceLevel: "VERY_HIGH",
				Detailed:        code + "_DETAILED",
				Primary:         code,
			},
		})
	}

	// Weekly paychecks across the range so income estimation has a
	// consistent signal.
	weekly := round2(g.monthlyIncome / 4.33)
	for week := g.start; week.Before(g.end); week = week.AddDate(0, 0, 7) {
		amount := -weekly // credit convention: income is negative
		raws = append(raws, model.RawTransaction{
			TransactionID:  "inc" + uuid.NewString(),
			AccountID:      fmt.Sprintf("acc%d", 1+g.rng.Intn(3)),
			Date:           week.Format("2006-01-02"),
			AuthorizedDate: week.Format("2006-01-02"),
			MerchantName:   "Employer Payroll",
			Name:           "Direct Deposit",
			Amount:         &amount,
			FinanceCategory: &model.PersonalFinanceCategory{
				Primary: "INCOME",
			},
		})
	}

	return raws
}

// Transactions implements service.RawSource using the configured count.
func (g *Generator) Transactions(_ context.Context) ([]model.RawTransaction, error) {
	return g.Generate(g.count), nil
}

func (g *Generator) pickCode() string {
	var total float64
	for _, wc := range codeWeights {
		total += wc.weight
	}
	draw := g.rng.Float64() * total
	for _, wc := range codeWeights {
		if draw < wc.weight {
			return wc.code
		}
		draw -= wc.weight
	}
	return codeWeights[len(codeWeights)-1].code
}

func (g *Generator) amountFor(code string) float64 {
	switch code {
	case "INCOME":
		return g.monthlyIncome / 4.33
	case "LOAN_PAYMENTS":
		return 100.0 + g.rng.Float64()*200.0
	default:
		return 5.0 + g.rng.Float64()*195.0
	}
}

func (g *Generator) merchantFor(code string) string {
	if code == "TRAVEL" {
		return "Lufthansa"
	}
	return fmt.Sprintf("Store_%d", 1+g.rng.Intn(10))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
