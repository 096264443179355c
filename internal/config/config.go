// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/SFA16SCM21C/Finagent/internal/analysis"
	"github.com/SFA16SCM21C/Finagent/internal/budget"
	"github.com/SFA16SCM21C/Finagent/internal/engine"
	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// SetDefaults registers every configuration default with viper. Called
// once before any command reads configuration.
func SetDefaults() {
	viper.SetDefault("database.path", "~/.local/share/finagent/finagent.db")
	viper.SetDefault("budget.default_income", 4000.0)
	viper.SetDefault("budget.food_needs_fraction", 0.5)
	viper.SetDefault("budget.estimated_income_floor", 100.0)
	viper.SetDefault("analysis.savings_risk_threshold", 20.0)
	viper.SetDefault("analysis.debt.balance", 5000.0)
	viper.SetDefault("analysis.debt.annual_rate_percent", 12.5)
	viper.SetDefault("analysis.debt.extra_payment", 0.0)
}

// DatabasePath returns the configured SQLite path with ~ and environment
// variables expanded.
func DatabasePath() string {
	return ExpandPath(viper.GetString("database.path"))
}

// BudgetConfig assembles the allocator configuration from viper.
func BudgetConfig() budget.Config {
	return budget.Config{
		DefaultIncome:        viper.GetFloat64("budget.default_income"),
		FoodNeedsFraction:    viper.GetFloat64("budget.food_needs_fraction"),
		EstimatedIncomeFloor: viper.GetFloat64("budget.estimated_income_floor"),
	}
}

// AnalysisConfig assembles the analyzer configuration from viper.
func AnalysisConfig() analysis.Config {
	return analysis.Config{
		SavingsRiskThreshold: viper.GetFloat64("analysis.savings_risk_threshold"),
		Debt: model.DebtAccount{
			Balance:           viper.GetFloat64("analysis.debt.balance"),
			AnnualRatePercent: viper.GetFloat64("analysis.debt.annual_rate_percent"),
			ExtraPayment:      viper.GetFloat64("analysis.debt.extra_payment"),
		},
	}
}

// PipelineConfig assembles the full pipeline configuration from viper.
func PipelineConfig() engine.Config {
	return engine.Config{
		Budget:   BudgetConfig(),
		Analysis: AnalysisConfig(),
	}
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}
