// Package engine orchestrates the normalization, budgeting, and analysis
// pipeline over raw transaction batches.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SFA16SCM21C/Finagent/internal/analysis"
	"github.com/SFA16SCM21C/Finagent/internal/budget"
	"github.com/SFA16SCM21C/Finagent/internal/model"
	"github.com/SFA16SCM21C/Finagent/internal/normalize"
	"github.com/SFA16SCM21C/Finagent/internal/service"
)

// Config holds the pipeline's stage configurations.
type Config struct {
	Budget   budget.Config
	Analysis analysis.Config
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Budget:   budget.DefaultConfig(),
		Analysis: analysis.DefaultConfig(),
	}
}

// Pipeline runs raw batches through normalization, allocation, and
// analysis, persisting each stage's output.
type Pipeline struct {
	storage service.Storage
	cfg     Config
}

// New creates a pipeline backed by the given storage.
func New(storage service.Storage, cfg Config) *Pipeline {
	return &Pipeline{
		storage: storage,
		cfg:     cfg,
	}
}

// RunSummary reports what one pipeline run did. An all-zero summary means
// nothing usable was found in the input, not that nothing went wrong.
type RunSummary struct {
	Allocations map[model.Month]model.AllocationReport
	Analyses    map[model.Month]model.AnalysisReport
	Skipped     []normalize.SkipReason
	Months      []model.Month
	RawCount    int
	Normalized  int
}

// Run processes a raw batch end to end. Unusable records are dropped and
// reported in the summary; configuration and storage failures are the only
// errors.
func (p *Pipeline) Run(ctx context.Context, raws []model.RawTransaction) (*RunSummary, error) {
	if err := p.cfg.Analysis.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis configuration: %w", err)
	}

	slog.Info("Starting pipeline run", "raw_count", len(raws))

	result := normalize.Normalize(raws)
	summary := &RunSummary{
		RawCount:   len(raws),
		Normalized: len(result.Transactions),
		Skipped:    result.Skipped,
	}

	if len(result.Transactions) == 0 {
		slog.Warn("No usable transactions in batch",
			"raw_count", len(raws),
			"skipped", len(result.Skipped))
		return summary, nil
	}

	if err := p.storage.ReplaceTransactions(ctx, result.Transactions); err != nil {
		return nil, fmt.Errorf("failed to persist normalized transactions: %w", err)
	}

	income := budget.IncomeFromRaw(raws, p.cfg.Budget)
	summary.Allocations = budget.Allocate(result.Transactions, income, p.cfg.Budget)
	for month := range summary.Allocations {
		report := summary.Allocations[month]
		if err := p.storage.SaveAllocationReport(ctx, &report); err != nil {
			return nil, fmt.Errorf("failed to persist allocation report for %s: %w", month, err)
		}
		summary.Months = append(summary.Months, month)
	}
	sort.Slice(summary.Months, func(i, j int) bool {
		return summary.Months[i] < summary.Months[j]
	})

	summary.Analyses = analysis.AnalyzeAll(summary.Allocations, p.cfg.Analysis)
	for month := range summary.Analyses {
		report := summary.Analyses[month]
		if err := p.storage.SaveAnalysisReport(ctx, &report); err != nil {
			return nil, fmt.Errorf("failed to persist analysis report for %s: %w", month, err)
		}
	}

	slog.Info("Pipeline run complete",
		"normalized", summary.Normalized,
		"skipped", len(summary.Skipped),
		"months", len(summary.Months))

	return summary, nil
}

// RunJSON decodes a raw JSON batch and runs the pipeline over it. A
// malformed batch degrades to an empty run, not an error.
func (p *Pipeline) RunJSON(ctx context.Context, data []byte) (*RunSummary, error) {
	raws, err := normalize.DecodeBatch(data)
	if err != nil {
		slog.Warn("Discarding malformed transaction batch", "error", err)
		return &RunSummary{}, nil
	}
	return p.Run(ctx, raws)
}
