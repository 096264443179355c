// Package service defines the interfaces for the pipeline's collaborators.
package service

import (
	"context"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// Storage defines the contract for the persistence layer. Reports are
// keyed by month with replace-by-key upsert semantics; reprocessing the
// same month twice yields the same final state.
type Storage interface {
	// Normalized transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	ReplaceTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionsByMonth(ctx context.Context, month model.Month) ([]model.Transaction, error)
	GetTransactionCount(ctx context.Context) (int, error)

	// Allocation report operations
	SaveAllocationReport(ctx context.Context, report *model.AllocationReport) error
	GetAllocationReport(ctx context.Context, month model.Month) (*model.AllocationReport, error)
	ListAllocationReports(ctx context.Context) (map[model.Month]model.AllocationReport, error)

	// Analysis report operations
	SaveAnalysisReport(ctx context.Context, report *model.AnalysisReport) error
	GetAnalysisReport(ctx context.Context, month model.Month) (*model.AnalysisReport, error)
	ListAnalysisReports(ctx context.Context) ([]model.AnalysisReport, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RawSource produces raw transaction batches for the pipeline. Both the
// synthetic generator and file importers satisfy it.
type RawSource interface {
	Transactions(ctx context.Context) ([]model.RawTransaction, error)
}
