// Package storage provides the data persistence layer for the pipeline.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidReport      = errors.New("invalid report")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of canonical transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i, txn := range transactions {
		if err := validateTransaction(&txn); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single canonical transaction. The id may
// be absent; the content key stands in for it at the persistence layer.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.MerchantName == "" {
		return fmt.Errorf("%w: missing merchant name", ErrInvalidTransaction)
	}
	if !txn.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTransaction, txn.Category)
	}
	return nil
}

// validateAllocationReport validates a monthly allocation report.
func validateAllocationReport(report *model.AllocationReport) error {
	if report == nil {
		return fmt.Errorf("%w: report", ErrNilParameter)
	}
	if report.Month.IsZero() {
		return fmt.Errorf("%w: missing month", ErrInvalidReport)
	}
	return nil
}

// validateAnalysisReport validates a monthly analysis report.
func validateAnalysisReport(report *model.AnalysisReport) error {
	if report == nil {
		return fmt.Errorf("%w: report", ErrNilParameter)
	}
	if report.Month.IsZero() {
		return fmt.Errorf("%w: missing month", ErrInvalidReport)
	}
	if report.Risks == "" {
		return fmt.Errorf("%w: risks must be rendered, use None when empty", ErrInvalidReport)
	}
	return nil
}
