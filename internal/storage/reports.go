package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SFA16SCM21C/Finagent/internal/common"
	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// SaveAllocationReport upserts one month's allocation report. Reprocessing
// a month replaces its prior report, never appends.
func (s *SQLiteStorage) SaveAllocationReport(ctx context.Context, report *model.AllocationReport) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAllocationReport(report); err != nil {
		return err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal allocation report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO allocation_reports (month, report, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, report.Month.String(), string(payload))
	if err != nil {
		return fmt.Errorf("failed to save allocation report for %s: %w", report.Month, err)
	}

	return nil
}

// GetAllocationReport retrieves one month's allocation report, or
// common.ErrNotFound when the month has not been processed.
func (s *SQLiteStorage) GetAllocationReport(ctx context.Context, month model.Month) (*model.AllocationReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, fmt.Errorf("%w: month", ErrEmptyString)
	}

	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT report FROM allocation_reports WHERE month = ?", month.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("allocation report for %s: %w", month, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query allocation report for %s: %w", month, err)
	}

	var report model.AllocationReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("failed to decode allocation report for %s: %w", month, err)
	}
	return &report, nil
}

// ListAllocationReports retrieves every persisted allocation report
// keyed by month.
func (s *SQLiteStorage) ListAllocationReports(ctx context.Context) (map[model.Month]model.AllocationReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT report FROM allocation_reports ORDER BY month ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query allocation reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reports := make(map[model.Month]model.AllocationReport)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan allocation report: %w", err)
		}
		var report model.AllocationReport
		if err := json.Unmarshal([]byte(payload), &report); err != nil {
			return nil, fmt.Errorf("failed to decode allocation report: %w", err)
		}
		reports[report.Month] = report
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocation reports: %w", err)
	}

	return reports, nil
}

// SaveAnalysisReport upserts one month's analysis report into the keyed
// report store, month as primary key.
func (s *SQLiteStorage) SaveAnalysisReport(ctx context.Context, report *model.AnalysisReport) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAnalysisReport(report); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO monthly_reports (
			month, income, needs_amount, wants_amount,
			savings_debt_amount, risks, debt_strategy, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`,
		report.Month.String(),
		report.Income,
		report.NeedsAmount,
		report.WantsAmount,
		report.SavingsDebtAmount,
		report.Risks,
		report.DebtStrategy,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis report for %s: %w", report.Month, err)
	}

	return nil
}

// GetAnalysisReport retrieves one month's analysis report, or
// common.ErrNotFound when the month has not been analyzed.
func (s *SQLiteStorage) GetAnalysisReport(ctx context.Context, month model.Month) (*model.AnalysisReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, fmt.Errorf("%w: month", ErrEmptyString)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT month, income, needs_amount, wants_amount,
		       savings_debt_amount, risks, debt_strategy
		FROM monthly_reports
		WHERE month = ?
	`, month.String())

	report, err := scanAnalysisReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis report for %s: %w", month, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis report for %s: %w", month, err)
	}
	return report, nil
}

// ListAnalysisReports retrieves every persisted analysis report ordered by
// month.
func (s *SQLiteStorage) ListAnalysisReports(ctx context.Context) ([]model.AnalysisReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT month, income, needs_amount, wants_amount,
		       savings_debt_amount, risks, debt_strategy
		FROM monthly_reports
		ORDER BY month ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reports []model.AnalysisReport
	for rows.Next() {
		report, err := scanAnalysisReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis report: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis reports: %w", err)
	}

	return reports, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysisReport(row rowScanner) (*model.AnalysisReport, error) {
	var report model.AnalysisReport
	var month string
	err := row.Scan(
		&month,
		&report.Income,
		&report.NeedsAmount,
		&report.WantsAmount,
		&report.SavingsDebtAmount,
		&report.Risks,
		&report.DebtStrategy,
	)
	if err != nil {
		return nil, err
	}
	report.Month = model.Month(month)
	return &report, nil
}
