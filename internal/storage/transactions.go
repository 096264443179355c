package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// SaveTransactions persists a batch of canonical transactions, replacing
// any prior row with the same id. Transactions without a provider id are
// keyed by their content key. Input order is preserved for retrieval.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var nextPosition int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), -1) + 1 FROM transactions").Scan(&nextPosition)
	if err != nil {
		return fmt.Errorf("failed to determine next position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO transactions (
			id, date, merchant_name, amount, category, account_id, position
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, txn := range transactions {
		id := txn.ID
		if id == "" {
			id = txn.ContentKey()
		}
		_, err = stmt.ExecContext(ctx,
			id,
			txn.Date,
			txn.MerchantName,
			txn.Amount,
			string(txn.Category),
			txn.AccountID,
			nextPosition+i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// ReplaceTransactions clears the normalized dataset and persists the given
// batch in its place.
func (s *SQLiteStorage) ReplaceTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if len(transactions) == 0 {
		return nil
	}
	return s.SaveTransactions(ctx, transactions)
}

// GetTransactions retrieves the normalized dataset in stored order.
func (s *SQLiteStorage) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, merchant_name, amount, category, account_id
		FROM transactions
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionsByMonth retrieves the normalized transactions for one
// calendar month in stored order.
func (s *SQLiteStorage) GetTransactionsByMonth(ctx context.Context, month model.Month) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, fmt.Errorf("%w: month", ErrEmptyString)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, merchant_name, amount, category, account_id
		FROM transactions
		WHERE strftime('%Y-%m', date) = ?
		ORDER BY position ASC
	`, month.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for month %s: %w", month, err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionCount returns the size of the normalized dataset.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var category string
		var accountID sql.NullString
		var date time.Time

		if err := rows.Scan(&txn.ID, &date, &txn.MerchantName, &txn.Amount, &category, &accountID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Date = date
		txn.Category = model.Category(category)
		txn.AccountID = accountID.String
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
