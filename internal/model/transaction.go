package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// PersonalFinanceCategory is the structured taxonomy descriptor some
// providers attach to a raw record.
type PersonalFinanceCategory struct {
	ConfidenceLevel string `json:"confidence_level,omitempty"`
	Detailed        string `json:"detailed,omitempty"`
	Primary         string `json:"primary,omitempty"`
}

// RawTransaction is a provider-shaped record before normalization. Every
// field is optional; the normalizer decides what is usable. Amount is a
// pointer so a missing field is distinguishable from a genuine zero.
type RawTransaction struct {
	TransactionID   string                   `json:"transaction_id,omitempty"`
	Date            string                   `json:"date,omitempty"`
	AuthorizedDate  string                   `json:"authorized_date,omitempty"`
	MerchantName    string                   `json:"merchant_name,omitempty"`
	Name            string                   `json:"name,omitempty"`
	Description     string                   `json:"description,omitempty"`
	Amount          *float64                 `json:"amount,omitempty"`
	FinanceCategory *PersonalFinanceCategory `json:"personal_finance_category,omitempty"`
	Labels          []string                 `json:"category,omitempty"`
	AccountID       string                   `json:"account_id,omitempty"`
}

// Transaction is the canonical, normalized form consumed by the budget and
// analysis stages. Immutable once produced by the normalizer.
type Transaction struct {
	Date         time.Time `json:"date"`
	ID           string    `json:"transaction_id,omitempty"`
	MerchantName string    `json:"merchant_name"`
	AccountID    string    `json:"account_id"`
	Category     Category  `json:"category"`
	Amount       float64   `json:"amount"`
}

// Month returns the calendar month the transaction falls in.
func (t Transaction) Month() Month {
	return MonthOf(t.Date)
}

// ContentKey identifies a transaction by its content when no provider id
// exists. Used as the fallback deduplication key.
func (t Transaction) ContentKey() string {
	data := fmt.Sprintf("%s:%.2f:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.MerchantName)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
