// Package normalize turns heterogeneous raw transaction batches into the
// canonical, deduplicated form consumed by the budgeting pipeline.
package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SFA16SCM21C/Finagent/internal/category"
	"github.com/SFA16SCM21C/Finagent/internal/common"
	"github.com/SFA16SCM21C/Finagent/internal/model"
)

// SkipCode identifies why a raw record was dropped.
type SkipCode string

const (
	// SkipMissingAmount means the record had no numeric amount.
	SkipMissingAmount SkipCode = "missing_amount"
	// SkipInvalidDate means the primary date was absent or unparsable.
	SkipInvalidDate SkipCode = "invalid_date"
	// SkipDuplicate means an earlier record already claimed the dedup key.
	SkipDuplicate SkipCode = "duplicate"
)

// SkipReason records a single dropped record for auditing.
type SkipReason struct {
	TransactionID string
	Code          SkipCode
	Index         int
}

// Result is the structured outcome of a normalization run: the surviving
// canonical transactions plus every skip, so callers can audit data loss
// without parsing log output.
type Result struct {
	Transactions []model.Transaction
	Skipped      []SkipReason
}

// dateLayouts are tried in order when parsing raw date fields.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

var digitRuns = regexp.MustCompile(`\d+`)

// Normalize runs the full cleaning pipeline over a raw batch. Records
// missing a parsable date or a numeric amount are dropped, not errored;
// duplicates keep the first occurrence in input order.
func Normalize(raws []model.RawTransaction) Result {
	var result Result

	// Parse, reconcile, and project each record before deduplication so
	// the dedup policy can be chosen from the surviving set.
	type candidate struct {
		txn      model.Transaction
		rawIndex int
	}
	candidates := make([]candidate, 0, len(raws))

	for i, raw := range raws {
		if raw.Amount == nil {
			result.Skipped = append(result.Skipped, SkipReason{
				Index:         i,
				TransactionID: raw.TransactionID,
				Code:          SkipMissingAmount,
			})
			continue
		}

		date, ok := ParseDate(raw.Date)
		if !ok {
			result.Skipped = append(result.Skipped, SkipReason{
				Index:         i,
				TransactionID: raw.TransactionID,
				Code:          SkipInvalidDate,
			})
			continue
		}

		if authorized, authOK := ParseDate(raw.AuthorizedDate); authOK {
			date = reconcileDate(date, authorized)
		}

		merchant := raw.MerchantName
		if merchant == "" {
			merchant = raw.Name
		}
		if merchant == "" {
			merchant = "Unknown"
		}

		candidates = append(candidates, candidate{
			rawIndex: i,
			txn: model.Transaction{
				ID:           raw.TransactionID,
				Date:         date,
				MerchantName: cleanMerchantName(merchant),
				Amount:       *raw.Amount,
				Category:     category.Resolve(raw),
				AccountID:    raw.AccountID,
			},
		})
	}

	// Deduplication key: the provider transaction id when every surviving
	// record carries one, the content tuple otherwise. First wins.
	useID := len(candidates) > 0
	for _, c := range candidates {
		if c.txn.ID == "" {
			useID = false
			break
		}
	}

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		key := c.txn.ContentKey()
		if useID {
			key = c.txn.ID
		}
		if seen[key] {
			result.Skipped = append(result.Skipped, SkipReason{
				Index:         c.rawIndex,
				TransactionID: c.txn.ID,
				Code:          SkipDuplicate,
			})
			continue
		}
		seen[key] = true
		result.Transactions = append(result.Transactions, c.txn)
	}

	slog.Debug("Normalized transaction batch",
		"input", len(raws),
		"output", len(result.Transactions),
		"skipped", len(result.Skipped))

	return result
}

// DecodeBatch decodes a JSON batch of raw records. A single bare object is
// tolerated as a batch of one.
func DecodeBatch(data []byte) ([]model.RawTransaction, error) {
	var raws []model.RawTransaction
	if err := json.Unmarshal(data, &raws); err == nil {
		return raws, nil
	}
	var single model.RawTransaction
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedBatch, err)
	}
	return []model.RawTransaction{single}, nil
}

// ParseDate parses a raw date field, trying each known layout in order.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// reconcileDate handles statement-boundary skew: when the primary date is
// the 1st of a month and the authorized date falls in exactly the prior
// calendar month, the authorized date is the effective one.
func reconcileDate(date, authorized time.Time) time.Time {
	if date.Day() != 1 {
		return date
	}
	prior := date.AddDate(0, -1, 0)
	if authorized.Year() == prior.Year() && authorized.Month() == prior.Month() {
		return authorized
	}
	return date
}

// cleanMerchantName lower-cases the name, strips digit runs and the
// literal "*//" marker, and trims surrounding whitespace.
func cleanMerchantName(name string) string {
	name = strings.ToLower(name)
	name = digitRuns.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "*//", "")
	return strings.TrimSpace(name)
}
