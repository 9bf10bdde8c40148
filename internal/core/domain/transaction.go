package domain

import (
	"fmt"
	"time"

	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind is the direction of money flow for a transaction.
// The two ledgers present this with different labels (Masuk/Keluar on the cash
// book, Pemasukan/Pengeluaran on the business ledger); internally there is a
// single vocabulary.
type TransactionKind string

const (
	Inbound  TransactionKind = "INBOUND"
	Outbound TransactionKind = "OUTBOUND"
)

// Known reports whether the kind is one of the two supported directions.
func (k TransactionKind) Known() bool {
	return k == Inbound || k == Outbound
}

// DateLayout is the single wire/storage format for calendar dates. Transaction
// dates carry no time component; everything that filters, aggregates or
// exports them must agree on this convention.
const DateLayout = "2006-01-02"

// ToDate truncates a timestamp to its calendar date at UTC midnight.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Transaction is a single ledger record. Exactly one of BusinessID/CategoryID
// is meaningful: business-ledger transactions carry a BusinessID, cash book
// entries carry a CategoryID. The two ledgers live in disjoint tables and are
// never merged; they share this shape so aggregation code works on both.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	BusinessID    string          `json:"businessID,omitempty"`
	CategoryID    string          `json:"categoryID,omitempty"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // non-negative integer rupiah
	// ExpectedAmount is the dues target for an inbound entry; zero means
	// shortfall tracking was not requested. Never set on outbound records.
	ExpectedAmount decimal.Decimal `json:"expectedAmount"`
	Note           string          `json:"note"`
	Date           time.Time       `json:"date"` // calendar date, UTC midnight
	AuditFields
}

// Validate checks the write-time invariants. Unknown kinds are rejected here
// rather than silently defaulted to outbound during aggregation.
func (t Transaction) Validate() error {
	if !t.Kind.Known() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownKind, t.Kind)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !t.Amount.IsInteger() {
		return fmt.Errorf("%w: amount must be a whole rupiah value", apperrors.ErrValidation)
	}
	if t.ExpectedAmount.IsNegative() {
		return fmt.Errorf("%w: expected amount must not be negative", apperrors.ErrValidation)
	}
	if t.Kind == Outbound && t.ExpectedAmount.IsPositive() {
		return fmt.Errorf("%w: expected amount only applies to inbound transactions", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}
