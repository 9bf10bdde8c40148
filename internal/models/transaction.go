package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors the domain movement direction at the DB layer.
type TransactionKind string

const (
	Inbound  TransactionKind = "INBOUND"
	Outbound TransactionKind = "OUTBOUND"
)

// Transaction represents a row in either ledger table. Business transactions
// carry a business_id, cash book entries a category_id and an optional
// expected_amount dues target.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	BusinessID     string          `db:"business_id"` // Nullable
	CategoryID     string          `db:"category_id"` // Nullable
	Kind           TransactionKind `db:"kind"`
	Amount         decimal.Decimal `db:"amount"`
	ExpectedAmount decimal.Decimal `db:"expected_amount"` // Nullable
	Note           string          `db:"note"`
	Date           time.Time       `db:"transaction_date"`
	AuditFields
}
