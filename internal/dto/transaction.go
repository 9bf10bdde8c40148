package dto

import (
	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a business
// ledger transaction. Amount is whole rupiah; a pointer keeps the required
// check meaningful for zero. Kind is validated at write time so garbage
// directions never reach aggregation.
type CreateTransactionRequest struct {
	Kind   domain.TransactionKind `json:"kind" binding:"required,oneof=INBOUND OUTBOUND"`
	Amount *int64                 `json:"amount" binding:"required,gte=0"`
	Note   string                 `json:"note" binding:"required"`
	Date   string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the fields allowed to change on a
// transaction.
type UpdateTransactionRequest struct {
	Kind   *domain.TransactionKind `json:"kind" binding:"omitempty,oneof=INBOUND OUTBOUND"`
	Amount *int64                  `json:"amount" binding:"omitempty,gte=0"`
	Note   *string                 `json:"note"`
	Date   *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a business ledger
// transaction. KindLabel carries the ledger-specific vocabulary.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	BusinessID    string                 `json:"businessID"`
	Kind          domain.TransactionKind `json:"kind"`
	KindLabel     string                 `json:"kindLabel"`
	Amount        int64                  `json:"amount"`
	Note          string                 `json:"note"`
	Date          string                 `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction from the business
// ledger to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		BusinessID:    t.BusinessID,
		Kind:          t.Kind,
		KindLabel:     BusinessKindLabel(t.Kind),
		Amount:        t.Amount.IntPart(),
		Note:          t.Note,
		Date:          t.Date.Format(domain.DateLayout),
	}
}

// ListTransactionsResponse wraps a business ledger listing together with the
// derived totals computed over it.
type ListTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	InboundTotal  int64                 `json:"inboundTotal"`
	OutboundTotal int64                 `json:"outboundTotal"`
	Balance       int64                 `json:"balance"`
}
