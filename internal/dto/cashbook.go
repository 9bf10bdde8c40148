package dto

import (
	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
)

// CreateEntryRequest defines the data needed to record a cash book entry.
// ExpectedAmount is the optional dues target; only meaningful on inbound
// entries and rejected on outbound ones.
type CreateEntryRequest struct {
	CategoryID     string                 `json:"categoryID" binding:"required"`
	Kind           domain.TransactionKind `json:"kind" binding:"required,oneof=INBOUND OUTBOUND"`
	Amount         *int64                 `json:"amount" binding:"required,gte=0"`
	ExpectedAmount *int64                 `json:"expectedAmount" binding:"omitempty,gte=0"`
	Note           string                 `json:"note" binding:"required"`
	Date           string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateEntryRequest defines the fields allowed to change on an entry.
type UpdateEntryRequest struct {
	CategoryID     *string                 `json:"categoryID"`
	Kind           *domain.TransactionKind `json:"kind" binding:"omitempty,oneof=INBOUND OUTBOUND"`
	Amount         *int64                  `json:"amount" binding:"omitempty,gte=0"`
	ExpectedAmount *int64                  `json:"expectedAmount" binding:"omitempty,gte=0"`
	Note           *string                 `json:"note"`
	Date           *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// EntryResponse defines the data returned for a cash book entry. Shortfall is
// present only when the entry is underpaid against its dues target.
type EntryResponse struct {
	EntryID        string                 `json:"entryID"`
	CategoryID     string                 `json:"categoryID"`
	Kind           domain.TransactionKind `json:"kind"`
	KindLabel      string                 `json:"kindLabel"`
	Amount         int64                  `json:"amount"`
	ExpectedAmount int64                  `json:"expectedAmount"`
	Shortfall      *int64                 `json:"shortfall,omitempty"`
	Note           string                 `json:"note"`
	Date           string                 `json:"date"`
}

// ToEntryResponse converts a cash book domain.Transaction to EntryResponse,
// annotating the underpaid amount when tracked and positive.
func ToEntryResponse(t *domain.Transaction) EntryResponse {
	resp := EntryResponse{
		EntryID:        t.TransactionID,
		CategoryID:     t.CategoryID,
		Kind:           t.Kind,
		KindLabel:      CashbookKindLabel(t.Kind),
		Amount:         t.Amount.IntPart(),
		ExpectedAmount: t.ExpectedAmount.IntPart(),
		Note:           t.Note,
		Date:           t.Date.Format(domain.DateLayout),
	}
	if due, tracked := ledger.Shortfall(*t); tracked && due.IsPositive() {
		v := due.IntPart()
		resp.Shortfall = &v
	}
	return resp
}

// ListEntriesParams defines query parameters for listing cash book entries.
// Category defaults to the "all" sentinel, which disables partitioning.
type ListEntriesParams struct {
	Category string `form:"category,default=all"`
}

// ListEntriesResponse wraps the filtered entries together with the summary
// computed over exactly that subset.
type ListEntriesResponse struct {
	Entries       []EntryResponse `json:"entries"`
	Count         int             `json:"count"`
	InboundTotal  int64           `json:"inboundTotal"`
	OutboundTotal int64           `json:"outboundTotal"`
	Balance       int64           `json:"balance"`
}
