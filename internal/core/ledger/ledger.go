// Package ledger holds the pure aggregation core shared by both ledgers (the
// cash book and the per-business ledger). Every function here is a stateless,
// single-pass fold over an already-fetched sequence; none of them perform I/O.
package ledger

import (
	"fmt"
	"time"

	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AllCategories is the sentinel filter key meaning "do not partition by
// category": Summarize passes the input through unchanged.
const AllCategories = "all"

// Balance folds signed amounts into a net total: inbound adds, outbound
// subtracts. An empty sequence yields zero. A record with an unknown kind is a
// data-integrity error and aborts the fold rather than being miscounted.
func Balance(txns []domain.Transaction) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range txns {
		switch t.Kind {
		case domain.Inbound:
			total = total.Add(t.Amount)
		case domain.Outbound:
			total = total.Sub(t.Amount)
		default:
			return decimal.Zero, fmt.Errorf("%w: %q on transaction %s", apperrors.ErrUnknownKind, t.Kind, t.TransactionID)
		}
	}
	return total, nil
}

// Summary is the derived view over a (possibly filtered) sequence.
type Summary struct {
	Filtered      []domain.Transaction
	InboundTotal  decimal.Decimal
	OutboundTotal decimal.Decimal
	Balance       decimal.Decimal
}

// Summarize partitions by category when a specific key is given (the
// AllCategories sentinel is a pass-through) and computes inbound/outbound
// totals and the net balance over the retained subset. It recomputes from
// scratch on every call; data sizes are bounded.
func Summarize(txns []domain.Transaction, categoryID string) (Summary, error) {
	filtered := txns
	if categoryID != "" && categoryID != AllCategories {
		filtered = make([]domain.Transaction, 0, len(txns))
		for _, t := range txns {
			if t.CategoryID == categoryID {
				filtered = append(filtered, t)
			}
		}
	}

	s := Summary{
		Filtered:      filtered,
		InboundTotal:  decimal.Zero,
		OutboundTotal: decimal.Zero,
	}
	for _, t := range filtered {
		switch t.Kind {
		case domain.Inbound:
			s.InboundTotal = s.InboundTotal.Add(t.Amount)
		case domain.Outbound:
			s.OutboundTotal = s.OutboundTotal.Add(t.Amount)
		default:
			return Summary{}, fmt.Errorf("%w: %q on transaction %s", apperrors.ErrUnknownKind, t.Kind, t.TransactionID)
		}
	}
	s.Balance = s.InboundTotal.Sub(s.OutboundTotal)
	return s, nil
}

// Shortfall reports how much an inbound transaction fell short of its dues
// target. The second return is false when the record is not tracked at all:
// outbound transactions, and inbound ones without a target, are "not tracked"
// rather than "fully paid". A non-positive shortfall on a tracked record means
// fully paid or overpaid; callers only annotate positive values.
func Shortfall(t domain.Transaction) (decimal.Decimal, bool) {
	if t.Kind != domain.Inbound || !t.ExpectedAmount.IsPositive() {
		return decimal.Zero, false
	}
	return t.ExpectedAmount.Sub(t.Amount), true
}

// TotalOutstanding sums the positive shortfalls across a sequence, for the
// report summary's "total outstanding" figure.
func TotalOutstanding(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if due, tracked := Shortfall(t); tracked && due.IsPositive() {
			total = total.Add(due)
		}
	}
	return total
}

// FilterRange restricts a sequence to an inclusive [start, end] calendar-date
// window, preserving order. A nil bound is open-ended; with both bounds nil
// the input is returned unchanged. Comparison is by calendar date only; both
// bounds and transaction dates are truncated to UTC midnight first.
func FilterRange(txns []domain.Transaction, start, end *time.Time) []domain.Transaction {
	if start == nil && end == nil {
		return txns
	}

	var lo, hi time.Time
	if start != nil {
		lo = domain.ToDate(*start)
	}
	if end != nil {
		hi = domain.ToDate(*end)
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		d := domain.ToDate(t.Date)
		if start != nil && d.Before(lo) {
			continue
		}
		if end != nil && d.After(hi) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
