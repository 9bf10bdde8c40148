package dto

import "github.com/kelompok16/kas-backend/internal/core/domain"

// The two ledgers historically used different Indonesian labels for the same
// direction tag. The domain carries a single vocabulary; these mappings are
// purely presentational.

// CashbookKindLabel maps a kind to the cash book vocabulary (Masuk/Keluar).
func CashbookKindLabel(k domain.TransactionKind) string {
	if k == domain.Inbound {
		return "Masuk"
	}
	return "Keluar"
}

// BusinessKindLabel maps a kind to the business ledger vocabulary
// (Pemasukan/Pengeluaran).
func BusinessKindLabel(k domain.TransactionKind) string {
	if k == domain.Inbound {
		return "Pemasukan"
	}
	return "Pengeluaran"
}
