package domain_test

import (
	"testing"
	"time"

	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTxn() domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-1",
		CategoryID:    "cat-1",
		Kind:          domain.Inbound,
		Amount:        decimal.NewFromInt(20000),
		Date:          time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	t.Run("valid inbound", func(t *testing.T) {
		assert.NoError(t, validTxn().Validate())
	})

	t.Run("valid inbound with dues target", func(t *testing.T) {
		txn := validTxn()
		txn.ExpectedAmount = decimal.NewFromInt(25000)
		assert.NoError(t, txn.Validate())
	})

	t.Run("unknown kind", func(t *testing.T) {
		txn := validTxn()
		txn.Kind = "TRANSFER"
		assert.ErrorIs(t, txn.Validate(), apperrors.ErrUnknownKind)
	})

	t.Run("negative amount", func(t *testing.T) {
		txn := validTxn()
		txn.Amount = decimal.NewFromInt(-1)
		assert.ErrorIs(t, txn.Validate(), apperrors.ErrValidation)
	})

	t.Run("fractional amount", func(t *testing.T) {
		txn := validTxn()
		txn.Amount = decimal.NewFromFloat(100.50)
		assert.ErrorIs(t, txn.Validate(), apperrors.ErrValidation)
	})

	t.Run("dues target on outbound", func(t *testing.T) {
		txn := validTxn()
		txn.Kind = domain.Outbound
		txn.ExpectedAmount = decimal.NewFromInt(5000)
		assert.ErrorIs(t, txn.Validate(), apperrors.ErrValidation)
	})

	t.Run("zero date", func(t *testing.T) {
		txn := validTxn()
		txn.Date = time.Time{}
		assert.ErrorIs(t, txn.Validate(), apperrors.ErrValidation)
	})
}

func TestToDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	stamp := time.Date(2025, 9, 1, 23, 45, 12, 999, loc)

	got := domain.ToDate(stamp)

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), got)
}
