package ledger_test

import (
	"testing"
	"time"

	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func txn(id string, kind domain.TransactionKind, amount int64, catID, day string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Kind:          kind,
		Amount:        decimal.NewFromInt(amount),
		CategoryID:    catID,
		Date:          date(day),
	}
}

// The worked scenario: inbound 100 (target 150, catA), outbound 40 (catA),
// inbound 50 (catB).
func scenario() []domain.Transaction {
	t1 := txn("t1", domain.Inbound, 100, "catA", "2024-01-01")
	t1.ExpectedAmount = decimal.NewFromInt(150)
	t2 := txn("t2", domain.Outbound, 40, "catA", "2024-01-02")
	t3 := txn("t3", domain.Inbound, 50, "catB", "2024-01-03")
	return []domain.Transaction{t1, t2, t3}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name string
		txns []domain.Transaction
		want int64
	}{
		{name: "empty sequence is zero", txns: nil, want: 0},
		{name: "scenario nets to 110", txns: scenario(), want: 110},
		{
			name: "outbound only goes negative",
			txns: []domain.Transaction{txn("t1", domain.Outbound, 75, "", "2024-02-01")},
			want: -75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.Balance(tt.txns)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestBalance_UnknownKind(t *testing.T) {
	txns := []domain.Transaction{txn("t1", "TRANSFER", 10, "", "2024-01-01")}
	_, err := ledger.Balance(txns)
	assert.ErrorIs(t, err, apperrors.ErrUnknownKind)
}

func TestBalance_OrderIndependent(t *testing.T) {
	txns := scenario()
	reversed := []domain.Transaction{txns[2], txns[1], txns[0]}

	a, err := ledger.Balance(txns)
	require.NoError(t, err)
	b, err := ledger.Balance(reversed)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestSummarize_AllIsPassThrough(t *testing.T) {
	txns := scenario()
	s, err := ledger.Summarize(txns, ledger.AllCategories)
	require.NoError(t, err)

	assert.Equal(t, txns, s.Filtered)
	assert.True(t, s.InboundTotal.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.OutboundTotal.Equal(decimal.NewFromInt(40)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(110)))
}

func TestSummarize_ByCategory(t *testing.T) {
	s, err := ledger.Summarize(scenario(), "catA")
	require.NoError(t, err)

	assert.Len(t, s.Filtered, 2)
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(60)))

	// Summary balance must agree with the balance reducer over the same subset.
	direct, err := ledger.Balance(s.Filtered)
	require.NoError(t, err)
	assert.True(t, s.Balance.Equal(direct))
}

func TestSummarize_UnmatchedCategoryIsEmpty(t *testing.T) {
	s, err := ledger.Summarize(scenario(), "catZ")
	require.NoError(t, err)

	assert.Empty(t, s.Filtered)
	assert.True(t, s.Balance.IsZero())
}

func TestShortfall(t *testing.T) {
	txns := scenario()

	due, tracked := ledger.Shortfall(txns[0])
	assert.True(t, tracked)
	assert.True(t, due.Equal(decimal.NewFromInt(50)), "150 target minus 100 paid")

	// Outbound: never tracked.
	_, tracked = ledger.Shortfall(txns[1])
	assert.False(t, tracked)

	// Inbound without a target: not tracked, not "fully paid".
	_, tracked = ledger.Shortfall(txns[2])
	assert.False(t, tracked)
}

func TestShortfall_OverpaidIsTrackedButNotPositive(t *testing.T) {
	overpaid := txn("t1", domain.Inbound, 200, "", "2024-01-01")
	overpaid.ExpectedAmount = decimal.NewFromInt(150)

	due, tracked := ledger.Shortfall(overpaid)
	assert.True(t, tracked)
	assert.False(t, due.IsPositive())
}

func TestTotalOutstanding(t *testing.T) {
	total := ledger.TotalOutstanding(scenario())
	assert.True(t, total.Equal(decimal.NewFromInt(50)))

	assert.True(t, ledger.TotalOutstanding(nil).IsZero())
}

func TestFilterRange(t *testing.T) {
	txns := scenario()

	tests := []struct {
		name       string
		start, end *time.Time
		wantIDs    []string
	}{
		{name: "both bounds absent is identity", wantIDs: []string{"t1", "t2", "t3"}},
		{name: "inclusive window", start: datePtr("2024-01-02"), end: datePtr("2024-01-03"), wantIDs: []string{"t2", "t3"}},
		{name: "lower bound only", start: datePtr("2024-01-03"), wantIDs: []string{"t3"}},
		{name: "upper bound only", end: datePtr("2024-01-01"), wantIDs: []string{"t1"}},
		{name: "window excludes everything", start: datePtr("2024-02-01"), end: datePtr("2024-02-28"), wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.FilterRange(txns, tt.start, tt.end)
			ids := make([]string, 0, len(got))
			for _, tr := range got {
				ids = append(ids, tr.TransactionID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterRange_ThenBalance(t *testing.T) {
	// Range filtering composes with the balance reducer: the last two records
	// net to -40 + 50 = 10.
	filtered := ledger.FilterRange(scenario(), datePtr("2024-01-02"), datePtr("2024-01-03"))
	got, err := ledger.Balance(filtered)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(10)))
}

func TestAggregationIsIdempotent(t *testing.T) {
	txns := scenario()

	first, err := ledger.Summarize(txns, "catA")
	require.NoError(t, err)
	second, err := ledger.Summarize(first.Filtered, "catA")
	require.NoError(t, err)

	assert.Equal(t, first.Filtered, second.Filtered)
	assert.True(t, first.Balance.Equal(second.Balance))
}
