package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is a single table line in a generated PDF report. Rows appear
// exactly once, in the same order the filtered sequence was computed.
type ReportRow struct {
	Index      int
	Date       time.Time
	KindLabel  string
	GroupName  string // category or business name
	Note       string
	Kind       TransactionKind
	Amount     decimal.Decimal
	Annotation string // underpayment note, empty when not tracked or fully paid
}

// ReportSummary is the totals block under the report table.
type ReportSummary struct {
	InboundTotal  decimal.Decimal
	OutboundTotal decimal.Decimal
	Balance       decimal.Decimal
	Outstanding   decimal.Decimal
}

// ReportData is everything the PDF renderer needs; it carries no references
// back into the store, so rendering stays pure.
type ReportData struct {
	Title         string
	Subtitle      string
	PrintedAt     time.Time
	Rows          []ReportRow
	Summary       ReportSummary
	TreasurerName string
	SignaturePNG  []byte // embedded when non-empty
}
