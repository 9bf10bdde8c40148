package services

import (
	"context"
	"time"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// ReportService assembles and renders downloadable PDF reports.
type ReportService interface {
	// GenerateCashbookReport renders the cash book, filtered by category and
	// an optional inclusive date window, into a PDF document.
	GenerateCashbookReport(ctx context.Context, categoryID string, from, to *time.Time) ([]byte, error)

	// GenerateBusinessReport renders one business's ledger into a PDF document.
	GenerateBusinessReport(ctx context.Context, businessID string, from, to *time.Time) ([]byte, error)
}

// ReportRenderer turns assembled report data into a PDF byte stream.
type ReportRenderer interface {
	Render(data domain.ReportData) ([]byte, error)
}
