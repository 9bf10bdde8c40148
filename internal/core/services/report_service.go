package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/kelompok16/kas-backend/internal/utils"
)

// ReportTitle is the fixed heading on every generated document.
const ReportTitle = "LAPORAN MANAJEMEN KEUANGAN KELOMPOK 16"

type reportService struct {
	BaseService
	entryRepo      portsrepo.CashbookReader
	categoryRepo   portsrepo.CategoryReader
	businessRepo   portsrepo.BusinessReader
	txnRepo        portsrepo.BusinessTxnReader
	treasurerRepo  portsrepo.TreasurerRepositoryFacade
	signatureStore portsrepo.ObjectStore
	renderer       portssvc.ReportRenderer
}

// NewReportService creates a new report service.
func NewReportService(repos portsrepo.RepositoryProvider, renderer portssvc.ReportRenderer) portssvc.ReportService {
	return &reportService{
		entryRepo:      repos.CashbookRepo,
		categoryRepo:   repos.CategoryRepo,
		businessRepo:   repos.BusinessRepo,
		txnRepo:        repos.BusinessTxnRepo,
		treasurerRepo:  repos.TreasurerRepo,
		signatureStore: repos.SignatureStore,
		renderer:       renderer,
	}
}

var _ portssvc.ReportService = (*reportService)(nil)

// GenerateCashbookReport renders the cash book, filtered by category and an
// optional inclusive date window, into a PDF document. The date window is
// applied first; the summary and every row come from that same subset.
func (s *reportService) GenerateCashbookReport(ctx context.Context, categoryID string, from, to *time.Time) ([]byte, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for report")
		return nil, err
	}

	windowed := ledger.FilterRange(entries, from, to)
	summary, err := ledger.Summarize(windowed, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Report fold hit an unknown kind")
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories for report")
		return nil, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.CategoryID] = c.Name
	}

	subtitle := "Buku Kas"
	if categoryID != "" && categoryID != ledger.AllCategories {
		if name, ok := categoryNames[categoryID]; ok {
			subtitle = fmt.Sprintf("Buku Kas - Kategori %s", name)
		}
	}
	subtitle += periodSuffix(from, to)

	rows := make([]domain.ReportRow, 0, len(summary.Filtered))
	for i, e := range summary.Filtered {
		rows = append(rows, domain.ReportRow{
			Index:      i + 1,
			Date:       e.Date,
			Kind:       e.Kind,
			KindLabel:  dto.CashbookKindLabel(e.Kind),
			GroupName:  categoryNames[e.CategoryID],
			Note:       e.Note,
			Amount:     e.Amount,
			Annotation: shortfallAnnotation(e),
		})
	}

	data := domain.ReportData{
		Title:     ReportTitle,
		Subtitle:  subtitle,
		PrintedAt: time.Now(),
		Rows:      rows,
		Summary: domain.ReportSummary{
			InboundTotal:  summary.InboundTotal,
			OutboundTotal: summary.OutboundTotal,
			Balance:       summary.Balance,
			Outstanding:   ledger.TotalOutstanding(summary.Filtered),
		},
	}
	s.attachSignature(ctx, &data)

	return s.renderer.Render(data)
}

// GenerateBusinessReport renders one business's ledger into a PDF document.
func (s *reportService) GenerateBusinessReport(ctx context.Context, businessID string, from, to *time.Time) ([]byte, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for report", "business_id", businessID)
		return nil, err
	}

	windowed := ledger.FilterRange(txns, from, to)
	summary, err := ledger.Summarize(windowed, ledger.AllCategories)
	if err != nil {
		s.LogError(ctx, err, "Report fold hit an unknown kind", "business_id", businessID)
		return nil, err
	}

	rows := make([]domain.ReportRow, 0, len(summary.Filtered))
	for i, t := range summary.Filtered {
		rows = append(rows, domain.ReportRow{
			Index:     i + 1,
			Date:      t.Date,
			Kind:      t.Kind,
			KindLabel: dto.BusinessKindLabel(t.Kind),
			GroupName: business.Name,
			Note:      t.Note,
			Amount:    t.Amount,
		})
	}

	data := domain.ReportData{
		Title:     ReportTitle,
		Subtitle:  fmt.Sprintf("Usaha %s%s", business.Name, periodSuffix(from, to)),
		PrintedAt: time.Now(),
		Rows:      rows,
		Summary: domain.ReportSummary{
			InboundTotal:  summary.InboundTotal,
			OutboundTotal: summary.OutboundTotal,
			Balance:       summary.Balance,
		},
	}
	s.attachSignature(ctx, &data)

	return s.renderer.Render(data)
}

// attachSignature stamps the treasurer name and signature image onto the
// report. A missing profile or unreadable image degrades to an unsigned
// document instead of failing the export.
func (s *reportService) attachSignature(ctx context.Context, data *domain.ReportData) {
	treasurer, err := s.treasurerRepo.GetTreasurer(ctx)
	if err != nil {
		s.LogWarn(ctx, "Report rendered without treasurer profile", "error", err.Error())
		return
	}
	data.TreasurerName = treasurer.Name

	if treasurer.SignatureObject == "" {
		return
	}
	png, err := s.signatureStore.Fetch(ctx, treasurer.SignatureObject)
	if err != nil {
		s.LogWarn(ctx, "Report rendered without signature image", "object", treasurer.SignatureObject, "error", err.Error())
		return
	}
	data.SignaturePNG = png
}

func periodSuffix(from, to *time.Time) string {
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf(" (%s s/d %s)", from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	case from != nil:
		return fmt.Sprintf(" (sejak %s)", from.Format(domain.DateLayout))
	case to != nil:
		return fmt.Sprintf(" (hingga %s)", to.Format(domain.DateLayout))
	default:
		return ""
	}
}

func shortfallAnnotation(t domain.Transaction) string {
	if due, tracked := ledger.Shortfall(t); tracked && due.IsPositive() {
		return "Kurang " + utils.FormatRupiah(due)
	}
	return ""
}
