// Package report renders ledger report data into PDF documents.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/utils"
)

// PDFRenderer renders report data using gofpdf. It is stateless and safe for
// concurrent use; every Render call builds a fresh document.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var _ portssvc.ReportRenderer = (*PDFRenderer)(nil)

var columnWidths = []float64{10, 24, 26, 32, 40, 30, 28}

var columnTitles = []string{"No", "Tanggal", "Jenis", "Kategori", "Keterangan", "Nominal", "Catatan"}

// Render builds the PDF document: header, striped transaction table, totals
// box and the treasurer signature block.
func (r *PDFRenderer) Render(data domain.ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	r.renderHeader(pdf, data)
	r.renderTable(pdf, data)
	r.renderSummary(pdf, data)
	r.renderSignature(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderHeader(pdf *gofpdf.Fpdf, data domain.ReportData) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, data.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, data.Subtitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Dicetak: "+data.PrintedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func (r *PDFRenderer) renderTable(pdf *gofpdf.Fpdf, data domain.ReportData) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range columnTitles {
		pdf.CellFormat(columnWidths[i], 7, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	fill := false
	pdf.SetFillColor(245, 245, 245)
	for _, row := range data.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.Index),
			row.Date.Format(domain.DateLayout),
			row.KindLabel,
			row.GroupName,
			row.Note,
			utils.FormatRupiah(row.Amount),
			row.Annotation,
		}
		for i, cell := range cells {
			align := "L"
			if i == 0 {
				align = "C"
			}
			if i == 5 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[i], 6, cell, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	if len(data.Rows) == 0 {
		total := 0.0
		for _, w := range columnWidths {
			total += w
		}
		pdf.CellFormat(total, 6, "Tidak ada data", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *PDFRenderer) renderSummary(pdf *gofpdf.Fpdf, data domain.ReportData) {
	lines := []struct {
		label string
		value string
	}{
		{"Total Pemasukan", utils.FormatRupiah(data.Summary.InboundTotal)},
		{"Total Pengeluaran", utils.FormatRupiah(data.Summary.OutboundTotal)},
		{"Sisa Saldo", utils.FormatRupiah(data.Summary.Balance)},
	}
	if data.Summary.Outstanding.IsPositive() {
		lines = append(lines, struct {
			label string
			value string
		}{"Total Kurang Bayar", utils.FormatRupiah(data.Summary.Outstanding)})
	}

	pdf.SetFont("Helvetica", "B", 10)
	for _, line := range lines {
		pdf.CellFormat(60, 7, line.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, line.value, "1", 1, "R", false, 0, "")
	}
}

func (r *PDFRenderer) renderSignature(pdf *gofpdf.Fpdf, data domain.ReportData) {
	if data.TreasurerName == "" {
		return
	}

	pdf.Ln(10)
	x := 130.0
	pdf.SetX(x)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(50, 6, "Bendahara,", "", 1, "C", false, 0, "")

	if len(data.SignaturePNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("treasurer-signature", opts, bytes.NewReader(data.SignaturePNG))
		pdf.ImageOptions("treasurer-signature", x+10, pdf.GetY()+2, 30, 0, false, opts, 0, "")
		pdf.Ln(22)
	} else {
		pdf.Ln(22)
	}

	pdf.SetX(x)
	pdf.SetFont("Helvetica", "BU", 10)
	pdf.CellFormat(50, 6, data.TreasurerName, "", 1, "C", false, 0, "")
}
