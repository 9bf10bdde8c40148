package report_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() domain.ReportData {
	return domain.ReportData{
		Title:     "LAPORAN MANAJEMEN KEUANGAN KELOMPOK 16",
		Subtitle:  "Buku Kas",
		PrintedAt: time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC),
		Rows: []domain.ReportRow{
			{
				Index:      1,
				Date:       time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
				Kind:       domain.Inbound,
				KindLabel:  "Masuk",
				GroupName:  "Iuran Bulanan",
				Note:       "Iuran September",
				Amount:     decimal.NewFromInt(15000),
				Annotation: "Kurang Rp 5.000",
			},
			{
				Index:     2,
				Date:      time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
				Kind:      domain.Outbound,
				KindLabel: "Keluar",
				GroupName: "Iuran Bulanan",
				Note:      "Fotokopi",
				Amount:    decimal.NewFromInt(4000),
			},
		},
		Summary: domain.ReportSummary{
			InboundTotal:  decimal.NewFromInt(15000),
			OutboundTotal: decimal.NewFromInt(4000),
			Balance:       decimal.NewFromInt(11000),
			Outstanding:   decimal.NewFromInt(5000),
		},
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.Black)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRender_ProducesPDF(t *testing.T) {
	out, err := report.NewPDFRenderer().Render(sampleData())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should start with the PDF magic bytes")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")), "output should carry the PDF trailer")
}

func TestRender_EmptyRows(t *testing.T) {
	data := sampleData()
	data.Rows = nil
	data.Summary = domain.ReportSummary{
		InboundTotal:  decimal.Zero,
		OutboundTotal: decimal.Zero,
		Balance:       decimal.Zero,
	}

	out, err := report.NewPDFRenderer().Render(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_WithSignature(t *testing.T) {
	data := sampleData()
	data.TreasurerName = "Ibu Ani"
	data.SignaturePNG = tinyPNG(t)

	out, err := report.NewPDFRenderer().Render(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_SignatureNameWithoutImage(t *testing.T) {
	data := sampleData()
	data.TreasurerName = "Ibu Ani"

	out, err := report.NewPDFRenderer().Render(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_ManyRowsPaginates(t *testing.T) {
	data := sampleData()
	data.Rows = nil
	for i := 0; i < 80; i++ {
		data.Rows = append(data.Rows, domain.ReportRow{
			Index:     i + 1,
			Date:      time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i%30),
			Kind:      domain.Inbound,
			KindLabel: "Masuk",
			GroupName: "Iuran Bulanan",
			Note:      "Iuran anggota",
			Amount:    decimal.NewFromInt(20000),
		})
	}

	out, err := report.NewPDFRenderer().Render(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
