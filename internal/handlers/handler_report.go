package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/kelompok16/kas-backend/internal/middleware"
)

// reportHandler handles PDF report downloads.
type reportHandler struct {
	reportService portssvc.ReportService
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportService) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers report download routes.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportService) {
	h := newReportHandler(reportService)

	rg.GET("/reports/cashbook", h.downloadCashbookReport)
	rg.GET("/businesses/:businessID/report", h.downloadBusinessReport)
}

func parseWindow(params dto.ReportParams) (from, to *time.Time, err error) {
	if params.From != "" {
		t, err := time.Parse(domain.DateLayout, params.From)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if params.To != "" {
		t, err := time.Parse(domain.DateLayout, params.To)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}

// downloadCashbookReport godoc
// @Summary Download the cash book report PDF
// @Description Renders the cash book, filtered by category and an optional inclusive date window, as an attachment
// @Tags reports
// @Produce application/pdf
// @Param category query string false "Category ID or 'all'" default(all)
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/cashbook [get]
func (h *reportHandler) downloadCashbookReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	from, to, err := parseWindow(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date window: " + err.Error()})
		return
	}

	pdfBytes, err := h.reportService.GenerateCashbookReport(c.Request.Context(), params.Category, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
		} else {
			logger.Error("Failed to generate cash book report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		}
		return
	}

	filename := fmt.Sprintf("laporan-kas-%s.pdf", time.Now().Format(domain.DateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// downloadBusinessReport godoc
// @Summary Download a business ledger report PDF
// @Tags reports
// @Produce application/pdf
// @Param businessID path string true "Business ID"
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/report [get]
func (h *reportHandler) downloadBusinessReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	from, to, err := parseWindow(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date window: " + err.Error()})
		return
	}

	pdfBytes, err := h.reportService.GenerateBusinessReport(c.Request.Context(), businessID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else {
			logger.Error("Failed to generate business report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		}
		return
	}

	filename := fmt.Sprintf("laporan-usaha-%s.pdf", time.Now().Format(domain.DateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
