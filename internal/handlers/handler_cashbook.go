package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/kelompok16/kas-backend/internal/middleware"
)

// cashbookHandler handles HTTP requests for the shared cash book.
type cashbookHandler struct {
	cashbookService portssvc.CashbookService
}

// newCashbookHandler creates a new cashbookHandler.
func newCashbookHandler(cs portssvc.CashbookService) *cashbookHandler {
	return &cashbookHandler{cashbookService: cs}
}

// registerCashbookRoutes registers cash book entry routes.
func registerCashbookRoutes(rg *gin.RouterGroup, cashbookService portssvc.CashbookService) {
	h := newCashbookHandler(cashbookService)

	entries := rg.Group("/cashbook/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Record a cash book entry
// @Description Records an entry; an inbound entry may carry a dues target for shortfall tracking
// @Tags cashbook
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbook/entries [post]
func (h *cashbookHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.cashbookService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownKind):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to record entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List cash book entries
// @Description Returns entries filtered by category (default "all") together with the totals over exactly that subset
// @Tags cashbook
// @Produce json
// @Param category query string false "Category ID or 'all'" default(all)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbook/entries [get]
func (h *cashbookHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, summary, err := h.cashbookService.ListEntries(c.Request.Context(), params.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
		} else {
			logger.Error("Failed to list entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list entries"})
		}
		return
	}

	resp := dto.ListEntriesResponse{
		Entries:       make([]dto.EntryResponse, 0, len(entries)),
		Count:         len(entries),
		InboundTotal:  summary.InboundTotal.IntPart(),
		OutboundTotal: summary.OutboundTotal.IntPart(),
		Balance:       summary.Balance.IntPart(),
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// updateEntry godoc
// @Summary Update a cash book entry
// @Tags cashbook
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbook/entries/{entryID} [put]
func (h *cashbookHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.cashbookService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownKind):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a cash book entry
// @Tags cashbook
// @Param entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbook/entries/{entryID} [delete]
func (h *cashbookHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	if err := h.cashbookService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
		} else {
			logger.Error("Failed to delete entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
