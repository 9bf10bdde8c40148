package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/kelompok16/kas-backend/internal/middleware"
)

// maxSignatureBytes bounds the accepted signature image upload.
const maxSignatureBytes = 2 << 20 // 2 MiB

// treasurerHandler handles HTTP requests for the treasurer profile.
type treasurerHandler struct {
	treasurerService portssvc.TreasurerService
}

// newTreasurerHandler creates a new treasurerHandler.
func newTreasurerHandler(ts portssvc.TreasurerService) *treasurerHandler {
	return &treasurerHandler{treasurerService: ts}
}

// registerTreasurerRoutes registers treasurer profile routes.
func registerTreasurerRoutes(rg *gin.RouterGroup, treasurerService portssvc.TreasurerService) {
	h := newTreasurerHandler(treasurerService)

	treasurer := rg.Group("/treasurer")
	{
		treasurer.GET("", h.getTreasurer)
		treasurer.PUT("", h.updateTreasurer)
		treasurer.DELETE("/signature", h.deleteSignature)
	}
}

// getTreasurer godoc
// @Summary Get the treasurer profile
// @Tags treasurer
// @Produce json
// @Success 200 {object} dto.TreasurerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasurer [get]
func (h *treasurerHandler) getTreasurer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	treasurer, err := h.treasurerService.GetTreasurer(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Treasurer profile not found"})
		} else {
			logger.Error("Failed to get treasurer profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve treasurer profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTreasurerResponse(treasurer))
}

// deleteSignature godoc
// @Summary Remove the treasurer signature image
// @Tags treasurer
// @Produce json
// @Success 200 {object} dto.TreasurerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasurer/signature [delete]
func (h *treasurerHandler) deleteSignature(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	treasurer, err := h.treasurerService.DeleteSignature(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Treasurer profile not found"})
		} else {
			logger.Error("Failed to remove signature", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove signature"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTreasurerResponse(treasurer))
}

// updateTreasurer godoc
// @Summary Update the treasurer profile
// @Description Updates the treasurer name; a multipart "signature" PNG file, when present, replaces the stored signature image
// @Tags treasurer
// @Accept mpfd
// @Produce json
// @Param name formData string true "Treasurer name"
// @Param signature formData file false "Signature image (PNG)"
// @Success 200 {object} dto.TreasurerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasurer [put]
func (h *treasurerHandler) updateTreasurer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	var signaturePNG []byte
	fileHeader, err := c.FormFile("signature")
	if err == nil {
		if fileHeader.Size > maxSignatureBytes {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "signature image too large"})
			return
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".png") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "signature must be a PNG image"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded signature", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read signature upload"})
			return
		}
		defer file.Close()
		signaturePNG, err = io.ReadAll(io.LimitReader(file, maxSignatureBytes))
		if err != nil {
			logger.Error("Failed to read uploaded signature", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read signature upload"})
			return
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid signature upload: " + err.Error()})
		return
	}

	treasurer, err := h.treasurerService.UpdateTreasurer(c.Request.Context(), name, signaturePNG)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Treasurer profile not found"})
		} else {
			logger.Error("Failed to update treasurer profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update treasurer profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTreasurerResponse(treasurer))
}
