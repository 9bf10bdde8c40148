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

// businessHandler handles HTTP requests related to businesses.
type businessHandler struct {
	businessService portssvc.BusinessService
}

// newBusinessHandler creates a new businessHandler.
func newBusinessHandler(bs portssvc.BusinessService) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers routes related to businesses.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessService) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:businessID", h.getBusiness)
		businesses.PUT("/:businessID", h.updateBusiness)
		businesses.DELETE("/:businessID", h.deleteBusiness)
		businesses.GET("/:businessID/balance", h.getBusinessBalance)
	}
}

// createBusiness godoc
// @Summary Create a new business
// @Description Registers a community business with its own ledger
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create business"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// listBusinesses godoc
// @Summary List businesses
// @Description Retrieves a paginated, name-ordered list of businesses
// @Tags businesses
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListBusinessesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListBusinessesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list businesses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list businesses"})
		return
	}

	resp := dto.ListBusinessesResponse{Businesses: make([]dto.BusinessResponse, 0, len(businesses))}
	for i := range businesses {
		resp.Businesses = append(resp.Businesses, dto.ToBusinessResponse(&businesses[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getBusiness godoc
// @Summary Get a business by ID
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else {
			logger.Error("Failed to get business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve business"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateBusiness godoc
// @Summary Update a business
// @Tags businesses
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param business body dto.UpdateBusinessRequest true "Fields to update"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID} [put]
func (h *businessHandler) updateBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), businessID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update business"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// deleteBusiness godoc
// @Summary Delete a business
// @Description Removes a business; its transactions are deleted with it
// @Tags businesses
// @Param businessID path string true "Business ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID} [delete]
func (h *businessHandler) deleteBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	if err := h.businessService.DeleteBusiness(c.Request.Context(), businessID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else {
			logger.Error("Failed to delete business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete business"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// getBusinessBalance godoc
// @Summary Get a business's net balance
// @Description Folds the business ledger into inbound minus outbound
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.BusinessBalanceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/balance [get]
func (h *businessHandler) getBusinessBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	balance, err := h.businessService.GetBusinessBalance(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else {
			logger.Error("Failed to compute business balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BusinessBalanceResponse{
		BusinessID: businessID,
		Balance:    balance.IntPart(),
	})
}
