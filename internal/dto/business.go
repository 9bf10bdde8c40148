package dto

import (
	"time"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// CreateBusinessRequest defines the data needed to register a business.
type CreateBusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	Owner       string `json:"owner" binding:"required"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

// UpdateBusinessRequest defines the fields allowed to change on a business.
// Pointers distinguish "not provided" from a zero-value update.
type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Owner       *string `json:"owner"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID  string    `json:"businessID"`
	Name        string    `json:"name"`
	Owner       string    `json:"owner"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:  b.BusinessID,
		Name:        b.Name,
		Owner:       b.Owner,
		Description: b.Description,
		Contact:     b.Contact,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.LastUpdatedAt,
	}
}

// ListBusinessesParams defines query parameters for listing businesses.
type ListBusinessesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListBusinessesResponse wraps the list of businesses.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// BusinessBalanceResponse returns the net balance over a business ledger.
type BusinessBalanceResponse struct {
	BusinessID string `json:"businessID"`
	Balance    int64  `json:"balance"`
}
